package imagesearch

import (
	"context"
	"fmt"
	"strings"
	"time"

	customsearch "google.golang.org/api/customsearch/v1"
	"google.golang.org/api/option"

	"github.com/you-humble/pcbuilder/internal/client/converter"
	"github.com/you-humble/pcbuilder/internal/model"
)

type searcher func(ctx context.Context, query string) (*customsearch.Search, error)

type client struct {
	search  searcher
	timeout time.Duration
}

func NewClient(ctx context.Context, apiKey, engineID string, timeout time.Duration) (*client, error) {
	svc, err := customsearch.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create custom search service: %w", err)
	}

	return &client{
		search: func(ctx context.Context, query string) (*customsearch.Search, error) {
			return svc.Cse.List().
				Cx(engineID).
				Q(query).
				SearchType("image").
				Num(1).
				Context(ctx).
				Do()
		},
		timeout: timeout,
	}, nil
}

// SearchImages returns image links for prompt. No results is an empty list.
func (c *client) SearchImages(ctx context.Context, prompt string) ([]string, error) {
	const op string = "imagesearch.client.SearchImages"

	if strings.TrimSpace(prompt) == "" {
		return []string{}, nil
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.search(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, model.ErrImageSearch, err)
	}

	return converter.ImageLinks(res), nil
}
