package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/you-humble/pcbuilder/internal/client/converter"
	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/platform/logger"
)

type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type client struct {
	conn    *genai.Client
	model   generator
	timeout time.Duration
}

func NewClient(
	ctx context.Context,
	apiKey string,
	modelName string,
	temperature float32,
	timeout time.Duration,
) (*client, error) {
	conn, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	m := conn.GenerativeModel(modelName)
	m.SetTemperature(temperature)

	return &client{conn: conn, model: m, timeout: timeout}, nil
}

// Complete sends prompt as a single user turn and returns the raw completion.
func (c *client) Complete(ctx context.Context, prompt string) (string, error) {
	const op string = "gemini.client.Complete"

	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%s: empty prompt: %w", op, model.ErrValidation)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	took := time.Since(start)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			logger.Warn(ctx, "gemini timeout", logger.Duration("took", took))
			return "", fmt.Errorf("%s: %w", op, model.ErrOracleTimeout)
		}
		logger.Error(ctx, "gemini generate content", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w: %v", op, model.ErrOracleUnavailable, err)
	}

	if converter.Blocked(resp) {
		logger.Warn(ctx, "gemini response blocked by safety filter")
		return "", fmt.Errorf("%s: blocked: %w", op, model.ErrOracleUnavailable)
	}

	if len(resp.Candidates) == 0 {
		logger.Warn(ctx, "gemini returned no candidates")
		return "", fmt.Errorf("%s: no candidates: %w", op, model.ErrOracleUnavailable)
	}

	text := converter.CandidateText(resp)
	logger.Debug(ctx, "gemini completion",
		logger.Duration("took", took),
		logger.Int("response_len", len(text)),
	)

	return text, nil
}

func (c *client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
