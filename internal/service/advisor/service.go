package service

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/you-humble/pcbuilder/internal/matcher"
	"github.com/you-humble/pcbuilder/internal/model"
	"github.com/you-humble/pcbuilder/platform/logger"
)

const maxSuggestedParts = 4

type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type ImageSearcher interface {
	SearchImages(ctx context.Context, prompt string) ([]string, error)
}

type CorpusSource interface {
	Corpus(ctx context.Context, category model.Category, mode matcher.KeyMode) (*matcher.Corpus, error)
}

type Hydrator interface {
	Hydrate(ctx context.Context, category model.Category, id *int64) (*model.PartDetail, error)
	PartDetails(ctx context.Context, parts model.BuildParts) (*model.ResolvedBuild, error)
}

type service struct {
	oracle   Oracle
	images   ImageSearcher
	corpora  CorpusSource
	hydrator Hydrator
	strict   *matcher.Resolver
	// strict with GPUs matched by chipset alone
	perf  *matcher.Resolver
	loose *matcher.Resolver
}

func NewAdvisorService(
	oracle Oracle,
	images ImageSearcher,
	corpora CorpusSource,
	hydrator Hydrator,
	strict matcher.Config,
	loose matcher.Config,
) *service {
	return &service{
		oracle:   oracle,
		images:   images,
		corpora:  corpora,
		hydrator: hydrator,
		strict:   matcher.NewResolver(strict),
		perf:     matcher.NewResolver(strict.WithGPUKey(matcher.KeyChipset)),
		loose:    matcher.NewResolver(loose),
	}
}

// corpusSet is indexed by model.Category.
type corpusSet [model.CategoryCase + 1]*matcher.Corpus

// loadCorpora builds the corpora of every category concurrently with join-all semantics.
func (svc *service) loadCorpora(ctx context.Context, cfg matcher.Config) (*corpusSet, error) {
	var set corpusSet

	eg, egCtx := errgroup.WithContext(ctx)
	for _, category := range model.Categories {
		eg.Go(func() error {
			c, err := svc.corpora.Corpus(egCtx, category, cfg.KeyModeFor(category))
			if err != nil {
				return err
			}
			set[category] = c
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &set, nil
}

func (set *corpusSet) get(c model.Category) *matcher.Corpus {
	if !c.Valid() {
		return nil
	}
	return set[c]
}

// resolveID maps a free-text candidate to a catalog id, nil when nothing is close enough.
func resolveID(ctx context.Context, r *matcher.Resolver, corpus *matcher.Corpus, slot, candidate string) *int64 {
	m, ok := r.Resolve(corpus, candidate)
	if !ok {
		if strings.TrimSpace(candidate) != "" {
			logger.Debug(ctx, "suggestion unresolved",
				logger.String("slot", slot),
				logger.String("candidate", candidate),
			)
		}
		return nil
	}

	id := m.Part.ID
	return &id
}

func (svc *service) complete(ctx context.Context, p string) (string, error) {
	text, err := svc.oracle.Complete(ctx, p)
	if err != nil {
		return "", err
	}
	logger.Debug(ctx, "oracle response", logger.Int("len", len(text)))
	return text, nil
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
