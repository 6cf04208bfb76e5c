package matcher

import (
	"context"
	"fmt"
	"sync"

	"github.com/you-humble/pcbuilder/internal/model"
)

type Catalog interface {
	List(ctx context.Context, category model.Category) ([]model.PartSummary, error)
}

// VersionedCatalog exposes a change marker per category.
type VersionedCatalog interface {
	Catalog
	Version(ctx context.Context, category model.Category) (int64, error)
}

// DirectCorpus rebuilds the corpus from the catalog on every call.
type DirectCorpus struct {
	catalog Catalog
}

func NewDirectCorpus(catalog Catalog) *DirectCorpus {
	return &DirectCorpus{catalog: catalog}
}

func (d *DirectCorpus) Corpus(ctx context.Context, category model.Category, mode KeyMode) (*Corpus, error) {
	parts, err := d.catalog.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", category, err)
	}
	return NewCorpus(category, parts, mode), nil
}

type cacheKey struct {
	category model.Category
	mode     KeyMode
}

type cached struct {
	version int64
	corpus  *Corpus
}

// CorpusCache keeps one corpus per category and key mode until the catalog
// version of that category changes.
type CorpusCache struct {
	catalog VersionedCatalog

	mu      sync.RWMutex
	entries map[cacheKey]cached
}

func NewCorpusCache(catalog VersionedCatalog) *CorpusCache {
	return &CorpusCache{
		catalog: catalog,
		entries: make(map[cacheKey]cached),
	}
}

func (c *CorpusCache) Corpus(ctx context.Context, category model.Category, mode KeyMode) (*Corpus, error) {
	version, err := c.catalog.Version(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("version %s: %w", category, err)
	}

	key := cacheKey{category: category, mode: mode}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && e.version == version {
		return e.corpus, nil
	}

	parts, err := c.catalog.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", category, err)
	}
	corpus := NewCorpus(category, parts, mode)

	c.mu.Lock()
	c.entries[key] = cached{version: version, corpus: corpus}
	c.mu.Unlock()

	return corpus, nil
}

// Invalidate drops every cached corpus of category.
func (c *CorpusCache) Invalidate(category model.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.category == category {
			delete(c.entries, k)
		}
	}
}
