package matcher

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/pcbuilder/internal/model"
)

type fakeCatalog struct {
	mu       sync.Mutex
	parts    map[model.Category][]model.PartSummary
	versions map[model.Category]int64
	lists    int
	err      error
}

func (f *fakeCatalog) List(_ context.Context, category model.Category) ([]model.PartSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists++
	if f.err != nil {
		return nil, f.err
	}
	return f.parts[category], nil
}

func (f *fakeCatalog) Version(_ context.Context, category model.Category) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.versions[category], nil
}

func (f *fakeCatalog) bump(category model.Category, parts []model.PartSummary) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.parts[category] = parts
	f.versions[category]++
}

func (f *fakeCatalog) listCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lists
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		parts: map[model.Category][]model.PartSummary{
			model.CategoryCPU: {{ID: 1, Name: "AMD Ryzen 5 5600X"}},
			model.CategoryGPU: {{ID: 2, Name: "MSI Ventus 2X", Chipset: "GeForce RTX 3060"}},
		},
		versions: map[model.Category]int64{},
	}
}

func TestCorpusCacheRebuildsOnlyOnVersionChange(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := newFakeCatalog()
	cache := NewCorpusCache(catalog)

	first, err := cache.Corpus(ctx, model.CategoryCPU, KeyComposite)
	require.NoError(t, err)
	second, err := cache.Corpus(ctx, model.CategoryCPU, KeyComposite)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, catalog.listCalls())

	catalog.bump(model.CategoryCPU, []model.PartSummary{
		{ID: 1, Name: "AMD Ryzen 5 5600X"},
		{ID: 3, Name: "Intel Core i5-12400F"},
	})

	third, err := cache.Corpus(ctx, model.CategoryCPU, KeyComposite)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, 2, third.Len())
	assert.Equal(t, 2, catalog.listCalls())
}

func TestCorpusCacheKeepsKeyModesApart(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := newFakeCatalog()
	cache := NewCorpusCache(catalog)

	composite, err := cache.Corpus(ctx, model.CategoryGPU, KeyComposite)
	require.NoError(t, err)
	chipset, err := cache.Corpus(ctx, model.CategoryGPU, KeyChipset)
	require.NoError(t, err)

	assert.Equal(t, KeyComposite, composite.Mode())
	assert.Equal(t, KeyChipset, chipset.Mode())
	assert.Equal(t, "MSI Ventus 2X GeForce RTX 3060", composite.entries[0].key)
	assert.Equal(t, "GeForce RTX 3060", chipset.entries[0].key)
	assert.Equal(t, 2, catalog.listCalls())
}

func TestCorpusCacheInvalidate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := newFakeCatalog()
	cache := NewCorpusCache(catalog)

	_, err := cache.Corpus(ctx, model.CategoryCPU, KeyComposite)
	require.NoError(t, err)
	_, err = cache.Corpus(ctx, model.CategoryGPU, KeyComposite)
	require.NoError(t, err)

	cache.Invalidate(model.CategoryCPU)

	_, err = cache.Corpus(ctx, model.CategoryCPU, KeyComposite)
	require.NoError(t, err)
	_, err = cache.Corpus(ctx, model.CategoryGPU, KeyComposite)
	require.NoError(t, err)

	assert.Equal(t, 3, catalog.listCalls())
}

func TestCorpusCacheListError(t *testing.T) {
	t.Parallel()

	catalog := newFakeCatalog()
	catalog.err = errors.New("db down")
	cache := NewCorpusCache(catalog)

	_, err := cache.Corpus(context.Background(), model.CategoryCPU, KeyComposite)
	require.Error(t, err)

	catalog.mu.Lock()
	catalog.err = nil
	catalog.mu.Unlock()

	c, err := cache.Corpus(context.Background(), model.CategoryCPU, KeyComposite)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())
}

func TestDirectCorpusAlwaysLists(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	catalog := newFakeCatalog()
	direct := NewDirectCorpus(catalog)

	for i := 0; i < 3; i++ {
		c, err := direct.Corpus(ctx, model.CategoryCPU, KeyComposite)
		require.NoError(t, err)
		assert.Equal(t, model.CategoryCPU, c.Parts()[0].Category)
	}
	assert.Equal(t, 3, catalog.listCalls())
}
