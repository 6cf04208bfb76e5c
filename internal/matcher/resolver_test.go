package matcher

import (
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/you-humble/pcbuilder/internal/model"
)

func fakeSummaries(category model.Category, n int) []model.PartSummary {
	parts := make([]model.PartSummary, n)
	for i := range parts {
		parts[i] = model.PartSummary{
			ID:         int64(i + 1),
			Category:   category,
			Name:       fmt.Sprintf("%s %s %d", gofakeit.Company(), gofakeit.Word(), i),
			Chipset:    fmt.Sprintf("Chipset %s", gofakeit.LetterN(4)),
			CapacityGB: int64(gofakeit.Number(128, 4000)),
			WattageW:   int64(gofakeit.Number(300, 1200)),
		}
	}
	return parts
}

func TestResolveExactEffectiveKeyReturnsEntry(t *testing.T) {
	t.Parallel()

	r := NewResolver(Strict())
	for _, category := range model.Categories {
		parts := fakeSummaries(category, 25)
		corpus := NewCorpus(category, parts, KeyComposite)

		for _, p := range parts {
			m, ok := r.Resolve(corpus, p.EffectiveName())
			require.True(t, ok, "category %s key %q", category, p.EffectiveName())
			assert.Equal(t, p.ID, m.Part.ID)
			assert.Zero(t, m.Score)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	cpus := []model.PartSummary{
		{ID: 1, Name: "AMD Ryzen 5 5600X"},
		{ID: 2, Name: "AMD Ryzen 7 5800X3D"},
		{ID: 3, Name: "Intel Core i5-12400F"},
	}
	storage := []model.PartSummary{
		{ID: 10, Name: "Samsung 970 Evo Plus", CapacityGB: 1000},
		{ID: 11, Name: "Seagate Barracuda", CapacityGB: 2000},
	}
	psus := []model.PartSummary{
		{ID: 20, Name: "Corsair RM750x", WattageW: 750},
		{ID: 21, Name: "EVGA SuperNOVA 850 G5", WattageW: 850},
	}
	gpus := []model.PartSummary{
		{ID: 30, Name: "ASUS ROG Strix OC Gaming White Edition", Chipset: "GeForce RTX 3060"},
		{ID: 31, Name: "Sapphire Pulse", Chipset: "Radeon RX 6600"},
	}
	dupes := []model.PartSummary{
		{ID: 40, Name: "Fractal Design Meshify C"},
		{ID: 41, Name: "Fractal Design Meshify C"},
	}

	tests := []struct {
		name      string
		resolver  *Resolver
		category  model.Category
		parts     []model.PartSummary
		mode      KeyMode
		candidate string
		wantID    int64
		wantOK    bool
	}{
		{
			name:      "close cpu name resolves",
			resolver:  NewResolver(Strict()),
			category:  model.CategoryCPU,
			parts:     cpus,
			candidate: "AMD Ryzen 5 5600X",
			wantID:    1,
			wantOK:    true,
		},
		{
			name:      "garbage resolves to nothing",
			resolver:  NewResolver(Strict()),
			category:  model.CategoryCPU,
			parts:     cpus,
			candidate: "Quantum Flux Capacitor 9000",
			wantOK:    false,
		},
		{
			name:      "empty candidate resolves to nothing",
			resolver:  NewResolver(Strict()),
			category:  model.CategoryCPU,
			parts:     cpus,
			candidate: "",
			wantOK:    false,
		},
		{
			name:      "storage key carries capacity",
			resolver:  NewResolver(Strict()),
			category:  model.CategoryStorage,
			parts:     storage,
			candidate: "Seagate Barracuda 2000GB",
			wantID:    11,
			wantOK:    true,
		},
		{
			name:      "psu key carries wattage",
			resolver:  NewResolver(Strict()),
			category:  model.CategoryPowerSupply,
			parts:     psus,
			candidate: "EVGA SuperNOVA 850 G5 850W",
			wantID:    21,
			wantOK:    true,
		},
		{
			name:      "late chipset mention misses composite key under strict threshold",
			resolver:  NewResolver(Strict()),
			category:  model.CategoryGPU,
			parts:     gpus,
			mode:      KeyComposite,
			candidate: "RTX 3060",
			wantOK:    false,
		},
		{
			name:      "chipset key resolves imprecise gpu name",
			resolver:  NewResolver(Strict().WithGPUKey(KeyChipset)),
			category:  model.CategoryGPU,
			parts:     gpus,
			mode:      KeyChipset,
			candidate: "RTX 3060",
			wantID:    30,
			wantOK:    true,
		},
		{
			name:      "ties keep catalog order",
			resolver:  NewResolver(Strict()),
			category:  model.CategoryCase,
			parts:     dupes,
			candidate: "Fractal Design Meshify C",
			wantID:    40,
			wantOK:    true,
		},
		{
			name:      "loose threshold accepts weaker match",
			resolver:  NewResolver(Loose()),
			category:  model.CategoryCPU,
			parts:     cpus,
			candidate: "Ryzen 7 5800X3D 8-Core",
			wantID:    2,
			wantOK:    true,
		},
		{
			name:      "strict threshold rejects the same weaker match",
			resolver:  NewResolver(Strict()),
			category:  model.CategoryCPU,
			parts:     cpus,
			candidate: "Ryzen 7 5800X3D 8-Core",
			wantOK:    false,
		},
		{
			name: "category override tightens one category",
			resolver: NewResolver(Loose().WithCategoryThresholds(map[model.Category]float64{
				model.CategoryCPU: 0.05,
			})),
			category:  model.CategoryCPU,
			parts:     cpus,
			candidate: "Ryzen 7 5800X3D 8-Core",
			wantOK:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			corpus := NewCorpus(tt.category, tt.parts, tt.mode)
			m, ok := tt.resolver.Resolve(corpus, tt.candidate)
			require.Equal(t, tt.wantOK, ok, "score of best match: %v", m.Score)
			if tt.wantOK {
				assert.Equal(t, tt.wantID, m.Part.ID)
				assert.Equal(t, tt.category, m.Part.Category)
			}
		})
	}
}

func TestMustResolve(t *testing.T) {
	t.Parallel()

	corpus := NewCorpus(model.CategoryMotherboard, []model.PartSummary{
		{ID: 1, Name: "MSI MAG B550 Tomahawk"},
	}, KeyComposite)
	r := NewResolver(Strict())

	m, err := r.MustResolve(corpus, "MSI MAG B550 Tomahawk")
	require.NoError(t, err)
	assert.Equal(t, int64(1), m.Part.ID)

	_, err = r.MustResolve(corpus, "Gigabyte X870E Aorus Master")
	assert.ErrorIs(t, err, ErrRequiredMatchMissing)

	_, err = r.MustResolve(NewCorpus(model.CategoryMotherboard, nil, KeyComposite), "MSI MAG B550 Tomahawk")
	assert.ErrorIs(t, err, ErrRequiredMatchMissing)
}

func TestConfigKeyModeFor(t *testing.T) {
	t.Parallel()

	cfg := Strict().WithGPUKey(KeyChipset)
	assert.Equal(t, KeyChipset, cfg.KeyModeFor(model.CategoryGPU))
	assert.Equal(t, KeyComposite, cfg.KeyModeFor(model.CategoryCPU))
	assert.Equal(t, StrictThreshold, cfg.ThresholdFor(model.CategoryCase))
}
