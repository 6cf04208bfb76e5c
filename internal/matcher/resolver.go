// Package matcher maps free-text part names onto catalog entries.
package matcher

import (
	"errors"

	"github.com/you-humble/pcbuilder/internal/model"
)

const (
	StrictThreshold = 0.3
	LooseThreshold  = 0.5
)

var ErrRequiredMatchMissing = errors.New("required match missing")

type Config struct {
	// Highest accepted score.
	Threshold float64
	// Per-category overrides of Threshold.
	CategoryThresholds map[model.Category]float64
	GPUKey             KeyMode
	Options            Options
}

func Strict() Config {
	return Config{Threshold: StrictThreshold, GPUKey: KeyComposite, Options: DefaultOptions}
}

func Loose() Config {
	return Config{Threshold: LooseThreshold, GPUKey: KeyComposite, Options: DefaultOptions}
}

func (c Config) WithThreshold(t float64) Config {
	c.Threshold = t
	return c
}

func (c Config) WithGPUKey(mode KeyMode) Config {
	c.GPUKey = mode
	return c
}

func (c Config) WithCategoryThresholds(overrides map[model.Category]float64) Config {
	merged := make(map[model.Category]float64, len(c.CategoryThresholds)+len(overrides))
	for k, v := range c.CategoryThresholds {
		merged[k] = v
	}
	for k, v := range overrides {
		merged[k] = v
	}
	c.CategoryThresholds = merged
	return c
}

func (c Config) ThresholdFor(category model.Category) float64 {
	if t, ok := c.CategoryThresholds[category]; ok {
		return t
	}
	return c.Threshold
}

// KeyModeFor reports which key variant the corpus of category must be built with.
func (c Config) KeyModeFor(category model.Category) KeyMode {
	if category == model.CategoryGPU {
		return c.GPUKey
	}
	return KeyComposite
}

type Match struct {
	Part  model.PartSummary
	Key   string
	Score float64
}

type Resolver struct {
	cfg Config
}

func NewResolver(cfg Config) *Resolver {
	return &Resolver{cfg: cfg}
}

func (r *Resolver) Config() Config { return r.cfg }

// Resolve returns the best-scoring entry of corpus if it is within the
// category threshold. Equal scores keep the earliest entry.
func (r *Resolver) Resolve(corpus *Corpus, candidate string) (Match, bool) {
	if corpus == nil || corpus.Len() == 0 || candidate == "" {
		return Match{}, false
	}

	best := Match{Score: 2}
	found := false
	for _, e := range corpus.entries {
		s := Score(candidate, e.key, r.cfg.Options)
		if s < best.Score {
			best = Match{Part: e.part, Key: e.key, Score: s}
			found = true
		}
		if s == 0 {
			break
		}
	}

	if !found || best.Score > r.cfg.ThresholdFor(corpus.category) {
		return Match{}, false
	}

	return best, true
}

// MustResolve is Resolve for slots that cannot stay empty.
func (r *Resolver) MustResolve(corpus *Corpus, candidate string) (Match, error) {
	m, ok := r.Resolve(corpus, candidate)
	if !ok {
		return Match{}, ErrRequiredMatchMissing
	}
	return m, nil
}
