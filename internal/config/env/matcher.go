package envconfig

import "github.com/caarlos0/env/v11"

type matcherEnv struct {
	StrictThreshold float64 `env:"MATCH_STRICT_THRESHOLD" envDefault:"0.3"`
	LooseThreshold  float64 `env:"MATCH_LOOSE_THRESHOLD" envDefault:"0.5"`
	// e.g. "gpu:0.4,storage:0.35"
	CategoryThresholds      map[string]float64 `env:"MATCH_CATEGORY_THRESHOLDS"`
	LooseCategoryThresholds map[string]float64 `env:"MATCH_LOOSE_CATEGORY_THRESHOLDS"`
	CorpusCache             bool               `env:"MATCH_CORPUS_CACHE" envDefault:"true"`
}

type matcher struct {
	raw matcherEnv
}

func NewMatcherConfig() (*matcher, error) {
	var raw matcherEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &matcher{raw: raw}, nil
}

func (cfg *matcher) StrictThreshold() float64               { return cfg.raw.StrictThreshold }
func (cfg *matcher) LooseThreshold() float64                { return cfg.raw.LooseThreshold }
func (cfg *matcher) CategoryThresholds() map[string]float64 { return cfg.raw.CategoryThresholds }
func (cfg *matcher) CorpusCache() bool                      { return cfg.raw.CorpusCache }

func (cfg *matcher) LooseCategoryThresholds() map[string]float64 {
	return cfg.raw.LooseCategoryThresholds
}
