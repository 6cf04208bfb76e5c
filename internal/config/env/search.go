package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type imageSearchEnv struct {
	APIKey   string        `env:"GOOGLE_API_KEY,required"`
	EngineID string        `env:"GOOGLE_CSE_ID,required"`
	Timeout  time.Duration `env:"IMAGE_SEARCH_TIMEOUT" envDefault:"10s"`
}

type imageSearch struct {
	raw imageSearchEnv
}

func NewImageSearchConfig() (*imageSearch, error) {
	var raw imageSearchEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &imageSearch{raw: raw}, nil
}

func (cfg *imageSearch) APIKey() string         { return cfg.raw.APIKey }
func (cfg *imageSearch) EngineID() string       { return cfg.raw.EngineID }
func (cfg *imageSearch) Timeout() time.Duration { return cfg.raw.Timeout }
