package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type geminiEnv struct {
	APIKey      string        `env:"GEMINI_API_KEY,required"`
	Model       string        `env:"GEMINI_MODEL" envDefault:"gemini-1.5-flash"`
	Timeout     time.Duration `env:"GEMINI_TIMEOUT" envDefault:"45s"`
	Temperature float32       `env:"GEMINI_TEMPERATURE" envDefault:"0.4"`
}

type gemini struct {
	raw geminiEnv
}

func NewGeminiConfig() (*gemini, error) {
	var raw geminiEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &gemini{raw: raw}, nil
}

func (cfg *gemini) APIKey() string         { return cfg.raw.APIKey }
func (cfg *gemini) Model() string          { return cfg.raw.Model }
func (cfg *gemini) Timeout() time.Duration { return cfg.raw.Timeout }
func (cfg *gemini) Temperature() float32   { return cfg.raw.Temperature }
