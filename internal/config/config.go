package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	envconfig "github.com/you-humble/pcbuilder/internal/config/env"
)

var cfg *config

type config struct {
	Server      Server
	Logger      Logger
	Postgres    Database
	Kafka       Kafka
	Oracle      Oracle
	ImageSearch ImageSearch
	Matcher     Matcher
}

func Load(path ...string) error {
	const op = "config.Load"

	if shouldLoadDotenv() {
		if err := godotenv.Load(path...); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%s: load .env: %w", op, err)
		}
	}

	serverCfg, err := envconfig.NewHTTPServerConfig()
	if err != nil {
		return fmt.Errorf("%s Server: %w", op, err)
	}

	loggerCfg, err := envconfig.NewLoggerConfig()
	if err != nil {
		return fmt.Errorf("%s Logger: %w", op, err)
	}

	postgresCfg, err := envconfig.NewPostgresConfig()
	if err != nil {
		return fmt.Errorf("%s Postgres: %w", op, err)
	}

	kafkaCfg, err := envconfig.NewKafkaConfig()
	if err != nil {
		return fmt.Errorf("%s Kafka: %w", op, err)
	}

	geminiCfg, err := envconfig.NewGeminiConfig()
	if err != nil {
		return fmt.Errorf("%s Gemini: %w", op, err)
	}

	searchCfg, err := envconfig.NewImageSearchConfig()
	if err != nil {
		return fmt.Errorf("%s ImageSearch: %w", op, err)
	}

	matcherCfg, err := envconfig.NewMatcherConfig()
	if err != nil {
		return fmt.Errorf("%s Matcher: %w", op, err)
	}

	cfg = &config{
		Server:      serverCfg,
		Logger:      loggerCfg,
		Postgres:    postgresCfg,
		Kafka:       kafkaCfg,
		Oracle:      geminiCfg,
		ImageSearch: searchCfg,
		Matcher:     matcherCfg,
	}

	return nil
}

func C() *config { return cfg }

func shouldLoadDotenv() bool {
	return os.Getenv("APP_ENV") == "local"
}
