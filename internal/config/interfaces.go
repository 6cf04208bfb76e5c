package config

import (
	"time"

	"github.com/IBM/sarama"
)

type Server interface {
	Host() string
	Port() int
	Address() string
	ReadTimeout() time.Duration
	ShutdownTimeout() time.Duration
	DBReadTimeout() time.Duration
	DBWriteTimeout() time.Duration
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Database interface {
	MigrationDirectory() string
	DSN() string
}

type Kafka interface {
	Brokers() []string
	PartUsageTopic() string
	ConsumerGroupID() string
	PartUsageConsumerConfig() *sarama.Config
	PartUsageProducerConfig() *sarama.Config
}

type Oracle interface {
	APIKey() string
	Model() string
	Timeout() time.Duration
	Temperature() float32
}

type ImageSearch interface {
	APIKey() string
	EngineID() string
	Timeout() time.Duration
}

type Matcher interface {
	StrictThreshold() float64
	LooseThreshold() float64
	CategoryThresholds() map[string]float64
	LooseCategoryThresholds() map[string]float64
	CorpusCache() bool
}
