package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

type kafkaEnv struct {
	Brokers            []string `env:"KAFKA_BROKERS,required"`
	PartUsageTopicName string   `env:"PART_USAGE_TOPIC_NAME" envDefault:"catalog.part-usage"`
	ConsumerGroupID    string   `env:"PART_USAGE_CONSUMER_GROUP_ID" envDefault:"pcbuilder-part-usage"`
}

type kafka struct {
	raw kafkaEnv
}

func NewKafkaConfig() (*kafka, error) {
	var raw kafkaEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &kafka{raw: raw}, nil
}

func (cfg *kafka) Brokers() []string       { return cfg.raw.Brokers }
func (cfg *kafka) PartUsageTopic() string  { return cfg.raw.PartUsageTopicName }
func (cfg *kafka) ConsumerGroupID() string { return cfg.raw.ConsumerGroupID }

func (cfg *kafka) PartUsageConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetOldest

	return config
}

func (cfg *kafka) PartUsageProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForAll

	return config
}
