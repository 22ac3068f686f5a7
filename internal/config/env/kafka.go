package envconfig

import (
	"github.com/IBM/sarama"
	"github.com/caarlos0/env/v11"
)

// Empty KAFKA_BROKERS disables search analytics.
type kafkaEnv struct {
	Brokers                  []string `env:"KAFKA_BROKERS"`
	SearchPerformedTopicName string   `env:"SEARCH_PERFORMED_TOPIC_NAME" envDefault:"search.performed"`
	ConsumerGroupID          string   `env:"SEARCH_PERFORMED_CONSUMER_GROUP_ID" envDefault:"partexplorer-trending"`
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

func (cfg *kafka) Enabled() bool                { return len(cfg.raw.Brokers) > 0 }
func (cfg *kafka) Brokers() []string            { return cfg.raw.Brokers }
func (cfg *kafka) SearchPerformedTopic() string { return cfg.raw.SearchPerformedTopicName }
func (cfg *kafka) ConsumerGroupID() string      { return cfg.raw.ConsumerGroupID }

func (cfg *kafka) SearchPerformedConsumerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{sarama.NewBalanceStrategyRoundRobin()}
	config.Consumer.Offsets.Initial = sarama.OffsetNewest

	return config
}

func (cfg *kafka) SearchPerformedProducerConfig() *sarama.Config {
	config := sarama.NewConfig()
	config.Version = sarama.V4_0_0_0
	config.Producer.Return.Successes = true
	config.Producer.RequiredAcks = sarama.WaitForLocal

	return config
}
