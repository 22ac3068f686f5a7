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
}

type Logger interface {
	Level() string
	AsJSON() bool
}

type Catalog interface {
	BaseURL() string
	Timeout() time.Duration
	RetryAttempts() uint64
	RetryBaseDelay() time.Duration
}

type Redis interface {
	Enabled() bool
	Addr() string
	Password() string
	DB() int
	TTL() time.Duration
}

type Kafka interface {
	Enabled() bool
	Brokers() []string
	SearchPerformedTopic() string
	ConsumerGroupID() string
	SearchPerformedConsumerConfig() *sarama.Config
	SearchPerformedProducerConfig() *sarama.Config
}

type Session interface {
	IdleTTL() time.Duration
	JanitorInterval() time.Duration
}
