package testcontainers

// Redis constants
const (
	// Redis container constants
	RedisContainerName = "redis"
	RedisPort          = "6379"

	// Redis environment variables
	RedisImageNameKey = "REDIS_IMAGE_NAME"
	RedisAddrKey      = "REDIS_ADDR"
	RedisPasswordKey  = "REDIS_PASSWORD" //nolint:gosec
)

// Kafka constants
const (
	// Kafka environment variables
	KafkaImageNameKey = "KAFKA_IMAGE_NAME"
)
