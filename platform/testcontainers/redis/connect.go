package redis

import (
	"context"
	"net"

	"github.com/pkg/errors"
	goredis "github.com/redis/go-redis/v9"
)

func connectRedisClient(ctx context.Context, cfg *Config) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     net.JoinHostPort(cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Errorf("failed to ping redis: %v", err)
	}

	return client, nil
}
