package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// An empty REDIS_ADDR disables the shared cache tier.
type redisEnv struct {
	Addr     string        `env:"REDIS_ADDR"`
	Password string        `env:"REDIS_PASSWORD"`
	DB       int           `env:"REDIS_DB" envDefault:"0"`
	TTL      time.Duration `env:"REDIS_TTL" envDefault:"5m"`
}

type redis struct {
	raw redisEnv
}

func NewRedisConfig() (*redis, error) {
	var raw redisEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &redis{raw: raw}, nil
}

func (cfg *redis) Enabled() bool      { return cfg.raw.Addr != "" }
func (cfg *redis) Addr() string       { return cfg.raw.Addr }
func (cfg *redis) Password() string   { return cfg.raw.Password }
func (cfg *redis) DB() int            { return cfg.raw.DB }
func (cfg *redis) TTL() time.Duration { return cfg.raw.TTL }
