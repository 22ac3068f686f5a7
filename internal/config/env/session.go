package envconfig

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type sessionEnv struct {
	IdleTTL         time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	JanitorInterval time.Duration `env:"SESSION_JANITOR_INTERVAL" envDefault:"1m"`
}

type session struct {
	raw sessionEnv
}

func NewSessionConfig() (*session, error) {
	var raw sessionEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}
	return &session{raw: raw}, nil
}

func (cfg *session) IdleTTL() time.Duration         { return cfg.raw.IdleTTL }
func (cfg *session) JanitorInterval() time.Duration { return cfg.raw.JanitorInterval }
