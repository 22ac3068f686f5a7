package envconfig

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
)

type catalogEnv struct {
	BaseURL string        `env:"CATALOG_BASE_URL,required"`
	Timeout time.Duration `env:"CATALOG_TIMEOUT" envDefault:"15s"`

	RetryAttempts  uint64        `env:"CATALOG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryBaseDelay time.Duration `env:"CATALOG_RETRY_BASE_DELAY" envDefault:"200ms"`
}

type catalog struct {
	raw catalogEnv
}

func NewCatalogConfig() (*catalog, error) {
	var raw catalogEnv
	if err := env.Parse(&raw); err != nil {
		return nil, err
	}

	u, err := url.Parse(raw.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid CATALOG_BASE_URL %q", raw.BaseURL)
	}

	return &catalog{raw: raw}, nil
}

func (cfg *catalog) BaseURL() string               { return cfg.raw.BaseURL }
func (cfg *catalog) Timeout() time.Duration        { return cfg.raw.Timeout }
func (cfg *catalog) RetryAttempts() uint64         { return cfg.raw.RetryAttempts }
func (cfg *catalog) RetryBaseDelay() time.Duration { return cfg.raw.RetryBaseDelay }
