package ott

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config controls how one-time token requests reach the upstream service.
type Config struct {
	BaseURL              string        `env:"OTT_BASE_URL"                envDefault:"http://localhost:8081"`
	ClientName           string        `env:"OTT_CLIENT_NAME"             envDefault:"web"`
	HTTPTimeout          time.Duration `env:"OTT_HTTP_TIMEOUT"            envDefault:"30s"`
	MaxRequestsPerSecond float64       `env:"OTT_MAX_REQUESTS_PER_SECOND" envDefault:"0"`
	Burst                int           `env:"OTT_BURST"                   envDefault:"1"`
}

// LoadConfigFromEnv parses the OTT_* variables. A zero MaxRequestsPerSecond
// leaves outbound calls unpaced.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse ott env: %w", err)
	}
	if cfg.Burst < 1 {
		cfg.Burst = 1
	}
	return cfg, nil
}
