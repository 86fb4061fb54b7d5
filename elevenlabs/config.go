package elevenlabs

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds client credentials and endpoint, loaded from the environment.
type Config struct {
	APIKey  string `env:"LABSKEY"`
	BaseURL string `env:"LABSURL" envDefault:"https://api.elevenlabs.io"`
}

// ConfigFromEnv loads a local .env file if present, then reads LABSKEY and
// LABSURL from the environment. A missing .env is not an error; explicit
// environment variables win over .env values.
func ConfigFromEnv() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("error parsing environment: %w", err)
	}
	return cfg, nil
}

// Validate reports whether the config is usable.
func (c Config) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	return nil
}
