package internal

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	DBPath             string        `envconfig:"DB_PATH" default:"coachchat.db"`
	SubscriberBuffer   int           `envconfig:"SUBSCRIBER_BUFFER_SIZE" default:"64"`
	EntitlementTimeout time.Duration `envconfig:"ENTITLEMENT_TIMEOUT" default:"2s"`
	CensoredChar       string        `envconfig:"CENSORED_CHAR" default:"*"`
	LogLevel           string        `envconfig:"LOG_LEVEL" default:"INFO"`
}

// Load reads the configuration from the environment, with an optional .env
// file for local runs.
func Load() (Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if _, err := cfg.MaskRune(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// MaskRune validates that CENSORED_CHAR is a single character and returns it.
func (c Config) MaskRune() (rune, error) {
	r := []rune(c.CensoredChar)
	if len(r) != 1 {
		return 0, fmt.Errorf("CENSORED_CHAR must be a single character, got %q", c.CensoredChar)
	}
	return r[0], nil
}
