// Package config loads the ledgerwatch settings from the environment.
//
// Variables are read with the LEDGERWATCH_ prefix (e.g. LEDGERWATCH_BASE_URL).
// Values found in .env files are loaded first without overriding variables
// already set in the process environment.
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/gabapcia/ledgerwatch/internal/pkg/validator"
)

const Prefix = "LEDGERWATCH"

type Ledger struct {
	BaseURL           string        `split_words:"true" default:"http://127.0.0.1:5000" validate:"required,url"`
	Username          string        `split_words:"true"`
	Password          string        `split_words:"true" validate:"required_with=Username"`
	RequestTimeout    time.Duration `split_words:"true" default:"5s" validate:"gt=0"`
	RequestsPerSecond float64       `split_words:"true" default:"0" validate:"gte=0"`
}

type Dashboard struct {
	RefreshInterval  time.Duration `split_words:"true" default:"10s" validate:"gt=0"`
	ToastDuration    time.Duration `split_words:"true" default:"3s" validate:"gt=0"`
	MiningPollBudget int           `split_words:"true" default:"20" validate:"gte=0"`
	MiningPollDelay  time.Duration `split_words:"true" default:"1500ms" validate:"gt=0"`
}

// Redis publishing is enabled when Addr is set.
type Redis struct {
	Addr          string `split_words:"true"`
	Username      string `split_words:"true"`
	Password      string `split_words:"true"`
	DB            int    `split_words:"true" default:"0" validate:"gte=0"`
	ChannelPrefix string `split_words:"true" default:"ledgerwatch"`
}

type Telemetry struct {
	Enabled     bool   `split_words:"true" default:"false"`
	ServiceName string `split_words:"true" default:"ledgerwatch" validate:"required_if=Enabled true"`
}

// Keys are derived from the field names and always carry the prefix: there is
// no fallback to unprefixed variables such as USERNAME.
type Config struct {
	LogLevel string `split_words:"true" default:"info" validate:"oneof=debug info warn error"`

	// embedded: LEDGERWATCH_BASE_URL, LEDGERWATCH_REFRESH_INTERVAL, ...
	Ledger
	Dashboard

	// nested: LEDGERWATCH_REDIS_ADDR, LEDGERWATCH_TELEMETRY_ENABLED, ...
	Redis     Redis
	Telemetry Telemetry
}

// Load reads .env files (".env" when none is given), then the environment.
// Missing .env files are ignored.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// RedisEnabled reports whether views are published to Redis.
func (c Config) RedisEnabled() bool {
	return c.Redis.Addr != ""
}

// HasCredentials reports whether a login is required before the first request.
func (c Config) HasCredentials() bool {
	return c.Ledger.Username != ""
}
