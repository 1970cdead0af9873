package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load,
// e.g. PODCAST_AUTH_PRIVATE_KEY for auth.private_key.
const EnvPrefix = "PODCAST"

var defaults = map[string]any{
	"server.port":                     8080,
	"server.log_level":                "info",
	"server.shutdown_timeout_seconds": 10,
	"database.driver":                 "pgx",
	"database.max_open_conns":         10,
	"database.max_idle_conns":         5,
	"auth.bcrypt_cost":                10,
	"rate_limit.login_per_minute":     10,
	"rate_limit.burst":                5,
	"rate_limit.trusted_proxies":      []string{},
}

// keys without a default still need an explicit env binding so that
// Unmarshal sees them. database.url is bound separately below.
var envOnlyKeys = []string{
	"auth.private_key",
}

// Load reads configuration from an optional file and from environment variables.
// Environment variables take precedence over values from the file, which take
// precedence over defaults. An empty configFile skips file loading.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range envOnlyKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	// DATABASE_URL is honoured as a fallback, as most hosting platforms set it.
	if err := v.BindEnv("database.url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind env for database.url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
