package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load reads configuration from environment variables and returns a
// validated Config. Environment variables use the JOBVERSE_ prefix with
// underscores separating nested keys, e.g. JOBVERSE_DATABASE_URL maps to
// Config.Database.URL.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for settings that have sensible fallbacks. Secrets and
	// connection strings have no defaults and must be provided.
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("database.name", "JobVerse")
	v.SetDefault("auth.token_lifetime_minutes", 60)

	v.SetEnvPrefix("JOBVERSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys to Unmarshal, so
	// bind every key we expect explicitly.
	for _, key := range []string{
		"server.port",
		"server.log_level",
		"database.url",
		"database.name",
		"auth.jwt_secret",
		"auth.token_lifetime_minutes",
		"payment.stripe_secret_key",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind config key %q: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
