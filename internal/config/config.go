// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// HTTPAddr is the address the admin HTTP server listens on (e.g. :8443).
	HTTPAddr string `mapstructure:"HTTP_ADDR"`
	// DatabaseURL is the Postgres DSN for users and the audit log.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	// SessionSecret signs session cookies (HS256). At least 32 bytes in production.
	SessionSecret string `mapstructure:"SESSION_SECRET"`
	// SessionTTL is the session cookie lifetime (e.g. "12h").
	SessionTTL string `mapstructure:"SESSION_TTL"`
	// BcryptCost is the bcrypt cost factor (4–31); default 12.
	BcryptCost int `mapstructure:"BCRYPT_COST"`
	// CommandTimeout bounds a single command run (e.g. "5m").
	CommandTimeout string `mapstructure:"COMMAND_TIMEOUT"`
	// DefaultCommandArgs is a space-separated list appended to every run
	// unless the operator already passed them (e.g. "--no-color").
	DefaultCommandArgs string `mapstructure:"DEFAULT_COMMAND_ARGS"`
	// CommandsFile is the path to the YAML catalog of shell-backed commands.
	// Empty means only built-in commands are available.
	CommandsFile string `mapstructure:"COMMANDS_FILE"`
	// HistoryPageSize is the number of audit entries per history page.
	HistoryPageSize int `mapstructure:"HISTORY_PAGE_SIZE"`
	// PolicyFile is an optional Rego file overriding the built-in run policy.
	PolicyFile string `mapstructure:"POLICY_FILE"`
	// OTLPEndpoint is the OTLP gRPC collector endpoint; empty disables export.
	OTLPEndpoint string `mapstructure:"OTLP_ENDPOINT"`
	// OTLPInsecure forces plaintext OTLP even for https endpoints.
	OTLPInsecure bool `mapstructure:"OTLP_INSECURE"`
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
	// SecureCookies marks session and CSRF cookies Secure. Forced on when
	// APP_ENV=production.
	SecureCookies bool `mapstructure:"SECURE_COOKIES"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored (e.g. in CI). Env vars override .env. Returns an error if required fields are invalid.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("HTTP_ADDR", ":8443")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SESSION_SECRET", "")
	v.SetDefault("SESSION_TTL", "12h")
	v.SetDefault("BCRYPT_COST", 12)
	v.SetDefault("COMMAND_TIMEOUT", "5m")
	v.SetDefault("DEFAULT_COMMAND_ARGS", "")
	v.SetDefault("COMMANDS_FILE", "")
	v.SetDefault("HISTORY_PAGE_SIZE", 100)
	v.SetDefault("POLICY_FILE", "")
	v.SetDefault("OTLP_ENDPOINT", "")
	v.SetDefault("OTLP_INSECURE", false)
	v.SetDefault("APP_ENV", "")
	v.SetDefault("SECURE_COOKIES", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("config: HTTP_ADDR must be set")
	}

	if cfg.BcryptCost == 0 {
		cfg.BcryptCost = 12
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 31 {
		return nil, errors.New("config: BCRYPT_COST must be between 4 and 31")
	}

	if cfg.HistoryPageSize <= 0 {
		return nil, errors.New("config: HISTORY_PAGE_SIZE must be positive")
	}

	if cfg.Env == "production" {
		if len(cfg.SessionSecret) < 32 {
			return nil, errors.New("config: SESSION_SECRET must be at least 32 bytes when APP_ENV=production")
		}
		cfg.SecureCookies = true
	}

	return &cfg, nil
}

// SessionTTLDuration parses SessionTTL as a time.Duration. Returns 12h if unset or invalid.
func (c *Config) SessionTTLDuration() time.Duration {
	d, err := time.ParseDuration(c.SessionTTL)
	if err != nil || d <= 0 {
		return 12 * time.Hour
	}
	return d
}

// CommandTimeoutDuration parses CommandTimeout as a time.Duration. Returns 5m if unset or invalid.
func (c *Config) CommandTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.CommandTimeout)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// DefaultArgs returns the default command args from the space-separated config value.
// These are appended to a run when the operator did not pass them explicitly.
func (c *Config) DefaultArgs() []string {
	if c == nil || c.DefaultCommandArgs == "" {
		return nil
	}
	parts := strings.Fields(c.DefaultCommandArgs)
	if len(parts) == 0 {
		return nil
	}
	return parts
}
