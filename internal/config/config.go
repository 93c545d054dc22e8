package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds all process configuration, read from the environment.
type Config struct {
	ServerPort string `env:"SERVER_PORT, default=8080"`
	LogLevel   string `env:"LOG_LEVEL, default=info"`
	LogPretty  bool   `env:"LOG_PRETTY, default=false"`

	DB   DBConfig
	JWT  JWTConfig
	Seed SeedConfig
}

// DBConfig holds database connection parameters
type DBConfig struct {
	Host          string        `env:"DB_HOST, required"`
	Port          string        `env:"DB_PORT, default=5432"`
	User          string        `env:"DB_USER, required"`
	Password      string        `env:"DB_PASSWORD"`
	Name          string        `env:"DB_NAME, required"`
	SSLMode       string        `env:"DB_SSLMODE, default=disable"`
	MaxRetries    int           `env:"DB_MAX_RETRIES, default=5"`
	RetryInterval time.Duration `env:"DB_RETRY_INTERVAL, default=5s"`
}

// DSN renders the libpq-style connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

type JWTConfig struct {
	SecretKey       string `env:"JWT_SECRET_KEY, required"`
	ExpirationHours int64  `env:"JWT_EXPIRATION_HOURS, default=24"`
}

// SeedConfig optionally provisions an administrator on first start.
type SeedConfig struct {
	AdminUsername string `env:"SEED_ADMIN_USERNAME"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL, default=admin@localhost"`
}

// Load reads configuration from the environment.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if cfg.JWT.ExpirationHours <= 0 {
		cfg.JWT.ExpirationHours = 24
	}
	return &cfg, nil
}
