package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	GinMode     string `envconfig:"GIN_MODE" default:"debug"`
	HTTPPort    int    `envconfig:"HTTP_PORT" default:"8080"`

	// Local durable state (SQLite file backing the client stores)
	DataPath string `envconfig:"DATA_PATH" default:"ninetd.db"`

	// Server database
	DBDriver   string `envconfig:"DB_DRIVER" default:"mysql"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBPort     string `envconfig:"DB_PORT" default:"3306"`
	DBUser     string `envconfig:"DB_USER" default:"ninetd"`
	DBPassword string `envconfig:"DB_PASSWORD" default:"ninetd"`
	DBName     string `envconfig:"DB_NAME" default:"nine_td"`

	// Auth
	JWTSecret string        `envconfig:"JWT_SECRET" default:"default-secret-key-change-me"`
	TokenTTL  time.Duration `envconfig:"TOKEN_TTL" default:"168h"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}
