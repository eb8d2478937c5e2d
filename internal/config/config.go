package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"agrilink/marketplace-backend/internal/validation"
)

// Config represents the application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logging  LoggingConfig
	Limits   validation.Limits
}

// ServerConfig represents HTTP server configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig represents the postgres connection configuration.
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level string
}

// Load builds configuration from defaults, a .env file if present, and
// environment variable overrides.
func Load() (*Config, error) {
	// Missing .env is fine; containers set real env vars.
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		Database: DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			User:         "agrilink",
			DBName:       "agrilink_marketplace",
			SSLMode:      "disable",
			MaxOpenConns: 25,
			MaxIdleConns: 5,
			MaxLifetime:  30 * time.Minute,
		},
		Logging: LoggingConfig{Level: "info"},
		Limits:  validation.DefaultLimits(),
	}

	overrideWithEnv(cfg)

	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return nil, fmt.Errorf("invalid server port %d", cfg.Server.Port)
	}
	return cfg, nil
}

func overrideWithEnv(cfg *Config) {
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Server.Port = p
		}
	}
	if host := os.Getenv("DATABASE_HOST"); host != "" {
		cfg.Database.Host = host
	}
	if port := os.Getenv("DATABASE_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			cfg.Database.Port = p
		}
	}
	if user := os.Getenv("DATABASE_USER"); user != "" {
		cfg.Database.User = user
	}
	if pass := os.Getenv("DATABASE_PASSWORD"); pass != "" {
		cfg.Database.Password = pass
	}
	if name := os.Getenv("DATABASE_DBNAME"); name != "" {
		cfg.Database.DBName = name
	}
	if ssl := os.Getenv("DATABASE_SSLMODE"); ssl != "" {
		cfg.Database.SSLMode = ssl
	}
	if level := os.Getenv("LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if discount := os.Getenv("LIMIT_MAX_DISCOUNT_PERCENT"); discount != "" {
		if d, err := strconv.ParseFloat(discount, 64); err == nil {
			cfg.Limits.MaxDiscountPercent = d
		}
	}
	if offers := os.Getenv("LIMIT_MAX_COUNTER_OFFERS"); offers != "" {
		if n, err := strconv.Atoi(offers); err == nil {
			cfg.Limits.MaxCounterOffers = n
		}
	}
}

// DSN returns the postgres connection string.
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// Addr returns the HTTP listen address.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
