package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Token transport modes. A deployment picks exactly one; mixing is not
// supported.
const (
	TransportCookie = "cookie"
	TransportHeader = "header"
)

// Config holds all application configuration
type Config struct {
	HTTPAddr       string
	JWTSecret      string
	TokenTransport string
	Database       DatabaseConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{
		HTTPAddr:       getEnv("HTTP_ADDR", ":3000"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		TokenTransport: getEnv("TOKEN_TRANSPORT", TransportCookie),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "wortschatz"),
			User:     getEnv("DB_USER", "wortschatz"),
			Password: os.Getenv("DB_PASSWORD"),
		},
	}

	// Validate required fields
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	if cfg.TokenTransport != TransportCookie && cfg.TokenTransport != TransportHeader {
		return nil, fmt.Errorf("TOKEN_TRANSPORT must be %q or %q", TransportCookie, TransportHeader)
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
