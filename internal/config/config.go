package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Catalog CatalogConfig
	Server  ServerConfig
	Search  SearchConfig
	Logging LoggingConfig
	LLM     LLMConfig

	// Warnings lists environment values that were ignored in favour of defaults.
	// Load runs before a logger exists, so callers log them.
	Warnings []string
}

// CatalogConfig describes where the property catalog is loaded from
type CatalogConfig struct {
	Source  string // "csv" or "postgres"
	CSVPath string

	// Postgres source
	DSN                string // full connection string, preferred over the individual fields
	Host               string
	Port               int
	User               string
	Password           string
	Database           string
	SSLMode            string
	Table              string
	MaxConnections     int
	MaxIdleConnections int
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port           int
	Host           string
	GinMode        string
	AllowedOrigins string
}

// SearchConfig holds search-related configuration
type SearchConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string
	Format string
}

// LLMConfig holds the OpenAI-compatible generation backend configuration
type LLMConfig struct {
	APIKey      string
	APIBase     string
	ChatModel   string
	Temperature float64
	MaxTokens   int
	Timeout     int // seconds, applied by callers around a generation call
	Enabled     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (optional)
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		Catalog: CatalogConfig{
			Source:             strings.ToLower(getEnv("CATALOG_SOURCE", "csv")),
			CSVPath:            getEnv("CANONICAL_CSV_PATH", ""),
			DSN:                getEnv("DATABASE_URL", getEnv("PG_DSN", "")),
			Host:               getEnv("PG_HOST", "localhost"),
			Port:               env.getInt("PG_PORT", 5432),
			User:               getEnv("PG_USER", "postgres"),
			Password:           getEnv("PG_PASSWORD", ""),
			Database:           getEnv("PG_DATABASE", "inmo"),
			SSLMode:            getEnv("PG_SSLMODE", "disable"),
			Table:              getEnv("CATALOG_TABLE", "listings"),
			MaxConnections:     env.getInt("PG_MAX_CONNECTIONS", 5),
			MaxIdleConnections: env.getInt("PG_MAX_IDLE_CONNECTIONS", 2),
		},
		Server: ServerConfig{
			Port:           env.getInt("PORT", 3000),
			Host:           getEnv("SERVER_HOST", "0.0.0.0"),
			GinMode:        getEnv("GIN_MODE", "release"),
			AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Search: SearchConfig{
			DefaultLimit: env.getInt("SEARCH_DEFAULT_LIMIT", 10),
			MaxLimit:     env.getInt("SEARCH_MAX_LIMIT", 50),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		LLM: LLMConfig{
			APIKey:      getEnv("LLM_API_KEY", ""),
			APIBase:     strings.TrimRight(getEnv("LLM_BASE_URL", "https://api.x.ai/v1"), "/"),
			ChatModel:   getEnv("LLM_MODEL", "gpt-4o-mini"),
			Temperature: env.getFloat("LLM_TEMPERATURE", 0),
			MaxTokens:   env.getInt("LLM_MAX_TOKENS", 1024),
			Timeout:     env.getInt("LLM_TIMEOUT", 30),
			Enabled:     getEnv("LLM_API_KEY", "") != "",
		},
	}

	cfg.Warnings = env.warnings

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Catalog.Source {
	case "csv":
		if c.Catalog.CSVPath == "" {
			return fmt.Errorf("CANONICAL_CSV_PATH is required when CATALOG_SOURCE=csv")
		}
	case "postgres":
	default:
		return fmt.Errorf("unsupported CATALOG_SOURCE %q (expected csv or postgres)", c.Catalog.Source)
	}
	if c.Search.DefaultLimit <= 0 {
		c.Search.DefaultLimit = 10
	}
	if c.Search.MaxLimit < c.Search.DefaultLimit {
		c.Search.MaxLimit = c.Search.DefaultLimit
	}
	return nil
}

// GetPostgreSQLDSN returns PostgreSQL connection string
func (c *Config) GetPostgreSQLDSN() string {
	if c.Catalog.DSN != "" {
		return c.Catalog.DSN
	}

	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Catalog.Host,
		c.Catalog.Port,
		c.Catalog.User,
		c.Catalog.Password,
		c.Catalog.Database,
		c.Catalog.SSLMode,
	)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// envReader collects values it could not parse instead of logging them
type envReader struct {
	warnings []string
}

func (r *envReader) getInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.warnings = append(r.warnings, fmt.Sprintf("invalid integer value for %s, using default %d", key, defaultValue))
		return defaultValue
	}
	return value
}

func (r *envReader) getFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		r.warnings = append(r.warnings, fmt.Sprintf("invalid float value for %s, using default %g", key, defaultValue))
		return defaultValue
	}
	return value
}
