package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Sheet    SheetConfig
	Defaults DefaultsConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// SheetConfig holds the spreadsheet sync endpoint. Sync is disabled when
// the URL is empty.
type SheetConfig struct {
	URL     string
	Timeout time.Duration
}

// DefaultsConfig replaces the ambient settings table of the original app:
// the defaults are explicit configuration threaded into the entry save
// path instead of key-value state read at form-load time.
type DefaultsConfig struct {
	BaseHours    float64
	BreakMinutes int
}

func Load() (*Config, error) {
	// A missing .env file is fine; env vars may come from the environment.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "crewpay"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Sheet sync configuration
	sheetTimeout, err := time.ParseDuration(getEnv("SHEET_SYNC_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHEET_SYNC_TIMEOUT: %w", err)
	}

	config.Sheet = SheetConfig{
		URL:     getEnv("SHEET_SYNC_URL", ""),
		Timeout: sheetTimeout,
	}

	// Entry defaults
	defaultBaseHours, err := strconv.ParseFloat(getEnv("DEFAULT_BASE_HOURS", "10"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_BASE_HOURS: %w", err)
	}

	defaultBreak, err := strconv.Atoi(getEnv("DEFAULT_BREAK_MINUTES", "60"))
	if err != nil {
		return nil, fmt.Errorf("invalid DEFAULT_BREAK_MINUTES: %w", err)
	}

	config.Defaults = DefaultsConfig{
		BaseHours:    defaultBaseHours,
		BreakMinutes: defaultBreak,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.Defaults.BaseHours <= 0 {
		return fmt.Errorf("DEFAULT_BASE_HOURS must be greater than zero")
	}
	if c.Defaults.BreakMinutes < 0 {
		return fmt.Errorf("DEFAULT_BREAK_MINUTES must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
