package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the portal API
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Database
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Kratos
	KratosPublicURL string
	KratosAdminURL  string

	// Session
	SessionSecret string
	SessionIssuer string
	SessionTTL    time.Duration

	// Email delivery
	SendGridAPIKey    string
	SendGridFromEmail string

	// Lead mining
	YelpAPIKey string

	// Uptime monitoring
	UptimeRobotAPIKey string

	// Public URL of the portal frontend, used in email links
	AppURL string

	// Lead import
	ImportWorkers int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}

	// Server configuration
	cfg.Port = getEnvOrDefault("PORT", "9600")
	cfg.Host = getEnvOrDefault("HOST", "0.0.0.0")
	cfg.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	cfg.DatabaseHost = getEnvOrDefault("DB_HOST", "portal-postgres")
	cfg.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	cfg.DatabaseName = getEnvOrDefault("DB_NAME", "portal_db")
	cfg.DatabaseUser = getEnvOrDefault("DB_USER", "portal_user")
	cfg.DatabasePassword = os.Getenv("DB_PASSWORD")
	if cfg.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	cfg.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Kratos configuration
	cfg.KratosPublicURL = os.Getenv("KRATOS_PUBLIC_URL")
	if cfg.KratosPublicURL == "" {
		return nil, fmt.Errorf("KRATOS_PUBLIC_URL is required")
	}

	cfg.KratosAdminURL = os.Getenv("KRATOS_ADMIN_URL")
	if cfg.KratosAdminURL == "" {
		return nil, fmt.Errorf("KRATOS_ADMIN_URL is required")
	}

	// Session configuration
	cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	if cfg.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is required")
	}
	cfg.SessionIssuer = os.Getenv("SESSION_ISSUER")
	if cfg.SessionIssuer == "" {
		return nil, fmt.Errorf("SESSION_ISSUER is required")
	}

	var err error
	sessionTTLStr := getEnvOrDefault("SESSION_TTL", "168h")
	cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	// External API configuration
	cfg.SendGridAPIKey = os.Getenv("SENDGRID_API_KEY")
	cfg.SendGridFromEmail = getEnvOrDefault("SENDGRID_FROM_EMAIL", "noreply@example.com")
	cfg.YelpAPIKey = os.Getenv("YELP_API_KEY")
	cfg.UptimeRobotAPIKey = os.Getenv("UPTIMEROBOT_API_KEY")

	cfg.AppURL = getEnvOrDefault("APP_URL", "http://localhost:3000")

	importWorkersStr := getEnvOrDefault("IMPORT_WORKERS", "4")
	importWorkers, err := strconv.Atoi(importWorkersStr)
	if err != nil {
		return nil, fmt.Errorf("invalid IMPORT_WORKERS: %w", err)
	}
	cfg.ImportWorkers = importWorkers

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate session secret (minimum 32 bytes for HS256)
	if len(c.SessionSecret) < 32 {
		return fmt.Errorf("session secret must be at least 32 characters, got: %d", len(c.SessionSecret))
	}

	// Validate session TTL (minimum 1 minute)
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("session TTL must be at least 1 minute, got: %v", c.SessionTTL)
	}

	// Validate app URL
	if _, err := url.ParseRequestURI(c.AppURL); err != nil {
		return fmt.Errorf("invalid app URL: %s", c.AppURL)
	}

	// Validate import workers
	if c.ImportWorkers < 1 {
		return fmt.Errorf("import workers must be at least 1, got: %d", c.ImportWorkers)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
