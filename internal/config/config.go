package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Storage configuration
	StorageBackend string // "sqlite" or "memory"
	DatabasePath   string

	// Elasticsearch configuration
	ElasticEnabled     bool
	ElasticURL         string
	ElasticUsername    string
	ElasticPassword    string
	ElasticIndexPrefix string
	RetentionDays      int

	// Discord run report configuration
	DiscordToken     string
	DiscordChannelID string

	// Run configuration
	Seed    int64 // 0 picks a fresh seed for every run
	SimRuns int   // runs per simulation batch

	// Resource paths
	DataDir string

	// Environment
	Environment string // "development" or "production"
	LogLevel    string
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for resource paths
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	dataDir := getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data"))

	seed, err := getEnvInt64("RUN_SEED", 0)
	if err != nil {
		return nil, err
	}

	simRuns, err := getEnvInt("SIM_RUNS", 10)
	if err != nil {
		return nil, err
	}

	retentionDays, err := getEnvInt("RETENTION_DAYS", 90)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		StorageBackend:     getEnvWithDefault("STORAGE_BACKEND", "sqlite"),
		DatabasePath:       getEnvWithDefault("DATABASE_PATH", filepath.Join(dataDir, "anteup.db")),
		ElasticEnabled:     getEnvBool("ELASTICSEARCH_ENABLED", false),
		ElasticURL:         getEnvWithDefault("ELASTICSEARCH_URL", "http://localhost:9200"),
		ElasticUsername:    os.Getenv("ELASTICSEARCH_USERNAME"),
		ElasticPassword:    os.Getenv("ELASTICSEARCH_PASSWORD"),
		ElasticIndexPrefix: getEnvWithDefault("ELASTICSEARCH_INDEX_PREFIX", "anteup"),
		RetentionDays:      retentionDays,
		DiscordToken:       os.Getenv("DISCORD_TOKEN"),
		DiscordChannelID:   os.Getenv("DISCORD_CHANNEL_ID"),
		Seed:               seed,
		SimRuns:            simRuns,
		DataDir:            dataDir,
		Environment:        getEnvWithDefault("ENVIRONMENT", "development"),
		LogLevel:           getEnvWithDefault("LOG_LEVEL", "INFO"),
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	switch c.StorageBackend {
	case "sqlite", "memory":
	default:
		return fmt.Errorf("STORAGE_BACKEND must be sqlite or memory, got %q", c.StorageBackend)
	}
	if c.ElasticEnabled && c.ElasticURL == "" {
		return fmt.Errorf("ELASTICSEARCH_URL is required when ELASTICSEARCH_ENABLED is true")
	}
	if c.RetentionDays <= 0 {
		return fmt.Errorf("RETENTION_DAYS must be positive, got %d", c.RetentionDays)
	}
	if c.DiscordToken != "" && c.DiscordChannelID == "" {
		return fmt.Errorf("DISCORD_CHANNEL_ID is required when DISCORD_TOKEN is set")
	}
	if c.SimRuns <= 0 {
		return fmt.Errorf("SIM_RUNS must be positive, got %d", c.SimRuns)
	}
	return nil
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// NotificationsEnabled returns true when a Discord token is configured
func (c *Config) NotificationsEnabled() bool {
	return c.DiscordToken != ""
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns environment variable parsed as a bool or default if unset or invalid
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// getEnvInt64 returns environment variable parsed as an int64 or default if not set
func getEnvInt64(key string, defaultValue int64) (int64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

// getEnvInt returns environment variable parsed as an int or default if not set
func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}
