package config

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/mmynk/teamrandomizer/internal/importer"
	"github.com/mmynk/teamrandomizer/internal/models"
)

// ErrAddrRequired is returned when TEAMS_ADDR resolves to an empty string.
var ErrAddrRequired = errors.New("TEAMS_ADDR is required")

// Config holds application configuration
type Config struct {
	Addr               string
	LogLevel           string
	StaticPath         string
	MetricsEnabled     bool
	DefaultTeamSize    int
	DefaultTeamCount   int
	MaxImportBytes     int64
	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Addr:               getEnv("TEAMS_ADDR", "127.0.0.1:8080"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		StaticPath:         getEnv("STATIC_PATH", ""), // empty serves the embedded page
		MetricsEnabled:     getEnvAsBool("METRICS_ENABLED", true),
		DefaultTeamSize:    getEnvAsInt("DEFAULT_TEAM_SIZE", models.DefaultTeamSize),
		DefaultTeamCount:   getEnvAsInt("DEFAULT_TEAM_COUNT", models.DefaultTeamCount),
		MaxImportBytes:     int64(getEnvAsInt("MAX_IMPORT_BYTES", importer.DefaultMaxBytes)),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects unusable settings and clamps the policy defaults to 1.
func (c *Config) Validate() error {
	c.Addr = strings.TrimSpace(c.Addr)
	if c.Addr == "" {
		return ErrAddrRequired
	}

	c.DefaultTeamSize = models.ClampParam(c.DefaultTeamSize)
	c.DefaultTeamCount = models.ClampParam(c.DefaultTeamCount)
	if c.MaxImportBytes <= 0 {
		c.MaxImportBytes = importer.DefaultMaxBytes
	}
	if len(c.CORSAllowedOrigins) == 0 {
		c.CORSAllowedOrigins = []string{"*"}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
