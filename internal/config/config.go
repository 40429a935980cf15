package config

import (
	"os"
	"strconv"
)

const (
	defaultDatabasePath = "data/pantry.db"
	defaultCatalogPath  = "data/recipes.json"
	defaultLogLevel     = "info"
	defaultPlanningDays = 3
	defaultTopN         = 5
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath string
	CatalogPath  string
	LogLevel     string
	PlanningDays int
	TopN         int
}

// NewFromEnv creates a Config from environment variables. Every knob has a
// default, so missing variables never fail; malformed numbers fall back to
// their defaults too.
func NewFromEnv() *Config {
	return &Config{
		DatabasePath: envString("PANTRY_DB_PATH", defaultDatabasePath),
		CatalogPath:  envString("PANTRY_CATALOG_PATH", defaultCatalogPath),
		LogLevel:     envString("PANTRY_LOG_LEVEL", defaultLogLevel),
		PlanningDays: envInt("PANTRY_PLANNING_DAYS", defaultPlanningDays),
		TopN:         envInt("PANTRY_TOP_N", defaultTopN),
	}
}

func envString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
