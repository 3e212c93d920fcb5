// Package config centralises configuration parsing for the fitness
// assistant.
package config

import (
	"os"
	"path/filepath"
)

// Config captures runtime configuration, read from the environment (with
// .env support handled in main).
type Config struct {
	HTTPAddress  string
	GarminDBPath string // directory holding the GarminDB sqlite files
	GarminDBCLI  string // garmindb_cli executable for resyncs
	GeminiAPIKey string
	GeminiModel  string
	SyncEnabled  bool
	SyncSchedule string // cron spec for the auto-resync
	Env          string
}

// Load reads environment variables into Config, applying defaults for
// local use.
func Load() Config {
	return Config{
		HTTPAddress:  getEnv("HTTP_ADDRESS", ":8888"),
		GarminDBPath: getEnv("GARMINDB_PATH", defaultGarminDBPath()),
		GarminDBCLI:  getEnv("GARMINDB_CLI", "garmindb_cli.py"),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		SyncEnabled:  getEnv("SYNC_ENABLED", "true") == "true",
		SyncSchedule: getEnv("SYNC_SCHEDULE", "@hourly"),
		Env:          getEnv("APP_ENV", "development"),
	}
}

func defaultGarminDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./GarminDB"
	}
	return filepath.Join(home, "GarminDB")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
