// Package config reads tool settings from the environment. A .env file,
// when present, is loaded by main before anything calls Load.
package config

import (
	"os"
	"runtime"
	"strconv"

	"github.com/quadboy321/CSV-Analyzer/internal/profiler"
)

// Config carries the tunable settings shared by the commands.
type Config struct {
	// DetectBytes is the format-detection sample size.
	DetectBytes int
	// ScanWorkers bounds how many files a scan profiles at once.
	ScanWorkers int
}

// Load builds the configuration from environment variables, falling back
// to defaults.
func Load() *Config {
	return &Config{
		DetectBytes: getEnvIntOrDefault("CSV_ANALYZER_DETECT_BYTES", profiler.DefaultDetectBytes),
		ScanWorkers: getEnvIntOrDefault("CSV_ANALYZER_SCAN_WORKERS", runtime.NumCPU()),
	}
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}
