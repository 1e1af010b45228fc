package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"runtime"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the defaults the command line tools start from.
type Config struct {
	Algorithm string       // bfs or astar
	Workers   int          // boards solved concurrently
	LogLevel  logrus.Level // minimum level written to stderr
	Overlay   string       // auto, on or off
	VizAddr   string       // listen address of the step visualizer
}

// Load reads an optional .env file from the working directory and then the
// GRIDSEARCH_* environment variables. Unset variables fall back to defaults;
// malformed ones are reported as errors.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped.
func LoadFiles(files ...string) (Config, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", file, err)
		}
	}

	workers, err := getEnvAsIntWithDefault("GRIDSEARCH_WORKERS", runtime.NumCPU())
	if err != nil {
		return Config{}, err
	}
	if workers <= 0 {
		return Config{}, fmt.Errorf("GRIDSEARCH_WORKERS must be positive, got %d", workers)
	}

	level, err := logrus.ParseLevel(getEnvWithDefault("GRIDSEARCH_LOG_LEVEL", "warning"))
	if err != nil {
		return Config{}, fmt.Errorf("GRIDSEARCH_LOG_LEVEL: %w", err)
	}

	return Config{
		Algorithm: getEnvWithDefault("GRIDSEARCH_ALGORITHM", "astar"),
		Workers:   workers,
		LogLevel:  level,
		Overlay:   getEnvWithDefault("GRIDSEARCH_OVERLAY", "auto"),
		VizAddr:   getEnvWithDefault("GRIDSEARCH_VIZ_ADDR", ":8080"),
	}, nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault is getEnvWithDefault for integers.
func getEnvAsIntWithDefault(key string, defaultValue int) (int, error) {
	valueStr, exists := os.LookupEnv(key)
	if !exists || valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return value, nil
}
