package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the settings of the solver front end.
type Config struct {
	Workers   int    // goroutines solving the first decision
	LogLevel  string // debug, info, warn or error
	Practice  bool   // deal cards from a shuffled shoe instead of typing them
	Seed      string // makes practice shoes reproducible when set
	Precision int    // decimals shown for expected values
}

// Load reads configuration from environment variables, after loading a .env
// file from the working directory if there is one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var errs []error
	cfg := &Config{
		Workers:   getEnvAsInt("RIDEBUS_WORKERS", runtime.NumCPU(), &errs),
		LogLevel:  getEnv("RIDEBUS_LOG_LEVEL", "info"),
		Practice:  getEnvAsBool("RIDEBUS_PRACTICE", false, &errs),
		Seed:      getEnv("RIDEBUS_SEED", ""),
		Precision: getEnvAsInt("RIDEBUS_PRECISION", 4, &errs),
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	if c.Workers < 1 {
		return fmt.Errorf("RIDEBUS_WORKERS must be at least 1, got %d", c.Workers)
	}
	if c.Precision < 0 || c.Precision > 12 {
		return fmt.Errorf("RIDEBUS_PRECISION must be within 0-12, got %d", c.Precision)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level converts LogLevel to a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, fmt.Errorf("RIDEBUS_LOG_LEVEL: %w", err)
	}
	return level, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt returns defaultValue when key is unset. A malformed value is
// appended to errs instead of being replaced by the default.
func getEnvAsInt(key string, defaultValue int, errs *[]error) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be an integer, got %q", key, value))
		return defaultValue
	}
	return intVal
}

func getEnvAsBool(key string, defaultValue bool, errs *[]error) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s must be a boolean, got %q", key, value))
		return defaultValue
	}
	return boolVal
}
