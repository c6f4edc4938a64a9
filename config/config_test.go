package config

import (
	"log/slog"
	"runtime"
	"strings"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"RIDEBUS_WORKERS", "RIDEBUS_LOG_LEVEL", "RIDEBUS_PRACTICE", "RIDEBUS_SEED", "RIDEBUS_PRECISION"} {
		t.Setenv(key, "")
	}
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != runtime.NumCPU() || cfg.LogLevel != "info" || cfg.Practice || cfg.Precision != 4 {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("RIDEBUS_WORKERS", "3")
	t.Setenv("RIDEBUS_LOG_LEVEL", "debug")
	t.Setenv("RIDEBUS_PRACTICE", "true")
	t.Setenv("RIDEBUS_SEED", "abc")
	t.Setenv("RIDEBUS_PRECISION", "2")
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Workers != 3 || !cfg.Practice || cfg.Seed != "abc" || cfg.Precision != 2 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	level, err := cfg.Level()
	if err != nil {
		t.Fatal(err)
	}
	if level != slog.LevelDebug {
		t.Fatalf("expected debug, got %s", level)
	}
}

func TestValidate(t *testing.T) {
	cases := []Config{
		{Workers: 0, LogLevel: "info", Precision: 4},
		{Workers: 1, LogLevel: "loud", Precision: 4},
		{Workers: 1, LogLevel: "info", Precision: -1},
	}
	for _, c := range cases {
		if err := c.Validate(); err == nil {
			t.Fatalf("expected error for %+v", c)
		}
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	t.Setenv("RIDEBUS_WORKERS", "abc")
	t.Setenv("RIDEBUS_LOG_LEVEL", "info")
	t.Setenv("RIDEBUS_PRACTICE", "yes please")
	t.Setenv("RIDEBUS_SEED", "")
	t.Setenv("RIDEBUS_PRECISION", "x")
	_, err := Load()
	if err == nil {
		t.Fatal("expected malformed values to be rejected")
	}
	for _, key := range []string{"RIDEBUS_WORKERS", "RIDEBUS_PRACTICE", "RIDEBUS_PRECISION"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected %s in %q", key, err)
		}
	}
}
