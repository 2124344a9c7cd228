package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

// The shipped example config must always load; it is what operators copy
// to config.yaml first.
func TestLoad_ExampleFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", "../../config.example.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("example config failed to load: %v", err)
	}

	if cfg.AppEnv != LocalEnv {
		t.Errorf("expected app_env local, got %s", cfg.AppEnv)
	}
	if cfg.LogLevel != logrus.InfoLevel {
		t.Errorf("expected info log level, got %s", cfg.LogLevel)
	}
	if cfg.HTTP.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.HTTP.Port)
	}
	if cfg.YouTube.RequestTimeout != 10*time.Second {
		t.Errorf("expected 10s youtube timeout, got %s", cfg.YouTube.RequestTimeout)
	}
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "no-such-config.yaml")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected defaults when the file is absent, got %v", err)
	}
	if cfg.Database.Postgres.Port != 5432 || cfg.Database.Redis.Port != 6379 {
		t.Errorf("unexpected default ports: %+v", cfg.Database)
	}
}

func TestLoad_EnvOverridesSecrets(t *testing.T) {
	t.Setenv("CONFIG_PATH", "../../config.example.yaml")
	t.Setenv("POSTGRES_PASSWORD", "s3cret")
	t.Setenv("YOUTUBE_API_KEY", "key-from-env")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Database.Postgres.Password != "s3cret" {
		t.Errorf("expected postgres password override, got %q", cfg.Database.Postgres.Password)
	}
	if cfg.YouTube.APIKey != "key-from-env" {
		t.Errorf("expected youtube key override, got %q", cfg.YouTube.APIKey)
	}
}
