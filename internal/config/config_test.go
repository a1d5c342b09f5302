package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mosaiclabs/mosaic-backend/internal/platform/logger"
)

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return log
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", testLogger(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Database.Host != "localhost" || cfg.Database.Port != "5432" {
		t.Fatalf("unexpected defaults: %+v", cfg.Database)
	}
	if cfg.Database.DSN() != "postgres://postgres:@localhost:5432/mosaic?sslmode=disable" {
		t.Fatalf("DSN: got %q", cfg.Database.DSN())
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("mode: production\ndatabase:\n  host: db.internal\n  name: mosaic_prod\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv("POSTGRES_HOST", "db.override")

	cfg, err := Load(path, testLogger(t))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != "production" {
		t.Fatalf("mode: got %q", cfg.Mode)
	}
	if cfg.Database.Name != "mosaic_prod" {
		t.Fatalf("name: got %q", cfg.Database.Name)
	}
	if cfg.Database.Host != "db.override" {
		t.Fatalf("env override lost: got %q", cfg.Database.Host)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), testLogger(t)); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
