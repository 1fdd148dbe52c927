package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("theme = %q", cfg.Appearance.Theme)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
	if cfg.General.DBPath != "" {
		t.Fatalf("db path should default empty, got %q", cfg.General.DBPath)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Log.Level != "warn" {
		t.Fatalf("log level = %q, want default", cfg.Log.Level)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("KAKEIBO_DB", "/tmp/override.db")
	t.Setenv("KAKEIBO_FX_URL", "http://localhost:9999/v1")
	t.Setenv("KAKEIBO_LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.General.DBPath != "/tmp/override.db" {
		t.Fatalf("db path = %q", cfg.General.DBPath)
	}
	if cfg.FX.BaseURL != "http://localhost:9999/v1" {
		t.Fatalf("fx url = %q", cfg.FX.BaseURL)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level = %q", cfg.Log.Level)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfg := DefaultConfig()
	cfg.General.DBPath = "/data/kakeibo.db"
	cfg.FX.BaseURL = "http://fx.example/v1"
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !Exists() {
		t.Fatal("config file should exist after Save")
	}
	if want := filepath.Join(dir, "kakeibo", "config.toml"); Path() != want {
		t.Fatalf("Path = %q, want %q", Path(), want)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.General.DBPath != "/data/kakeibo.db" {
		t.Fatalf("db path = %q", got.General.DBPath)
	}
	if got.FX.BaseURL != "http://fx.example/v1" {
		t.Fatalf("fx url = %q", got.FX.BaseURL)
	}
}
