// Package config loads the app-level configuration: database location,
// FX endpoint, appearance, and logging. User finance settings live in the
// database, not here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all kakeibo configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	FX         FXConfig         `toml:"fx"`
	Appearance AppearanceConfig `toml:"appearance"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DBPath string `toml:"db_path,omitempty"`
}

// FXConfig holds exchange-rate source settings.
type FXConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{Theme: "flexoki-dark"},
		Log:        LogConfig{Level: "warn"},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kakeibo")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "kakeibo")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist,
// then applies environment overrides. A .env file in the working
// directory is honored best-effort.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return applyEnv(cfg), nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return applyEnv(cfg), nil
}

// applyEnv layers KAKEIBO_* environment variables over the file config.
func applyEnv(cfg Config) Config {
	_ = godotenv.Load()

	if v := os.Getenv("KAKEIBO_DB"); v != "" {
		cfg.General.DBPath = v
	}
	if v := os.Getenv("KAKEIBO_FX_URL"); v != "" {
		cfg.FX.BaseURL = v
	}
	if v := os.Getenv("KAKEIBO_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return cfg
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}
