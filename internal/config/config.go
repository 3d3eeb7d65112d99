package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Progress modes
const (
	ProgressAuto   = "auto"
	ProgressAlways = "always"
	ProgressNever  = "never"
)

// Config holds the cmdbatch settings
type Config struct {
	Directory string `toml:"directory"`
	Shell     string `toml:"shell"`
	Progress  string `toml:"progress"`
}

// DefaultDirectory is the output directory used when nothing else is configured
const DefaultDirectory = "results"

// Default returns the default configuration
func Default() Config {
	return Config{
		Directory: DefaultDirectory,
		Shell:     "sh",
		Progress:  ProgressAuto,
	}
}

type ctxKey struct{}

// WithConfig attaches the config to the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext returns the config stored in ctx, or nil.
func FromContext(ctx context.Context) *Config {
	cfg, _ := ctx.Value(ctxKey{}).(*Config)
	return cfg
}

// expandPath expands ~ to the user's home directory
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	if len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[2:]), nil
	}
	if path == "~" {
		return os.UserHomeDir()
	}
	return path, nil
}

// Path returns the path to the config file.
// CMDBATCH_CONFIG overrides the default location.
func Path() (string, error) {
	if p := os.Getenv("CMDBATCH_CONFIG"); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "cmdbatch", "config.toml"), nil
}

// Load reads the config file at Path().
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return loadDefaults()
	}
	return LoadFrom(path)
}

// LoadFrom reads config from path, applying env overrides and validation.
func LoadFrom(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}
	if err == nil {
		if _, err := toml.Decode(string(data), &cfg); err != nil {
			return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Default(), err
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

func loadDefaults() (Config, error) {
	cfg := Default()
	if err := applyEnvOverrides(&cfg); err != nil {
		return Default(), err
	}
	if err := cfg.validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// applyEnvOverrides replaces settings with non-empty CMDBATCH_* variables and
// expands ~ in the directory.
func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("CMDBATCH_DIRECTORY"); v != "" {
		cfg.Directory = v
	}
	if v := os.Getenv("CMDBATCH_SHELL"); v != "" {
		cfg.Shell = v
	}
	if v := os.Getenv("CMDBATCH_PROGRESS"); v != "" {
		cfg.Progress = v
	}

	expanded, err := expandPath(cfg.Directory)
	if err != nil {
		return fmt.Errorf("expand directory: %w", err)
	}
	cfg.Directory = expanded
	return nil
}
