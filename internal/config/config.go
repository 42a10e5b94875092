package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

// Config represents the promptdeck configuration.
type Config struct {
	Manifest    string `json:"manifest"`
	ContentDir  string `json:"contentDir"`
	Format      string `json:"format"`
	TokenBudget int    `json:"tokenBudget,omitempty"`
	MaxModules  int    `json:"maxModules,omitempty"`
	LogLevel    string `json:"logLevel"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Manifest:   "modules.yaml",
		ContentDir: "modules",
		Format:     "text",
		LogLevel:   "warn",
	}
}

// ConfigDir returns the platform-appropriate config directory for promptdeck.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "promptdeck"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "promptdeck"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "promptdeck"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "promptdeck"), nil
	default:
		return filepath.Join(home, ".config", "promptdeck"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// LoadFile loads config from the config file. Returns zero Config and nil error if file doesn't exist.
func LoadFile() (Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return Config{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.Manifest != "" {
		dst.Manifest = src.Manifest
	}
	if src.ContentDir != "" {
		dst.ContentDir = src.ContentDir
	}
	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.TokenBudget > 0 {
		dst.TokenBudget = src.TokenBudget
	}
	if src.MaxModules > 0 {
		dst.MaxModules = src.MaxModules
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("PROMPTDECK_MANIFEST"); v != "" {
		cfg.Manifest = v
	}
	if v := os.Getenv("PROMPTDECK_CONTENT_DIR"); v != "" {
		cfg.ContentDir = v
	}
	if v := os.Getenv("PROMPTDECK_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("PROMPTDECK_TOKEN_BUDGET"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TokenBudget = n
		}
	}
	if v := os.Getenv("PROMPTDECK_MAX_MODULES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxModules = n
		}
	}
	if v := os.Getenv("PROMPTDECK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["manifest"]; ok && v != "" {
		cfg.Manifest = v
	}
	if v, ok := overrides["contentDir"]; ok && v != "" {
		cfg.ContentDir = v
	}
	if v, ok := overrides["format"]; ok && v != "" {
		cfg.Format = v
	}
	if v, ok := overrides["tokenBudget"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.TokenBudget = n
		}
	}
	if v, ok := overrides["maxModules"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxModules = n
		}
	}
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "manifest":
		cfg.Manifest = value
	case "contentDir":
		cfg.ContentDir = value
	case "format":
		cfg.Format = value
	case "tokenBudget":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("tokenBudget must be an integer: %w", err)
		}
		cfg.TokenBudget = n
	case "maxModules":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxModules must be an integer: %w", err)
		}
		cfg.MaxModules = n
	case "logLevel":
		cfg.LogLevel = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
