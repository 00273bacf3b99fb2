package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Config represents the biip configuration.
type Config struct {
	// DisabledCategories lists detector categories to skip entirely.
	DisabledCategories []string `json:"disabledCategories,omitempty"`
	// Tokens maps a category name to a replacement token override. Each
	// category maps to exactly one token per run.
	Tokens map[string]string `json:"tokens,omitempty"`
	// MaxFileBytes is the size ceiling for file arguments; larger files
	// are skipped with a warning.
	MaxFileBytes int `json:"maxFileBytes"`
	// Workers bounds the number of files processed in parallel. Zero
	// means one worker per CPU.
	Workers int `json:"workers"`
	// NoDotenv disables harvesting secret literals from a .env file in
	// the working directory.
	NoDotenv bool `json:"noDotenv"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		MaxFileBytes: 10 << 20,
		Workers:      0,
	}
}

// ConfigDir returns the platform-appropriate config directory for biip.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "biip"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "biip"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "biip"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "biip"), nil
	default:
		return filepath.Join(home, ".config", "biip"), nil
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

// LoadFile loads config from the config file. Returns zero Config and nil
// error if the file doesn't exist.
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

// Load builds the effective config by merging: defaults <- file <- env <-
// overrides. The overrides map comes from CLI flags (only non-zero values
// should be set).
//
// Environment overrides use the BIIPCFG_ prefix, not BIIP_; the BIIP_
// namespace belongs to custom redaction patterns and must not double as
// configuration.
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
	if len(src.DisabledCategories) > 0 {
		dst.DisabledCategories = src.DisabledCategories
	}
	if len(src.Tokens) > 0 {
		dst.Tokens = src.Tokens
	}
	if src.MaxFileBytes > 0 {
		dst.MaxFileBytes = src.MaxFileBytes
	}
	if src.Workers > 0 {
		dst.Workers = src.Workers
	}
	dst.NoDotenv = dst.NoDotenv || src.NoDotenv
}

func mergeEnv(cfg *Config) {
	if v := os.Getenv("BIIPCFG_MAX_FILE_BYTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxFileBytes = n
		}
	}
	if v := os.Getenv("BIIPCFG_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("BIIPCFG_DISABLED"); v != "" {
		cfg.DisabledCategories = splitList(v)
	}
	if v := os.Getenv("BIIPCFG_NO_DOTENV"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoDotenv = b
		}
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["maxFileBytes"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxFileBytes = n
		}
	}
	if v, ok := overrides["workers"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v, ok := overrides["disabled"]; ok && v != "" {
		cfg.DisabledCategories = splitList(v)
	}
	if v, ok := overrides["noDotenv"]; ok && v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.NoDotenv = b
		}
	}
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}

// SetField sets a single config field by key name. Returns error if key is
// unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "maxFileBytes":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("maxFileBytes must be an integer: %w", err)
		}
		cfg.MaxFileBytes = n
	case "workers":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("workers must be an integer: %w", err)
		}
		cfg.Workers = n
	case "disabledCategories":
		cfg.DisabledCategories = splitList(value)
	case "noDotenv":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("noDotenv must be a boolean: %w", err)
		}
		cfg.NoDotenv = b
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
