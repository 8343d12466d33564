// Package config loads triage settings from a YAML file, environment
// variables and command-line flags, in increasing order of precedence.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/triage/internal/catalog"
	"github.com/abhisek/triage/internal/logging"
)

// LogConfig configures diagnostic logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`

	// Format is text or json.
	Format string `yaml:"format"`

	// File receives log output. Empty means stderr for commands and no
	// logging while the TUI owns the terminal.
	File string `yaml:"file"`
}

// Config holds every user-tunable setting.
type Config struct {
	// DBPath is the result history database. Empty resolves to the XDG
	// data directory.
	DBPath string `yaml:"db_path"`

	// Language selects the catalog text table.
	Language string `yaml:"language"`

	// CatalogPath loads an external catalog instead of the built-in one.
	CatalogPath string `yaml:"catalog"`

	// DefaultAnswer is the value symptom answers reset to on category change.
	DefaultAnswer int `yaml:"default_answer"`

	// History enables recording finished results.
	History bool `yaml:"history"`

	// Welcome shows the disclaimer splash when the TUI opens at home.
	Welcome bool `yaml:"welcome"`

	// KeepResults caps stored results per kind (0 = keep everything).
	KeepResults int `yaml:"keep_results"`

	Log LogConfig `yaml:"log"`
}

// Environment variables read by ApplyEnv.
const (
	EnvDB       = "TRIAGE_DB"
	EnvLanguage = "TRIAGE_LANG"
	EnvCatalog  = "TRIAGE_CATALOG"
	EnvLogLevel = "TRIAGE_LOG_LEVEL"
	EnvHistory  = "TRIAGE_HISTORY"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Language:      string(catalog.DefaultLanguage),
		DefaultAnswer: catalog.ScaleMin,
		History:       true,
		Welcome:       true,
		KeepResults:   0,
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the file at path over the defaults. A missing file yields the
// defaults; a malformed one is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	// Apply non-zero values from the file.
	if fileCfg.DBPath != "" {
		cfg.DBPath = fileCfg.DBPath
	}
	if fileCfg.Language != "" {
		cfg.Language = fileCfg.Language
	}
	if fileCfg.CatalogPath != "" {
		cfg.CatalogPath = fileCfg.CatalogPath
	}
	if fileCfg.DefaultAnswer != 0 {
		cfg.DefaultAnswer = fileCfg.DefaultAnswer
	}
	if fileCfg.KeepResults != 0 {
		cfg.KeepResults = fileCfg.KeepResults
	}
	if fileCfg.Log.Level != "" {
		cfg.Log.Level = fileCfg.Log.Level
	}
	if fileCfg.Log.Format != "" {
		cfg.Log.Format = fileCfg.Log.Format
	}
	if fileCfg.Log.File != "" {
		cfg.Log.File = fileCfg.Log.File
	}

	// A false bool is indistinguishable from an absent one, so check the
	// raw document for the keys.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err == nil {
		if _, ok := raw["history"]; ok {
			cfg.History = fileCfg.History
		}
		if _, ok := raw["welcome"]; ok {
			cfg.Welcome = fileCfg.Welcome
		}
	}

	return cfg, nil
}

// ApplyEnv overrides settings from TRIAGE_* environment variables.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvDB); v != "" {
		c.DBPath = v
	}
	if v := os.Getenv(EnvLanguage); v != "" {
		c.Language = v
	}
	if v := os.Getenv(EnvCatalog); v != "" {
		c.CatalogPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv(EnvHistory); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHistory, err)
		}
		c.History = b
	}
	return nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("language cannot be empty")
	}
	if c.DefaultAnswer < catalog.ScaleMin || c.DefaultAnswer > catalog.ScaleMax {
		return fmt.Errorf("default_answer must be in %d..%d, got %d", catalog.ScaleMin, catalog.ScaleMax, c.DefaultAnswer)
	}
	if c.KeepResults < 0 {
		return fmt.Errorf("keep_results must be >= 0, got %d", c.KeepResults)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return fmt.Errorf("invalid log.format %q, must be one of: text, json", c.Log.Format)
	}
	return nil
}

// DefaultPath resolves the config file path:
// $XDG_CONFIG_HOME/triage/config.yaml, falling back to
// ~/.config/triage/config.yaml.
func DefaultPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "triage", "config.yaml"), nil
}
