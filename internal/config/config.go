// Package config loads gh-ghq-cd configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (GH_GHQ_CD_*)
//  2. Config file
//  3. Built-in defaults
//
// Command-line flags are applied on top by the caller.
//
// Config file search order:
//  1. $XDG_CONFIG_HOME/gh-ghq-cd/config.yaml
//  2. ~/.config/gh-ghq-cd/config.yaml
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"
)

// Accepted values of the enumerated settings.
var (
	Finders      = []string{"builtin", "fzf"}
	Multiplexers = []string{"auto", "tmux", "zellij", "none"}
	Themes       = []string{"dark", "light"}
)

// Config holds all gh-ghq-cd configuration.
type Config struct {
	// Selection
	Finder string `yaml:"finder"` // "builtin" (default) or "fzf"
	Theme  string `yaml:"theme"`  // "dark" (default) or "light"

	// Multiplexer: "auto" (default), "tmux", "zellij", "none"
	Mux string `yaml:"mux"`

	// Shell started when opening in the current pane; empty means $SHELL.
	Shell string `yaml:"shell"`

	// External tools
	GhqPath string `yaml:"ghq_path"`
	FzfPath string `yaml:"fzf_path"`

	LogLevel string `yaml:"log_level"`

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs, e.g. "Authorization=Basic abc123"

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		Finder:   "builtin",
		Theme:    "dark",
		Mux:      "auto",
		GhqPath:  "ghq",
		FzfPath:  "fzf",
		LogLevel: "warn",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values. The result is not
// validated; callers apply their own overrides first and then call Validate.
func Load() (*Config, error) {
	cfg := Defaults()

	// Try to load config file
	if path, data, err := findConfigFile(); err == nil {
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
		cfg.ConfigFile = path
		mergeFile(cfg, &fileCfg)
	}

	// Environment variables override everything
	mergeEnv(cfg)

	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains(Finders, c.Finder) {
		return fmt.Errorf("invalid finder %q (supported: %v)", c.Finder, Finders)
	}
	if !slices.Contains(Multiplexers, c.Mux) {
		return fmt.Errorf("invalid mux %q (supported: %v)", c.Mux, Multiplexers)
	}
	if !slices.Contains(Themes, c.Theme) {
		return fmt.Errorf("invalid theme %q (supported: %v)", c.Theme, Themes)
	}
	return nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	var candidates []string
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		candidates = append(candidates, filepath.Join(dir, "gh-ghq-cd", "config.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "gh-ghq-cd", "config.yaml"))
	}

	for _, path := range candidates {
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}
	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.Finder != "" {
		cfg.Finder = file.Finder
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.Mux != "" {
		cfg.Mux = file.Mux
	}
	if file.Shell != "" {
		cfg.Shell = file.Shell
	}
	if file.GhqPath != "" {
		cfg.GhqPath = file.GhqPath
	}
	if file.FzfPath != "" {
		cfg.FzfPath = file.FzfPath
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) {
	if v := os.Getenv("GH_GHQ_CD_FINDER"); v != "" {
		cfg.Finder = v
	}
	if v := os.Getenv("GH_GHQ_CD_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("GH_GHQ_CD_MUX"); v != "" {
		cfg.Mux = v
	}
	if v := os.Getenv("GH_GHQ_CD_SHELL"); v != "" {
		cfg.Shell = v
	}
	if v := os.Getenv("GH_GHQ_CD_GHQ_PATH"); v != "" {
		cfg.GhqPath = v
	}
	if v := os.Getenv("GH_GHQ_CD_FZF_PATH"); v != "" {
		cfg.FzfPath = v
	}
	if v := os.Getenv("GH_GHQ_CD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
	if v := os.Getenv("GH_GHQ_CD_OTEL_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("GH_GHQ_CD_OTEL_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
}
