// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"time"

	"gopkg.in/yaml.v3"
)

// EnvironmentVariable names the config file when --config is absent.
const EnvironmentVariable = "MISSIONS_CONFIG"

// Storage backend names. They match the kvstore kinds; the strings are
// repeated here so this package stays dependency-free.
var storageBackends = []string{"memory", "file", "sqlite"}

// Sort keys accepted by ui.default_sort.
var sortKeys = []string{"name_asc", "year_asc", "year_desc"}

// Config is the master configuration for the explorer.
type Config struct {
	// Dataset configures where missions are loaded from.
	Dataset DatasetConfig `yaml:"dataset"`

	// Storage configures where favorites persist.
	Storage StorageConfig `yaml:"storage"`

	// UI configures the browsing surface.
	UI UIConfig `yaml:"ui"`
}

// DatasetConfig configures the mission dataset.
type DatasetConfig struct {
	// Path is the dataset file. The format comes from the extension:
	// .json, .jsonc, .yaml, .yml, or .cbor, optionally followed by .zst
	// or .lz4. Required unless given on the command line.
	Path string `yaml:"path"`

	// Watch reloads the dataset when the file is rewritten.
	// Default: false
	Watch bool `yaml:"watch"`
}

// StorageConfig configures the favorites store.
type StorageConfig struct {
	// Backend is one of memory, file, or sqlite.
	// Default: file
	Backend string `yaml:"backend"`

	// Path is a directory for the file backend and a database file for
	// the sqlite backend. The memory backend ignores it.
	// Default: ${HOME}/.local/share/missions
	Path string `yaml:"path"`

	// FavoritesKey is the key the favorites set is stored under.
	// Default: missions:favorites
	FavoritesKey string `yaml:"favorites_key"`
}

// UIConfig configures the terminal UI.
type UIConfig struct {
	// NoticeDuration is how long transient notices stay visible, as a
	// Go duration string.
	// Default: 2s
	NoticeDuration string `yaml:"notice_duration"`

	// DefaultSort is the initial order: name_asc, year_asc, or
	// year_desc.
	// Default: year_asc
	DefaultSort string `yaml:"default_sort"`
}

// Default returns the built-in configuration. A loaded file is merged
// over it, so omitted fields keep these values.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	return &Config{
		Storage: StorageConfig{
			Backend:      "file",
			Path:         filepath.Join(homeDir, ".local", "share", "missions"),
			FavoritesKey: "missions:favorites",
		},
		UI: UIConfig{
			NoticeDuration: "2s",
			DefaultSort:    "year_asc",
		},
	}
}

// Load loads configuration from the file named by MISSIONS_CONFIG, or
// returns Default when the variable is not set.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvironmentVariable)
	if configPath == "" {
		cfg := Default()
		cfg.expandVariables()
		return cfg, nil
	}
	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()
	return cfg, nil
}

// loadFile loads a single configuration file, merging into the current
// config.
func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// expandVariables expands ${VAR} and ${VAR:-default} patterns in paths.
func (c *Config) expandVariables() {
	homeDir, _ := os.UserHomeDir()
	vars := map[string]string{
		"HOME": homeDir,
	}

	c.Storage.Path = expandVars(c.Storage.Path, vars)
	vars["MISSIONS_DATA"] = c.Storage.Path

	c.Dataset.Path = expandVars(c.Dataset.Path, vars)
}

// varPattern matches ${VAR} and ${VAR:-default}.
var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

func expandVars(s string, vars map[string]string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		// Check provided vars first, then environment.
		if value, ok := vars[name]; ok && value != "" {
			return value
		}
		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// NoticeDuration parses UI.NoticeDuration. Validate reports a bad
// value; this falls back to two seconds so callers that skip
// validation still get a usable duration.
func (c *Config) NoticeDuration() time.Duration {
	duration, err := time.ParseDuration(c.UI.NoticeDuration)
	if err != nil || duration <= 0 {
		return 2 * time.Second
	}
	return duration
}

// Validate checks the configuration for errors. Dataset.Path is not
// checked here because the command line may supply it.
func (c *Config) Validate() error {
	var errs []error

	if !slices.Contains(storageBackends, c.Storage.Backend) {
		errs = append(errs, fmt.Errorf("storage.backend must be one of: %v", storageBackends))
	}
	if c.Storage.Backend != "memory" && c.Storage.Path == "" {
		errs = append(errs, fmt.Errorf("storage.path is required for the %s backend", c.Storage.Backend))
	}
	if c.Storage.FavoritesKey == "" {
		errs = append(errs, fmt.Errorf("storage.favorites_key is required"))
	}

	if duration, err := time.ParseDuration(c.UI.NoticeDuration); err != nil {
		errs = append(errs, fmt.Errorf("ui.notice_duration: %w", err))
	} else if duration <= 0 {
		errs = append(errs, fmt.Errorf("ui.notice_duration must be positive, got %s", c.UI.NoticeDuration))
	}

	if !slices.Contains(sortKeys, c.UI.DefaultSort) {
		errs = append(errs, fmt.Errorf("ui.default_sort must be one of: %v", sortKeys))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// EnsurePaths creates the storage directory if the backend needs one.
func (c *Config) EnsurePaths() error {
	var directory string
	switch c.Storage.Backend {
	case "file":
		directory = c.Storage.Path
	case "sqlite":
		directory = filepath.Dir(c.Storage.Path)
	default:
		return nil
	}
	if directory == "" {
		return nil
	}
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("creating %s: %w", directory, err)
	}
	return nil
}
