// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "missions.yaml")
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return configPath
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Backend != "file" {
		t.Errorf("expected backend=file, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.FavoritesKey != "missions:favorites" {
		t.Errorf("expected favorites_key=missions:favorites, got %s", cfg.Storage.FavoritesKey)
	}
	if cfg.UI.DefaultSort != "year_asc" {
		t.Errorf("expected default_sort=year_asc, got %s", cfg.UI.DefaultSort)
	}
	if cfg.NoticeDuration() != 2*time.Second {
		t.Errorf("expected notice duration 2s, got %s", cfg.NoticeDuration())
	}
	if cfg.Dataset.Watch {
		t.Error("expected watch=false by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_WithoutMissionsConfigUsesDefaults(t *testing.T) {
	t.Setenv(EnvironmentVariable, "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Storage.Backend != "file" || cfg.UI.DefaultSort != "year_asc" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoad_WithMissionsConfig(t *testing.T) {
	configPath := writeConfig(t, `
dataset:
  path: /data/missions.json
storage:
  backend: memory
`)
	t.Setenv(EnvironmentVariable, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Dataset.Path != "/data/missions.json" {
		t.Errorf("expected path=/data/missions.json, got %s", cfg.Dataset.Path)
	}
	if cfg.Storage.Backend != "memory" {
		t.Errorf("expected backend=memory, got %s", cfg.Storage.Backend)
	}
}

func TestLoadFile(t *testing.T) {
	configPath := writeConfig(t, `
dataset:
  path: /srv/missions.yaml.zst
  watch: true

storage:
  backend: sqlite
  path: /var/lib/missions/favorites.db
  favorites_key: profile:alice

ui:
  notice_duration: 1500ms
  default_sort: name_asc
`)

	cfg, err := LoadFile(configPath)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}

	if cfg.Dataset.Path != "/srv/missions.yaml.zst" || !cfg.Dataset.Watch {
		t.Errorf("unexpected dataset config: %+v", cfg.Dataset)
	}
	if cfg.Storage.Backend != "sqlite" {
		t.Errorf("expected backend=sqlite, got %s", cfg.Storage.Backend)
	}
	if cfg.Storage.Path != "/var/lib/missions/favorites.db" {
		t.Errorf("expected sqlite path, got %s", cfg.Storage.Path)
	}
	if cfg.Storage.FavoritesKey != "profile:alice" {
		t.Errorf("expected favorites_key=profile:alice, got %s", cfg.Storage.FavoritesKey)
	}
	if cfg.NoticeDuration() != 1500*time.Millisecond {
		t.Errorf("expected notice duration 1.5s, got %s", cfg.NoticeDuration())
	}
	if cfg.UI.DefaultSort != "name_asc" {
		t.Errorf("expected default_sort=name_asc, got %s", cfg.UI.DefaultSort)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate failed: %v", err)
	}
}

func TestLoadFile_PartialKeepsDefaults(t *testing.T) {
	cfg, err := LoadFile(writeConfig(t, "ui:\n  default_sort: year_desc\n"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.UI.DefaultSort != "year_desc" {
		t.Errorf("expected default_sort=year_desc, got %s", cfg.UI.DefaultSort)
	}
	if cfg.UI.NoticeDuration != "2s" || cfg.Storage.Backend != "file" {
		t.Errorf("omitted fields should keep defaults, got %+v", cfg)
	}
}

func TestLoadFile_Errors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}

	_, err := LoadFile(writeConfig(t, "storage: [not, a, mapping]\n"))
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("error should name the parse step, got %q", err)
	}
}

func TestLoadFile_ExpandsPaths(t *testing.T) {
	t.Setenv("MISSIONS_TEST_ROOT", "/env/root")

	cfg, err := LoadFile(writeConfig(t, `
dataset:
  path: ${MISSIONS_DATA}/missions.json
storage:
  path: ${MISSIONS_TEST_ROOT}/state
`))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Storage.Path != "/env/root/state" {
		t.Errorf("expected storage path /env/root/state, got %s", cfg.Storage.Path)
	}
	if cfg.Dataset.Path != "/env/root/state/missions.json" {
		t.Errorf("expected dataset path under storage, got %s", cfg.Dataset.Path)
	}
}

func TestExpandVars(t *testing.T) {
	tests := []struct {
		input    string
		vars     map[string]string
		expected string
	}{
		{
			input:    "${HOME}/missions",
			vars:     map[string]string{"HOME": "/home/user"},
			expected: "/home/user/missions",
		},
		{
			input:    "${MISSIONS_TEST_MISSING:-default}",
			vars:     map[string]string{},
			expected: "default",
		},
		{
			input:    "${PRESENT:-default}",
			vars:     map[string]string{"PRESENT": "value"},
			expected: "value",
		},
		{
			input:    "${A}/${B}",
			vars:     map[string]string{"A": "first", "B": "second"},
			expected: "first/second",
		},
		{
			input:    "no variables here",
			vars:     map[string]string{},
			expected: "no variables here",
		},
	}

	for _, tt := range tests {
		result := expandVars(tt.input, tt.vars)
		if result != tt.expected {
			t.Errorf("expandVars(%q) = %q, want %q", tt.input, result, tt.expected)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name: "unknown backend",
			modify: func(c *Config) {
				c.Storage.Backend = "redis"
			},
			wantErr: true,
		},
		{
			name: "file backend without path",
			modify: func(c *Config) {
				c.Storage.Path = ""
			},
			wantErr: true,
		},
		{
			name: "memory backend without path",
			modify: func(c *Config) {
				c.Storage.Backend = "memory"
				c.Storage.Path = ""
			},
			wantErr: false,
		},
		{
			name: "empty favorites key",
			modify: func(c *Config) {
				c.Storage.FavoritesKey = ""
			},
			wantErr: true,
		},
		{
			name: "bad notice duration",
			modify: func(c *Config) {
				c.UI.NoticeDuration = "soon"
			},
			wantErr: true,
		},
		{
			name: "negative notice duration",
			modify: func(c *Config) {
				c.UI.NoticeDuration = "-1s"
			},
			wantErr: true,
		},
		{
			name: "unknown sort",
			modify: func(c *Config) {
				c.UI.DefaultSort = "cost_asc"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Storage.Backend = "redis"
	cfg.UI.DefaultSort = "random"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"storage.backend", "ui.default_sort"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err, want)
		}
	}
}

func TestNoticeDurationFallback(t *testing.T) {
	cfg := Default()
	cfg.UI.NoticeDuration = "soon"
	if cfg.NoticeDuration() != 2*time.Second {
		t.Errorf("expected fallback of 2s, got %s", cfg.NoticeDuration())
	}
}

func TestEnsurePaths(t *testing.T) {
	tmpDir := t.TempDir()

	cfg := Default()
	cfg.Storage.Path = filepath.Join(tmpDir, "data", "favorites")
	if err := cfg.EnsurePaths(); err != nil {
		t.Fatalf("EnsurePaths failed: %v", err)
	}
	if info, err := os.Stat(cfg.Storage.Path); err != nil || !info.IsDir() {
		t.Errorf("file backend directory not created: %v", err)
	}

	cfg.Storage.Backend = "sqlite"
	cfg.Storage.Path = filepath.Join(tmpDir, "db", "favorites.db")
	if err := cfg.EnsurePaths(); err != nil {
		t.Fatalf("EnsurePaths failed: %v", err)
	}
	if info, err := os.Stat(filepath.Join(tmpDir, "db")); err != nil || !info.IsDir() {
		t.Errorf("sqlite parent directory not created: %v", err)
	}
	if _, err := os.Stat(cfg.Storage.Path); !os.IsNotExist(err) {
		t.Error("EnsurePaths should not create the database file itself")
	}
}
