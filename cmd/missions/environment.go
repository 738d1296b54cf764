// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"

	"github.com/orbitdeck/missions/cmd/missions/cli"
	"github.com/orbitdeck/missions/lib/config"
	"github.com/orbitdeck/missions/lib/explorer"
	"github.com/orbitdeck/missions/lib/kvstore"
	"github.com/orbitdeck/missions/lib/mission"
)

// Environment holds the flags every command shares for locating the
// config, the dataset, and the favorites store. Non-empty flags win
// over the config file.
type Environment struct {
	ConfigPath  string `flag:"config" desc:"config file (default: $MISSIONS_CONFIG, else built-in defaults)"`
	DatasetPath string `flag:"dataset,d" desc:"mission dataset (.json, .jsonc, .yaml, .cbor, optionally .zst or .lz4)"`
	Storage     string `flag:"storage" desc:"favorites backend: memory, file, or sqlite"`
	StoragePath string `flag:"storage-path" desc:"favorites directory (file) or database (sqlite)"`
}

// Config loads the config file and applies the flag overrides.
func (e *Environment) Config() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if e.ConfigPath != "" {
		cfg, err = config.LoadFile(e.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, cli.Validation("%w", err).
			WithHint("Check the file named by --config or $" + config.EnvironmentVariable + ".")
	}

	if e.DatasetPath != "" {
		cfg.Dataset.Path = e.DatasetPath
	}
	if e.Storage != "" {
		cfg.Storage.Backend = e.Storage
	}
	if e.StoragePath != "" {
		cfg.Storage.Path = e.StoragePath
	}

	if err := cfg.Validate(); err != nil {
		return nil, cli.Validation("invalid configuration:\n%w", err)
	}
	if cfg.Dataset.Path == "" {
		return nil, cli.Validation("no dataset configured").
			WithHint("Pass --dataset or set dataset.path in the config file.")
	}
	return cfg, nil
}

// workspace is everything a command needs once the environment is
// resolved.
type workspace struct {
	config    *config.Config
	dataset   *mission.Dataset
	store     kvstore.Backend
	favorites *explorer.Favorites
	logger    *slog.Logger
}

// Open resolves the config, loads the dataset, and opens the favorites
// store. The caller closes the returned workspace.
func (e *Environment) Open(ctx context.Context, logger *slog.Logger) (*workspace, error) {
	cfg, err := e.Config()
	if err != nil {
		return nil, err
	}

	dataset, err := mission.Load(cfg.Dataset.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("dataset %s does not exist", cfg.Dataset.Path).
				WithHint("Pass --dataset with the path to a mission file.")
		}
		return nil, cli.Validation("cannot load missions from %s: %w", cfg.Dataset.Path, err).
			WithHint("The file must hold a JSON, YAML, or CBOR list of missions, or an object with a \"missions\" list.")
	}

	kind, err := kvstore.ParseKind(cfg.Storage.Backend)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	if err := cfg.EnsurePaths(); err != nil {
		return nil, cli.Internal("preparing favorites storage: %w", err)
	}
	store, err := kvstore.Open(kind, cfg.Storage.Path, logger)
	if err != nil {
		return nil, cli.Internal("opening %s favorites store at %s: %w", kind, cfg.Storage.Path, err)
	}

	logger.Debug("workspace opened",
		"dataset", cfg.Dataset.Path,
		"missions", dataset.Len(),
		"storage", kind,
	)

	return &workspace{
		config:    cfg,
		dataset:   dataset,
		store:     store,
		favorites: explorer.LoadFavorites(ctx, store, cfg.Storage.FavoritesKey, logger),
		logger:    logger,
	}, nil
}

// Session starts an explorer session with the configured defaults.
func (w *workspace) Session() *explorer.Session {
	return explorer.NewSession(w.dataset, explorer.SessionConfig{
		Favorites:      w.favorites,
		SortKey:        explorer.ParseSortKey(w.config.UI.DefaultSort),
		NoticeDuration: w.config.NoticeDuration(),
		Logger:         w.logger,
	})
}

func (w *workspace) Close() error {
	return w.store.Close()
}
