// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package explorer

import (
	"context"
	"encoding/json"
	"log/slog"
	"slices"

	"github.com/orbitdeck/missions/lib/kvstore"
)

// DefaultFavoritesKey is the storage key the favorites set lives under.
const DefaultFavoritesKey = "missions:favorites"

// ToggleResult reports which way a favorite toggle went.
type ToggleResult int

const (
	Added ToggleResult = iota
	Removed
)

// Message is the notification text for the toggle.
func (r ToggleResult) Message() string {
	if r == Added {
		return "Added to favorites"
	}
	return "Removed from favorites"
}

// Favorites is the persisted set of favorite mission ids. The
// in-memory set is authoritative: storage is read once at load and
// written in full after every mutation, and storage failures in
// either direction are logged, never returned.
type Favorites struct {
	store  kvstore.Store
	key    string
	logger *slog.Logger
	ids    map[string]struct{}
}

// LoadFavorites reads the set stored under key. A nil store keeps
// favorites in memory only. An empty key uses DefaultFavoritesKey.
// Missing, unreadable, or malformed content (anything but a JSON array)
// yields an empty set; non-string array elements are dropped.
func LoadFavorites(ctx context.Context, store kvstore.Store, key string, logger *slog.Logger) *Favorites {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if key == "" {
		key = DefaultFavoritesKey
	}

	favorites := &Favorites{
		store:  store,
		key:    key,
		logger: logger,
		ids:    make(map[string]struct{}),
	}
	if store == nil {
		return favorites
	}

	raw, found, err := store.Get(ctx, key)
	if err != nil {
		logger.Debug("favorites unreadable, starting empty", "key", key, "error", err)
		return favorites
	}
	if !found || len(raw) == 0 {
		return favorites
	}

	for _, id := range decodeFavorites(raw, logger) {
		favorites.ids[id] = struct{}{}
	}
	return favorites
}

func decodeFavorites(raw []byte, logger *slog.Logger) []string {
	var elements []any
	if err := json.Unmarshal(raw, &elements); err != nil {
		logger.Debug("favorites malformed, starting empty", "error", err)
		return nil
	}
	ids := make([]string, 0, len(elements))
	for _, element := range elements {
		if id, ok := element.(string); ok {
			ids = append(ids, id)
		}
	}
	if dropped := len(elements) - len(ids); dropped > 0 {
		logger.Debug("favorites contained non-string entries", "dropped", dropped)
	}
	return ids
}

// IsFavorite reports whether id is in the set.
func (f *Favorites) IsFavorite(id string) bool {
	_, exists := f.ids[id]
	return exists
}

// Toggle adds id if absent and removes it if present, then persists
// the set.
func (f *Favorites) Toggle(ctx context.Context, id string) ToggleResult {
	result := Added
	if f.IsFavorite(id) {
		delete(f.ids, id)
		result = Removed
	} else {
		f.ids[id] = struct{}{}
	}
	f.persist(ctx)
	return result
}

// IDs returns the favorite ids sorted.
func (f *Favorites) IDs() []string {
	ids := make([]string, 0, len(f.ids))
	for id := range f.ids {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of favorites.
func (f *Favorites) Len() int {
	return len(f.ids)
}

// Key returns the storage key.
func (f *Favorites) Key() string {
	return f.key
}

func (f *Favorites) persist(ctx context.Context) {
	if f.store == nil {
		return
	}
	// Marshal of a []string cannot fail.
	encoded, _ := json.Marshal(f.IDs())
	if err := f.store.Set(ctx, f.key, encoded); err != nil {
		f.logger.Warn("persisting favorites failed", "key", f.key, "error", err)
	}
}
