// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

// Package kvstore is the durable key-value port the explorer persists
// its favorites through, with memory, file, and SQLite backends.
//
// The port is deliberately narrow: whole-value Get and Set on string
// keys. Callers own serialization. A missing key is not an error; Get
// reports it through its bool result.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Store reads and writes opaque values by key.
type Store interface {
	// Get returns the value for key. found is false when the key has
	// never been set; err is reserved for backend failures.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set replaces the value for key.
	Set(ctx context.Context, key string, value []byte) error
}

// Backend is a Store that holds resources until closed.
type Backend interface {
	Store
	Close() error
}

// Kind names a backend implementation in configuration.
type Kind string

const (
	KindMemory Kind = "memory"
	KindFile   Kind = "file"
	KindSQLite Kind = "sqlite"
)

// Kinds lists the accepted backend names, for validation messages.
var Kinds = []Kind{KindMemory, KindFile, KindSQLite}

// ErrInvalidKey is returned for keys a backend cannot address.
var ErrInvalidKey = errors.New("kvstore: invalid key")

// Open constructs the backend named by kind. path is a directory for
// the file backend and a database file for the SQLite backend; the
// memory backend ignores it.
func Open(kind Kind, path string, logger *slog.Logger) (Backend, error) {
	switch kind {
	case KindMemory:
		return NewMemory(), nil
	case KindFile:
		return OpenFile(path)
	case KindSQLite:
		return OpenSQLite(path, logger)
	default:
		return nil, fmt.Errorf("kvstore: unknown backend %q", kind)
	}
}

// ParseKind validates a backend name.
func ParseKind(name string) (Kind, error) {
	for _, kind := range Kinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	names := make([]string, len(Kinds))
	for i, kind := range Kinds {
		names[i] = string(kind)
	}
	return "", fmt.Errorf("unknown storage backend %q (expected %s)", name, strings.Join(names, ", "))
}

func validateKey(key string) error {
	if key == "" || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
