// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package kvstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
)

// File stores one file per key in a directory. Writes go to a temp
// file in the same directory and are renamed into place, so a reader
// sees either the old value or the new one.
type File struct {
	directory string
}

// OpenFile creates directory if needed and returns a store rooted
// there.
func OpenFile(directory string) (*File, error) {
	if directory == "" {
		return nil, fmt.Errorf("kvstore: file backend requires a directory")
	}
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return nil, fmt.Errorf("kvstore: creating %s: %w", directory, err)
	}
	return &File{directory: directory}, nil
}

// Path returns the file that holds key.
func (f *File) Path(key string) string {
	return filepath.Join(f.directory, url.PathEscape(key))
}

func (f *File) Get(_ context.Context, key string) ([]byte, bool, error) {
	if err := validateKey(key); err != nil {
		return nil, false, err
	}
	value, err := os.ReadFile(f.Path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kvstore: reading %q: %w", key, err)
	}
	return value, true, nil
}

func (f *File) Set(_ context.Context, key string, value []byte) error {
	if err := validateKey(key); err != nil {
		return err
	}

	temporary, err := os.CreateTemp(f.directory, ".kv-*")
	if err != nil {
		return fmt.Errorf("kvstore: writing %q: %w", key, err)
	}
	temporaryPath := temporary.Name()

	if _, err := temporary.Write(value); err != nil {
		temporary.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("kvstore: writing %q: %w", key, err)
	}
	if err := temporary.Close(); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("kvstore: writing %q: %w", key, err)
	}
	if err := os.Rename(temporaryPath, f.Path(key)); err != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("kvstore: writing %q: %w", key, err)
	}
	return nil
}

func (f *File) Close() error { return nil }
