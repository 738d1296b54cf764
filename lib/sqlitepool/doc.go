// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

// Package sqlitepool opens a small pool of SQLite connections with the
// pragmas the mission explorer expects from its local stores.
//
// It wraps zombiezen.com/go/sqlite's sqlitex.Pool. Callers [Pool.Take]
// a connection, do their work, and [Pool.Put] it back, or use
// [Pool.With] to do both. Connections are not safe for concurrent use.
//
// # Pragmas
//
// Every connection runs:
//
//   - journal_mode=WAL so a second explorer process reading the same
//     favorites file is not blocked by a writer.
//   - synchronous=NORMAL: a favorite toggled just before a power loss
//     may be lost; a process crash never loses one.
//   - busy_timeout=5000 to wait out a concurrent writer.
//   - temp_store=MEMORY.
//
// A [Config.Schema] script, when set, runs after the pragmas on every
// new connection. It must be idempotent (CREATE TABLE IF NOT EXISTS).
//
// # Usage
//
//	pool, err := sqlitepool.Open(sqlitepool.Config{
//	    Path:   filepath.Join(stateDir, "favorites.db"),
//	    Schema: `CREATE TABLE IF NOT EXISTS kv (key TEXT PRIMARY KEY, value BLOB NOT NULL);`,
//	    Logger: logger,
//	})
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	err = pool.With(ctx, func(conn *sqlite.Conn) error {
//	    return sqlitex.Execute(conn, "SELECT value FROM kv WHERE key = ?", ...)
//	})
package sqlitepool
