// Copyright 2026 The Orbitdeck Missions Authors
// SPDX-License-Identifier: Apache-2.0

package sqlitepool_test

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/orbitdeck/missions/lib/sqlitepool"
)

const testSchema = `CREATE TABLE IF NOT EXISTS numbers (value INTEGER NOT NULL);`

func TestPragmasApplied(t *testing.T) {
	pool := openTestPool(t, "")

	err := pool.With(context.Background(), func(conn *sqlite.Conn) error {
		var journalMode string
		err := sqlitex.Execute(conn, "PRAGMA journal_mode", &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				journalMode = stmt.ColumnText(0)
				return nil
			},
		})
		if err != nil {
			return err
		}
		if journalMode != "wal" {
			t.Errorf("journal_mode = %q, expected wal", journalMode)
		}

		var synchronous int
		err = sqlitex.Execute(conn, "PRAGMA synchronous", &sqlitex.ExecOptions{
			ResultFunc: func(stmt *sqlite.Stmt) error {
				synchronous = stmt.ColumnInt(0)
				return nil
			},
		})
		if err != nil {
			return err
		}
		if synchronous != 1 {
			t.Errorf("synchronous = %d, expected 1 (NORMAL)", synchronous)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("With: %v", err)
	}
}

func TestSchemaRunsOnEveryConnection(t *testing.T) {
	pool := openTestPool(t, testSchema)

	err := pool.With(context.Background(), func(conn *sqlite.Conn) error {
		return sqlitex.ExecuteScript(conn, `INSERT INTO numbers (value) VALUES (1), (2), (3), (4), (5);`, nil)
	})
	if err != nil {
		t.Fatalf("insert: %v", err)
	}

	const goroutineCount = 4
	var waitGroup sync.WaitGroup
	errors := make(chan error, goroutineCount)

	for range goroutineCount {
		waitGroup.Add(1)
		go func() {
			defer waitGroup.Done()
			err := pool.With(context.Background(), func(conn *sqlite.Conn) error {
				var sum int64
				err := sqlitex.Execute(conn, "SELECT value FROM numbers", &sqlitex.ExecOptions{
					ResultFunc: func(stmt *sqlite.Stmt) error {
						sum += stmt.ColumnInt64(0)
						return nil
					},
				})
				if err != nil {
					return err
				}
				if sum != 15 {
					return fmt.Errorf("sum = %d, expected 15", sum)
				}
				return nil
			})
			if err != nil {
				errors <- err
			}
		}()
	}

	waitGroup.Wait()
	close(errors)
	for err := range errors {
		t.Error(err)
	}
}

func TestBadSchemaFailsTake(t *testing.T) {
	pool := openTestPool(t, "CREATE TABLE")

	if _, err := pool.Take(context.Background()); err == nil {
		t.Fatal("expected Take to fail with a broken schema")
	}
}

func TestEmptyPathRejected(t *testing.T) {
	if _, err := sqlitepool.Open(sqlitepool.Config{}); err == nil {
		t.Fatal("expected error for empty Path")
	}
}

func TestContextCancellation(t *testing.T) {
	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:     filepath.Join(t.TempDir(), "cancel.db"),
		PoolSize: 1,
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer pool.Close()

	conn, err := pool.Take(context.Background())
	if err != nil {
		t.Fatalf("Take: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := pool.Take(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}

	pool.Put(conn)
}

func openTestPool(t *testing.T, schema string) *sqlitepool.Pool {
	t.Helper()

	pool, err := sqlitepool.Open(sqlitepool.Config{
		Path:     filepath.Join(t.TempDir(), "test.db"),
		PoolSize: 4,
		Schema:   schema,
	})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() {
		if err := pool.Close(); err != nil {
			t.Errorf("Close: %v", err)
		}
	})
	return pool
}
