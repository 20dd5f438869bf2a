package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"

	"stockledger/internal/domain"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store implements repository.Repository using SQLite.
type Store struct {
	db *sql.DB
}

// New opens the database at path, creating the file and its parent
// directory if absent, and bootstraps the schema. Bootstrap is idempotent:
// re-running against an already-initialized store neither fails nor
// duplicates schema objects.
func New(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." && dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One operation runs at a time, and in-memory stores must not fan out
	// across pooled connections.
	db.SetMaxOpenConns(1)

	store := &Store{db: db}
	if err := store.bootstrap(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return store, nil
}

func (s *Store) bootstrap() error {
	_, err := s.db.Exec(schemaSQL)
	return err
}

// withTx is the sole primitive for data access. It acquires a dedicated
// connection, enables foreign-key enforcement on it, and runs fn inside a
// transaction that commits only when fn returns nil; any failure rolls
// back every statement executed within the scope and propagates unchanged.
// The connection is released on every exit path. Nesting is not supported:
// callers needing multi-step atomicity perform all steps inside one fn.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	conn, err := s.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("failed to acquire connection: %w", err)
	}
	defer conn.Close()

	// SQLite ignores this pragma once a transaction is active, so it must
	// run before BeginTx.
	if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// LoadFixture applies a batch of pre-authored statements from path against
// the bootstrapped schema, atomically. Any failure is reported as a
// *domain.FixtureError and leaves the store untouched.
func (s *Store) LoadFixture(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &domain.FixtureError{Path: path, Err: err}
	}

	err = s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, string(raw))
		return err
	})
	if err != nil {
		return &domain.FixtureError{Path: path, Err: err}
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
