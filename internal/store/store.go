// Package store persists the planner's state as JSON records in a local
// sqlite database, one logical record per key.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"reflect"

	"gameplan/internal/util"

	_ "github.com/mattn/go-sqlite3"
)

var errLoadTarget = errors.New("load target must be a non-nil pointer")

// KV is the narrow persistence contract the rest of the app depends on.
//
//go:generate mockgen -source=store.go -destination=storemock/mock_kv.go -package=storemock
type KV interface {
	// Load unmarshals the record stored under key into out. On a missing
	// key or an unparseable record it leaves out untouched and returns
	// false, so callers pass their fallback value in and keep it. A decode
	// that fails partway through never leaks partial fields into out.
	Load(ctx context.Context, key string, out any) bool

	// Save marshals value and upserts it under key.
	Save(ctx context.Context, key string, value any) error
}

// Store is the sqlite-backed implementation of KV.
type Store struct {
	db *sql.DB
}

var _ KV = (*Store)(nil)

// Open opens (creating if needed) the record database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &OpError{Op: "open", Key: path, Err: err}
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, &OpError{Op: "open", Key: path, Err: err}
	}
	s := &Store{db: db}
	if err := s.createTables(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) createTables(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`)
	if err != nil {
		return &OpError{Op: "migrate", Key: "records", Err: err}
	}
	return nil
}

func (s *Store) Load(ctx context.Context, key string, out any) bool {
	var raw string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM records WHERE key = ?", key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		util.LogError("store: load "+key, err)
		return false
	}
	if !json.Valid([]byte(raw)) {
		return false
	}
	rv := reflect.ValueOf(out)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		util.LogError("store: load "+key, errLoadTarget)
		return false
	}
	// Decode into a fresh value so a mid-record mismatch cannot leave the
	// caller's fallback half overwritten.
	tmp := reflect.New(rv.Elem().Type())
	if err := json.Unmarshal([]byte(raw), tmp.Interface()); err != nil {
		util.LogError("store: parse "+key, err)
		return false
	}
	rv.Elem().Set(tmp.Elem())
	return true
}

func (s *Store) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &OpError{Op: "save", Key: key, Err: err}
	}
	_, err = s.db.ExecContext(ctx,
		"INSERT INTO records (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, string(raw))
	if err != nil {
		return &OpError{Op: "save", Key: key, Err: err}
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
