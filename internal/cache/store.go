// Package cache provides an optional, caller-side result cache for
// worldgen.Generate, keyed by a content fingerprint of the MapConfig.
// It sits entirely outside the pure-function generation contract: a
// caller may skip this package altogether and call worldgen.Generate
// directly. See design doc Section 8.3.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/romxai/world-map-generator/internal/worldgen"
)

// Store wraps a SQLite connection caching generated maps by config
// fingerprint.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite cache database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open cache db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the cache connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	_, err := s.conn.Exec(`
	CREATE TABLE IF NOT EXISTS generated_maps (
		fingerprint TEXT PRIMARY KEY,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		data_json TEXT NOT NULL
	)`)
	return err
}

// Fingerprint derives a stable cache key from a MapConfig by hashing its
// canonical JSON encoding. Two configs with identical field values always
// produce the same fingerprint.
func Fingerprint(cfg worldgen.MapConfig) string {
	encoded, _ := json.Marshal(cfg)
	sum := sha256.Sum256(encoded)
	return fmt.Sprintf("%x", sum)
}

// Get returns the cached map for fingerprint, if present.
func (s *Store) Get(fingerprint string) (*worldgen.MapData, bool, error) {
	var row struct {
		DataJSON string `db:"data_json"`
	}
	err := s.conn.Get(&row, "SELECT data_json FROM generated_maps WHERE fingerprint = ?", fingerprint)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("get cached map: %w", err)
	}

	var data worldgen.MapData
	if err := json.Unmarshal([]byte(row.DataJSON), &data); err != nil {
		return nil, false, fmt.Errorf("decode cached map: %w", err)
	}
	return &data, true, nil
}

// Put stores m under fingerprint, replacing any prior entry.
func (s *Store) Put(fingerprint string, m *worldgen.MapData) error {
	encoded, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("encode map: %w", err)
	}

	_, err = s.conn.Exec(
		"INSERT OR REPLACE INTO generated_maps (fingerprint, width, height, data_json) VALUES (?, ?, ?, ?)",
		fingerprint, m.Width, m.Height, string(encoded),
	)
	if err != nil {
		return fmt.Errorf("put cached map: %w", err)
	}
	return nil
}
