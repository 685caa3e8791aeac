/*
Package sqlite provides the SQLite-backed UF rate mirror.

PURPOSE:
  Implements indicators.RateStore: a tiny local mirror of daily UF values so
  the remote indicator API is consulted at most once per day. Settlement
  results are never persisted here; that responsibility stays with the
  calling system.

KEY TABLE:
  uf_rates: one row per calendar day, value stored as text to keep decimal
  precision exact.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging):
  - Multiple readers don't block
  - Single writer at a time
  - Better crash recovery

USAGE:
  store, err := sqlite.New("./data/rates.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

  provider := indicators.NewMirror(indicators.NewClient(""), store)

MIGRATION:
  Schema is auto-migrated on New(). Use ":memory:" for tests.

SEE ALSO:
  - indicators/mirror.go: the caching provider built on this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/australhr/settlement-engine/settlement"
)

// Store implements indicators.RateStore using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS uf_rates (
		day        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveRate records the UF value for a day. Re-saving the same day overwrites;
// the upstream value for a day never changes, so this is only relevant for
// manual corrections.
func (s *Store) SaveRate(ctx context.Context, day settlement.Date, value decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO uf_rates (day, value, fetched_at) VALUES (?, ?, ?)
		ON CONFLICT(day) DO UPDATE SET value = excluded.value, fetched_at = excluded.fetched_at`,
		day.String(), value.String(), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("save uf rate: %w", err)
	}
	return nil
}

// GetRate returns the mirrored UF value for a day, with ok=false when the day
// has not been mirrored yet.
func (s *Store) GetRate(ctx context.Context, day settlement.Date) (decimal.Decimal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM uf_rates WHERE day = ?`, day.String()).Scan(&raw)
	if err == sql.ErrNoRows {
		return decimal.Zero, false, nil
	}
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("get uf rate: %w", err)
	}

	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, false, fmt.Errorf("corrupt uf rate for %s: %w", day, err)
	}
	return value, true, nil
}

// LatestRate returns the most recently dated mirrored value, with ok=false on
// an empty mirror. Used when a caller wants "the current UF" without naming a
// day.
func (s *Store) LatestRate(ctx context.Context) (settlement.Date, decimal.Decimal, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var rawDay, rawValue string
	err := s.db.QueryRowContext(ctx,
		`SELECT day, value FROM uf_rates ORDER BY day DESC LIMIT 1`).Scan(&rawDay, &rawValue)
	if err == sql.ErrNoRows {
		return settlement.Date{}, decimal.Zero, false, nil
	}
	if err != nil {
		return settlement.Date{}, decimal.Zero, false, fmt.Errorf("latest uf rate: %w", err)
	}

	day, err := settlement.ParseDate(rawDay)
	if err != nil {
		return settlement.Date{}, decimal.Zero, false, fmt.Errorf("corrupt uf day %q: %w", rawDay, err)
	}
	value, err := decimal.NewFromString(rawValue)
	if err != nil {
		return settlement.Date{}, decimal.Zero, false, fmt.Errorf("corrupt uf rate for %s: %w", day, err)
	}
	return day, value, true, nil
}
