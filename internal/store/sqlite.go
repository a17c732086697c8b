package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	"atcmoney/internal/errors"
	"atcmoney/internal/models"
)

// SQLiteStore persists positions in a SQLite database.
type SQLiteStore struct {
	db     *sql.DB
	logger zerolog.Logger
}

// NewSQLiteStore creates a SQLite backed position store.
func NewSQLiteStore(dbPath string, logger zerolog.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, errors.NewStoreError(BackendSQLite, "open", err)
	}

	store := &SQLiteStore{db: db, logger: logger}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, errors.NewStoreError(BackendSQLite, "init schema", err)
	}
	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS positions (
		symbol TEXT PRIMARY KEY,
		currency TEXT NOT NULL,
		quantity REAL NOT NULL,
		cost REAL NOT NULL
	);`
	_, err := s.db.Exec(schema)
	return err
}

// Load reads all positions. Row-level corruption degrades to an empty
// mapping, matching the JSON store's behavior.
func (s *SQLiteStore) Load() (map[string]models.Position, error) {
	rows, err := s.db.Query(`SELECT symbol, currency, quantity, cost FROM positions`)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Unreadable position data store")
		return map[string]models.Position{}, nil
	}
	defer rows.Close()

	positions := make(map[string]models.Position)
	for rows.Next() {
		var pos models.Position
		if err := rows.Scan(&pos.Symbol, &pos.Currency, &pos.Quantity, &pos.Cost); err != nil {
			s.logger.Warn().Err(err).Msg("Skipping unreadable position row")
			continue
		}
		positions[pos.Symbol] = pos
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError(BackendSQLite, "scan", err)
	}
	return positions, nil
}

// Store replaces all rows with the given positions in one transaction.
func (s *SQLiteStore) Store(positions map[string]models.Position) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.NewStoreError(BackendSQLite, "begin", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM positions`); err != nil {
		return errors.NewStoreError(BackendSQLite, "clear", err)
	}
	for _, pos := range positions {
		_, err := tx.Exec(
			`INSERT INTO positions (symbol, currency, quantity, cost) VALUES (?, ?, ?, ?)`,
			pos.Symbol, string(pos.Currency), pos.Quantity, pos.Cost,
		)
		if err != nil {
			return errors.NewStoreError(BackendSQLite, "insert", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.NewStoreError(BackendSQLite, "commit", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
