// Package store provides position persistence interfaces and implementations.
package store

import (
	"github.com/rs/zerolog"

	"atcmoney/internal/errors"
	"atcmoney/internal/models"
)

// Backend identifiers for the position store.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// PositionStore persists the canonical set of positions keyed by symbol.
//
// Store overwrites the backing resource wholesale; there is no
// incremental update and no locking against concurrent external
// writers.
type PositionStore interface {
	Load() (map[string]models.Position, error)
	Store(positions map[string]models.Position) error
}

// Config selects and parameterizes a store backend.
type Config struct {
	Backend string
	Path    string
}

// New constructs the position store selected by cfg.Backend.
// The default backend is the JSON file store.
func New(cfg Config, logger zerolog.Logger) (PositionStore, error) {
	switch cfg.Backend {
	case BackendJSON, "":
		return NewJSONStore(cfg.Path, logger), nil
	case BackendSQLite:
		return NewSQLiteStore(cfg.Path, logger)
	case BackendMemory:
		return NewMemoryStore(), nil
	default:
		return nil, errors.Wrapf(errors.ErrUnknownBackend, "%q", cfg.Backend)
	}
}
