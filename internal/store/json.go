package store

import (
	"encoding/json"
	"os"

	"github.com/rs/zerolog"

	"atcmoney/internal/errors"
	"atcmoney/internal/models"
)

// JSONStore persists positions as a JSON array of position objects.
type JSONStore struct {
	path   string
	logger zerolog.Logger
}

// NewJSONStore creates a JSON file backed position store.
func NewJSONStore(path string, logger zerolog.Logger) *JSONStore {
	return &JSONStore{path: path, logger: logger}
}

// Load reads all positions from the backing file. A missing file is
// created empty; an unreadable or corrupt file yields an empty mapping.
// Both conditions are non-fatal and logged.
func (s *JSONStore) Load() (map[string]models.Position, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		s.logger.Warn().Str("path", s.path).Msg("Position data file did not exist, creating it")
		if writeErr := os.WriteFile(s.path, []byte("[]"), 0o644); writeErr != nil {
			return nil, errors.NewStoreError(BackendJSON, "create", writeErr)
		}
		return map[string]models.Position{}, nil
	}
	if err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Unreadable position data store")
		return map[string]models.Position{}, nil
	}

	var positions []models.Position
	if err := json.Unmarshal(data, &positions); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("Unreadable position data store")
		return map[string]models.Position{}, nil
	}

	bySymbol := make(map[string]models.Position, len(positions))
	for _, pos := range positions {
		bySymbol[pos.Symbol] = pos
	}
	return bySymbol, nil
}

// Store overwrites the backing file with the full set of positions.
func (s *JSONStore) Store(positions map[string]models.Position) error {
	list := make([]models.Position, 0, len(positions))
	for _, pos := range positions {
		list = append(list, pos)
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return errors.NewStoreError(BackendJSON, "marshal", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return errors.NewStoreError(BackendJSON, "write", err)
	}
	return nil
}
