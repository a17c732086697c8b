package store

import (
	"atcmoney/internal/models"
)

// MemoryStore keeps positions in memory. Useful for tests or ephemeral
// runs where persistence is not required.
type MemoryStore struct {
	positions map[string]models.Position
}

// NewMemoryStore creates an in-memory position store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{positions: make(map[string]models.Position)}
}

// Load returns a copy of the stored positions.
func (s *MemoryStore) Load() (map[string]models.Position, error) {
	positions := make(map[string]models.Position, len(s.positions))
	for symbol, pos := range s.positions {
		positions[symbol] = pos
	}
	return positions, nil
}

// Store replaces the stored positions with a copy of the given mapping.
func (s *MemoryStore) Store(positions map[string]models.Position) error {
	s.positions = make(map[string]models.Position, len(positions))
	for symbol, pos := range positions {
		s.positions[symbol] = pos
	}
	return nil
}
