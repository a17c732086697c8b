package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atcmoney/internal/errors"
	"atcmoney/internal/models"
)

func samplePositions() map[string]models.Position {
	return map[string]models.Position{
		"GOOGL": {Symbol: "GOOGL", Currency: models.USD, Quantity: 20, Cost: 240},
		"MSFT":  {Symbol: "MSFT", Currency: models.USD, Quantity: -10, Cost: -3000},
		"SAP":   {Symbol: "SAP", Currency: models.EUR, Quantity: 1.5, Cost: 180.75},
	}
}

func TestJSONStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.json")
	s := NewJSONStore(path, zerolog.Nop())

	want := samplePositions()
	require.NoError(t, s.Store(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJSONStoreCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.json")
	s := NewJSONStore(path, zerolog.Nop())

	positions, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, positions)

	// Now it exists and holds an empty array.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(data))
}

func TestJSONStoreCorruptFileIsNotFatal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := NewJSONStore(path, zerolog.Nop())
	positions, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, positions)
}

func TestJSONStoreOverwritesWholesale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.json")
	s := NewJSONStore(path, zerolog.Nop())

	require.NoError(t, s.Store(samplePositions()))
	require.NoError(t, s.Store(map[string]models.Position{
		"AAPL": {Symbol: "AAPL", Currency: models.USD, Quantity: 1, Cost: 150},
	}))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Contains(t, got, "AAPL")
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	s := NewMemoryStore()

	want := samplePositions()
	require.NoError(t, s.Store(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Mutating the loaded copy must not leak back into the store.
	got["GOOGL"] = models.Position{Symbol: "GOOGL", Currency: models.USD, Quantity: 1, Cost: 1}
	again, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, again)
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "positions.db")
	s, err := NewSQLiteStore(path, zerolog.Nop())
	require.NoError(t, err)
	defer s.Close()

	want := samplePositions()
	require.NoError(t, s.Store(want))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// Wholesale replacement drops rows absent from the new mapping.
	require.NoError(t, s.Store(map[string]models.Position{
		"GOOGL": want["GOOGL"],
	}))
	got, err = s.Load()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, want["GOOGL"], got["GOOGL"])
}

func TestNewSelectsBackend(t *testing.T) {
	dir := t.TempDir()

	jsonStore, err := New(Config{Backend: BackendJSON, Path: filepath.Join(dir, "p.json")}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &JSONStore{}, jsonStore)

	memStore, err := New(Config{Backend: BackendMemory}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, memStore)

	defaultStore, err := New(Config{Path: filepath.Join(dir, "d.json")}, zerolog.Nop())
	require.NoError(t, err)
	assert.IsType(t, &JSONStore{}, defaultStore)

	_, err = New(Config{Backend: "bolt"}, zerolog.Nop())
	assert.ErrorIs(t, err, errors.ErrUnknownBackend)
}
