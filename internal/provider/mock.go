package provider

import (
	"context"
	"math/rand"
	"sync"

	"atcmoney/internal/models"
)

// Mock implements Provider with random quotes. It supports one-shot
// test hooks: a queued quote value or error is consumed exactly once
// and then reset.
type Mock struct {
	mu        sync.Mutex
	nextQuote *float64
	nextErr   error
}

// NewMock creates a new mock provider.
func NewMock() *Mock {
	return &Mock{}
}

// SetNextQuote queues a fixed price for the next GetQuote call.
func (m *Mock) SetNextQuote(price float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextQuote = &price
}

// SetNextError queues an error for the next GetQuote call.
func (m *Mock) SetNextError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextErr = err
}

// GetQuote returns the queued quote or error if one is pending,
// otherwise a random USD price in [0, 1000].
func (m *Mock) GetQuote(_ context.Context, _ string) (*models.Quote, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.nextErr != nil {
		err := m.nextErr
		m.nextErr = nil
		return nil, err
	}
	if m.nextQuote != nil {
		price := *m.nextQuote
		m.nextQuote = nil
		return &models.Quote{Price: price, Currency: models.USD}, nil
	}
	return &models.Quote{Price: float64(rand.Intn(1001)), Currency: models.USD}, nil
}
