// Package provider provides market data provider interfaces and implementations.
package provider

import (
	"context"

	"atcmoney/internal/errors"
	"atcmoney/internal/models"
)

// Provider defines the interface for quote data providers.
type Provider interface {
	// GetQuote fetches the current quote for a symbol.
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)
}

// Type identifies a provider implementation.
type Type string

const (
	TypeMock    Type = "MOCK"
	TypeVantage Type = "VANTAGE"
)

// Config holds the settings needed to construct a provider.
type Config struct {
	Type       Type
	APIKey     string
	BaseURL    string
	HTTPClient HTTPDoer
}

// IsTransient reports whether a quote fetch failure is worth retrying.
// Network failures and server-side errors are transient; client-side
// and payload errors are not.
func IsTransient(err error) bool {
	var pErr *errors.ProviderError
	if errors.As(err, &pErr) {
		return pErr.Err != nil || pErr.StatusCode >= 500
	}
	return false
}

// New constructs the provider selected by cfg.Type.
func New(cfg Config) (Provider, error) {
	switch cfg.Type {
	case TypeMock, "":
		return NewMock(), nil
	case TypeVantage:
		return NewVantage(cfg)
	default:
		return nil, errors.Wrapf(errors.ErrUnknownProvider, "%q", cfg.Type)
	}
}
