// Package models provides domain models for the portfolio application.
package models

import "fmt"

// Currency represents a supported currency code.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	CHF Currency = "CHF"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
)

// Currencies lists every supported currency code.
var Currencies = []Currency{USD, EUR, GBP, JPY, CHF, CAD, AUD}

// ParseCurrency converts a currency code string into a Currency.
func ParseCurrency(code string) (Currency, error) {
	for _, c := range Currencies {
		if string(c) == code {
			return c, nil
		}
	}
	return "", fmt.Errorf("unsupported currency: %q", code)
}

// Side represents the direction of a trade or position.
// It is always derived from the sign of the quantity, never stored.
type Side string

const (
	SideBuy  Side = "BUY"
	SideSell Side = "SELL"
)

// SideOf returns the side implied by a signed quantity.
func SideOf(quantity float64) Side {
	if quantity < 0 {
		return SideSell
	}
	return SideBuy
}

// Quote represents a price quotation from a market data provider.
type Quote struct {
	Price    float64  `json:"price"`
	Currency Currency `json:"currency"`
}
