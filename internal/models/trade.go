package models

import (
	"atcmoney/internal/errors"
)

// Trade represents a single buy or sell transaction.
//
// The sign of Quantity is the authoritative direction signal: positive
// for buys, negative for sells. A Trade is constructed once from
// validated input and never mutated.
type Trade struct {
	Symbol    string
	Currency  Currency
	Quantity  float64
	UnitPrice float64
}

// NewTrade validates the inputs and constructs a Trade.
func NewTrade(symbol string, currency Currency, quantity, unitPrice float64) (Trade, error) {
	if symbol == "" {
		return Trade{}, errors.NewValidationError("symbol", symbol, "must not be empty")
	}
	if quantity == 0 {
		return Trade{}, errors.NewValidationError("quantity", quantity, "must be nonzero")
	}
	if unitPrice < 0 {
		return Trade{}, errors.NewValidationError("unit_price", unitPrice, "must not be negative")
	}
	if _, err := ParseCurrency(string(currency)); err != nil {
		return Trade{}, errors.NewValidationError("currency", currency, "unsupported currency code")
	}
	return Trade{
		Symbol:    symbol,
		Currency:  currency,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

// Side returns the trade direction derived from the quantity sign.
func (t Trade) Side() Side {
	return SideOf(t.Quantity)
}

// TotalCost returns the signed nominal cost of the trade.
// Negative for sells, since the quantity carries the sign.
func (t Trade) TotalCost() float64 {
	return t.UnitPrice * t.Quantity
}
