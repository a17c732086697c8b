package models

import (
	"math"

	"atcmoney/internal/errors"
)

// Position represents the current net holding of one symbol.
//
// Quantity is signed: positive for a long holding, negative for a
// short. A Position never exists with zero quantity; fully liquidated
// positions are removed from the store rather than kept at zero.
type Position struct {
	Symbol   string   `json:"symbol"`
	Currency Currency `json:"currency"`
	Quantity float64  `json:"quantity"`
	Cost     float64  `json:"cost"`
}

// PnL represents realized or theoretical profit and loss.
// Display only, never persisted.
type PnL struct {
	AbsoluteGains float64 `json:"absolute_gains"`
	RelativeGains float64 `json:"relative_gains"`
}

// Side returns the position direction derived from the quantity sign.
func (p Position) Side() Side {
	return SideOf(p.Quantity)
}

// UnitPrice returns the weighted-average unit price of the position.
func (p Position) UnitPrice() float64 {
	return p.Cost / p.Quantity
}

// MarketValue returns the nominal value of the position at the given
// unit price.
func (p Position) MarketValue(unitPrice float64) float64 {
	return p.Quantity * unitPrice
}

// CalculatePnL returns the gains from closing the whole position at
// exitPrice.
func (p Position) CalculatePnL(exitPrice float64) (PnL, error) {
	return p.CalculatePnLPartial(exitPrice, p.Quantity)
}

// CalculatePnLPartial returns the gains from closing exitQuantity units
// of the position at exitPrice. Only the magnitude of exitQuantity is
// consumed; its sign is irrelevant.
//
// Relative gains are normalized by the cost basis attributable to the
// closed quantity, so they measure gains against the capital actually
// at risk in the closed portion.
func (p Position) CalculatePnLPartial(exitPrice, exitQuantity float64) (PnL, error) {
	held := math.Abs(p.Quantity)
	magnitude := math.Abs(exitQuantity)
	if magnitude > held {
		return PnL{}, errors.Wrapf(errors.ErrExceedsPosition,
			"cannot realize %v units of a %v unit position", magnitude, held)
	}
	sign := 1.0
	if p.Quantity < 0 {
		sign = -1.0
	}

	// Cost carries the quantity's sign, so Cost/Quantity is the entry
	// unit price for longs and shorts alike.
	absolute := magnitude * (exitPrice - p.UnitPrice()) * sign

	// A zero cost basis leaves relative gains undefined. They report
	// as zero so the absolute figure still comes through and zero-cost
	// positions stay closable.
	relative := 0.0
	if p.Cost != 0 {
		relative = absolute * held / (math.Abs(p.Cost) * magnitude)
	}
	return PnL{AbsoluteGains: absolute, RelativeGains: relative}, nil
}
