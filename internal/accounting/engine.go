// Package accounting implements the trade application engine.
//
// The engine is a pure computation: it merges one trade into an
// optional existing position and reports the resulting position along
// with any realized profit and loss. It never touches storage; the
// caller owns writing results back.
package accounting

import (
	"atcmoney/internal/models"
)

// ApplyTrade merges trade into pos and returns the resulting position
// and any realized PnL.
//
// pos is nil when no position exists for the trade's symbol; the caller
// guarantees the symbol matches when pos is non-nil. A nil returned
// position means the position was fully liquidated. A nil returned PnL
// means nothing was realized. The input position is never mutated.
func ApplyTrade(trade models.Trade, pos *models.Position) (*models.Position, *models.PnL, error) {
	if pos == nil {
		opened := models.Position{
			Symbol:   trade.Symbol,
			Currency: trade.Currency,
			Quantity: trade.Quantity,
			Cost:     trade.TotalCost(),
		}
		return &opened, nil, nil
	}

	if trade.Side() == pos.Side() {
		accumulated := *pos
		accumulated.Quantity += trade.Quantity
		accumulated.Cost += trade.TotalCost()
		return &accumulated, nil, nil
	}

	tradeMagnitude := abs(trade.Quantity)
	posMagnitude := abs(pos.Quantity)

	switch {
	case tradeMagnitude > posMagnitude:
		// Direction flip: close the whole position at the trade price
		// and open a new one in the opposite direction. The new
		// quantity subtracts the old position from the trade, so the
		// two magnitudes add.
		pnl, err := pos.CalculatePnL(trade.UnitPrice)
		if err != nil {
			return nil, nil, err
		}
		quantity := trade.Quantity - pos.Quantity
		flipped := models.Position{
			Symbol:   trade.Symbol,
			Currency: trade.Currency,
			Quantity: quantity,
			Cost:     quantity * trade.UnitPrice,
		}
		return &flipped, &pnl, nil

	case tradeMagnitude == posMagnitude:
		// Exact liquidation: the position ceases to exist.
		pnl, err := pos.CalculatePnL(trade.UnitPrice)
		if err != nil {
			return nil, nil, err
		}
		return nil, &pnl, nil

	default:
		// Partial liquidation: realize gains on the traded quantity,
		// reduce the position at its weighted-average unit price.
		pnl, err := pos.CalculatePnLPartial(trade.UnitPrice, trade.Quantity)
		if err != nil {
			return nil, nil, err
		}
		reduced := *pos
		reduced.Cost += trade.Quantity * pos.UnitPrice()
		reduced.Quantity += trade.Quantity
		return &reduced, &pnl, nil
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
