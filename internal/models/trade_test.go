package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atcmoney/internal/errors"
)

func TestNewTradeValidation(t *testing.T) {
	tests := []struct {
		name      string
		symbol    string
		currency  Currency
		quantity  float64
		unitPrice float64
		wantErr   bool
	}{
		{name: "valid buy", symbol: "GOOGL", currency: USD, quantity: 1.5, unitPrice: 10},
		{name: "valid sell", symbol: "GOOGL", currency: EUR, quantity: -2, unitPrice: 10},
		{name: "free of charge", symbol: "GOOGL", currency: USD, quantity: 1, unitPrice: 0},
		{name: "empty symbol", symbol: "", currency: USD, quantity: 1, unitPrice: 10, wantErr: true},
		{name: "zero quantity", symbol: "GOOGL", currency: USD, quantity: 0, unitPrice: 10, wantErr: true},
		{name: "negative price", symbol: "GOOGL", currency: USD, quantity: 1, unitPrice: -1, wantErr: true},
		{name: "unknown currency", symbol: "GOOGL", currency: "XXX", quantity: 1, unitPrice: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trade, err := NewTrade(tt.symbol, tt.currency, tt.quantity, tt.unitPrice)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *errors.ValidationError
				assert.ErrorAs(t, err, &vErr)
				assert.ErrorIs(t, err, errors.ErrInputValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.symbol, trade.Symbol)
		})
	}
}

func TestTradeTotalCostIsSigned(t *testing.T) {
	buy, err := NewTrade("GOOGL", USD, 2.0, 15)
	require.NoError(t, err)
	assert.Equal(t, 30.0, buy.TotalCost())
	assert.Equal(t, SideBuy, buy.Side())

	sell, err := NewTrade("GOOGL", USD, -2.0, 15)
	require.NoError(t, err)
	assert.Equal(t, -30.0, sell.TotalCost())
	assert.Equal(t, SideSell, sell.Side())
}

func TestParseCurrency(t *testing.T) {
	currency, err := ParseCurrency("USD")
	require.NoError(t, err)
	assert.Equal(t, USD, currency)

	_, err = ParseCurrency("usd")
	assert.Error(t, err)

	_, err = ParseCurrency("")
	assert.Error(t, err)
}
