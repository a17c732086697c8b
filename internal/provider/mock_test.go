package provider

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atcmoney/internal/errors"
	"atcmoney/internal/models"
)

func TestMockReturnsRandomUSDQuotes(t *testing.T) {
	m := NewMock()

	for i := 0; i < 20; i++ {
		quote, err := m.GetQuote(context.Background(), "GOOGL")
		require.NoError(t, err)
		assert.Equal(t, models.USD, quote.Currency)
		assert.GreaterOrEqual(t, quote.Price, 0.0)
		assert.LessOrEqual(t, quote.Price, 1000.0)
	}
}

func TestMockNextQuoteConsumedOnce(t *testing.T) {
	m := NewMock()
	m.SetNextQuote(123.45)

	quote, err := m.GetQuote(context.Background(), "GOOGL")
	require.NoError(t, err)
	assert.Equal(t, 123.45, quote.Price)

	// The hook resets after one use; the follow-up quote is random
	// again, so only its bounds can be checked.
	quote, err = m.GetQuote(context.Background(), "GOOGL")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, quote.Price, 0.0)
	assert.LessOrEqual(t, quote.Price, 1000.0)
}

func TestMockNextErrorConsumedOnce(t *testing.T) {
	m := NewMock()
	m.SetNextError(errors.NewProviderError(0, "fake provider error", nil))

	_, err := m.GetQuote(context.Background(), "GOOGL")
	require.Error(t, err)
	var pErr *errors.ProviderError
	assert.ErrorAs(t, err, &pErr)

	_, err = m.GetQuote(context.Background(), "GOOGL")
	assert.NoError(t, err)
}

func TestMockErrorTakesPrecedenceOverQuote(t *testing.T) {
	m := NewMock()
	m.SetNextQuote(10)
	m.SetNextError(errors.NewProviderError(0, "fake provider error", nil))

	_, err := m.GetQuote(context.Background(), "GOOGL")
	require.Error(t, err)

	quote, err := m.GetQuote(context.Background(), "GOOGL")
	require.NoError(t, err)
	assert.Equal(t, 10.0, quote.Price)
}
