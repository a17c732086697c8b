package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "240.00 USD", FormatMoney(240, "USD"))
	assert.Equal(t, "12.35 EUR", FormatMoney(12.345, "EUR"))
	assert.Equal(t, "-3000.00 USD", FormatMoney(-3000, "USD"))
}

func TestFormatGainPercent(t *testing.T) {
	assert.Equal(t, "25%", FormatGainPercent(0.25))
	assert.Equal(t, "-16.666667%", FormatGainPercent(-2.0/12.0))
	assert.Equal(t, "0%", FormatGainPercent(0))
}

func TestFormatQuantity(t *testing.T) {
	assert.Equal(t, "10", FormatQuantity(10))
	assert.Equal(t, "-10.5", FormatQuantity(-10.5))
	assert.Equal(t, "1.5", FormatQuantity(1.5))
}
