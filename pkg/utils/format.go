// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"math"
	"strconv"
)

// FormatMoney formats a monetary amount with dollar precision (two
// decimal places) and the currency code.
func FormatMoney(amount float64, currency string) string {
	return fmt.Sprintf("%.2f %s", RoundMoney(amount), currency)
}

// RoundMoney rounds an amount to two decimal places.
func RoundMoney(amount float64) float64 {
	return math.Round(amount*100) / 100
}

// FormatGainPercent formats a fractional gain as a percentage with up
// to six decimal places, trailing zeros trimmed.
func FormatGainPercent(fraction float64) string {
	percent := math.Round(fraction*100*1e6) / 1e6
	return strconv.FormatFloat(percent, 'f', -1, 64) + "%"
}

// FormatQuantity formats a signed quantity without trailing zeros.
func FormatQuantity(quantity float64) string {
	return strconv.FormatFloat(quantity, 'f', -1, 64)
}
