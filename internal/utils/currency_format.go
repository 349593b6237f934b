package utils

import (
	"github.com/shopspring/decimal"
)

// DefaultPrecision is the number of decimal places converted amounts are rounded to.
const DefaultPrecision = 2

// RoundToPrecision rounds an amount half away from zero to the given number of places.
// Example: 151.8435 with precision 2 returns 151.84
// Example: 0.125 with precision 2 returns 0.13
func RoundToPrecision(amount decimal.Decimal, precision int) decimal.Decimal {
	return amount.Round(int32(precision))
}

// FormatWithPrecision formats an amount with the given precision
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
