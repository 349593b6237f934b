package domain

import "github.com/shopspring/decimal"

// ConversionRequest holds the raw caller input for a single conversion.
type ConversionRequest struct {
	BaseCurrency string
	ToCurrency   string
	Amount       *string // nil when the caller did not pass an amount
}

// ConversionResult is the outcome of a successful conversion.
type ConversionResult struct {
	BaseCurrency    CurrencyCode
	ToCurrency      CurrencyCode
	Rate            decimal.Decimal  // units of ToCurrency per one unit of BaseCurrency
	Amount          *decimal.Decimal // parsed caller amount, nil if not supplied
	ConvertedAmount *decimal.Decimal // Rate * Amount rounded to 2 places, nil if not supplied
}
