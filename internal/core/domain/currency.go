package domain

import (
	"sort"
	"strings"
)

// CurrencyCode is an ISO 4217 three-letter currency code (e.g., "USD").
type CurrencyCode string

// Supported currency codes.
const (
	USD CurrencyCode = "USD"
	GBP CurrencyCode = "GBP"
	EUR CurrencyCode = "EUR"
)

// supportedCurrencies is the fixed allow-list of convertible currencies.
var supportedCurrencies = map[CurrencyCode]struct{}{
	USD: {},
	GBP: {},
	EUR: {},
}

// NormalizeCurrencyCode upper-cases a raw code. Surrounding whitespace is kept
// so that " usd" stays invalid.
func NormalizeCurrencyCode(raw string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(raw))
}

// IsSupported reports whether the code belongs to the allow-list.
// The comparison is exact, callers normalize first.
func (c CurrencyCode) IsSupported() bool {
	_, ok := supportedCurrencies[c]
	return ok
}

func (c CurrencyCode) String() string {
	return string(c)
}

// ListSupportedCurrencies returns the allow-list in alphabetical order.
func ListSupportedCurrencies() []CurrencyCode {
	codes := make([]CurrencyCode, 0, len(supportedCurrencies))
	for code := range supportedCurrencies {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}
