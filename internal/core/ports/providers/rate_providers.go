package providers

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReader defines read operations against an external exchange-rate source.
type RateReader interface {
	// LatestRate returns how many units of toCode one unit of baseCode buys right now.
	// Any failure of the source is reported wrapped in apperrors.ErrUpstream.
	LatestRate(ctx context.Context, baseCode, toCode domain.CurrencyCode) (decimal.Decimal, error)
}

// ProviderSet holds all external providers needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type ProviderSet struct {
	Rates RateReader
}
