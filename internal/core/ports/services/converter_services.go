package services

import (
	"context"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// ConverterSvc defines currency conversion operations
type ConverterSvc interface {
	// Convert validates the request, looks up the latest rate and applies it to the optional amount.
	Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error)
}

// CurrencyReaderSvc defines read operations for the supported currencies
type CurrencyReaderSvc interface {
	// ListCurrencies returns every currency code the converter accepts.
	ListCurrencies(ctx context.Context) []domain.CurrencyCode
}

// ConverterSvcFacade combines all conversion-related service interfaces
type ConverterSvcFacade interface {
	ConverterSvc
	CurrencyReaderSvc
}
