package services

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/core/ports/providers"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/SscSPs/currency_converter/internal/utils"
	"github.com/shopspring/decimal"
)

// ConverterService provides business logic for currency conversion.
type ConverterService struct {
	rates providers.RateReader
}

// NewConverterService creates a new ConverterService.
func NewConverterService(rates providers.RateReader) *ConverterService {
	return &ConverterService{
		rates: rates,
	}
}

var _ portssvc.ConverterSvcFacade = (*ConverterService)(nil)

// Convert validates the request, fetches the latest rate and applies it to the amount, if any.
// Currency codes are checked before the amount.
func (s *ConverterService) Convert(ctx context.Context, req domain.ConversionRequest) (*domain.ConversionResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	baseCode := domain.NormalizeCurrencyCode(req.BaseCurrency)
	toCode := domain.NormalizeCurrencyCode(req.ToCurrency)
	if !baseCode.IsSupported() || !toCode.IsSupported() {
		return nil, fmt.Errorf("%w: %w: base %q, to %q", apperrors.ErrValidation, apperrors.ErrInvalidCurrency, req.BaseCurrency, req.ToCurrency)
	}

	var amount *decimal.Decimal
	if req.Amount != nil {
		parsed, err := ParseAmount(*req.Amount)
		if err != nil {
			return nil, err
		}
		amount = &parsed
	}

	rate, err := s.rates.LatestRate(ctx, baseCode, toCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get conversion rate in service: %w", err)
	}

	result := &domain.ConversionResult{
		BaseCurrency: baseCode,
		ToCurrency:   toCode,
		Rate:         rate,
		Amount:       amount,
	}
	if amount != nil {
		converted := utils.RoundToPrecision(rate.Mul(*amount), utils.DefaultPrecision)
		result.ConvertedAmount = &converted
	}

	attrs := []any{
		slog.String("base_currency", baseCode.String()),
		slog.String("to_currency", toCode.String()),
		slog.String("rate", rate.String()),
	}
	if result.ConvertedAmount != nil {
		attrs = append(attrs, slog.String("converted_amount", utils.FormatWithPrecision(*result.ConvertedAmount, utils.DefaultPrecision)))
	}
	logger.Info("Conversion rate retrieved", attrs...)
	return result, nil
}

// ListCurrencies returns every currency code the converter accepts.
func (s *ConverterService) ListCurrencies(_ context.Context) []domain.CurrencyCode {
	return domain.ListSupportedCurrencies()
}

// ParseAmount parses a caller-supplied amount. Surrounding whitespace is ignored.
// Hex literals, NaN and infinities are rejected.
func ParseAmount(raw string) (decimal.Decimal, error) {
	trimmed := strings.TrimSpace(raw)
	if isHexLiteral(trimmed) {
		return decimal.Zero, fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, apperrors.ErrInvalidAmount, raw)
	}
	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: %w: %q", apperrors.ErrValidation, apperrors.ErrInvalidAmount, raw)
	}
	return decimal.NewFromFloat(f), nil
}

// isHexLiteral reports whether s is a (signed) 0x-prefixed number, which ParseFloat accepts.
func isHexLiteral(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
