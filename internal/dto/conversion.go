package dto

import (
	"net/url"

	"github.com/SscSPs/currency_converter/internal/core/domain"
)

// Error and notes texts returned for each failure kind.
const (
	InvalidCurrencyError = "Invalid or missing query parameters"
	InvalidCurrencyNotes = "Query parameters, base-currency and to-currency, are required. Values must be valid ISO 4217 country codes. Only USD, GBP, and EUR are currently supported."
	InvalidAmountError   = "Invalid amount passed in"
	InvalidAmountNotes   = "Make sure amount is a valid number."
	UpstreamError        = "Failed to retrieve conversion rate"
	UpstreamNotes        = "The exchange rate provider could not be reached or returned an unexpected response. Please try again later."
)

// ConversionQuery binds the query string of GET /converter.
// Amount is read separately so an explicitly empty value can be told apart from a missing one.
type ConversionQuery struct {
	BaseCurrency string `form:"base-currency" binding:"required,supported_currency"`
	ToCurrency   string `form:"to-currency" binding:"required,supported_currency"`
}

// ToConversionRequest builds the domain request. amount is nil when the caller omitted it.
func (q ConversionQuery) ToConversionRequest(amount *string) domain.ConversionRequest {
	return domain.ConversionRequest{
		BaseCurrency: q.BaseCurrency,
		ToCurrency:   q.ToCurrency,
		Amount:       amount,
	}
}

// ConversionResponse is the success body of GET /converter.
type ConversionResponse struct {
	ConversionRate  float64           `json:"conversion_rate"`
	ConvertedAmount *float64          `json:"converted_amount,omitempty"`
	UserInput       map[string]string `json:"user_input"`
}

// ErrorResponse is returned for every failed conversion.
type ErrorResponse struct {
	Error     string            `json:"error"`
	Notes     string            `json:"notes"`
	UserInput map[string]string `json:"user_input"`
}

// CurrencyListResponse lists the supported currency codes.
type CurrencyListResponse struct {
	Currencies []string `json:"currencies"`
}

// ToConversionResponse converts a domain.ConversionResult to ConversionResponse DTO
func ToConversionResponse(result *domain.ConversionResult, userInput map[string]string) ConversionResponse {
	resp := ConversionResponse{
		ConversionRate: result.Rate.InexactFloat64(),
		UserInput:      userInput,
	}
	if result.ConvertedAmount != nil {
		converted := result.ConvertedAmount.InexactFloat64()
		resp.ConvertedAmount = &converted
	}
	return resp
}

// ToCurrencyListResponse converts the supported codes to CurrencyListResponse DTO
func ToCurrencyListResponse(codes []domain.CurrencyCode) CurrencyListResponse {
	res := CurrencyListResponse{Currencies: make([]string, len(codes))}
	for i, code := range codes {
		res.Currencies[i] = code.String()
	}
	return res
}

// UserInputFromQuery echoes the caller's query parameters, keeping the first value of each key.
func UserInputFromQuery(values url.Values) map[string]string {
	echo := make(map[string]string, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			echo[key] = vals[0]
		} else {
			echo[key] = ""
		}
	}
	return echo
}
