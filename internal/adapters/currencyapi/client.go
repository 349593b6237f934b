// Package currencyapi reads latest exchange rates from currencyapi.com (v3).
package currencyapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	"github.com/SscSPs/currency_converter/internal/core/domain"
	"github.com/SscSPs/currency_converter/internal/core/ports/providers"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/shopspring/decimal"
)

// maxErrorBody caps how much of a failed response is read for diagnostics.
const maxErrorBody = 4 << 10

// latestResponse is the subset of the /v3/latest payload we rely on:
//
//	{"meta": {...}, "data": {"GBP": {"code": "GBP", "value": 0.841409}}}
type latestResponse struct {
	Data map[string]*rateEntry `json:"data"`
}

type rateEntry struct {
	Code  string           `json:"code"`
	Value *decimal.Decimal `json:"value"`
}

// errorResponse is what the provider sends alongside non-200 statuses.
type errorResponse struct {
	Message string `json:"message"`
}

// Client calls the currencyapi.com latest-rates endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the given endpoint. A zero timeout means no timeout.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

var _ providers.RateReader = (*Client)(nil)

// LatestRate fetches the current baseCode -> toCode rate.
func (c *Client) LatestRate(ctx context.Context, baseCode, toCode domain.CurrencyCode) (decimal.Decimal, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("base_currency", baseCode.String()),
		slog.String("to_currency", toCode.String()),
	)

	endpoint, err := c.buildURL(baseCode, toCode)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: invalid provider url: %v", apperrors.ErrUpstream, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: failed to create request: %v", apperrors.ErrUpstream, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// *url.Error embeds the request URL, which carries the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		logger.Error("Rate provider request failed", slog.String("error", err.Error()))
		return decimal.Zero, fmt.Errorf("%w: request failed: %v", apperrors.ErrUpstream, err)
	}
	defer resp.Body.Close()

	logger.Debug("Rate provider responded",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", time.Since(start)),
	)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		msg := resp.Status
		var apiErr errorResponse
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			msg = apiErr.Message
		}
		logger.Error("Rate provider returned error status",
			slog.Int("status", resp.StatusCode),
			slog.String("message", msg),
		)
		return decimal.Zero, fmt.Errorf("%w: provider returned status %d: %s", apperrors.ErrUpstream, resp.StatusCode, msg)
	}

	var payload latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		logger.Error("Invalid JSON from rate provider", slog.String("error", err.Error()))
		return decimal.Zero, fmt.Errorf("%w: invalid response body: %v", apperrors.ErrUpstream, err)
	}

	entry, ok := payload.Data[toCode.String()]
	if !ok || entry == nil {
		logger.Error("Currency missing from rate provider response")
		return decimal.Zero, fmt.Errorf("%w: currency %s not found in response", apperrors.ErrUpstream, toCode)
	}
	if entry.Value == nil {
		logger.Error("Rate value missing from rate provider response")
		return decimal.Zero, fmt.Errorf("%w: no rate value for currency %s in response", apperrors.ErrUpstream, toCode)
	}

	return *entry.Value, nil
}

func (c *Client) buildURL(baseCode, toCode domain.CurrencyCode) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}
	q := u.Query()
	q.Set("apikey", c.apiKey)
	q.Set("base_currency", baseCode.String())
	q.Set("currencies", toCode.String())
	u.RawQuery = q.Encode()
	return u.String(), nil
}
