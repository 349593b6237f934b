package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/currency_converter/internal/apperrors"
	portssvc "github.com/SscSPs/currency_converter/internal/core/ports/services"
	"github.com/SscSPs/currency_converter/internal/dto"
	"github.com/SscSPs/currency_converter/internal/middleware"
	"github.com/gin-gonic/gin"
)

// converterHandler handles HTTP requests related to currency conversion.
type converterHandler struct {
	converterService portssvc.ConverterSvcFacade
}

// newConverterHandler creates a new converterHandler.
func newConverterHandler(cs portssvc.ConverterSvcFacade) *converterHandler {
	return &converterHandler{
		converterService: cs,
	}
}

// registerConverterRoutes registers routes related to currency conversion.
func registerConverterRoutes(rg gin.IRoutes, converterService portssvc.ConverterSvcFacade) {
	h := newConverterHandler(converterService)

	rg.GET("/converter", h.convert)
	rg.GET("/currencies", h.listCurrencies)
}

// convert godoc
// @Summary Convert between two currencies
// @Description Returns the latest rate from base-currency to to-currency and, when amount is given, the converted amount rounded to 2 decimal places. Only USD, GBP and EUR are supported (case-insensitive).
// @Tags converter
// @Produce  json
// @Param   base-currency query string true  "Base currency (ISO 4217)" Enums(USD, GBP, EUR)
// @Param   to-currency   query string true  "Target currency (ISO 4217)" Enums(USD, GBP, EUR)
// @Param   amount        query number false "Amount in the base currency"
// @Success 200 {object} dto.ConversionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid currency code or amount"
// @Failure 502 {object} dto.ErrorResponse "Rate provider failure"
// @Router /converter [get]
func (h *converterHandler) convert(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userInput := dto.UserInputFromQuery(c.Request.URL.Query())

	var q dto.ConversionQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid currency query parameters", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:     dto.InvalidCurrencyError,
			Notes:     dto.InvalidCurrencyNotes,
			UserInput: userInput,
		})
		return
	}

	var amount *string
	if raw, ok := c.GetQuery("amount"); ok {
		amount = &raw
	}

	result, err := h.converterService.Convert(c.Request.Context(), q.ToConversionRequest(amount))
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidCurrency):
			logger.Warn("Validation error converting currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.InvalidCurrencyError, Notes: dto.InvalidCurrencyNotes, UserInput: userInput})
		case errors.Is(err, apperrors.ErrInvalidAmount):
			logger.Warn("Validation error converting currency", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.InvalidAmountError, Notes: dto.InvalidAmountNotes, UserInput: userInput})
		case errors.Is(err, apperrors.ErrUpstream):
			logger.Error("Rate provider failure", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: dto.UpstreamError, Notes: dto.UpstreamNotes, UserInput: userInput})
		default:
			logger.Error("Failed to convert currency", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to convert currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(result, userInput))
}

// listCurrencies godoc
// @Summary List supported currencies
// @Description Returns the ISO 4217 codes accepted by the converter
// @Tags converter
// @Produce  json
// @Success 200 {object} dto.CurrencyListResponse
// @Router /currencies [get]
func (h *converterHandler) listCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, dto.ToCurrencyListResponse(h.converterService.ListCurrencies(c.Request.Context())))
}
