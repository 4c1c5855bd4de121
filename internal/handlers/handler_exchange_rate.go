package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/dto"
	"github.com/SscSPs/fx_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateReaderSvc
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateReaderSvc) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateReaderSvc) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.GET("/:from/:to", h.getExchangeRate)
	}
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Description Retrieves the rate for a currency pair. With an amount it also returns the converted amount, rounded to the destination precision.
// @Tags exchange rates
// @Produce  json
// @Param   from   path  string true  "From Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   to     path  string true  "To Currency Code (3 letters)" MinLength(3) MaxLength(3)
// @Param   amount query string false "Amount of the from currency to convert"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid currency code or amount"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{from}/{to} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	fromCode := domain.CurrencyCode(strings.ToUpper(c.Param("from")))
	toCode := domain.CurrencyCode(strings.ToUpper(c.Param("to")))

	if len(fromCode) != 3 || len(toCode) != 3 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency codes must be 3 letters"})
		return
	}

	logger = logger.With(slog.String("from_code", string(fromCode)), slog.String("to_code", string(toCode)))

	rawAmount := c.Query("amount")
	if rawAmount == "" {
		rate, err := h.exchangeRateService.GetExchangeRate(c.Request.Context(), fromCode, toCode)
		if err != nil {
			respondWithError(c, logger, err, "Failed to retrieve exchange rate")
			return
		}
		c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
		return
	}

	amount, err := decimal.NewFromString(rawAmount)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Amount must be a decimal number"})
		return
	}

	converted, rate, err := h.exchangeRateService.ConvertAmount(c.Request.Context(), amount, fromCode, toCode)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ToConversionResponse(rate, amount, converted))
}
