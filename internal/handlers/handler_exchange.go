package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/dto"
	"github.com/SscSPs/fx_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// exchangeHandler drives a quote through review, authorization and execution.
type exchangeHandler struct {
	exchangeService portssvc.ExchangeSvcFacade
}

func newExchangeHandler(es portssvc.ExchangeSvcFacade) *exchangeHandler {
	return &exchangeHandler{exchangeService: es}
}

// registerExchangeRoutes registers routes related to currency exchange.
func registerExchangeRoutes(rg *gin.RouterGroup, exchangeService portssvc.ExchangeSvcFacade, pinLimiter *limiter.Limiter) {
	h := newExchangeHandler(exchangeService)

	quotes := rg.Group("/exchange/quotes")
	{
		quotes.POST("", h.createQuote)
		quotes.GET("/:quoteID", h.getQuote)
		quotes.POST("/:quoteID/review", h.reviewQuote)
		quotes.POST("/:quoteID/authorize", middleware.RateLimit(pinLimiter), h.authorizeQuote)
		quotes.POST("/:quoteID/execute", h.executeQuote)
	}
}

// createQuote godoc
// @Summary Quote an exchange
// @Description Prices an exchange from a wallet currency at the current rate. Nothing is moved until the quote is executed.
// @Tags exchange
// @Accept  json
// @Produce  json
// @Param   quote body dto.CreateQuoteRequest true "Currencies and amount"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input or unknown currency"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create quote"
// @Security BearerAuth
// @Router /exchange/quotes [post]
func (h *exchangeHandler) createQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	quote, err := h.exchangeService.CreateQuote(
		c.Request.Context(),
		domain.CurrencyCode(req.FromCurrency),
		domain.CurrencyCode(req.ToCurrency),
		req.FromAmount,
	)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create quote")
		return
	}

	c.JSON(http.StatusCreated, dto.ToQuoteResponse(quote))
}

// getQuote godoc
// @Summary Get a quote
// @Description Returns a quote with its current state
// @Tags exchange
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Quote not found"
// @Security BearerAuth
// @Router /exchange/quotes/{quoteID} [get]
func (h *exchangeHandler) getQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quote, err := h.exchangeService.GetQuote(c.Request.Context(), c.Param("quoteID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// reviewQuote godoc
// @Summary Review a quote
// @Description Records that the user confirmed the quoted terms
// @Tags exchange
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 409 {object} map[string]string "Quote is past review"
// @Security BearerAuth
// @Router /exchange/quotes/{quoteID}/review [post]
func (h *exchangeHandler) reviewQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quote, err := h.exchangeService.ReviewQuote(c.Request.Context(), c.Param("quoteID"))
	if err != nil {
		respondWithError(c, logger, err, "Failed to review quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// authorizeQuote godoc
// @Summary Authorize a quote
// @Description Checks the session PIN for a reviewed quote. A wrong PIN leaves the quote unchanged.
// @Tags exchange
// @Accept  json
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Param   credential body dto.AuthorizeQuoteRequest true "Session PIN"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "PIN rejected"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 409 {object} map[string]string "Quote has not been reviewed"
// @Failure 429 {object} map[string]string "Too many attempts"
// @Security BearerAuth
// @Router /exchange/quotes/{quoteID}/authorize [post]
func (h *exchangeHandler) authorizeQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AuthorizeQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	quote, err := h.exchangeService.AuthorizeQuote(c.Request.Context(), c.Param("quoteID"), req.PIN)
	if err != nil {
		respondWithError(c, logger, err, "Failed to authorize quote")
		return
	}
	c.JSON(http.StatusOK, dto.ToQuoteResponse(quote))
}

// executeQuote godoc
// @Summary Execute a quote
// @Description Applies an authorized quote. The body is optional; when present its terms must match the quote. Repeating the call returns the first outcome.
// @Tags exchange
// @Accept  json
// @Produce  json
// @Param   quoteID path string true "Quote ID"
// @Param   quote body dto.ExecuteQuoteRequest false "Quote terms"
// @Success 200 {object} dto.ExchangeResultResponse
// @Failure 400 {object} map[string]string "Invalid input or terms mismatch"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Quote not found"
// @Failure 409 {object} map[string]string "Quote is not authorized"
// @Failure 422 {object} dto.ExchangeResultResponse "Exchange rejected"
// @Security BearerAuth
// @Router /exchange/quotes/{quoteID}/execute [post]
func (h *exchangeHandler) executeQuote(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	quoteID := c.Param("quoteID")
	logger = logger.With(slog.String("quote_id", quoteID))

	var req dto.ExecuteQuoteRequest
	var (
		result *domain.ExchangeResult
		err    error
	)
	switch bindErr := c.ShouldBindJSON(&req); {
	case errors.Is(bindErr, io.EOF):
		result, err = h.exchangeService.ExecuteQuote(c.Request.Context(), quoteID)
	case bindErr != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + bindErr.Error()})
		return
	default:
		result, err = h.exchangeService.ExecuteExchange(c.Request.Context(), req.ToQuote(quoteID))
	}

	if result != nil && result.State == domain.StateRejected {
		status := http.StatusUnprocessableEntity
		if err != nil && !errors.Is(err, apperrors.ErrInsufficientFunds) && !errors.Is(err, apperrors.ErrStaleQuote) {
			status = statusForError(err)
		}
		logger.Warn("Exchange rejected", slog.String("reason", result.Reason))
		c.JSON(status, dto.ToExchangeResultResponse(result))
		return
	}
	if err != nil {
		respondWithError(c, logger, err, "Failed to execute quote")
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeResultResponse(result))
}
