package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/dto"
	"github.com/SscSPs/fx_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
)

type transactionHandler struct {
	ledgerService portssvc.LedgerReaderSvc
}

func newTransactionHandler(ls portssvc.LedgerReaderSvc) *transactionHandler {
	return &transactionHandler{ledgerService: ls}
}

// registerTransactionRoutes registers routes related to the transaction history.
func registerTransactionRoutes(rg *gin.RouterGroup, ledgerService portssvc.LedgerReaderSvc) {
	h := newTransactionHandler(ledgerService)
	rg.GET("/transactions", h.listTransactions)
}

// listTransactions godoc
// @Summary List transactions
// @Description Returns the transaction history newest first, optionally filtered by account and type
// @Tags transactions
// @Produce json
// @Param   account   query string false "Account ID" Enums(current, savings, pension)
// @Param   type      query string false "Transaction type" Enums(topup, withdrawal, transfer, exchange)
// @Param   limit     query int    false "Page size (default 20, max 100)"
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	txns, nextToken, err := h.ledgerService.ListTransactions(c.Request.Context(), params.Filter(), params.Limit, params.NextToken)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	total, err := h.ledgerService.CountTransactions(c.Request.Context(), params.Filter())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ListTransactionsResponse{
		Transactions: dto.ToListTransactionResponse(txns),
		Total:        total,
		NextToken:    nextToken,
	})
}
