package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/dto"
	"github.com/SscSPs/fx_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
)

type fundsHandler struct {
	fundsService portssvc.FundsSvcFacade
}

func newFundsHandler(fs portssvc.FundsSvcFacade) *fundsHandler {
	return &fundsHandler{fundsService: fs}
}

// registerFundsRoutes registers the base currency movements.
func registerFundsRoutes(rg *gin.RouterGroup, fundsService portssvc.FundsSvcFacade) {
	h := newFundsHandler(fundsService)

	funds := rg.Group("/funds")
	{
		funds.POST("/topup", h.topUp)
		funds.POST("/withdraw", h.withdraw)
		funds.POST("/transfer", h.transfer)
	}
}

// topUp godoc
// @Summary Top up an account
// @Description Credits the account in its base currency
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   funds body dto.FundsRequest true "Account and amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to top up"
// @Security BearerAuth
// @Router /funds/topup [post]
func (h *fundsHandler) topUp(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TopUp", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.fundsService.TopUp(c.Request.Context(), domain.AccountID(req.AccountID), req.Amount)
	if err != nil {
		respondWithError(c, logger, err, "Failed to top up")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// withdraw godoc
// @Summary Withdraw from an account
// @Description Debits the account in its base currency
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   funds body dto.FundsRequest true "Account and amount"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Failure 500 {object} map[string]string "Failed to withdraw"
// @Security BearerAuth
// @Router /funds/withdraw [post]
func (h *fundsHandler) withdraw(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.FundsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Withdraw", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.fundsService.Withdraw(c.Request.Context(), domain.AccountID(req.AccountID), req.Amount)
	if err != nil {
		respondWithError(c, logger, err, "Failed to withdraw")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(txn))
}

// transfer godoc
// @Summary Transfer between accounts
// @Description Moves a base currency amount between two session accounts
// @Tags funds
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Accounts and amount"
// @Success 201 {array} dto.TransactionResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 422 {object} map[string]string "Insufficient funds"
// @Failure 500 {object} map[string]string "Failed to transfer"
// @Security BearerAuth
// @Router /funds/transfer [post]
func (h *fundsHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Transfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	txns, err := h.fundsService.Transfer(c.Request.Context(), domain.AccountID(req.FromAccountID), domain.AccountID(req.ToAccountID), req.Amount)
	if err != nil {
		respondWithError(c, logger, err, "Failed to transfer")
		return
	}

	c.JSON(http.StatusCreated, dto.ToListTransactionResponse(txns))
}
