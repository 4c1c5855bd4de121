package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/dto"
	"github.com/SscSPs/fx_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
)

// accountHandler serves read-only account snapshots.
type accountHandler struct {
	accountService  portssvc.AccountReaderSvc
	currencyService portssvc.CurrencyReaderSvc
}

func newAccountHandler(as portssvc.AccountReaderSvc, cs portssvc.CurrencyReaderSvc) *accountHandler {
	return &accountHandler{accountService: as, currencyService: cs}
}

// registerAccountRoutes registers routes related to accounts.
func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountReaderSvc, currencyService portssvc.CurrencyReaderSvc) {
	h := newAccountHandler(accountService, currencyService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
	}
}

func (h *accountHandler) walletOrder(c *gin.Context) ([]domain.CurrencyCode, error) {
	wallet, err := h.currencyService.ListWalletCurrencies(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return dto.CurrencyCodes(wallet), nil
}

// listAccounts godoc
// @Summary List accounts
// @Description Returns a snapshot of every session account with formatted balances
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list accounts"
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list accounts")
		return
	}
	order, err := h.walletOrder(c)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts, order))
}

// getAccount godoc
// @Summary Get an account
// @Description Returns a snapshot of one session account
// @Tags accounts
// @Produce json
// @Param   accountID path string true "Account ID" Enums(current, savings, pension)
// @Success 200 {object} dto.AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Account not found"
// @Failure 500 {object} map[string]string "Failed to retrieve account"
// @Security BearerAuth
// @Router /accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	accountID := domain.AccountID(c.Param("accountID"))
	logger = logger.With(slog.String("account_id", string(accountID)))

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownAccount) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Account not found"})
			return
		}
		respondWithError(c, logger, err, "Failed to retrieve account")
		return
	}
	order, err := h.walletOrder(c)
	if err != nil {
		respondWithError(c, logger, err, "Failed to retrieve account")
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(account, order))
}
