package services

import (
	"context"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a snapshot of one account.
	GetAccountByID(ctx context.Context, accountID domain.AccountID) (*domain.Account, error)

	// ListAccounts retrieves a snapshot of every session account keyed by id.
	ListAccounts(ctx context.Context) (map[domain.AccountID]domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces.
// There is no writer: balances change only through the
// exchange and funds services.
type AccountSvcFacade interface {
	AccountReaderSvc
}
