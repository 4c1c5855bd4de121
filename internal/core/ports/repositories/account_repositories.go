package repositories

import (
	"context"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
)

// AccountReader defines read operations for account data.
// Returned accounts are snapshots; mutating them never affects the store.
type AccountReader interface {
	// FindAccountByID retrieves an account by its identifier.
	FindAccountByID(ctx context.Context, accountID domain.AccountID) (*domain.Account, error)

	// ListAccounts retrieves every session account in display order.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountRepositoryFacade combines all account-related repository interfaces
// that are safe to hand to read-only callers.
type AccountRepositoryFacade interface {
	AccountReader
}
