package repositories

import (
	"context"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
)

// SessionTx is a unit of work over the account store and the ledger. Changes
// staged through it become visible to readers together, or not at all.
type SessionTx interface {
	// FindAccountByID returns the account as staged so far in this unit of work.
	FindAccountByID(accountID domain.AccountID) (*domain.Account, error)

	// ApplyDelta is the only balance mutation primitive. A delta that would
	// take the balance below zero fails with apperrors.ErrInsufficientFunds
	// and stages nothing.
	ApplyDelta(delta domain.BalanceDelta) error

	// AppendTransaction stages a ledger record and returns its assigned ID.
	AppendTransaction(txn domain.Transaction) (domain.Transaction, error)
}

// TransactionManager runs units of work. fn's changes are committed when it
// returns nil and discarded otherwise.
type TransactionManager interface {
	RunInTx(ctx context.Context, fn func(tx SessionTx) error) error
}
