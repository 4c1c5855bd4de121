package services

import (
	"context"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FundsSvcFacade covers the base currency movements that sit beside exchanges:
// top-ups, withdrawals and transfers between session accounts.
type FundsSvcFacade interface {
	// TopUp credits amount to the account.
	TopUp(ctx context.Context, accountID domain.AccountID, amount decimal.Decimal) (*domain.Transaction, error)

	// Withdraw debits amount from the account.
	Withdraw(ctx context.Context, accountID domain.AccountID, amount decimal.Decimal) (*domain.Transaction, error)

	// Transfer moves amount between two accounts and returns the debit and credit records.
	Transfer(ctx context.Context, fromAccountID, toAccountID domain.AccountID, amount decimal.Decimal) ([]domain.Transaction, error)
}
