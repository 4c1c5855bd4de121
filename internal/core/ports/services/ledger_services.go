package services

import (
	"context"
	"iter"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
)

// LedgerReaderSvc defines read operations for the transaction history
type LedgerReaderSvc interface {
	// Transactions returns the matching records lazily, newest first.
	Transactions(ctx context.Context, filter domain.TransactionFilter) (iter.Seq[domain.Transaction], error)

	// ListTransactions returns one page of matching records, newest first,
	// and the token for the next page (nil on the last page).
	ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error)

	// CountTransactions returns how many records match filter.
	CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error)
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
}
