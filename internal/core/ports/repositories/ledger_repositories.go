package repositories

import (
	"context"
	"iter"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
)

// LedgerReader defines read operations for the transaction ledger
type LedgerReader interface {
	// QueryTransactions returns the matching transactions, newest first. The
	// sequence walks a snapshot taken when QueryTransactions is called.
	QueryTransactions(ctx context.Context, filter domain.TransactionFilter) (iter.Seq[domain.Transaction], error)

	// CountTransactions returns the number of records matching filter.
	CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error)
}

// LedgerRepositoryFacade combines all ledger-related repository interfaces.
// Appending is only possible through a unit of work (see TransactionManager).
type LedgerRepositoryFacade interface {
	LedgerReader
}
