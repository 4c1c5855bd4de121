package services

import (
	"context"
	"fmt"
	"iter"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/utils/pagination"
)

type ledgerService struct {
	BaseService
	ledgerRepo portsrepo.LedgerReader
}

// NewLedgerService creates a read-only view of the transaction ledger.
func NewLedgerService(repo portsrepo.LedgerReader) portssvc.LedgerSvcFacade {
	return &ledgerService{ledgerRepo: repo}
}

func (s *ledgerService) Transactions(ctx context.Context, filter domain.TransactionFilter) (iter.Seq[domain.Transaction], error) {
	return s.ledgerRepo.QueryTransactions(ctx, filter)
}

func (s *ledgerService) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error) {
	count, err := s.ledgerRepo.CountTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count ledger records")
		return 0, err
	}
	return count, nil
}

// ListTransactions walks the ledger newest first, skips everything up to and
// including the cursor record and returns at most limit records.
func (s *ledgerService) ListTransactions(ctx context.Context, filter domain.TransactionFilter, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	limit = pagination.NormalizeLimit(limit)

	var cursor *domain.Transaction
	if nextToken != nil && *nextToken != "" {
		date, seq, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		cursor = &domain.Transaction{Date: date, Sequence: seq}
	}

	seq, err := s.ledgerRepo.QueryTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to query ledger")
		return nil, nil, err
	}

	page := make([]domain.Transaction, 0, limit)
	hasMore := false
	for txn := range seq {
		if cursor != nil && !cursor.NewerThan(txn) {
			continue
		}
		if len(page) == limit {
			hasMore = true
			break
		}
		page = append(page, txn)
	}

	if !hasMore {
		return page, nil, nil
	}
	last := page[len(page)-1]
	token := pagination.EncodeToken(last.Date, last.Sequence)
	return page, &token, nil
}
