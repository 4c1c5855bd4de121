package memory

import (
	"context"
	"iter"
	"sort"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
)

// LedgerRepository serves queries over the append-only ledger of a Session.
type LedgerRepository struct {
	session *Session
}

// NewLedgerRepository creates a new LedgerRepository.
func NewLedgerRepository(session *Session) portsrepo.LedgerRepositoryFacade {
	return &LedgerRepository{session: session}
}

// QueryTransactions copies the matching records under the read lock, orders
// them newest first and hands back an iterator over that copy.
func (r *LedgerRepository) QueryTransactions(ctx context.Context, filter domain.TransactionFilter) (iter.Seq[domain.Transaction], error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.session.mu.RLock()
	matched := make([]domain.Transaction, 0, len(r.session.ledger))
	for _, txn := range r.session.ledger {
		if filter.Matches(txn) {
			matched = append(matched, txn)
		}
	}
	r.session.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].NewerThan(matched[j])
	})

	return func(yield func(domain.Transaction) bool) {
		for _, txn := range matched {
			if !yield(txn) {
				return
			}
		}
	}, nil
}

func (r *LedgerRepository) CountTransactions(ctx context.Context, filter domain.TransactionFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.session.mu.RLock()
	defer r.session.mu.RUnlock()
	count := 0
	for _, txn := range r.session.ledger {
		if filter.Matches(txn) {
			count++
		}
	}
	return count, nil
}
