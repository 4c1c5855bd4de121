package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
)

// AccountRepository serves read-only account snapshots from a Session.
type AccountRepository struct {
	session *Session
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(session *Session) portsrepo.AccountRepositoryFacade {
	return &AccountRepository{session: session}
}

func (r *AccountRepository) FindAccountByID(ctx context.Context, accountID domain.AccountID) (*domain.Account, error) {
	r.session.mu.RLock()
	defer r.session.mu.RUnlock()

	acc, ok := r.session.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, accountID)
	}
	c := acc.Clone()
	return &c, nil
}

func (r *AccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	r.session.mu.RLock()
	defer r.session.mu.RUnlock()

	accounts := make([]domain.Account, 0, len(domain.AccountIDs))
	for _, id := range domain.AccountIDs {
		accounts = append(accounts, r.session.accounts[id].Clone())
	}
	return accounts, nil
}
