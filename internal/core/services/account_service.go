package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
)

type accountService struct {
	BaseService
	accountRepo portsrepo.AccountReader
}

// NewAccountService creates a read-only account service.
func NewAccountService(repo portsrepo.AccountReader) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: repo}
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID domain.AccountID) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// Unknown ids are an expected outcome, not worth an error log.
		if !errors.Is(err, apperrors.ErrUnknownAccount) {
			s.LogError(ctx, err, "Failed to find account by ID in repository", slog.String("account_id", string(accountID)))
		}
		return nil, err
	}
	return account, nil
}

func (s *accountService) ListAccounts(ctx context.Context) (map[domain.AccountID]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	out := make(map[domain.AccountID]domain.Account, len(accounts))
	for _, acc := range accounts {
		out[acc.AccountID] = acc
	}
	return out, nil
}
