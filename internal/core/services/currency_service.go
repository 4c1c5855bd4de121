package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

// normalizeCode upper-cases and trims a caller supplied currency code.
func normalizeCode(code domain.CurrencyCode) domain.CurrencyCode {
	return domain.CurrencyCode(strings.ToUpper(strings.TrimSpace(string(code))))
}

func (s *currencyService) GetCurrencyByCode(ctx context.Context, code domain.CurrencyCode) (*domain.Currency, error) {
	code = normalizeCode(code)
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrUnknownCurrency) {
			s.LogError(ctx, err, "Failed to find currency", slog.String("currency_code", string(code)))
		}
		return nil, err
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *currencyService) ListWalletCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListWalletCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wallet currencies in service: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// SearchCurrencies returns currencies whose code starts with query or whose
// name contains it. An empty query returns every currency.
func (s *currencyService) SearchCurrencies(ctx context.Context, query string) ([]domain.Currency, error) {
	all, err := s.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}
	matches := make([]domain.Currency, 0)
	for _, c := range all {
		if strings.HasPrefix(strings.ToLower(string(c.CurrencyCode)), q) ||
			strings.Contains(strings.ToLower(c.Name), q) {
			matches = append(matches, c)
		}
	}
	return matches, nil
}
