package repositories

import (
	"context"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
)

// CurrencyReader defines read operations for currency reference data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, code domain.CurrencyCode) (*domain.Currency, error)

	// ListCurrencies retrieves every currency quotable for exchange, in display order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListWalletCurrencies retrieves the currencies held directly as balances, in display order.
	ListWalletCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces.
// The reference table is static, so there is no writer side.
type CurrencyRepositoryFacade interface {
	CurrencyReader
}
