package repositories

import (
	"context"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
)

// ExchangeRateReader defines read operations over the base rate table
type ExchangeRateReader interface {
	// FindBaseRate retrieves the base currency value of one unit of code.
	FindBaseRate(ctx context.Context, code domain.CurrencyCode) (*domain.CurrencyRate, error)
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
}
