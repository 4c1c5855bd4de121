package services

import (
	"context"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, code domain.CurrencyCode) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies quotable for exchange.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ListWalletCurrencies retrieves the currencies held as balance lines.
	ListWalletCurrencies(ctx context.Context) ([]domain.Currency, error)

	// SearchCurrencies matches query against currency codes and names, case-insensitively.
	SearchCurrencies(ctx context.Context, query string) ([]domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetExchangeRate returns how many units of fromCode equal one unit of toCode.
	GetExchangeRate(ctx context.Context, fromCode, toCode domain.CurrencyCode) (*domain.ExchangeRate, error)

	// ConvertAmount returns the amount of toCurrency received for fromAmount
	// units of fromCurrency, rounded to toCurrency's precision.
	ConvertAmount(ctx context.Context, fromAmount decimal.Decimal, fromCurrency, toCurrency domain.CurrencyCode) (decimal.Decimal, *domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
}
