package services

import (
	"context"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Authorizer is the credential gate in front of an exchange. It only answers
// approved or denied; it never touches balances.
type Authorizer interface {
	Authorize(ctx context.Context, credential string) (bool, error)
}

// ExchangeQuoterSvc covers the steps before any balance is touched.
type ExchangeQuoterSvc interface {
	// CreateQuote prices an exchange and registers it in the QUOTING state.
	CreateQuote(ctx context.Context, fromCurrency, toCurrency domain.CurrencyCode, fromAmount decimal.Decimal) (*domain.Quote, error)

	// GetQuote returns the quote with its current state.
	GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error)

	// ReviewQuote records that the user confirmed the quoted terms.
	ReviewQuote(ctx context.Context, quoteID string) (*domain.Quote, error)

	// AuthorizeQuote passes credential through the Authorizer. A denial leaves the quote unchanged.
	AuthorizeQuote(ctx context.Context, quoteID string, credential string) (*domain.Quote, error)
}

// ExchangeExecutorSvc applies authorized quotes. Execution is at most once
// per quote: repeated calls return the first outcome.
type ExchangeExecutorSvc interface {
	// ExecuteQuote applies the registered quote.
	ExecuteQuote(ctx context.Context, quoteID string) (*domain.ExchangeResult, error)

	// ExecuteExchange applies a quote carried back by the caller. The carrier
	// must match the registered quote's terms.
	ExecuteExchange(ctx context.Context, quote domain.Quote) (*domain.ExchangeResult, error)
}

// ExchangeSvcFacade combines all exchange-related service interfaces
type ExchangeSvcFacade interface {
	ExchangeQuoterSvc
	ExchangeExecutorSvc
}
