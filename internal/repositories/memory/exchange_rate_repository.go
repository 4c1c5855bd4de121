package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// DefaultBaseRates holds the GBP value of one unit of each currency.
var DefaultBaseRates = []domain.CurrencyRate{
	{CurrencyCode: "GBP", BaseValue: decimal.NewFromInt(1)},
	{CurrencyCode: "EUR", BaseValue: decimal.RequireFromString("1.15")},
	{CurrencyCode: "USD", BaseValue: decimal.RequireFromString("0.79")},
	{CurrencyCode: "AED", BaseValue: decimal.RequireFromString("0.215")},
	{CurrencyCode: "AUD", BaseValue: decimal.RequireFromString("0.52")},
	{CurrencyCode: "CAD", BaseValue: decimal.RequireFromString("0.58")},
	{CurrencyCode: "CHF", BaseValue: decimal.RequireFromString("0.89")},
	{CurrencyCode: "HKD", BaseValue: decimal.RequireFromString("0.101")},
	{CurrencyCode: "INR", BaseValue: decimal.RequireFromString("0.0095")},
	{CurrencyCode: "JPY", BaseValue: decimal.RequireFromString("0.0053")},
	{CurrencyCode: "NOK", BaseValue: decimal.RequireFromString("0.073")},
	{CurrencyCode: "NZD", BaseValue: decimal.RequireFromString("0.47")},
	{CurrencyCode: "PLN", BaseValue: decimal.RequireFromString("0.195")},
	{CurrencyCode: "SEK", BaseValue: decimal.RequireFromString("0.074")},
	{CurrencyCode: "SGD", BaseValue: decimal.RequireFromString("0.59")},
	{CurrencyCode: "ZAR", BaseValue: decimal.RequireFromString("0.043")},
}

// ExchangeRateRepository is the static base rate table.
type ExchangeRateRepository struct {
	rates map[domain.CurrencyCode]domain.CurrencyRate
}

// NewExchangeRateRepository creates a base rate table. Every value must be
// positive and the base currency must be worth exactly one.
func NewExchangeRateRepository(rates []domain.CurrencyRate) (portsrepo.ExchangeRateRepositoryFacade, error) {
	r := &ExchangeRateRepository{rates: make(map[domain.CurrencyCode]domain.CurrencyRate, len(rates))}
	for _, rate := range rates {
		if !rate.BaseValue.IsPositive() {
			return nil, fmt.Errorf("%w: base value for %s must be positive", apperrors.ErrValidation, rate.CurrencyCode)
		}
		if _, dup := r.rates[rate.CurrencyCode]; dup {
			return nil, fmt.Errorf("%w: base rate for %s", apperrors.ErrDuplicate, rate.CurrencyCode)
		}
		r.rates[rate.CurrencyCode] = rate
	}
	base, ok := r.rates[domain.BaseCurrency]
	if !ok || !base.BaseValue.Equal(decimal.NewFromInt(1)) {
		return nil, fmt.Errorf("%w: base currency %s must have a base value of 1", apperrors.ErrValidation, domain.BaseCurrency)
	}
	return r, nil
}

func (r *ExchangeRateRepository) FindBaseRate(ctx context.Context, code domain.CurrencyCode) (*domain.CurrencyRate, error) {
	rate, ok := r.rates[code]
	if !ok {
		return nil, fmt.Errorf("%w: no base rate for %s", apperrors.ErrUnknownCurrency, code)
	}
	return &rate, nil
}
