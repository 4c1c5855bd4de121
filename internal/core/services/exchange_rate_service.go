package services

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// exchangeRateService derives every pairwise rate from the base rate table,
// so Rate(a,b) * Rate(b,c) equals Rate(a,c) up to division precision.
type exchangeRateService struct {
	BaseService
	rateRepo    portsrepo.ExchangeRateReader
	currencySvc portssvc.CurrencyReaderSvc
	now         func() time.Time
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateReader, currencySvc portssvc.CurrencyReaderSvc) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
		now:         time.Now,
	}
}

// pair resolves both currencies and their base values.
func (s *exchangeRateService) pair(ctx context.Context, fromCode, toCode domain.CurrencyCode) (to *domain.Currency, fromBase, toBase decimal.Decimal, err error) {
	if _, err = s.currencySvc.GetCurrencyByCode(ctx, fromCode); err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	if to, err = s.currencySvc.GetCurrencyByCode(ctx, toCode); err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	fromRate, err := s.rateRepo.FindBaseRate(ctx, normalizeCode(fromCode))
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	toRate, err := s.rateRepo.FindBaseRate(ctx, normalizeCode(toCode))
	if err != nil {
		return nil, decimal.Zero, decimal.Zero, err
	}
	return to, fromRate.BaseValue, toRate.BaseValue, nil
}

// GetExchangeRate returns how many units of fromCode equal one unit of toCode.
func (s *exchangeRateService) GetExchangeRate(ctx context.Context, fromCode, toCode domain.CurrencyCode) (*domain.ExchangeRate, error) {
	fromCode, toCode = normalizeCode(fromCode), normalizeCode(toCode)
	_, fromBase, toBase, err := s.pair(ctx, fromCode, toCode)
	if err != nil {
		return nil, err
	}

	rate := decimal.NewFromInt(1)
	if fromCode != toCode {
		rate = toBase.Div(fromBase)
	}
	return &domain.ExchangeRate{
		FromCurrencyCode: fromCode,
		ToCurrencyCode:   toCode,
		Rate:             rate,
		DateEffective:    s.now(),
	}, nil
}

// ConvertAmount prices fromAmount in toCurrency. The result is computed at
// full precision and rounded once, half up, to toCurrency's precision.
func (s *exchangeRateService) ConvertAmount(ctx context.Context, fromAmount decimal.Decimal, fromCurrency, toCurrency domain.CurrencyCode) (decimal.Decimal, *domain.ExchangeRate, error) {
	if fromAmount.IsNegative() {
		return decimal.Zero, nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}
	fromCurrency, toCurrency = normalizeCode(fromCurrency), normalizeCode(toCurrency)

	to, fromBase, toBase, err := s.pair(ctx, fromCurrency, toCurrency)
	if err != nil {
		return decimal.Zero, nil, err
	}
	rate := &domain.ExchangeRate{
		FromCurrencyCode: fromCurrency,
		ToCurrencyCode:   toCurrency,
		Rate:             decimal.NewFromInt(1),
		DateEffective:    s.now(),
	}

	precision := int32(to.Precision)
	if fromCurrency == toCurrency {
		return fromAmount.Round(precision), rate, nil
	}
	rate.Rate = toBase.Div(fromBase)
	if fromAmount.IsZero() {
		return decimal.Zero, rate, nil
	}
	return fromAmount.Mul(fromBase).DivRound(toBase, precision), rate, nil
}
