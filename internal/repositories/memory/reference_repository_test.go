package memory_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/SscSPs/fx_wallet/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrencyRepository(t *testing.T) {
	repo, err := memory.NewCurrencyRepository(memory.DefaultCurrencies)
	require.NoError(t, err)
	ctx := context.Background()

	gbp, err := repo.FindCurrencyByCode(ctx, "GBP")
	require.NoError(t, err)
	assert.Equal(t, "£", gbp.Symbol)
	assert.True(t, gbp.IsWallet)

	jpy, err := repo.FindCurrencyByCode(ctx, "JPY")
	require.NoError(t, err)
	assert.Equal(t, 0, jpy.Precision)
	assert.False(t, jpy.IsWallet)

	_, err = repo.FindCurrencyByCode(ctx, "XXX")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)

	wallet, err := repo.ListWalletCurrencies(ctx)
	require.NoError(t, err)
	codes := make([]domain.CurrencyCode, 0, len(wallet))
	for _, c := range wallet {
		codes = append(codes, c.CurrencyCode)
	}
	assert.Equal(t, []domain.CurrencyCode{"GBP", "EUR", "USD"}, codes)

	all, err := repo.ListCurrencies(ctx)
	require.NoError(t, err)
	assert.Len(t, all, len(memory.DefaultCurrencies))
	assert.Equal(t, domain.CurrencyCode("GBP"), all[0].CurrencyCode)
}

func TestNewCurrencyRepository_Invalid(t *testing.T) {
	_, err := memory.NewCurrencyRepository([]domain.Currency{{CurrencyCode: "EUR", Precision: 2}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = memory.NewCurrencyRepository([]domain.Currency{
		{CurrencyCode: "GBP", Precision: 2},
		{CurrencyCode: "GBP", Precision: 2},
	})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestExchangeRateRepository(t *testing.T) {
	repo, err := memory.NewExchangeRateRepository(memory.DefaultBaseRates)
	require.NoError(t, err)
	ctx := context.Background()

	eur, err := repo.FindBaseRate(ctx, "EUR")
	require.NoError(t, err)
	assert.True(t, dec("1.15").Equal(eur.BaseValue))

	_, err = repo.FindBaseRate(ctx, "XXX")
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)

	// Every listed currency has a rate.
	for _, c := range memory.DefaultCurrencies {
		_, err := repo.FindBaseRate(ctx, c.CurrencyCode)
		assert.NoError(t, err, c.CurrencyCode)
	}
}

func TestNewExchangeRateRepository_Invalid(t *testing.T) {
	_, err := memory.NewExchangeRateRepository([]domain.CurrencyRate{{CurrencyCode: "GBP", BaseValue: dec("2")}})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = memory.NewExchangeRateRepository([]domain.CurrencyRate{
		{CurrencyCode: "GBP", BaseValue: dec("1")},
		{CurrencyCode: "EUR", BaseValue: dec("0")},
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}
