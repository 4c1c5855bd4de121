package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/core/services"
	"github.com/SscSPs/fx_wallet/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	service portssvc.ExchangeRateSvcFacade
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	currencyRepo, err := memory.NewCurrencyRepository(memory.DefaultCurrencies)
	suite.Require().NoError(err)
	rateRepo, err := memory.NewExchangeRateRepository(memory.DefaultBaseRates)
	suite.Require().NoError(err)
	suite.service = services.NewExchangeRateService(rateRepo, services.NewCurrencyService(currencyRepo))
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Direction() {
	ctx := context.Background()

	rate, err := suite.service.GetExchangeRate(ctx, "GBP", "EUR")
	suite.Require().NoError(err)
	suite.True(dec("1.15").Equal(rate.Rate), "got %s", rate.Rate)
	suite.Equal(domain.CurrencyCode("GBP"), rate.FromCurrencyCode)
	suite.Equal(domain.CurrencyCode("EUR"), rate.ToCurrencyCode)

	rate, err = suite.service.GetExchangeRate(ctx, "usd", "gbp")
	suite.Require().NoError(err)
	suite.True(dec("1").Div(dec("0.79")).Equal(rate.Rate), "got %s", rate.Rate)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Identity() {
	ctx := context.Background()
	for _, c := range memory.DefaultCurrencies {
		rate, err := suite.service.GetExchangeRate(ctx, c.CurrencyCode, c.CurrencyCode)
		suite.Require().NoError(err)
		suite.True(decimal.NewFromInt(1).Equal(rate.Rate), c.CurrencyCode)
	}
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_Triangulation() {
	ctx := context.Background()
	tolerance := dec("0.000000000001")
	codes := []domain.CurrencyCode{"GBP", "EUR", "USD", "JPY", "CHF", "INR"}
	for _, a := range codes {
		for _, b := range codes {
			for _, c := range codes {
				ab, err := suite.service.GetExchangeRate(ctx, a, b)
				suite.Require().NoError(err)
				bc, err := suite.service.GetExchangeRate(ctx, b, c)
				suite.Require().NoError(err)
				ac, err := suite.service.GetExchangeRate(ctx, a, c)
				suite.Require().NoError(err)

				diff := ab.Rate.Mul(bc.Rate).Sub(ac.Rate).Abs()
				suite.True(diff.LessThan(tolerance), "%s/%s/%s off by %s", a, b, c, diff)
			}
		}
	}
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRate_UnknownCurrency() {
	ctx := context.Background()
	_, err := suite.service.GetExchangeRate(ctx, "GBP", "XXX")
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	_, err = suite.service.GetExchangeRate(ctx, "XXX", "GBP")
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount() {
	ctx := context.Background()
	tests := []struct {
		name   string
		amount string
		from   domain.CurrencyCode
		to     domain.CurrencyCode
		want   string
	}{
		{"pounds to euros", "100", "GBP", "EUR", "86.96"},
		{"euros to pounds", "86.96", "EUR", "GBP", "100.00"},
		{"rounds half up", "0.10", "EUR", "GBP", "0.12"},
		{"yen has no minor units", "100", "GBP", "JPY", "18868"},
		{"same currency", "12.345", "USD", "USD", "12.35"},
		{"zero", "0", "GBP", "EUR", "0"},
	}
	for _, tt := range tests {
		suite.Run(tt.name, func() {
			got, rate, err := suite.service.ConvertAmount(ctx, dec(tt.amount), tt.from, tt.to)
			suite.Require().NoError(err)
			suite.Require().NotNil(rate)
			suite.True(dec(tt.want).Equal(got), "want %s got %s", tt.want, got)
		})
	}
}

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount_Negative() {
	_, _, err := suite.service.ConvertAmount(context.Background(), dec("-1"), "GBP", "EUR")
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ExchangeRateServiceTestSuite) TestConvertAmount_UnknownCurrency() {
	_, _, err := suite.service.ConvertAmount(context.Background(), dec("1"), "GBP", "XXX")
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}

func TestExchangeRateService_RateRepoError(t *testing.T) {
	ctx := context.Background()
	currencyRepo, err := memory.NewCurrencyRepository(memory.DefaultCurrencies)
	assert.NoError(t, err)
	rateRepo := new(MockExchangeRateRepository)
	rateRepo.On("FindBaseRate", ctx, mock.AnythingOfType("domain.CurrencyCode")).Return(nil, assert.AnError)

	svc := services.NewExchangeRateService(rateRepo, services.NewCurrencyService(currencyRepo))
	_, err = svc.GetExchangeRate(ctx, "GBP", "EUR")

	assert.ErrorIs(t, err, assert.AnError)
	rateRepo.AssertExpectations(t)
}
