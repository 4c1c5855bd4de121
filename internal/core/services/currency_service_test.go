package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/core/services"
	"github.com/SscSPs/fx_wallet/internal/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NormalizesCode() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyCode: "EUR", Symbol: "€", Precision: 2}
	suite.mockRepo.On("FindCurrencyByCode", ctx, domain.CurrencyCode("EUR")).Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, " eur ")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Unknown() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, domain.CurrencyCode("XXX")).Return(nil, apperrors.ErrUnknownCurrency).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_RepoError() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, assert.AnError).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Nil(currencies)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CurrencyServiceTestSuite) TestListWalletCurrencies_EmptyIsNotNil() {
	ctx := context.Background()
	suite.mockRepo.On("ListWalletCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListWalletCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestSearchCurrencies() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx).Return(memory.DefaultCurrencies, nil)

	byCode, err := suite.service.SearchCurrencies(ctx, "jp")
	suite.Require().NoError(err)
	suite.Require().Len(byCode, 1)
	suite.Equal(domain.CurrencyCode("JPY"), byCode[0].CurrencyCode)

	byName, err := suite.service.SearchCurrencies(ctx, "DOLLAR")
	suite.Require().NoError(err)
	codes := make([]domain.CurrencyCode, 0, len(byName))
	for _, c := range byName {
		codes = append(codes, c.CurrencyCode)
	}
	suite.ElementsMatch([]domain.CurrencyCode{"USD", "AUD", "CAD", "HKD", "NZD", "SGD"}, codes)

	all, err := suite.service.SearchCurrencies(ctx, "  ")
	suite.Require().NoError(err)
	suite.Len(all, len(memory.DefaultCurrencies))

	none, err := suite.service.SearchCurrencies(ctx, "bitcoin")
	suite.Require().NoError(err)
	suite.Empty(none)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
