package dto

import (
	"time"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/SscSPs/fx_wallet/internal/utils"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
// Rate is how many units of FromCurrencyCode equal one unit of ToCurrencyCode.
type ExchangeRateResponse struct {
	FromCurrencyCode       domain.CurrencyCode `json:"fromCurrencyCode"`
	ToCurrencyCode         domain.CurrencyCode `json:"toCurrencyCode"`
	Rate                   decimal.Decimal     `json:"rate"`
	DateEffective          time.Time           `json:"dateEffective"`
	Amount                 *decimal.Decimal    `json:"amount,omitempty"`
	ConvertedAmount        *decimal.Decimal    `json:"convertedAmount,omitempty"`
	ConvertedAmountDisplay string              `json:"convertedAmountDisplay,omitempty"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO
func ToExchangeRateResponse(rate *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		FromCurrencyCode: rate.FromCurrencyCode,
		ToCurrencyCode:   rate.ToCurrencyCode,
		Rate:             rate.Rate,
		DateEffective:    rate.DateEffective,
	}
}

// ToConversionResponse adds a converted amount to the rate response.
func ToConversionResponse(rate *domain.ExchangeRate, amount, converted decimal.Decimal) ExchangeRateResponse {
	res := ToExchangeRateResponse(rate)
	res.Amount = &amount
	res.ConvertedAmount = &converted
	res.ConvertedAmountDisplay = utils.FormatMoney(converted, rate.ToCurrencyCode)
	return res
}
