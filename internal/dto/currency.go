package dto

import (
	"github.com/SscSPs/fx_wallet/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode domain.CurrencyCode `json:"currencyCode"`
	Symbol       string              `json:"symbol"`
	Name         string              `json:"name"`
	Precision    int                 `json:"precision"`
	IsWallet     bool                `json:"isWallet"`
}

// SearchCurrenciesParams defines query parameters for searching currencies.
type SearchCurrenciesParams struct {
	Query string `form:"q" binding:"max=64"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		Precision:    curr.Precision,
		IsWallet:     curr.IsWallet,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}

// CurrencyCodes extracts the codes of currencies, preserving order.
func CurrencyCodes(currencies []domain.Currency) []domain.CurrencyCode {
	codes := make([]domain.CurrencyCode, len(currencies))
	for i, c := range currencies {
		codes[i] = c.CurrencyCode
	}
	return codes
}
