package domain

import "github.com/shopspring/decimal"

// CurrencyCode is an ISO 4217 style currency identifier (e.g. "GBP").
type CurrencyCode string

// BaseCurrency is the settlement currency. The primary balance of an account
// always mirrors its BaseCurrency line.
const BaseCurrency CurrencyCode = "GBP"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode CurrencyCode `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string       `json:"symbol"`       // e.g., "$"
	Name         string       `json:"name"`         // e.g., "US Dollar"
	Precision    int          `json:"precision"`    // Decimal places used when rounding amounts
	IsWallet     bool         `json:"isWallet"`     // Held directly as a balance line on the current account
}

// CurrencyRate is an entry of the base rate table: the value, in BaseCurrency,
// of one unit of CurrencyCode.
type CurrencyRate struct {
	CurrencyCode CurrencyCode    `json:"currencyCode"`
	BaseValue    decimal.Decimal `json:"baseValue"`
}
