package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a quoted rate between two currencies: how many units of
// FromCurrencyCode equal one unit of ToCurrencyCode.
type ExchangeRate struct {
	FromCurrencyCode CurrencyCode    `json:"fromCurrencyCode"`
	ToCurrencyCode   CurrencyCode    `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
}
