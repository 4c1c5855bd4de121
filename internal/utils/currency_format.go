package utils

import (
	"github.com/Rhymond/go-money"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// fallbackPrecision is used for codes the formatting table does not know.
const fallbackPrecision = 2

// FormatWithPrecision formats an amount with the given precision, keeping trailing zeros.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// FormatMoney renders an amount for display with the currency's symbol and
// digit grouping, e.g. "£1,000.00" or "-¥1,500". Codes unknown to the
// formatting table fall back to "12.34 XYZ".
func FormatMoney(amount decimal.Decimal, code domain.CurrencyCode) string {
	currency := money.GetCurrency(string(code))
	if currency == nil {
		return FormatWithPrecision(amount, fallbackPrecision) + " " + string(code)
	}
	minor := amount.Shift(int32(currency.Fraction)).Round(0).IntPart()
	return money.New(minor, currency.Code).Display()
}
