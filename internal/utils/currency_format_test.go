package utils_test

import (
	"testing"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/SscSPs/fx_wallet/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithPrecision(t *testing.T) {
	tests := []struct {
		name      string
		amount    string
		precision int
		want      string
	}{
		{"rounds to two places", "12.3456", 2, "12.35"},
		{"keeps trailing zeros", "250", 2, "250.00"},
		{"no minor units", "18867.9", 0, "18868"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := utils.FormatWithPrecision(decimal.RequireFromString(tt.amount), tt.precision)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		amount string
		code   domain.CurrencyCode
		want   string
	}{
		{"1000", "GBP", "£1,000.00"},
		{"86.96", "EUR", "€86.96"},
		{"-40", "GBP", "-£40.00"},
		{"18868", "JPY", "¥18,868"},
		{"1.5", "XYZ", "1.50 XYZ"},
		{"2.345", "XYZ", "2.35 XYZ"},
	}
	for _, tt := range tests {
		t.Run(string(tt.code)+" "+tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatMoney(decimal.RequireFromString(tt.amount), tt.code))
		})
	}
}
