package domain_test

import (
	"testing"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestAccount_Validate(t *testing.T) {
	tests := []struct {
		name    string
		account domain.Account
		errMsg  string
	}{
		{
			name: "current account in sync",
			account: domain.Account{
				AccountID:      domain.CurrentAccount,
				PrimaryBalance: decimal.NewFromInt(1000),
				CurrencyBalances: map[domain.CurrencyCode]decimal.Decimal{
					"GBP": decimal.NewFromInt(1000),
					"EUR": decimal.NewFromInt(25),
				},
			},
		},
		{
			name:    "savings without breakdown",
			account: domain.Account{AccountID: domain.Savings, PrimaryBalance: decimal.NewFromInt(5)},
		},
		{
			name: "primary out of sync with GBP line",
			account: domain.Account{
				AccountID:        domain.CurrentAccount,
				PrimaryBalance:   decimal.NewFromInt(10),
				CurrencyBalances: map[domain.CurrencyCode]decimal.Decimal{"GBP": decimal.NewFromInt(9)},
			},
			errMsg: "does not match",
		},
		{
			name: "negative currency line",
			account: domain.Account{
				AccountID:      domain.CurrentAccount,
				PrimaryBalance: decimal.Zero,
				CurrencyBalances: map[domain.CurrencyCode]decimal.Decimal{
					"GBP": decimal.Zero,
					"USD": decimal.NewFromInt(-1),
				},
			},
			errMsg: "negative",
		},
		{
			name:    "unknown id",
			account: domain.Account{AccountID: "isa"},
			errMsg:  "unknown account id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.account.Validate()
			if tt.errMsg == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.errMsg)
		})
	}
}

func TestAccount_CloneIsDeep(t *testing.T) {
	acc := domain.Account{
		AccountID:        domain.CurrentAccount,
		CurrencyBalances: map[domain.CurrencyCode]decimal.Decimal{"GBP": decimal.NewFromInt(1)},
	}
	clone := acc.Clone()
	clone.CurrencyBalances["GBP"] = decimal.NewFromInt(99)

	assert.True(t, acc.CurrencyBalances["GBP"].Equal(decimal.NewFromInt(1)))
}

func TestAccount_Balance(t *testing.T) {
	savings := domain.Account{AccountID: domain.Savings, PrimaryBalance: decimal.NewFromInt(7)}
	assert.True(t, savings.Balance("GBP").Equal(decimal.NewFromInt(7)))
	assert.True(t, savings.Balance("EUR").IsZero())

	current := domain.Account{
		AccountID:        domain.CurrentAccount,
		CurrencyBalances: map[domain.CurrencyCode]decimal.Decimal{"EUR": decimal.NewFromInt(3)},
	}
	assert.True(t, current.Balance("EUR").Equal(decimal.NewFromInt(3)))
	assert.True(t, current.Balance("JPY").IsZero())
}
