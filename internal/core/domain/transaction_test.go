package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_IsExchange(t *testing.T) {
	tests := []struct {
		name        string
		transaction domain.Transaction
		want        bool
	}{
		{
			name:        "top up",
			transaction: domain.Transaction{TransactionType: domain.TopUp},
			want:        false,
		},
		{
			name:        "exchange",
			transaction: domain.Transaction{TransactionType: domain.Exchange},
			want:        true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.transaction.IsExchange())
		})
	}
}

func TestTransaction_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		tx      domain.Transaction
		wantErr bool
		errMsg  string
	}{
		{
			name: "valid top up",
			tx: domain.Transaction{
				AccountID:       domain.CurrentAccount,
				TransactionType: domain.TopUp,
				Date:            now,
				Amount:          decimal.NewFromInt(100),
				CurrencyCode:    domain.BaseCurrency,
			},
		},
		{
			name: "valid exchange",
			tx: domain.Transaction{
				AccountID:       domain.CurrentAccount,
				TransactionType: domain.Exchange,
				Date:            now,
				Exchange: domain.ExchangeDetails{
					FromCurrency: "GBP",
					ToCurrency:   "EUR",
					FromAmount:   decimal.NewFromInt(100),
					ToAmount:     decimal.RequireFromString("86.96"),
				},
			},
		},
		{
			name: "unknown account",
			tx: domain.Transaction{
				AccountID:       "brokerage",
				TransactionType: domain.TopUp,
				Date:            now,
				Amount:          decimal.NewFromInt(1),
				CurrencyCode:    domain.BaseCurrency,
			},
			wantErr: true,
			errMsg:  "not a session account",
		},
		{
			name: "missing date",
			tx: domain.Transaction{
				AccountID:       domain.Savings,
				TransactionType: domain.Withdrawal,
				Amount:          decimal.NewFromInt(-5),
				CurrencyCode:    domain.BaseCurrency,
			},
			wantErr: true,
			errMsg:  "date is required",
		},
		{
			name: "zero amount",
			tx: domain.Transaction{
				AccountID:       domain.Savings,
				TransactionType: domain.Transfer,
				Date:            now,
				CurrencyCode:    domain.BaseCurrency,
			},
			wantErr: true,
			errMsg:  "must not be zero",
		},
		{
			name: "exchange into the same currency",
			tx: domain.Transaction{
				AccountID:       domain.CurrentAccount,
				TransactionType: domain.Exchange,
				Date:            now,
				Exchange: domain.ExchangeDetails{
					FromCurrency: "EUR",
					ToCurrency:   "EUR",
					FromAmount:   decimal.NewFromInt(1),
					ToAmount:     decimal.NewFromInt(1),
				},
			},
			wantErr: true,
			errMsg:  "must differ",
		},
		{
			name: "exchange with zero from amount",
			tx: domain.Transaction{
				AccountID:       domain.CurrentAccount,
				TransactionType: domain.Exchange,
				Date:            now,
				Exchange: domain.ExchangeDetails{
					FromCurrency: "GBP",
					ToCurrency:   "USD",
				},
			},
			wantErr: true,
			errMsg:  "from amount must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransactionFilter_Matches(t *testing.T) {
	savings := domain.Savings
	exchange := domain.Exchange
	txn := domain.Transaction{AccountID: domain.Savings, TransactionType: domain.TopUp}

	assert.True(t, domain.TransactionFilter{}.Matches(txn))
	assert.True(t, domain.TransactionFilter{AccountID: &savings}.Matches(txn))
	assert.False(t, domain.TransactionFilter{TransactionType: &exchange}.Matches(txn))
	assert.False(t, domain.TransactionFilter{AccountID: &savings, TransactionType: &exchange}.Matches(txn))
}

func TestTransaction_NewerThan(t *testing.T) {
	now := time.Now()
	older := domain.Transaction{Date: now.Add(-time.Minute), Sequence: 9}
	newer := domain.Transaction{Date: now, Sequence: 1}
	sameDateLater := domain.Transaction{Date: now, Sequence: 2}

	assert.True(t, newer.NewerThan(older))
	assert.False(t, older.NewerThan(newer))
	assert.True(t, sameDateLater.NewerThan(newer))
}
