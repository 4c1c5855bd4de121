package memory

import (
	"time"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Seed is the initial state of a session.
type Seed struct {
	Accounts     []domain.Account
	Transactions []domain.Transaction
}

// DefaultSeed returns the demo session: funded accounts plus a short history
// dated relative to now.
func DefaultSeed(now time.Time) Seed {
	d := decimal.RequireFromString
	day := 24 * time.Hour
	return Seed{
		Accounts: []domain.Account{
			{
				AccountID:      domain.CurrentAccount,
				Name:           "Current Account",
				PrimaryBalance: d("1000.00"),
				CurrencyBalances: map[domain.CurrencyCode]decimal.Decimal{
					"GBP": d("1000.00"),
					"EUR": d("250.00"),
					"USD": d("120.00"),
				},
			},
			{AccountID: domain.Savings, Name: "Savings", PrimaryBalance: d("4200.00")},
			{AccountID: domain.Pension, Name: "Pension", PrimaryBalance: d("18250.00")},
		},
		Transactions: []domain.Transaction{
			{
				AccountID: domain.CurrentAccount, TransactionType: domain.TopUp,
				Date: now.Add(-9 * day), Amount: d("1500.00"), CurrencyCode: domain.BaseCurrency,
				Notes: "Salary",
			},
			{
				AccountID: domain.CurrentAccount, TransactionType: domain.Transfer,
				Date: now.Add(-8 * day), Amount: d("-200.00"), CurrencyCode: domain.BaseCurrency,
				Notes: "To Savings",
			},
			{
				AccountID: domain.Savings, TransactionType: domain.Transfer,
				Date: now.Add(-8 * day), Amount: d("200.00"), CurrencyCode: domain.BaseCurrency,
				Notes: "From Current Account",
			},
			{
				AccountID: domain.CurrentAccount, TransactionType: domain.Withdrawal,
				Date: now.Add(-5 * day), Amount: d("-60.00"), CurrencyCode: domain.BaseCurrency,
				Notes: "Cash withdrawal",
			},
			{
				AccountID: domain.Pension, TransactionType: domain.TopUp,
				Date: now.Add(-3 * day), Amount: d("250.00"), CurrencyCode: domain.BaseCurrency,
				Notes: "Monthly contribution",
			},
			{
				AccountID: domain.CurrentAccount, TransactionType: domain.Withdrawal,
				Date: now.Add(-1 * day), Amount: d("-40.00"), CurrencyCode: domain.BaseCurrency,
				Notes: "Groceries",
			},
		},
	}
}
