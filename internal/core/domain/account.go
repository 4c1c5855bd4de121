package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// AccountID identifies one of the fixed session accounts.
type AccountID string

const (
	CurrentAccount AccountID = "current"
	Savings        AccountID = "savings"
	Pension        AccountID = "pension"
)

// AccountIDs lists the session accounts in display order.
var AccountIDs = []AccountID{CurrentAccount, Savings, Pension}

// IsValid reports whether id is one of the fixed session accounts.
func (id AccountID) IsValid() bool {
	switch id {
	case CurrentAccount, Savings, Pension:
		return true
	}
	return false
}

// Account represents a financial account within the core domain.
// CurrencyBalances is only populated for the current account.
type Account struct {
	AccountID        AccountID                        `json:"accountID"`
	Name             string                           `json:"name"`
	PrimaryBalance   decimal.Decimal                  `json:"primaryBalance"`
	CurrencyBalances map[CurrencyCode]decimal.Decimal `json:"currencyBalances,omitempty"`
}

// HasCurrencyBalances reports whether the account keeps a per-currency breakdown.
func (a Account) HasCurrencyBalances() bool {
	return a.CurrencyBalances != nil
}

// Balance returns the balance held in the given currency. Untracked
// currencies hold zero.
func (a Account) Balance(code CurrencyCode) decimal.Decimal {
	if !a.HasCurrencyBalances() {
		if code == BaseCurrency {
			return a.PrimaryBalance
		}
		return decimal.Zero
	}
	return a.CurrencyBalances[code]
}

// Clone returns a deep copy so callers can never reach the store's maps.
func (a Account) Clone() Account {
	c := a
	if a.CurrencyBalances != nil {
		c.CurrencyBalances = make(map[CurrencyCode]decimal.Decimal, len(a.CurrencyBalances))
		for code, bal := range a.CurrencyBalances {
			c.CurrencyBalances[code] = bal
		}
	}
	return c
}

// Validate checks the account invariants: known id, no negative balance and
// a primary balance equal to the base currency line.
func (a Account) Validate() error {
	if !a.AccountID.IsValid() {
		return fmt.Errorf("unknown account id %q", a.AccountID)
	}
	if a.PrimaryBalance.IsNegative() {
		return fmt.Errorf("account %s: primary balance %s is negative", a.AccountID, a.PrimaryBalance)
	}
	if !a.HasCurrencyBalances() {
		return nil
	}
	for code, bal := range a.CurrencyBalances {
		if bal.IsNegative() {
			return fmt.Errorf("account %s: %s balance %s is negative", a.AccountID, code, bal)
		}
	}
	if !a.PrimaryBalance.Equal(a.CurrencyBalances[BaseCurrency]) {
		return fmt.Errorf("account %s: primary balance %s does not match %s balance %s",
			a.AccountID, a.PrimaryBalance, BaseCurrency, a.CurrencyBalances[BaseCurrency])
	}
	return nil
}

// BalanceDelta is a signed change to one currency line of one account.
type BalanceDelta struct {
	AccountID    AccountID
	CurrencyCode CurrencyCode
	Amount       decimal.Decimal
}
