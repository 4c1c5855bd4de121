package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates the kind of operation recorded in the ledger.
type TransactionType string

const (
	TopUp      TransactionType = "topup"
	Withdrawal TransactionType = "withdrawal"
	Transfer   TransactionType = "transfer"
	Exchange   TransactionType = "exchange"
)

// IsValid reports whether t is a known transaction type.
func (t TransactionType) IsValid() bool {
	switch t {
	case TopUp, Withdrawal, Transfer, Exchange:
		return true
	}
	return false
}

// Label is the human readable name of the transaction type.
func (t TransactionType) Label() string {
	switch t {
	case TopUp:
		return "Top up"
	case Withdrawal:
		return "Withdrawal"
	case Transfer:
		return "Transfer"
	case Exchange:
		return "Exchange"
	}
	return ""
}

// ExchangeDetails holds the two legs of an exchange transaction.
type ExchangeDetails struct {
	FromCurrency CurrencyCode    `json:"fromCurrency"`
	ToCurrency   CurrencyCode    `json:"toCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToAmount     decimal.Decimal `json:"toAmount"`
	Rate         decimal.Decimal `json:"rate"`
}

// Transaction is an immutable ledger record of a completed operation.
// Amount and CurrencyCode are set for non-exchange types (positive = credit,
// negative = debit); Exchange is set only for the exchange type.
type Transaction struct {
	TransactionID   string          `json:"transactionID"`
	Sequence        int64           `json:"sequence"`
	AccountID       AccountID       `json:"accountID"`
	TransactionType TransactionType `json:"transactionType"`
	Date            time.Time       `json:"date"`
	Amount          decimal.Decimal `json:"amount"`
	CurrencyCode    CurrencyCode    `json:"currencyCode"`
	Notes           string          `json:"notes"`
	Exchange        ExchangeDetails `json:"exchange"`
}

// IsExchange reports whether the transaction records a currency exchange.
func (t Transaction) IsExchange() bool {
	return t.TransactionType == Exchange
}

// Validate checks that the record is well formed before it is appended.
func (t Transaction) Validate() error {
	if !t.AccountID.IsValid() {
		return errors.New("transaction account is not a session account")
	}
	if !t.TransactionType.IsValid() {
		return errors.New("transaction type is invalid")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}
	if t.IsExchange() {
		if t.Exchange.FromCurrency == "" || t.Exchange.ToCurrency == "" {
			return errors.New("exchange currencies are required")
		}
		if t.Exchange.FromCurrency == t.Exchange.ToCurrency {
			return errors.New("exchange currencies must differ")
		}
		if !t.Exchange.FromAmount.IsPositive() {
			return errors.New("exchange from amount must be positive")
		}
		if t.Exchange.ToAmount.IsNegative() {
			return errors.New("exchange to amount must not be negative")
		}
		return nil
	}
	if t.CurrencyCode == "" {
		return errors.New("transaction currency is required")
	}
	if t.Amount.IsZero() {
		return errors.New("transaction amount must not be zero")
	}
	return nil
}

// TransactionFilter narrows a ledger query. Nil fields match everything.
type TransactionFilter struct {
	AccountID       *AccountID
	TransactionType *TransactionType
}

// Matches reports whether txn passes the filter.
func (f TransactionFilter) Matches(txn Transaction) bool {
	if f.AccountID != nil && txn.AccountID != *f.AccountID {
		return false
	}
	if f.TransactionType != nil && txn.TransactionType != *f.TransactionType {
		return false
	}
	return true
}

// NewerThan orders transactions for display: later date first, and for equal
// dates the later sequence first.
func (t Transaction) NewerThan(o Transaction) bool {
	if !t.Date.Equal(o.Date) {
		return t.Date.After(o.Date)
	}
	return t.Sequence > o.Sequence
}
