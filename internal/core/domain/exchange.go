package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeState is the lifecycle state of a quote inside the exchange engine.
type ExchangeState string

const (
	StateQuoting     ExchangeState = "QUOTING"
	StateReviewing   ExchangeState = "REVIEWING"
	StateAuthorizing ExchangeState = "AUTHORIZING"
	StateApplying    ExchangeState = "APPLYING"
	StateCommitted   ExchangeState = "COMMITTED"
	StateRejected    ExchangeState = "REJECTED"
)

// IsTerminal reports whether no further transition is possible.
func (s ExchangeState) IsTerminal() bool {
	return s == StateCommitted || s == StateRejected
}

// Quote is a proposed, not yet committed conversion. It is carried unchanged
// from quoting through review and authorization to execution.
type Quote struct {
	QuoteID      string          `json:"quoteID"`
	FromCurrency CurrencyCode    `json:"fromCurrency"`
	ToCurrency   CurrencyCode    `json:"toCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToAmount     decimal.Decimal `json:"toAmount"`
	Rate         decimal.Decimal `json:"rate"` // units of FromCurrency per one ToCurrency
	QuotedAt     time.Time       `json:"quotedAt"`
	ExpiresAt    time.Time       `json:"expiresAt"`
	State        ExchangeState   `json:"state"`
}

// SameTerms reports whether two quotes describe the same conversion.
func (q Quote) SameTerms(o Quote) bool {
	return q.QuoteID == o.QuoteID &&
		q.FromCurrency == o.FromCurrency &&
		q.ToCurrency == o.ToCurrency &&
		q.FromAmount.Equal(o.FromAmount) &&
		q.ToAmount.Equal(o.ToAmount)
}

// ExchangeResult is the outcome of applying a quote. Transaction is nil for a
// rejected quote and for a zero amount exchange.
type ExchangeResult struct {
	QuoteID      string        `json:"quoteID"`
	State        ExchangeState `json:"state"`
	Transaction  *Transaction  `json:"transaction,omitempty"`
	Reason       string        `json:"reason,omitempty"`
	ResetAmounts bool          `json:"resetAmounts"` // rejection was caused by the balance
}
