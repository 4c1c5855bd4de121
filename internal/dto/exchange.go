package dto

import (
	"time"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/SscSPs/fx_wallet/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateQuoteRequest defines the data needed to price an exchange.
type CreateQuoteRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,alpha"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,alpha,nefield=FromCurrency"`
	FromAmount   decimal.Decimal `json:"fromAmount" binding:"gt=0"`
}

// AuthorizeQuoteRequest carries the credential for the authorizer.
type AuthorizeQuoteRequest struct {
	PIN string `json:"pin" binding:"required,numeric,len=4"`
}

// ExecuteQuoteRequest optionally carries the quote terms back. When present
// they must match the priced quote.
type ExecuteQuoteRequest struct {
	FromCurrency string          `json:"fromCurrency" binding:"required,len=3,alpha"`
	ToCurrency   string          `json:"toCurrency" binding:"required,len=3,alpha"`
	FromAmount   decimal.Decimal `json:"fromAmount"`
	ToAmount     decimal.Decimal `json:"toAmount"`
}

// ToQuote builds the quote carrier for quoteID.
func (r ExecuteQuoteRequest) ToQuote(quoteID string) domain.Quote {
	return domain.Quote{
		QuoteID:      quoteID,
		FromCurrency: domain.CurrencyCode(r.FromCurrency),
		ToCurrency:   domain.CurrencyCode(r.ToCurrency),
		FromAmount:   r.FromAmount,
		ToAmount:     r.ToAmount,
	}
}

// QuoteResponse defines the data returned for a quote.
type QuoteResponse struct {
	QuoteID           string               `json:"quoteID"`
	FromCurrency      domain.CurrencyCode  `json:"fromCurrency"`
	ToCurrency        domain.CurrencyCode  `json:"toCurrency"`
	FromAmount        decimal.Decimal      `json:"fromAmount"`
	ToAmount          decimal.Decimal      `json:"toAmount"`
	Rate              decimal.Decimal      `json:"rate"`
	FromAmountDisplay string               `json:"fromAmountDisplay"`
	ToAmountDisplay   string               `json:"toAmountDisplay"`
	QuotedAt          time.Time            `json:"quotedAt"`
	ExpiresAt         time.Time            `json:"expiresAt"`
	State             domain.ExchangeState `json:"state"`
}

// ToQuoteResponse converts a domain.Quote to QuoteResponse DTO
func ToQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		QuoteID:           q.QuoteID,
		FromCurrency:      q.FromCurrency,
		ToCurrency:        q.ToCurrency,
		FromAmount:        q.FromAmount,
		ToAmount:          q.ToAmount,
		Rate:              q.Rate,
		FromAmountDisplay: utils.FormatMoney(q.FromAmount, q.FromCurrency),
		ToAmountDisplay:   utils.FormatMoney(q.ToAmount, q.ToCurrency),
		QuotedAt:          q.QuotedAt,
		ExpiresAt:         q.ExpiresAt,
		State:             q.State,
	}
}

// ExchangeResultResponse defines the outcome of executing a quote.
type ExchangeResultResponse struct {
	QuoteID      string               `json:"quoteID"`
	State        domain.ExchangeState `json:"state"`
	Transaction  *TransactionResponse `json:"transaction,omitempty"`
	Reason       string               `json:"reason,omitempty"`
	ResetAmounts bool                 `json:"resetAmounts"`
}

// ToExchangeResultResponse converts a domain.ExchangeResult to ExchangeResultResponse DTO
func ToExchangeResultResponse(r *domain.ExchangeResult) ExchangeResultResponse {
	res := ExchangeResultResponse{
		QuoteID:      r.QuoteID,
		State:        r.State,
		Reason:       r.Reason,
		ResetAmounts: r.ResetAmounts,
	}
	if r.Transaction != nil {
		txn := ToTransactionResponse(r.Transaction)
		res.Transaction = &txn
	}
	return res
}
