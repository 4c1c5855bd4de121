package dto

import (
	"time"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/SscSPs/fx_wallet/internal/utils"
	"github.com/shopspring/decimal"
)

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	AccountID       string  `form:"account" binding:"omitempty,oneof=current savings pension"`
	TransactionType string  `form:"type" binding:"omitempty,oneof=topup withdrawal transfer exchange"`
	Limit           int     `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken       *string `form:"nextToken"`
}

// Filter converts the query parameters into a ledger filter.
func (p ListTransactionsParams) Filter() domain.TransactionFilter {
	var filter domain.TransactionFilter
	if p.AccountID != "" {
		id := domain.AccountID(p.AccountID)
		filter.AccountID = &id
	}
	if p.TransactionType != "" {
		t := domain.TransactionType(p.TransactionType)
		filter.TransactionType = &t
	}
	return filter
}

// ExchangeDetailsResponse holds both legs of an exchange record.
type ExchangeDetailsResponse struct {
	FromCurrency      domain.CurrencyCode `json:"fromCurrency"`
	ToCurrency        domain.CurrencyCode `json:"toCurrency"`
	FromAmount        decimal.Decimal     `json:"fromAmount"`
	ToAmount          decimal.Decimal     `json:"toAmount"`
	Rate              decimal.Decimal     `json:"rate"`
	FromAmountDisplay string              `json:"fromAmountDisplay"`
	ToAmountDisplay   string              `json:"toAmountDisplay"`
}

// TransactionResponse defines the data returned for a ledger record.
type TransactionResponse struct {
	TransactionID   string                   `json:"transactionID"`
	AccountID       domain.AccountID         `json:"accountID"`
	TransactionType domain.TransactionType   `json:"transactionType"`
	TypeLabel       string                   `json:"typeLabel"`
	Date            time.Time                `json:"date"`
	Amount          *decimal.Decimal         `json:"amount,omitempty"`
	CurrencyCode    domain.CurrencyCode      `json:"currencyCode,omitempty"`
	AmountDisplay   string                   `json:"amountDisplay,omitempty"`
	Notes           string                   `json:"notes"`
	Exchange        *ExchangeDetailsResponse `json:"exchange,omitempty"`
}

// ListTransactionsResponse is one page of the transaction history.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	res := TransactionResponse{
		TransactionID:   txn.TransactionID,
		AccountID:       txn.AccountID,
		TransactionType: txn.TransactionType,
		TypeLabel:       txn.TransactionType.Label(),
		Date:            txn.Date,
		Notes:           txn.Notes,
	}
	if txn.IsExchange() {
		ex := txn.Exchange
		res.Exchange = &ExchangeDetailsResponse{
			FromCurrency:      ex.FromCurrency,
			ToCurrency:        ex.ToCurrency,
			FromAmount:        ex.FromAmount,
			ToAmount:          ex.ToAmount,
			Rate:              ex.Rate,
			FromAmountDisplay: utils.FormatMoney(ex.FromAmount, ex.FromCurrency),
			ToAmountDisplay:   utils.FormatMoney(ex.ToAmount, ex.ToCurrency),
		}
		return res
	}
	amount := txn.Amount
	res.Amount = &amount
	res.CurrencyCode = txn.CurrencyCode
	res.AmountDisplay = utils.FormatMoney(txn.Amount, txn.CurrencyCode)
	return res
}

// ToListTransactionResponse converts a slice of domain.Transaction to a slice of TransactionResponse DTOs
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		res[i] = ToTransactionResponse(&txn)
	}
	return res
}
