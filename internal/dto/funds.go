package dto

import (
	"github.com/shopspring/decimal"
)

// FundsRequest defines a top-up or withdrawal against one account.
type FundsRequest struct {
	AccountID string          `json:"accountID" binding:"required,oneof=current savings pension"`
	Amount    decimal.Decimal `json:"amount" binding:"gt=0"`
}

// TransferRequest defines a movement between two session accounts.
type TransferRequest struct {
	FromAccountID string          `json:"fromAccountID" binding:"required,oneof=current savings pension"`
	ToAccountID   string          `json:"toAccountID" binding:"required,oneof=current savings pension,nefield=FromAccountID"`
	Amount        decimal.Decimal `json:"amount" binding:"gt=0"`
}
