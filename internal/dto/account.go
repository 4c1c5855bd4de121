package dto

import (
	"slices"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/SscSPs/fx_wallet/internal/utils"
	"github.com/shopspring/decimal"
)

// BalanceLineResponse is one currency line of an account.
type BalanceLineResponse struct {
	CurrencyCode   domain.CurrencyCode `json:"currencyCode"`
	Balance        decimal.Decimal     `json:"balance"`
	BalanceDisplay string              `json:"balanceDisplay"`
}

// AccountResponse defines the data returned for an account.
// Balances is only present for accounts that hold several currencies.
type AccountResponse struct {
	AccountID             domain.AccountID      `json:"accountID"`
	Name                  string                `json:"name"`
	PrimaryBalance        decimal.Decimal       `json:"primaryBalance"`
	PrimaryBalanceDisplay string                `json:"primaryBalanceDisplay"`
	Balances              []BalanceLineResponse `json:"balances,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO.
// Lines follow walletOrder, then any other held currency by code.
func ToAccountResponse(acc *domain.Account, walletOrder []domain.CurrencyCode) AccountResponse {
	res := AccountResponse{
		AccountID:             acc.AccountID,
		Name:                  acc.Name,
		PrimaryBalance:        acc.PrimaryBalance,
		PrimaryBalanceDisplay: utils.FormatMoney(acc.PrimaryBalance, domain.BaseCurrency),
	}
	if !acc.HasCurrencyBalances() {
		return res
	}

	codes := slices.Clone(walletOrder)
	extra := make([]domain.CurrencyCode, 0)
	for code := range acc.CurrencyBalances {
		if !slices.Contains(walletOrder, code) {
			extra = append(extra, code)
		}
	}
	slices.Sort(extra)
	codes = append(codes, extra...)

	res.Balances = make([]BalanceLineResponse, 0, len(codes))
	for _, code := range codes {
		bal := acc.Balance(code)
		res.Balances = append(res.Balances, BalanceLineResponse{
			CurrencyCode:   code,
			Balance:        bal,
			BalanceDisplay: utils.FormatMoney(bal, code),
		})
	}
	return res
}

// ToListAccountResponse converts the account snapshot map to a slice in display order.
func ToListAccountResponse(accounts map[domain.AccountID]domain.Account, walletOrder []domain.CurrencyCode) []AccountResponse {
	res := make([]AccountResponse, 0, len(accounts))
	for _, id := range domain.AccountIDs {
		acc, ok := accounts[id]
		if !ok {
			continue
		}
		res = append(res, ToAccountResponse(&acc, walletOrder))
	}
	return res
}
