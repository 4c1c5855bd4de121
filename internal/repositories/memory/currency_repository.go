package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
)

// DefaultCurrencies is the reference table loaded at process start, in
// display order. Wallet currencies come first.
var DefaultCurrencies = []domain.Currency{
	{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Precision: 2, IsWallet: true},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2, IsWallet: true},
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2, IsWallet: true},
	{CurrencyCode: "AED", Symbol: "د.إ", Name: "UAE Dirham", Precision: 2},
	{CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar", Precision: 2},
	{CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar", Precision: 2},
	{CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc", Precision: 2},
	{CurrencyCode: "HKD", Symbol: "HK$", Name: "Hong Kong Dollar", Precision: 2},
	{CurrencyCode: "INR", Symbol: "₹", Name: "Indian Rupee", Precision: 2},
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Precision: 0},
	{CurrencyCode: "NOK", Symbol: "kr", Name: "Norwegian Krone", Precision: 2},
	{CurrencyCode: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar", Precision: 2},
	{CurrencyCode: "PLN", Symbol: "zł", Name: "Polish Zloty", Precision: 2},
	{CurrencyCode: "SEK", Symbol: "kr", Name: "Swedish Krona", Precision: 2},
	{CurrencyCode: "SGD", Symbol: "S$", Name: "Singapore Dollar", Precision: 2},
	{CurrencyCode: "ZAR", Symbol: "R", Name: "South African Rand", Precision: 2},
}

// CurrencyRepository is the static currency reference table. It is never
// written after construction, so reads need no locking.
type CurrencyRepository struct {
	ordered []domain.Currency
	byCode  map[domain.CurrencyCode]domain.Currency
}

// NewCurrencyRepository creates a reference table from currencies.
func NewCurrencyRepository(currencies []domain.Currency) (portsrepo.CurrencyRepositoryFacade, error) {
	r := &CurrencyRepository{
		ordered: make([]domain.Currency, 0, len(currencies)),
		byCode:  make(map[domain.CurrencyCode]domain.Currency, len(currencies)),
	}
	for _, c := range currencies {
		if _, dup := r.byCode[c.CurrencyCode]; dup {
			return nil, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicate, c.CurrencyCode)
		}
		if c.Precision < 0 {
			return nil, fmt.Errorf("%w: currency %s has negative precision", apperrors.ErrValidation, c.CurrencyCode)
		}
		r.ordered = append(r.ordered, c)
		r.byCode[c.CurrencyCode] = c
	}
	if _, ok := r.byCode[domain.BaseCurrency]; !ok {
		return nil, fmt.Errorf("%w: base currency %s is not registered", apperrors.ErrValidation, domain.BaseCurrency)
	}
	return r, nil
}

func (r *CurrencyRepository) FindCurrencyByCode(ctx context.Context, code domain.CurrencyCode) (*domain.Currency, error) {
	c, ok := r.byCode[code]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, code)
	}
	return &c, nil
}

func (r *CurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	out := make([]domain.Currency, len(r.ordered))
	copy(out, r.ordered)
	return out, nil
}

func (r *CurrencyRepository) ListWalletCurrencies(ctx context.Context) ([]domain.Currency, error) {
	var out []domain.Currency
	for _, c := range r.ordered {
		if c.IsWallet {
			out = append(out, c)
		}
	}
	return out, nil
}
