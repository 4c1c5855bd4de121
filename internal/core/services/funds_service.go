package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// baseCurrencyPrecision is the number of decimals allowed on fund movements.
const baseCurrencyPrecision = 2

type fundsService struct {
	BaseService
	txManager portsrepo.TransactionManager
	now       func() time.Time
}

// NewFundsService creates the service for base currency movements.
func NewFundsService(txManager portsrepo.TransactionManager) portssvc.FundsSvcFacade {
	return &fundsService{txManager: txManager, now: time.Now}
}

func validateFundsAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if !amount.Equal(amount.Round(baseCurrencyPrecision)) {
		return fmt.Errorf("%w: amount allows at most %d decimal places", apperrors.ErrValidation, baseCurrencyPrecision)
	}
	return nil
}

// move applies one signed, already validated base currency delta and records it.
func (s *fundsService) move(ctx context.Context, accountID domain.AccountID, amount decimal.Decimal, txnType domain.TransactionType, notes string) (*domain.Transaction, error) {
	var recorded domain.Transaction
	err := s.txManager.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		if err := tx.ApplyDelta(domain.BalanceDelta{
			AccountID:    accountID,
			CurrencyCode: domain.BaseCurrency,
			Amount:       amount,
		}); err != nil {
			return err
		}
		var err error
		recorded, err = tx.AppendTransaction(domain.Transaction{
			AccountID:       accountID,
			TransactionType: txnType,
			Date:            s.now(),
			Amount:          amount,
			CurrencyCode:    domain.BaseCurrency,
			Notes:           notes,
		})
		return err
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Funds moved",
		slog.String("account_id", string(accountID)),
		slog.String("type", string(txnType)),
		slog.String("amount", amount.String()),
		slog.String("transaction_id", recorded.TransactionID))
	return &recorded, nil
}

func (s *fundsService) TopUp(ctx context.Context, accountID domain.AccountID, amount decimal.Decimal) (*domain.Transaction, error) {
	if err := validateFundsAmount(amount); err != nil {
		return nil, err
	}
	return s.move(ctx, accountID, amount, domain.TopUp, "Top up")
}

func (s *fundsService) Withdraw(ctx context.Context, accountID domain.AccountID, amount decimal.Decimal) (*domain.Transaction, error) {
	if err := validateFundsAmount(amount); err != nil {
		return nil, err
	}
	return s.move(ctx, accountID, amount.Neg(), domain.Withdrawal, "Withdrawal")
}

func (s *fundsService) Transfer(ctx context.Context, fromAccountID, toAccountID domain.AccountID, amount decimal.Decimal) ([]domain.Transaction, error) {
	if err := validateFundsAmount(amount); err != nil {
		return nil, err
	}
	if fromAccountID == toAccountID {
		return nil, fmt.Errorf("%w: cannot transfer from an account to itself", apperrors.ErrValidation)
	}

	recorded := make([]domain.Transaction, 0, 2)
	err := s.txManager.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		from, err := tx.FindAccountByID(fromAccountID)
		if err != nil {
			return err
		}
		to, err := tx.FindAccountByID(toAccountID)
		if err != nil {
			return err
		}
		if err := tx.ApplyDelta(domain.BalanceDelta{AccountID: from.AccountID, CurrencyCode: domain.BaseCurrency, Amount: amount.Neg()}); err != nil {
			return err
		}
		if err := tx.ApplyDelta(domain.BalanceDelta{AccountID: to.AccountID, CurrencyCode: domain.BaseCurrency, Amount: amount}); err != nil {
			return err
		}

		date := s.now()
		debit, err := tx.AppendTransaction(domain.Transaction{
			AccountID: from.AccountID, TransactionType: domain.Transfer, Date: date,
			Amount: amount.Neg(), CurrencyCode: domain.BaseCurrency, Notes: "To " + to.Name,
		})
		if err != nil {
			return err
		}
		credit, err := tx.AppendTransaction(domain.Transaction{
			AccountID: to.AccountID, TransactionType: domain.Transfer, Date: date,
			Amount: amount, CurrencyCode: domain.BaseCurrency, Notes: "From " + from.Name,
		})
		if err != nil {
			return err
		}
		recorded = append(recorded, debit, credit)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Funds transferred",
		slog.String("from_account_id", string(fromAccountID)),
		slog.String("to_account_id", string(toAccountID)),
		slog.String("amount", amount.String()))
	return recorded, nil
}
