package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
)

// Session owns the mutable state of one user session: the three accounts and
// the ledger. A single RWMutex guards both so that a unit of work becomes
// visible to readers in one step.
type Session struct {
	mu       sync.RWMutex
	accounts map[domain.AccountID]domain.Account
	ledger   []domain.Transaction
	nextSeq  int64
}

// NewSession builds a session from seed data. Every seeded account must
// satisfy the account invariants and every seeded transaction must be well formed.
func NewSession(seed Seed) (*Session, error) {
	s := &Session{
		accounts: make(map[domain.AccountID]domain.Account, len(domain.AccountIDs)),
		nextSeq:  1,
	}
	for _, acc := range seed.Accounts {
		if err := acc.Validate(); err != nil {
			return nil, fmt.Errorf("%w: seed account: %v", apperrors.ErrValidation, err)
		}
		if _, dup := s.accounts[acc.AccountID]; dup {
			return nil, fmt.Errorf("%w: seed account %s", apperrors.ErrDuplicate, acc.AccountID)
		}
		s.accounts[acc.AccountID] = acc.Clone()
	}
	for _, id := range domain.AccountIDs {
		if _, ok := s.accounts[id]; !ok {
			return nil, fmt.Errorf("%w: seed is missing account %s", apperrors.ErrValidation, id)
		}
	}
	for _, txn := range seed.Transactions {
		if err := txn.Validate(); err != nil {
			return nil, fmt.Errorf("%w: seed transaction: %v", apperrors.ErrValidation, err)
		}
		s.ledger = append(s.ledger, s.stamp(txn))
	}
	return s, nil
}

// stamp assigns the next sequence number and ID. Callers hold the write lock.
func (s *Session) stamp(txn domain.Transaction) domain.Transaction {
	txn.Sequence = s.nextSeq
	txn.TransactionID = transactionID(s.nextSeq)
	s.nextSeq++
	return txn
}

func transactionID(seq int64) string {
	return fmt.Sprintf("TXN-%06d", seq)
}

// RunInTx stages fn's changes on a copy of the accounts and swaps them in,
// together with the staged ledger records, only if fn returns nil.
func (s *Session) RunInTx(ctx context.Context, fn func(tx portsrepo.SessionTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &sessionTx{
		session:  s,
		accounts: make(map[domain.AccountID]domain.Account, len(s.accounts)),
		nextSeq:  s.nextSeq,
	}
	for id, acc := range s.accounts {
		tx.accounts[id] = acc.Clone()
	}

	if err := fn(tx); err != nil {
		return err
	}

	s.accounts = tx.accounts
	s.ledger = append(s.ledger, tx.pending...)
	s.nextSeq = tx.nextSeq
	return nil
}

// sessionTx is the staging area of one RunInTx call.
type sessionTx struct {
	session  *Session
	accounts map[domain.AccountID]domain.Account
	pending  []domain.Transaction
	nextSeq  int64
}

var _ portsrepo.SessionTx = (*sessionTx)(nil)

func (tx *sessionTx) FindAccountByID(accountID domain.AccountID) (*domain.Account, error) {
	acc, ok := tx.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, accountID)
	}
	c := acc.Clone()
	return &c, nil
}

func (tx *sessionTx) ApplyDelta(delta domain.BalanceDelta) error {
	acc, ok := tx.accounts[delta.AccountID]
	if !ok {
		return fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, delta.AccountID)
	}
	if !acc.HasCurrencyBalances() && delta.CurrencyCode != domain.BaseCurrency {
		return fmt.Errorf("%w: account %s only holds %s", apperrors.ErrValidation, delta.AccountID, domain.BaseCurrency)
	}

	next := acc.Balance(delta.CurrencyCode).Add(delta.Amount)
	if next.IsNegative() {
		return fmt.Errorf("%w: account %s has %s %s, cannot apply %s",
			apperrors.ErrInsufficientFunds, delta.AccountID, acc.Balance(delta.CurrencyCode), delta.CurrencyCode, delta.Amount)
	}

	if acc.HasCurrencyBalances() {
		acc.CurrencyBalances[delta.CurrencyCode] = next
	}
	if delta.CurrencyCode == domain.BaseCurrency {
		acc.PrimaryBalance = next
	}
	tx.accounts[delta.AccountID] = acc
	return nil
}

func (tx *sessionTx) AppendTransaction(txn domain.Transaction) (domain.Transaction, error) {
	if err := txn.Validate(); err != nil {
		return domain.Transaction{}, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if _, ok := tx.accounts[txn.AccountID]; !ok {
		return domain.Transaction{}, fmt.Errorf("%w: %s", apperrors.ErrUnknownAccount, txn.AccountID)
	}
	txn.Sequence = tx.nextSeq
	txn.TransactionID = transactionID(tx.nextSeq)
	tx.nextSeq++
	tx.pending = append(tx.pending, txn)
	return txn, nil
}
