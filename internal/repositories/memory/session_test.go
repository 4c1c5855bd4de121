package memory_test

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
	"github.com/SscSPs/fx_wallet/internal/repositories/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestSession(t *testing.T) (*memory.Session, *portsrepo.RepositoryProvider) {
	t.Helper()
	session, err := memory.NewSession(memory.DefaultSeed(testNow))
	require.NoError(t, err)
	repos, err := memory.NewRepositoryContainer(session)
	require.NoError(t, err)
	return session, repos
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewSession_RejectsBrokenSeed(t *testing.T) {
	seed := memory.DefaultSeed(testNow)
	seed.Accounts = seed.Accounts[:2]
	_, err := memory.NewSession(seed)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	seed = memory.DefaultSeed(testNow)
	seed.Accounts[0].PrimaryBalance = dec("999.00")
	_, err = memory.NewSession(seed)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	seed = memory.DefaultSeed(testNow)
	seed.Accounts = append(seed.Accounts, seed.Accounts[1])
	_, err = memory.NewSession(seed)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	seed = memory.DefaultSeed(testNow)
	seed.Transactions[0].Amount = decimal.Zero
	_, err = memory.NewSession(seed)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestRunInTx_CommitsDeltasAndRecords(t *testing.T) {
	session, repos := newTestSession(t)
	ctx := context.Background()
	before, err := repos.LedgerRepo.CountTransactions(ctx, domain.TransactionFilter{})
	require.NoError(t, err)

	var appended domain.Transaction
	err = session.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		if err := tx.ApplyDelta(domain.BalanceDelta{AccountID: domain.CurrentAccount, CurrencyCode: "GBP", Amount: dec("-100.00")}); err != nil {
			return err
		}
		if err := tx.ApplyDelta(domain.BalanceDelta{AccountID: domain.CurrentAccount, CurrencyCode: "JPY", Amount: dec("18868")}); err != nil {
			return err
		}
		appended, err = tx.AppendTransaction(domain.Transaction{
			AccountID:       domain.CurrentAccount,
			TransactionType: domain.Exchange,
			Date:            testNow,
			Exchange: domain.ExchangeDetails{
				FromCurrency: "GBP", ToCurrency: "JPY",
				FromAmount: dec("100.00"), ToAmount: dec("18868"), Rate: dec("0.0053"),
			},
		})
		return err
	})
	require.NoError(t, err)

	acc, err := repos.AccountRepo.FindAccountByID(ctx, domain.CurrentAccount)
	require.NoError(t, err)
	assert.True(t, dec("900.00").Equal(acc.Balance("GBP")))
	assert.True(t, dec("900.00").Equal(acc.PrimaryBalance))
	assert.True(t, dec("18868").Equal(acc.Balance("JPY")))

	after, err := repos.LedgerRepo.CountTransactions(ctx, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, before+1, after)
	assert.Equal(t, "TXN-000007", appended.TransactionID)
}

func TestRunInTx_RollsBackOnError(t *testing.T) {
	session, repos := newTestSession(t)
	ctx := context.Background()
	before, err := repos.AccountRepo.ListAccounts(ctx)
	require.NoError(t, err)
	count, err := repos.LedgerRepo.CountTransactions(ctx, domain.TransactionFilter{})
	require.NoError(t, err)

	boom := errors.New("boom")
	err = session.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		require.NoError(t, tx.ApplyDelta(domain.BalanceDelta{AccountID: domain.CurrentAccount, CurrencyCode: "GBP", Amount: dec("-10.00")}))
		_, err := tx.AppendTransaction(domain.Transaction{
			AccountID: domain.CurrentAccount, TransactionType: domain.Withdrawal,
			Date: testNow, Amount: dec("-10.00"), CurrencyCode: "GBP",
		})
		require.NoError(t, err)
		return boom
	})
	assert.ErrorIs(t, err, boom)

	after, err := repos.AccountRepo.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	countAfter, err := repos.LedgerRepo.CountTransactions(ctx, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Equal(t, count, countAfter)
}

func TestApplyDelta_Rules(t *testing.T) {
	session, repos := newTestSession(t)
	ctx := context.Background()

	err := session.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		return tx.ApplyDelta(domain.BalanceDelta{AccountID: domain.CurrentAccount, CurrencyCode: "EUR", Amount: dec("-250.01")})
	})
	assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)

	err = session.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		return tx.ApplyDelta(domain.BalanceDelta{AccountID: domain.Savings, CurrencyCode: "EUR", Amount: dec("1.00")})
	})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = session.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		return tx.ApplyDelta(domain.BalanceDelta{AccountID: "brokerage", CurrencyCode: "GBP", Amount: dec("1.00")})
	})
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccount)

	err = session.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		return tx.ApplyDelta(domain.BalanceDelta{AccountID: domain.CurrentAccount, CurrencyCode: "EUR", Amount: dec("-250.00")})
	})
	require.NoError(t, err)
	acc, err := repos.AccountRepo.FindAccountByID(ctx, domain.CurrentAccount)
	require.NoError(t, err)
	assert.True(t, acc.Balance("EUR").IsZero())
	assert.NoError(t, acc.Validate())
}

func TestRunInTx_CancelledContext(t *testing.T) {
	session, _ := newTestSession(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	called := false
	err := session.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestRunInTx_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	session, repos := newTestSession(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	succeeded := 0
	for range 30 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := session.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
				return tx.ApplyDelta(domain.BalanceDelta{AccountID: domain.CurrentAccount, CurrencyCode: "USD", Amount: dec("-10.00")})
			})
			if err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 12, succeeded)
	acc, err := repos.AccountRepo.FindAccountByID(ctx, domain.CurrentAccount)
	require.NoError(t, err)
	assert.True(t, acc.Balance("USD").IsZero())
}

func TestAccountRepository_ReturnsCopies(t *testing.T) {
	_, repos := newTestSession(t)
	ctx := context.Background()

	acc, err := repos.AccountRepo.FindAccountByID(ctx, domain.CurrentAccount)
	require.NoError(t, err)
	acc.CurrencyBalances["GBP"] = dec("0")

	again, err := repos.AccountRepo.FindAccountByID(ctx, domain.CurrentAccount)
	require.NoError(t, err)
	assert.True(t, dec("1000.00").Equal(again.Balance("GBP")))

	_, err = repos.AccountRepo.FindAccountByID(ctx, "brokerage")
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccount)

	all, err := repos.AccountRepo.ListAccounts(ctx)
	require.NoError(t, err)
	ids := make([]domain.AccountID, 0, len(all))
	for _, a := range all {
		ids = append(ids, a.AccountID)
	}
	assert.Equal(t, domain.AccountIDs, ids)
}

func TestLedgerRepository_OrderAndFilter(t *testing.T) {
	_, repos := newTestSession(t)
	ctx := context.Background()

	seq, err := repos.LedgerRepo.QueryTransactions(ctx, domain.TransactionFilter{})
	require.NoError(t, err)
	all := slices.Collect(seq)
	require.Len(t, all, 6)
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1].NewerThan(all[i]), "record %d out of order", i)
	}
	assert.Equal(t, "Groceries", all[0].Notes)
	// Equal dates: the later record comes first.
	assert.Equal(t, "TXN-000003", all[3].TransactionID)
	assert.Equal(t, "TXN-000002", all[4].TransactionID)

	account := domain.Savings
	seq, err = repos.LedgerRepo.QueryTransactions(ctx, domain.TransactionFilter{AccountID: &account})
	require.NoError(t, err)
	savings := slices.Collect(seq)
	require.Len(t, savings, 1)
	assert.Equal(t, domain.Savings, savings[0].AccountID)

	txnType := domain.Withdrawal
	seq, err = repos.LedgerRepo.QueryTransactions(ctx, domain.TransactionFilter{TransactionType: &txnType})
	require.NoError(t, err)
	assert.Len(t, slices.Collect(seq), 2)
	count, err := repos.LedgerRepo.CountTransactions(ctx, domain.TransactionFilter{TransactionType: &txnType})
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	txnType = domain.Exchange
	seq, err = repos.LedgerRepo.QueryTransactions(ctx, domain.TransactionFilter{TransactionType: &txnType})
	require.NoError(t, err)
	assert.Empty(t, slices.Collect(seq))
}

func TestLedgerRepository_SnapshotIgnoresLaterAppends(t *testing.T) {
	session, repos := newTestSession(t)
	ctx := context.Background()

	seq, err := repos.LedgerRepo.QueryTransactions(ctx, domain.TransactionFilter{})
	require.NoError(t, err)

	require.NoError(t, session.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		_, err := tx.AppendTransaction(domain.Transaction{
			AccountID: domain.Savings, TransactionType: domain.TopUp,
			Date: testNow, Amount: dec("5.00"), CurrencyCode: "GBP",
		})
		return err
	}))

	assert.Len(t, slices.Collect(seq), 6)
	again, err := repos.LedgerRepo.QueryTransactions(ctx, domain.TransactionFilter{})
	require.NoError(t, err)
	assert.Len(t, slices.Collect(again), 7)
}
