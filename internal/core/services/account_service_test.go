package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	"github.com/SscSPs/fx_wallet/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountService(t *testing.T) {
	ctx := context.Background()
	svc := services.NewAccountService(newSessionRepos().AccountRepo)

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 3)
	assert.True(t, dec("250.00").Equal(accounts[domain.CurrentAccount].Balance("EUR")))
	assert.True(t, dec("4200.00").Equal(accounts[domain.Savings].PrimaryBalance))
	assert.False(t, accounts[domain.Pension].HasCurrencyBalances())

	acc, err := svc.GetAccountByID(ctx, domain.Savings)
	require.NoError(t, err)
	assert.Equal(t, "Savings", acc.Name)

	_, err = svc.GetAccountByID(ctx, "brokerage")
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccount)
}

func TestPinAuthorizer(t *testing.T) {
	authorizer, err := services.NewPinAuthorizer("4821")
	require.NoError(t, err)

	ok, err := authorizer.Authorize(context.Background(), "4821")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = authorizer.Authorize(context.Background(), "0000")
	require.NoError(t, err)
	assert.False(t, ok)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = authorizer.Authorize(ctx, "4821")
	assert.ErrorIs(t, err, context.Canceled)
}
