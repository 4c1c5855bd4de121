package services

import (
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/SscSPs/fx_wallet/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	container := &portssvc.ServiceContainer{}

	authorizer, err := NewPinAuthorizer(cfg.SessionPIN)
	if err != nil {
		return nil, err
	}
	container.Authorizer = authorizer

	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency)
	container.Account = NewAccountService(repos.AccountRepo)
	container.Ledger = NewLedgerService(repos.LedgerRepo)
	container.Funds = NewFundsService(repos.TxManager)

	// The engine is wrapped so every state transition is logged with its latency.
	container.Exchange = NewLoggingExchangeService(NewExchangeService(
		container.Currency,
		container.ExchangeRate,
		repos.TxManager,
		container.Authorizer,
		WithQuoteTTL(cfg.QuoteTTL),
	))

	return container, nil
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AccountSvcFacade      = (*accountService)(nil)
	_ portssvc.CurrencySvcFacade     = (*currencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)
	_ portssvc.LedgerSvcFacade       = (*ledgerService)(nil)
	_ portssvc.FundsSvcFacade        = (*fundsService)(nil)
	_ portssvc.ExchangeSvcFacade     = (*loggingExchangeService)(nil)
	_ portssvc.Authorizer            = (*pinAuthorizer)(nil)
)
