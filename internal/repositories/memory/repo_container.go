package memory

import (
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
)

// NewRepositoryContainer wires the in-memory repositories around one session.
func NewRepositoryContainer(session *Session) (*portsrepo.RepositoryProvider, error) {
	currencyRepo, err := NewCurrencyRepository(DefaultCurrencies)
	if err != nil {
		return nil, err
	}
	rateRepo, err := NewExchangeRateRepository(DefaultBaseRates)
	if err != nil {
		return nil, err
	}
	return &portsrepo.RepositoryProvider{
		AccountRepo:      NewAccountRepository(session),
		CurrencyRepo:     currencyRepo,
		ExchangeRateRepo: rateRepo,
		LedgerRepo:       NewLedgerRepository(session),
		TxManager:        session,
	}, nil
}
