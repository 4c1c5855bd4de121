package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/SscSPs/fx_wallet/internal/apperrors"
	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portsrepo "github.com/SscSPs/fx_wallet/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	defaultQuoteTTL       = 5 * time.Minute
	defaultQuoteRetention = 24 * time.Hour
)

// quoteEntry is the engine's record of one quote. result and err are set
// once the quote reaches a terminal state and are returned on every later
// execution attempt.
type quoteEntry struct {
	quote  domain.Quote
	result *domain.ExchangeResult
	err    error
}

// exchangeService drives quotes through
// QUOTING -> REVIEWING -> AUTHORIZING -> APPLYING -> COMMITTED | REJECTED.
type exchangeService struct {
	BaseService
	currencySvc portssvc.CurrencyReaderSvc
	rateSvc     portssvc.ExchangeRateReaderSvc
	txManager   portsrepo.TransactionManager
	authorizer  portssvc.Authorizer

	quoteTTL  time.Duration
	retention time.Duration
	now       func() time.Time

	// applyMu makes re-validation and commit of a quote one critical section.
	applyMu sync.Mutex
	mu      sync.Mutex
	quotes  map[string]*quoteEntry
}

// ExchangeOption is a functional option for configuring the exchange service
type ExchangeOption func(*exchangeService)

// WithQuoteTTL sets how long a quote stays executable.
func WithQuoteTTL(ttl time.Duration) ExchangeOption {
	return func(s *exchangeService) {
		if ttl > 0 {
			s.quoteTTL = ttl
		}
	}
}

// WithQuoteRetention sets how long quotes are remembered after they were priced.
func WithQuoteRetention(d time.Duration) ExchangeOption {
	return func(s *exchangeService) {
		if d > 0 {
			s.retention = d
		}
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) ExchangeOption {
	return func(s *exchangeService) {
		s.now = now
	}
}

// NewExchangeService creates the exchange engine.
func NewExchangeService(
	currencySvc portssvc.CurrencyReaderSvc,
	rateSvc portssvc.ExchangeRateReaderSvc,
	txManager portsrepo.TransactionManager,
	authorizer portssvc.Authorizer,
	options ...ExchangeOption,
) portssvc.ExchangeSvcFacade {
	svc := &exchangeService{
		currencySvc: currencySvc,
		rateSvc:     rateSvc,
		txManager:   txManager,
		authorizer:  authorizer,
		quoteTTL:    defaultQuoteTTL,
		retention:   defaultQuoteRetention,
		now:         time.Now,
		quotes:      make(map[string]*quoteEntry),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeSvcFacade = (*exchangeService)(nil)

func (s *exchangeService) CreateQuote(ctx context.Context, fromCurrency, toCurrency domain.CurrencyCode, fromAmount decimal.Decimal) (*domain.Quote, error) {
	if fromAmount.IsNegative() {
		return nil, fmt.Errorf("%w: amount must not be negative", apperrors.ErrValidation)
	}

	from, err := s.currencySvc.GetCurrencyByCode(ctx, fromCurrency)
	if err != nil {
		return nil, err
	}
	if !from.IsWallet {
		return nil, fmt.Errorf("%w: %s is not held in the wallet", apperrors.ErrValidation, from.CurrencyCode)
	}
	to, err := s.currencySvc.GetCurrencyByCode(ctx, toCurrency)
	if err != nil {
		return nil, err
	}
	if from.CurrencyCode == to.CurrencyCode {
		return nil, fmt.Errorf("%w: cannot exchange %s to itself", apperrors.ErrValidation, from.CurrencyCode)
	}
	if !fromAmount.Equal(fromAmount.Round(int32(from.Precision))) {
		return nil, fmt.Errorf("%w: %s amounts allow at most %d decimal places", apperrors.ErrValidation, from.CurrencyCode, from.Precision)
	}

	toAmount, rate, err := s.rateSvc.ConvertAmount(ctx, fromAmount, from.CurrencyCode, to.CurrencyCode)
	if err != nil {
		return nil, err
	}

	now := s.now()
	quote := domain.Quote{
		QuoteID:      uuid.NewString(),
		FromCurrency: from.CurrencyCode,
		ToCurrency:   to.CurrencyCode,
		FromAmount:   fromAmount,
		ToAmount:     toAmount,
		Rate:         rate.Rate,
		QuotedAt:     now,
		ExpiresAt:    now.Add(s.quoteTTL),
		State:        domain.StateQuoting,
	}

	s.mu.Lock()
	s.pruneLocked(now)
	s.quotes[quote.QuoteID] = &quoteEntry{quote: quote}
	s.mu.Unlock()

	s.LogDebug(ctx, "Quote created",
		slog.String("quote_id", quote.QuoteID),
		slog.String("from", string(quote.FromCurrency)),
		slog.String("to", string(quote.ToCurrency)),
		slog.String("from_amount", quote.FromAmount.String()),
		slog.String("to_amount", quote.ToAmount.String()))
	return &quote, nil
}

// pruneLocked forgets quotes priced before the retention window. Callers hold mu.
func (s *exchangeService) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.retention)
	for id, entry := range s.quotes {
		if entry.quote.QuotedAt.Before(cutoff) {
			delete(s.quotes, id)
		}
	}
}

// entryLocked looks up a quote. Callers hold mu.
func (s *exchangeService) entryLocked(quoteID string) (*quoteEntry, error) {
	entry, ok := s.quotes[quoteID]
	if !ok {
		return nil, fmt.Errorf("%w: quote %s", apperrors.ErrNotFound, quoteID)
	}
	return entry, nil
}

func (s *exchangeService) GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.entryLocked(quoteID)
	if err != nil {
		return nil, err
	}
	quote := entry.quote
	return &quote, nil
}

func (s *exchangeService) ReviewQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.entryLocked(quoteID)
	if err != nil {
		return nil, err
	}
	switch entry.quote.State {
	case domain.StateQuoting:
		entry.quote.State = domain.StateReviewing
	case domain.StateReviewing:
	default:
		return nil, fmt.Errorf("%w: quote %s is %s", apperrors.ErrInvalidState, quoteID, entry.quote.State)
	}
	quote := entry.quote
	return &quote, nil
}

func (s *exchangeService) AuthorizeQuote(ctx context.Context, quoteID string, credential string) (*domain.Quote, error) {
	if _, err := s.GetQuote(ctx, quoteID); err != nil {
		return nil, err
	}

	approved, err := s.authorizer.Authorize(ctx, credential)
	if err != nil {
		s.LogError(ctx, err, "Authorizer failed", slog.String("quote_id", quoteID))
		return nil, fmt.Errorf("failed to authorize quote %s: %w", quoteID, err)
	}
	if !approved {
		return nil, fmt.Errorf("%w: credential rejected for quote %s", apperrors.ErrUnauthorized, quoteID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, err := s.entryLocked(quoteID)
	if err != nil {
		return nil, err
	}
	switch entry.quote.State {
	case domain.StateReviewing:
		entry.quote.State = domain.StateAuthorizing
	case domain.StateQuoting:
		return nil, fmt.Errorf("%w: quote %s has not been reviewed", apperrors.ErrInvalidState, quoteID)
	default:
		// Already authorized, applying or finished: nothing to do.
	}
	quote := entry.quote
	return &quote, nil
}

func (s *exchangeService) ExecuteExchange(ctx context.Context, quote domain.Quote) (*domain.ExchangeResult, error) {
	s.mu.Lock()
	entry, err := s.entryLocked(quote.QuoteID)
	if err == nil && !entry.quote.SameTerms(quote) {
		err = fmt.Errorf("%w: quote %s does not match the priced terms", apperrors.ErrValidation, quote.QuoteID)
	}
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return s.ExecuteQuote(ctx, quote.QuoteID)
}

func (s *exchangeService) ExecuteQuote(ctx context.Context, quoteID string) (*domain.ExchangeResult, error) {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	s.mu.Lock()
	entry, err := s.entryLocked(quoteID)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	if entry.quote.State.IsTerminal() {
		result, err := cloneResult(entry.result), entry.err
		s.mu.Unlock()
		return result, err
	}
	if entry.quote.State != domain.StateAuthorizing {
		state := entry.quote.State
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: quote %s is %s", apperrors.ErrInvalidState, quoteID, state)
	}
	if err := ctx.Err(); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	entry.quote.State = domain.StateApplying
	quote := entry.quote
	s.mu.Unlock()

	// Once APPLYING, the caller going away must not decide the outcome.
	result, err := s.apply(context.WithoutCancel(ctx), quote)

	s.mu.Lock()
	entry.quote.State = result.State
	entry.result, entry.err = result, err
	s.mu.Unlock()

	return cloneResult(result), err
}

// cloneResult copies r so callers never share the stored transaction.
func cloneResult(r *domain.ExchangeResult) *domain.ExchangeResult {
	out := *r
	if r.Transaction != nil {
		txn := *r.Transaction
		out.Transaction = &txn
	}
	return &out
}

// apply re-validates the quote and commits both legs plus the ledger record
// in one unit of work. It always returns a terminal result.
func (s *exchangeService) apply(ctx context.Context, quote domain.Quote) (*domain.ExchangeResult, error) {
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, quote.FromCurrency); err != nil {
		return s.reject(ctx, quote, err)
	}
	if _, err := s.currencySvc.GetCurrencyByCode(ctx, quote.ToCurrency); err != nil {
		return s.reject(ctx, quote, err)
	}
	now := s.now()
	if now.After(quote.ExpiresAt) {
		return s.reject(ctx, quote, fmt.Errorf("%w: quote %s expired at %s",
			apperrors.ErrStaleQuote, quote.QuoteID, quote.ExpiresAt.Format(time.RFC3339)))
	}
	if quote.FromAmount.IsZero() {
		return &domain.ExchangeResult{QuoteID: quote.QuoteID, State: domain.StateCommitted}, nil
	}

	var committed domain.Transaction
	err := s.txManager.RunInTx(ctx, func(tx portsrepo.SessionTx) error {
		account, err := tx.FindAccountByID(domain.CurrentAccount)
		if err != nil {
			return err
		}
		if balance := account.Balance(quote.FromCurrency); quote.FromAmount.GreaterThan(balance) {
			return fmt.Errorf("%w: %s balance %s is below %s",
				apperrors.ErrInsufficientFunds, quote.FromCurrency, balance, quote.FromAmount)
		}
		if err := tx.ApplyDelta(domain.BalanceDelta{
			AccountID:    domain.CurrentAccount,
			CurrencyCode: quote.FromCurrency,
			Amount:       quote.FromAmount.Neg(),
		}); err != nil {
			return err
		}
		if err := tx.ApplyDelta(domain.BalanceDelta{
			AccountID:    domain.CurrentAccount,
			CurrencyCode: quote.ToCurrency,
			Amount:       quote.ToAmount,
		}); err != nil {
			return err
		}
		committed, err = tx.AppendTransaction(domain.Transaction{
			AccountID:       domain.CurrentAccount,
			TransactionType: domain.Exchange,
			Date:            now,
			Notes:           fmt.Sprintf("%s to %s", quote.FromCurrency, quote.ToCurrency),
			Exchange: domain.ExchangeDetails{
				FromCurrency: quote.FromCurrency,
				ToCurrency:   quote.ToCurrency,
				FromAmount:   quote.FromAmount,
				ToAmount:     quote.ToAmount,
				Rate:         quote.Rate,
			},
		})
		return err
	})
	if err != nil {
		return s.reject(ctx, quote, err)
	}

	s.LogInfo(ctx, "Exchange committed",
		slog.String("quote_id", quote.QuoteID),
		slog.String("transaction_id", committed.TransactionID))
	return &domain.ExchangeResult{
		QuoteID:     quote.QuoteID,
		State:       domain.StateCommitted,
		Transaction: &committed,
	}, nil
}

func (s *exchangeService) reject(ctx context.Context, quote domain.Quote, err error) (*domain.ExchangeResult, error) {
	s.LogInfo(ctx, "Exchange rejected",
		slog.String("quote_id", quote.QuoteID),
		slog.String("reason", err.Error()))
	return &domain.ExchangeResult{
		QuoteID:      quote.QuoteID,
		State:        domain.StateRejected,
		Reason:       err.Error(),
		ResetAmounts: errors.Is(err, apperrors.ErrInsufficientFunds),
	}, err
}
