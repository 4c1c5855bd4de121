package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/fx_wallet/internal/core/domain"
	portssvc "github.com/SscSPs/fx_wallet/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

type loggingExchangeService struct {
	BaseService
	next portssvc.ExchangeSvcFacade
}

// NewLoggingExchangeService returns a new instance of a logging exchange service.
func NewLoggingExchangeService(next portssvc.ExchangeSvcFacade) portssvc.ExchangeSvcFacade {
	return &loggingExchangeService{next: next}
}

func (s *loggingExchangeService) log(ctx context.Context, method, quoteID string, begin time.Time, err error, attrs ...any) {
	args := append([]any{
		slog.String("method", method),
		slog.String("quote_id", quoteID),
		slog.Duration("took", time.Since(begin)),
	}, attrs...)
	if err != nil {
		s.LogError(ctx, err, "exchange", args...)
		return
	}
	s.LogInfo(ctx, "exchange", args...)
}

func (s *loggingExchangeService) CreateQuote(ctx context.Context, fromCurrency, toCurrency domain.CurrencyCode, fromAmount decimal.Decimal) (quote *domain.Quote, err error) {
	defer func(begin time.Time) {
		id := ""
		if quote != nil {
			id = quote.QuoteID
		}
		s.log(ctx, "CreateQuote", id, begin, err,
			slog.String("from", string(fromCurrency)),
			slog.String("to", string(toCurrency)),
			slog.String("from_amount", fromAmount.String()))
	}(time.Now())
	return s.next.CreateQuote(ctx, fromCurrency, toCurrency, fromAmount)
}

func (s *loggingExchangeService) GetQuote(ctx context.Context, quoteID string) (*domain.Quote, error) {
	return s.next.GetQuote(ctx, quoteID)
}

func (s *loggingExchangeService) ReviewQuote(ctx context.Context, quoteID string) (quote *domain.Quote, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "ReviewQuote", quoteID, begin, err)
	}(time.Now())
	return s.next.ReviewQuote(ctx, quoteID)
}

func (s *loggingExchangeService) AuthorizeQuote(ctx context.Context, quoteID string, credential string) (quote *domain.Quote, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "AuthorizeQuote", quoteID, begin, err)
	}(time.Now())
	return s.next.AuthorizeQuote(ctx, quoteID, credential)
}

func (s *loggingExchangeService) ExecuteQuote(ctx context.Context, quoteID string) (result *domain.ExchangeResult, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "ExecuteQuote", quoteID, begin, err, resultAttrs(result)...)
	}(time.Now())
	return s.next.ExecuteQuote(ctx, quoteID)
}

func (s *loggingExchangeService) ExecuteExchange(ctx context.Context, quote domain.Quote) (result *domain.ExchangeResult, err error) {
	defer func(begin time.Time) {
		s.log(ctx, "ExecuteExchange", quote.QuoteID, begin, err, resultAttrs(result)...)
	}(time.Now())
	return s.next.ExecuteExchange(ctx, quote)
}

func resultAttrs(result *domain.ExchangeResult) []any {
	if result == nil {
		return nil
	}
	attrs := []any{slog.String("state", string(result.State))}
	if result.Transaction != nil {
		attrs = append(attrs, slog.String("transaction_id", result.Transaction.TransactionID))
	}
	return attrs
}
