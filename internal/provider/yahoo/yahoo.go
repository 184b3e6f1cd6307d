// Package yahoo implements provider.QuoteSource on top of the Yahoo Finance
// quote endpoint through github.com/piquette/finance-go.
package yahoo

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/piquette/finance-go"
	"github.com/piquette/finance-go/quote"

	"github.com/guttosm/tickerproxy/internal/provider"
)

// Name is reported by Source.Name and used in logs.
const Name = "yahoo"

// Source is a Yahoo Finance quote source.
type Source struct {
	client quote.Client
}

// Option configures a Source.
type Option func(*Source)

// WithBackend replaces the finance-go backend used to reach Yahoo.
func WithBackend(b finance.Backend) Option {
	return func(s *Source) {
		if b != nil {
			s.client = quote.Client{B: b}
		}
	}
}

// New creates a Source on the library's shared Yahoo backend and its default HTTP client.
func New(options ...Option) *Source {
	s := &Source{client: quote.Client{B: finance.GetBackend(finance.YFinBackend)}}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Source) Name() string { return Name }

// Snapshot reads the last price and currency for symbol.
//
// ctx is handed to the HTTP request, so cancelling it aborts the lookup.
// An empty result list from Yahoo means the symbol is unknown and yields
// provider.ErrNoData; a failed call is returned wrapped.
func (s *Source) Snapshot(ctx context.Context, symbol string) (*provider.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetching quote for %s: %w", symbol, err)
	}

	iter := s.client.ListP(&quote.Params{
		Params:  finance.Params{Context: &ctx},
		Symbols: []string{symbol},
	})
	if !iter.Next() {
		if err := iter.Err(); err != nil {
			return nil, fmt.Errorf("fetching quote for %s: %w", symbol, err)
		}
		return nil, fmt.Errorf("%w: %s", provider.ErrNoData, symbol)
	}

	q := iter.Quote()
	if q == nil {
		return nil, fmt.Errorf("%w: %s", provider.ErrNoData, symbol)
	}
	price := q.RegularMarketPrice
	if math.IsNaN(price) || math.IsInf(price, 0) || price <= 0 {
		return nil, fmt.Errorf("%w: %s has no last price", provider.ErrNoData, symbol)
	}
	currency := strings.TrimSpace(q.CurrencyID)
	if currency == "" {
		return nil, fmt.Errorf("%w: %s has no currency", provider.ErrNoData, symbol)
	}

	return &provider.Snapshot{
		LastPrice:   price,
		Currency:    currency,
		MarketState: string(q.MarketState),
	}, nil
}
