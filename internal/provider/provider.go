package provider

import (
	"context"
	"errors"
)

// ErrNoData is returned when the provider answers but the snapshot lacks the
// fields needed to price the symbol. It usually means the ticker is unknown.
var ErrNoData = errors.New("quote snapshot has no usable price data")

// Snapshot is the latest quote for one symbol as reported upstream.
type Snapshot struct {
	LastPrice float64
	Currency  string
	// MarketState is the provider's own session label (e.g. "REGULAR", "CLOSED").
	// It is logged only; responses always report "open".
	MarketState string
}

// QuoteSource is a third-party quote provider.
//
//go:generate mockgen -package=service_test -destination=../service/mock_quote_source_test.go -source=provider.go QuoteSource
type QuoteSource interface {
	Name() string
	// Snapshot performs one blocking lookup. It returns ErrNoData (possibly
	// wrapped) for unknown symbols and a wrapped transport error otherwise.
	Snapshot(ctx context.Context, symbol string) (*Snapshot, error)
}
