package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/tickerproxy/internal/apperr"
	"github.com/guttosm/tickerproxy/internal/domain/models"
	"github.com/guttosm/tickerproxy/internal/logger"
	"github.com/guttosm/tickerproxy/internal/provider"
)

const (
	priceDecimals = 2

	detailTicker = "ticker"
	detailError  = "error"

	noDataReason = "Invalid ticker or data not available"
)

// StockService defines business logic for stock quotes.
type StockService interface {
	GetCurrentPrice(ctx context.Context, ticker string) (*models.StockPrice, error)
}

type stockService struct {
	source provider.QuoteSource
}

func NewStockService(source provider.QuoteSource) StockService {
	return &stockService{source: source}
}

// GetCurrentPrice fetches the latest quote for ticker from the upstream provider.
//
// Behavior:
//   - Performs exactly one provider call. No retries, no caching.
//   - Detaches ctx from cancellation: the call runs until the provider client's
//     own timeout, even if the caller goes away. Context values still flow.
//   - Uppercases the ticker and rounds the price to 2 decimals.
//   - Reports market_status as "open" without checking market hours.
//
// Returns:
//   - *models.StockPrice: the quote on success.
//   - error: always an *apperr.Error of kind ExternalAPI on failure.
func (s *stockService) GetCurrentPrice(ctx context.Context, ticker string) (*models.StockPrice, error) {
	log := logger.L().With().Str("ticker", ticker).Str("provider", s.source.Name()).Logger()
	log.Info().Msg("fetching stock price")

	// a client that hangs up does not abort the upstream call
	snap, err := s.source.Snapshot(context.WithoutCancel(ctx), ticker)
	if err == nil && snap == nil {
		err = provider.ErrNoData
	}
	if err != nil {
		if errors.Is(err, provider.ErrNoData) {
			log.Error().Err(err).Msg("invalid ticker or data not available")
			return nil, noDataError(ticker, err)
		}
		log.Error().Err(err).Msg("failed to fetch stock price")
		return nil, apperr.Wrap(apperr.KindExternalAPI, err,
			fmt.Sprintf("External API error while fetching stock data for %s", ticker),
			map[string]string{detailTicker: ticker, detailError: err.Error()},
		)
	}

	price := roundPrice(snap.LastPrice)
	if price <= 0 {
		// sub-cent quotes would round to zero
		log.Error().Float64("last_price", snap.LastPrice).Msg("price rounds to zero")
		return nil, noDataError(ticker, provider.ErrNoData)
	}

	result := &models.StockPrice{
		Ticker:       strings.ToUpper(ticker),
		CurrentPrice: price,
		Currency:     snap.Currency,
		MarketStatus: models.MarketStatusOpen,
	}

	log.Info().
		Float64("price", result.CurrentPrice).
		Str("currency", result.Currency).
		Str("upstream_market_state", snap.MarketState).
		Msg("fetched stock price")
	return result, nil
}

func noDataError(ticker string, cause error) *apperr.Error {
	return apperr.Wrap(apperr.KindExternalAPI, cause,
		fmt.Sprintf("Unable to fetch stock data for ticker: %s", ticker),
		map[string]string{detailTicker: ticker, detailError: noDataReason},
	)
}

// roundPrice rounds half away from zero to priceDecimals places.
func roundPrice(p float64) float64 {
	return decimal.NewFromFloat(p).Round(priceDecimals).InexactFloat64()
}
