package models

// StockPriceRequest is the body of POST /api/v1/stocks/price, sent by the
// Spring Boot backend.
//
// Ticker must be 1 to 10 characters and not blank after trimming. Case is not
// checked here; the upstream provider decides whether the symbol exists.
//
// swagger:model StockPriceRequest
type StockPriceRequest struct {
	Ticker string `json:"ticker" binding:"required,min=1,max=10,notblank" example:"AAPL"`
}

// MarketStatusOpen is reported for every quote. There is no market-hours check.
const MarketStatusOpen = "open"

// StockPrice is the quote returned to the caller.
//
// Fields:
//   - Ticker: the requested symbol, uppercased.
//   - CurrentPrice: last traded price rounded to 2 decimals, always > 0.
//   - Currency: currency code as reported by the provider (e.g., "USD", "KRW").
//   - MarketStatus: always MarketStatusOpen.
//
// A StockPrice is built fresh for each request and never modified afterwards.
//
// swagger:model StockPrice
type StockPrice struct {
	Ticker       string  `json:"ticker" example:"AAPL"`
	CurrentPrice float64 `json:"current_price" example:"182.52"`
	Currency     string  `json:"currency" example:"USD"`
	MarketStatus string  `json:"market_status" example:"open"`
}
