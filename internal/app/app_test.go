package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/piquette/finance-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/tickerproxy/config"
	"github.com/guttosm/tickerproxy/internal/provider"
	"github.com/guttosm/tickerproxy/internal/provider/yahoo"
)

// fakeSource answers from a fixed table of snapshots; anything else is unknown.
type fakeSource struct {
	quotes map[string]provider.Snapshot
	err    error
}

func (f fakeSource) Name() string { return "fake" }

func (f fakeSource) Snapshot(_ context.Context, symbol string) (*provider.Snapshot, error) {
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.quotes[strings.ToUpper(symbol)]
	if !ok {
		return nil, provider.ErrNoData
	}
	return &s, nil
}

func testConfig() config.Config {
	return config.Config{
		App:    config.AppConfig{Name: "Calix AI Engine", Version: "1.0.0", Environment: "development"},
		Server: config.ServerConfig{Port: "0", APIPrefix: "/api/v1"},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"http://localhost:8080"}},
	}
}

func withSource(t *testing.T, src provider.QuoteSource, err error) {
	t.Helper()
	old := quoteSourceOpener
	quoteSourceOpener = func(config.Config) (provider.QuoteSource, error) { return src, err }
	t.Cleanup(func() { quoteSourceOpener = old })
}

func TestInitializeApp_SourceFailure(t *testing.T) {
	withSource(t, nil, errors.New("no provider"))

	r, cleanup, err := InitializeApp(testConfig())
	require.Error(t, err)
	assert.Nil(t, r)
	assert.Nil(t, cleanup)
}

func TestInitializeApp_DefaultSource(t *testing.T) {
	r, cleanup, err := InitializeApp(testConfig())
	require.NoError(t, err)
	require.NotNil(t, r)
	cleanup()
}

func TestInitializeApp_Endpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)
	withSource(t, fakeSource{quotes: map[string]provider.Snapshot{
		"AAPL": {LastPrice: 182.519, Currency: "USD"},
	}}, nil)

	router, cleanup, err := InitializeApp(testConfig())
	require.NoError(t, err)
	require.NotNil(t, router)
	t.Cleanup(cleanup)

	cases := []struct {
		name   string
		method string
		path   string
		body   string
		status int
		check  func(t *testing.T, body map[string]any)
	}{
		{
			name: "health", method: http.MethodGet, path: "/api/v1/health", status: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "Calix AI Engine v1.0.0 is healthy", body["message"])
			},
		},
		{
			name: "ready", method: http.MethodGet, path: "/api/v1/health/ready", status: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "Calix AI Engine is ready to serve requests", body["message"])
			},
		},
		{
			name: "root", method: http.MethodGet, path: "/", status: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, map[string]any{"status": "running", "service": "Calix AI Engine", "version": "1.0.0"}, body)
			},
		},
		{
			name: "price", method: http.MethodPost, path: "/api/v1/stocks/price", body: `{"ticker":"aapl"}`, status: http.StatusOK,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, true, body["success"])
				assert.Equal(t, "Stock price retrieved successfully for AAPL", body["message"])
				assert.Equal(t, map[string]any{
					"ticker": "AAPL", "current_price": 182.52, "currency": "USD", "market_status": "open",
				}, body["data"])
			},
		},
		{
			name: "unknown ticker", method: http.MethodPost, path: "/api/v1/stocks/price", body: `{"ticker":"NOPE1"}`, status: http.StatusBadRequest,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["success"])
				assert.Equal(t, "Unable to fetch stock data for ticker: NOPE1", body["message"])
				assert.Equal(t, map[string]any{"ticker": "NOPE1", "error": "Invalid ticker or data not available"}, body["details"])
				assert.NotContains(t, body, "data")
			},
		},
		{
			name: "missing ticker", method: http.MethodPost, path: "/api/v1/stocks/price", body: `{}`, status: http.StatusUnprocessableEntity,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["success"])
			},
		},
		{
			name: "over-long ticker", method: http.MethodPost, path: "/api/v1/stocks/price", body: `{"ticker":"INVALID_TICKER_123"}`, status: http.StatusUnprocessableEntity,
			check: func(t *testing.T, body map[string]any) {
				assert.Equal(t, false, body["success"])
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var req *http.Request
			if tc.body != "" {
				req = httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tc.method, tc.path, nil)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, tc.status, w.Code, "body=%s", w.Body.String())
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			tc.check(t, body)
		})
	}
}

func TestInitializeApp_HealthIgnoresProvider(t *testing.T) {
	gin.SetMode(gin.TestMode)
	withSource(t, fakeSource{err: errors.New("yahoo down")}, nil)

	router, _, err := InitializeApp(testConfig())
	require.NoError(t, err)

	for _, path := range []string{"/api/v1/health", "/api/v1/health/ready"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/stocks/price", strings.NewReader(`{"ticker":"AAPL"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "External API error while fetching stock data for AAPL")
	assert.Contains(t, w.Body.String(), "yahoo down")
}

// withYahoo wires the real Yahoo adapter to a fake upstream at baseURL.
func withYahoo(t *testing.T, baseURL string) {
	t.Helper()
	withSource(t, yahoo.New(yahoo.WithBackend(&finance.BackendConfiguration{
		Type:       finance.YFinBackend,
		URL:        baseURL,
		HTTPClient: http.DefaultClient,
	})), nil)
}

func postPrice(t *testing.T, router http.Handler, ticker string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/stocks/price", strings.NewReader(`{"ticker":"`+ticker+`"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body=%s", w.Body.String())
	return w.Code, body
}

func TestInitializeApp_YahooUnknownTicker(t *testing.T) {
	gin.SetMode(gin.TestMode)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"quoteResponse":{"result":[],"error":null}}`))
	}))
	t.Cleanup(upstream.Close)
	withYahoo(t, upstream.URL)

	router, _, err := InitializeApp(testConfig())
	require.NoError(t, err)

	status, body := postPrice(t, router, "NOPE1")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Unable to fetch stock data for ticker: NOPE1", body["message"])
	assert.Equal(t, map[string]any{"ticker": "NOPE1", "error": "Invalid ticker or data not available"}, body["details"])
}

func TestInitializeApp_YahooUnreachable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	upstream := httptest.NewServer(http.NotFoundHandler())
	baseURL := upstream.URL
	upstream.Close()
	withYahoo(t, baseURL)

	router, _, err := InitializeApp(testConfig())
	require.NoError(t, err)

	status, body := postPrice(t, router, "AAPL")

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "External API error while fetching stock data for AAPL", body["message"])
	details, ok := body["details"].(map[string]any)
	require.True(t, ok, "details=%v", body["details"])
	cause, _ := details["error"].(string)
	assert.Contains(t, cause, "fetching quote for AAPL")
	assert.Contains(t, cause, strings.TrimPrefix(baseURL, "http://"))
	assert.NotContains(t, cause, "Can't find quote")
}
