package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/tickerproxy/config"
)

func TestHealthHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		path string
		want map[string]any
	}{
		{name: "health", path: "/api/v1/health", want: map[string]any{"success": true, "message": "Calix v1.2.3 is healthy"}},
		{name: "ready", path: "/api/v1/health/ready", want: map[string]any{"success": true, "message": "Calix is ready to serve requests"}},
		{name: "root", path: "/", want: map[string]any{"status": "running", "service": "Calix", "version": "1.2.3"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			NewHealthHandler(config.AppConfig{Name: "Calix", Version: "1.2.3"}).Register(r, "/api/v1")
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tc.path, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("want 200 got %d", w.Code)
			}

			var out map[string]any
			if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
				t.Fatalf("invalid json: %v", err)
			}
			if len(out) != len(tc.want) {
				t.Fatalf("body=%v, want %v", out, tc.want)
			}
			for k, v := range tc.want {
				if out[k] != v {
					t.Fatalf("%s=%v, want %v", k, out[k], v)
				}
			}
		})
	}
}

type assertErr struct{}

func (assertErr) Error() string { return "err" }
