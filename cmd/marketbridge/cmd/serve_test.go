package cmd

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/marketbridge/internal/bridge"
	"github.com/donaldgifford/marketbridge/internal/config"
)

func TestNewServer(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Basic bm-secret", r.Header.Get("Authorization"))
		if r.URL.Path != "/ws/orders/77" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"order_id":77,"state":9,"date_creation":"2026-03-01T10:00:00Z"}`))
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		Marketplaces: config.MarketplacesConfig{
			Backmarket: config.BackmarketConfig{
				Enabled:   true,
				Endpoints: config.EndpointConfig{SandboxURL: upstream.URL},
				Dev:       config.BackmarketCredentials{ClientSecret: "bm-secret"},
			},
		},
	}

	log := slog.New(slog.DiscardHandler)
	b, err := bridge.FromConfig(cfg,
		bridge.WithHTTPClient(upstream.Client()),
		bridge.WithFactoryLogger(log),
	)
	require.NoError(t, err)

	e := newServer(cfg, b, log)

	tests := []struct {
		name         string
		path         string
		wantStatus   int
		wantContains string
	}{
		{name: "liveness", path: "/healthz", wantStatus: http.StatusOK, wantContains: `"ok"`},
		{name: "readiness", path: "/readyz", wantStatus: http.StatusOK, wantContains: `"ready"`},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK, wantContains: "marketbridge_"},
		{
			name:         "marketplace status",
			path:         "/api/v1/marketplaces",
			wantStatus:   http.StatusOK,
			wantContains: `"marketplace":"backmarket"`,
		},
		{
			name:         "order through the bridge",
			path:         "/api/v1/marketplaces/backmarket/orders/77",
			wantStatus:   http.StatusOK,
			wantContains: `"id":"77"`,
		},
		{
			name:         "upstream 404 is a bad gateway",
			path:         "/api/v1/marketplaces/backmarket/orders/78",
			wantStatus:   http.StatusBadGateway,
			wantContains: "upstream status 404",
		},
		{
			name:       "unregistered marketplace",
			path:       "/api/v1/marketplaces/amazon/orders/1",
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "returns unsupported",
			path:       "/api/v1/marketplaces/backmarket/returns/1",
			wantStatus: http.StatusNotImplemented,
		},
		{
			name:         "openapi document",
			path:         "/swagger/swagger.json",
			wantStatus:   http.StatusOK,
			wantContains: "/api/v1/marketplaces/{marketplace}/orders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, tt.path, http.NoBody)
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
			if tt.wantContains != "" {
				assert.Contains(t, rec.Body.String(), tt.wantContains)
			}
		})
	}
}
