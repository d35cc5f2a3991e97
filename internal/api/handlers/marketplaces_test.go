package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/marketbridge/internal/api/handlers"
	"github.com/donaldgifford/marketbridge/internal/bridge"
	"github.com/donaldgifford/marketbridge/internal/bridge/mocks"
	"github.com/donaldgifford/marketbridge/pkg/auth"
	"github.com/donaldgifford/marketbridge/pkg/connector"
	"github.com/donaldgifford/marketbridge/pkg/dispatch"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

func newAPI(t *testing.T, svc bridge.Service) humatest.TestAPI {
	t.Helper()

	_, api := humatest.New(t)
	handlers.RegisterMarketplaceRoutes(api, handlers.NewMarketplacesHandler(svc))
	return api
}

func TestListMarketplaces(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockService(t)
	svc.EXPECT().Status().Return([]bridge.ProviderStatus{
		{
			Marketplace: domain.MarketplaceEbay,
			Environment: domain.EnvironmentSandbox,
			BaseURL:     "https://api.sandbox.ebay.com/",
			TokenState:  "authenticated",
			Returns:     true,
		},
	})

	resp := newAPI(t, svc).Get("/api/v1/marketplaces")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), `"marketplace":"ebay"`)
	assert.Contains(t, resp.Body.String(), `"token_state":"authenticated"`)
	assert.Contains(t, resp.Body.String(), `"returns":true`)
}

func TestListOrders(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		path       string
		setupMock  func(*mocks.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "passes filters to the bridge",
			path: "/api/v1/marketplaces/ebay/orders?created_after=2026-03-01T00:00:00Z&status=FULFILLED&limit=5",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().
					Orders(mock.Anything, domain.MarketplaceEbay, mock.MatchedBy(func(q domain.OrderQuery) bool {
						return q.CreatedAfter.Equal(created) && q.Status == "FULFILLED" && q.Limit == 5
					})).
					Return([]domain.Order{{Marketplace: domain.MarketplaceEbay, ID: "12-345"}}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"count":1`,
		},
		{
			name: "splits amazon marketplace ids",
			path: "/api/v1/marketplaces/amazon/orders?marketplace_ids=ATVPDKIKX0DER,%20A2EUQ1WTGCTBG2",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().
					Orders(mock.Anything, domain.MarketplaceAmazon, mock.MatchedBy(func(q domain.OrderQuery) bool {
						return len(q.MarketplaceIDs) == 2 && q.MarketplaceIDs[1] == "A2EUQ1WTGCTBG2"
					})).
					Return(nil, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"orders":[]`,
		},
		{
			name: "walmartmp alias resolves to walmart",
			path: "/api/v1/marketplaces/WalmartMP/orders",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().
					Orders(mock.Anything, domain.MarketplaceWalmart, mock.Anything).
					Return([]domain.Order{}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"marketplace":"walmart"`,
		},
		{
			name:       "bad created_after returns 400",
			path:       "/api/v1/marketplaces/ebay/orders?created_after=yesterday",
			setupMock:  func(*mocks.MockService) {},
			wantStatus: http.StatusBadRequest,
			wantBody:   "RFC 3339",
		},
		{
			name:       "unknown marketplace returns 404",
			path:       "/api/v1/marketplaces/etsy/orders",
			setupMock:  func(*mocks.MockService) {},
			wantStatus: http.StatusNotFound,
			wantBody:   "etsy",
		},
		{
			name: "invalid query returns 400",
			path: "/api/v1/marketplaces/amazon/orders",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().
					Orders(mock.Anything, domain.MarketplaceAmazon, mock.Anything).
					Return(nil, fmt.Errorf("amazon orders: marketplace IDs required: %w", connector.ErrInvalidQuery)).
					Once()
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockService(t)
			tt.setupMock(svc)

			resp := newAPI(t, svc).Get(tt.path)
			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestGetOrder(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockService(t)
	svc.EXPECT().
		Order(mock.Anything, domain.MarketplaceBackmarket, "42").
		Return(&domain.Order{
			Marketplace: domain.MarketplaceBackmarket,
			ID:          "42",
			Status:      "3",
			Raw:         json.RawMessage(`{"order_id":42,"state":3}`),
		}, nil).
		Once()

	resp := newAPI(t, svc).Get("/api/v1/marketplaces/backmarket/orders/42")
	require.Equal(t, http.StatusOK, resp.Code)

	var got domain.Order
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &got))
	assert.Equal(t, "42", got.ID)
	assert.Equal(t, "3", got.Status)
	assert.JSONEq(t, `{"order_id":42,"state":3}`, string(got.Raw))
}

func TestGetOrder_ErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "upstream API error is a bad gateway",
			err:        &connector.APIError{Marketplace: domain.MarketplaceWalmart, StatusCode: http.StatusNotFound},
			wantStatus: http.StatusBadGateway,
			wantBody:   "upstream status 404",
		},
		{
			name: "authentication failure is a bad gateway",
			err: &auth.AuthenticationError{
				Marketplace: domain.MarketplaceWalmart,
				Environment: domain.EnvironmentSandbox,
				StatusCode:  http.StatusUnauthorized,
			},
			wantStatus: http.StatusBadGateway,
			wantBody:   "authentication failed",
		},
		{
			name: "missing base URL is an internal error",
			err: &auth.ConfigurationError{
				Marketplace: domain.MarketplaceWalmart,
				Environment: domain.EnvironmentProduction,
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   "base URL not configured",
		},
		{
			name:       "transport failure is a bad gateway",
			err:        &dispatch.RequestError{Marketplace: domain.MarketplaceWalmart, Err: assert.AnError},
			wantStatus: http.StatusBadGateway,
			wantBody:   "walmart request failed",
		},
		{
			name:       "empty result is not found",
			err:        fmt.Errorf("walmart order 9: %w", connector.ErrNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unregistered marketplace is not found",
			err:        fmt.Errorf("%q: %w", domain.MarketplaceWalmart, bridge.ErrUnknownMarketplace),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "unexpected error is an internal error",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockService(t)
			svc.EXPECT().
				Order(mock.Anything, domain.MarketplaceWalmart, "9").
				Return(nil, tt.err).
				Once()

			resp := newAPI(t, svc).Get("/api/v1/marketplaces/walmart/orders/9")
			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestGetReturn(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		setupMock  func(*mocks.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns the return request",
			path: "/api/v1/marketplaces/ebay/returns/5000",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().
					Return(mock.Anything, domain.MarketplaceEbay, "5000").
					Return(&domain.Return{
						Marketplace: domain.MarketplaceEbay,
						ID:          "5000",
						OrderID:     "12-345",
						State:       "RETURN_REQUESTED",
					}, nil).
					Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"order_id":"12-345"`,
		},
		{
			name: "unsupported marketplace returns 501",
			path: "/api/v1/marketplaces/amazon/returns/1",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().
					Return(mock.Anything, domain.MarketplaceAmazon, "1").
					Return(nil, fmt.Errorf("amazon returns: %w", bridge.ErrUnsupported)).
					Once()
			},
			wantStatus: http.StatusNotImplemented,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := mocks.NewMockService(t)
			tt.setupMock(svc)

			resp := newAPI(t, svc).Get(tt.path)
			assert.Equal(t, tt.wantStatus, resp.Code)
			if tt.wantBody != "" {
				assert.Contains(t, resp.Body.String(), tt.wantBody)
			}
		})
	}
}
