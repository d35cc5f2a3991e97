package connector_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/marketbridge/pkg/auth"
	"github.com/donaldgifford/marketbridge/pkg/connector"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

const backmarketOrderJSON = `{
	"order_id": 9183997,
	"state": 3,
	"date_creation": "2026-02-14T09:30:00+01:00",
	"orderlines": [{"listing": "SKU-1", "quantity": 1}]
}`

func newTestBackmarket(t *testing.T, mux *http.ServeMux) *connector.Backmarket {
	t.Helper()

	srv := newServer(t, mux)
	p := auth.NewBackmarket(
		auth.BackmarketCredentials{ClientSecret: "bm-secret"},
		auth.BackmarketCredentials{},
		auth.WithSandboxURL(srv.URL+"/"),
		auth.WithLogger(discardLogger()),
	)
	return connector.NewBackmarket(p,
		connector.WithHTTPClient(srv.Client()),
		connector.WithLogger(discardLogger()),
	)
}

func TestBackmarket_GetOrder(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/orders/9183997", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Basic bm-secret", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		writeJSON(w, http.StatusOK, backmarketOrderJSON)
	})
	c := newTestBackmarket(t, mux)

	order, err := c.GetOrder(context.Background(), "9183997")
	require.NoError(t, err)

	assert.Equal(t, domain.MarketplaceBackmarket, order.Marketplace)
	assert.Equal(t, "9183997", order.ID)
	assert.Equal(t, "3", order.Status)
	require.NotNil(t, order.CreatedAt)
	assert.Equal(t, time.Date(2026, time.February, 14, 8, 30, 0, 0, time.UTC), *order.CreatedAt)
	assert.JSONEq(t, backmarketOrderJSON, string(order.Raw))
}

func TestBackmarket_GetOrder_NotFound(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, `{"detail":"Not found."}`)
	})
	c := newTestBackmarket(t, mux)

	_, err := c.GetOrder(context.Background(), "missing")
	require.Error(t, err)

	var apiErr *connector.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, domain.MarketplaceBackmarket, apiErr.Marketplace)
	assert.JSONEq(t, `{"detail":"Not found."}`, apiErr.Body)
}

func TestBackmarket_ListOrders(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/orders", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-02-01 00:00:00", r.URL.Query().Get("date_creation"))
		assert.Equal(t, "1", r.URL.Query().Get("state"))
		writeJSON(w, http.StatusOK, `{
			"count": 3,
			"results": [
				{"order_id": 1, "state": 1},
				{"order_id": "2", "state": 1},
				{"order_id": 3, "state": 1}
			]
		}`)
	})
	c := newTestBackmarket(t, mux)

	orders, err := c.ListOrders(context.Background(), domain.OrderQuery{
		CreatedAfter: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		Status:       "1",
		Limit:        2,
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "1", orders[0].ID)
	assert.Equal(t, "2", orders[1].ID)
	assert.Nil(t, orders[0].CreatedAt)
}

func TestBackmarket_GetListing(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/listings/42", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"id":42,"sku":"SKU-1","quantity":5}`)
	})
	c := newTestBackmarket(t, mux)

	raw, err := c.GetListing(context.Background(), "42")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":42,"sku":"SKU-1","quantity":5}`, string(raw))
}

func TestBackmarket_MalformedBody(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws/orders/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `<html>`)
	})
	c := newTestBackmarket(t, mux)

	_, err := c.GetOrder(context.Background(), "1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing backmarket order")
}
