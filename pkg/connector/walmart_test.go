package connector_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/marketbridge/pkg/auth"
	"github.com/donaldgifford/marketbridge/pkg/connector"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

func walmartMux(t *testing.T) *http.ServeMux {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v3/token", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, `{"access_token":"wm-token","token_type":"Bearer","expires_in":900}`)
	})
	return mux
}

func newTestWalmart(t *testing.T, mux *http.ServeMux) *connector.Walmart {
	t.Helper()

	srv := newServer(t, mux)
	p := auth.NewWalmart(
		auth.WalmartCredentials{ClientID: "id", ClientSecret: "secret"},
		auth.WalmartCredentials{},
		auth.WithSandboxURL(srv.URL),
		auth.WithHTTPClient(srv.Client()),
		auth.WithLogger(discardLogger()),
	)
	return connector.NewWalmart(p,
		connector.WithHTTPClient(srv.Client()),
		connector.WithLogger(discardLogger()),
	)
}

func TestWalmart_GetOrder(t *testing.T) {
	t.Parallel()

	mux := walmartMux(t)
	mux.HandleFunc("GET /v3/orders/1796277083022", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "wm-token", r.Header.Get("WM_SEC.ACCESS_TOKEN"))
		assert.NotEmpty(t, r.Header.Get("WM_QOS.CORRELATION_ID"))
		assert.Equal(t, "Walmart Marketplace", r.Header.Get("WM_SVC.NAME"))
		writeJSON(w, http.StatusOK, `{"order":{
			"purchaseOrderId":"1796277083022",
			"customerOrderId":"5281956426648",
			"orderDate":1771929000000,
			"orderLines":{"orderLine":[
				{"orderLineStatuses":{"orderLineStatus":[{"status":"Acknowledged"}]}}
			]}
		}}`)
	})
	c := newTestWalmart(t, mux)

	order, err := c.GetOrder(context.Background(), "1796277083022")
	require.NoError(t, err)

	assert.Equal(t, domain.MarketplaceWalmart, order.Marketplace)
	assert.Equal(t, "1796277083022", order.ID)
	assert.Equal(t, "Acknowledged", order.Status)
	require.NotNil(t, order.CreatedAt)
	assert.Equal(t, time.UnixMilli(1771929000000).UTC(), *order.CreatedAt)
}

func TestWalmart_ListOrders(t *testing.T) {
	t.Parallel()

	mux := walmartMux(t)
	mux.HandleFunc("GET /v3/orders", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2026-02-01T00:00:00Z", q.Get("createdStartDate"))
		assert.Equal(t, "10", q.Get("limit"))
		writeJSON(w, http.StatusOK, `{"list":{"meta":{"totalCount":2},"elements":{"order":[
			{"purchaseOrderId":"A"},
			{"purchaseOrderId":"B"}
		]}}}`)
	})
	c := newTestWalmart(t, mux)

	orders, err := c.ListOrders(context.Background(), domain.OrderQuery{
		CreatedAfter: time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC),
		Limit:        10,
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "A", orders[0].ID)
	assert.Equal(t, "B", orders[1].ID)
	assert.Nil(t, orders[0].CreatedAt)
}

func TestWalmart_GetReturn(t *testing.T) {
	t.Parallel()

	mux := walmartMux(t)
	mux.HandleFunc("GET /v3/returns", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("returnOrderId") {
		case "R1":
			writeJSON(w, http.StatusOK, `{"meta":{"totalCount":1},"returnOrders":[{
				"returnOrderId":"R1",
				"customerOrderId":"C1",
				"returnOrderLines":[{"currentRefundStatus":"REFUND_COMPLETED"}]
			}]}`)
		default:
			writeJSON(w, http.StatusOK, `{"meta":{"totalCount":0},"returnOrders":[]}`)
		}
	})
	c := newTestWalmart(t, mux)

	ret, err := c.GetReturn(context.Background(), "R1")
	require.NoError(t, err)
	assert.Equal(t, "R1", ret.ID)
	assert.Equal(t, "C1", ret.OrderID)
	assert.Equal(t, "REFUND_COMPLETED", ret.State)

	_, err = c.GetReturn(context.Background(), "R2")
	require.ErrorIs(t, err, connector.ErrNotFound)
}

func TestWalmart_AuthenticationFailure(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v3/token", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, `{"error":"invalid_client"}`)
	})
	mux.HandleFunc("/v3/orders/", func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("order endpoint must not be called without a token")
	})
	c := newTestWalmart(t, mux)

	_, err := c.GetOrder(context.Background(), "1")
	require.ErrorIs(t, err, auth.ErrAuthentication)

	var apiErr *connector.APIError
	assert.False(t, errors.As(err, &apiErr))
}
