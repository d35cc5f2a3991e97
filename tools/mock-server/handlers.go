package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	ebayTimeLayout       = "2006-01-02T15:04:05.000Z"
	backmarketTimeLayout = "2006-01-02 15:04:05"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

func oauthError(w http.ResponseWriter, status int, code, description string) {
	writeJSON(w, status, map[string]string{
		"error":             code,
		"error_description": description,
	})
}

// requireHeader rejects requests whose header name does not equal want.
func requireHeader(name, want string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(name) != want {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"error": "invalid or missing " + name,
			})
			return
		}
		next(w, r)
	}
}

func limitParam(r *http.Request, name string) int {
	n, err := strconv.Atoi(r.URL.Query().Get(name))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// --- Amazon SP-API ---

func amazonToken(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			oauthError(w, http.StatusBadRequest, "invalid_request", "malformed form body")
			return
		}
		if r.PostForm.Get("client_id") == "" || r.PostForm.Get("client_secret") == "" {
			oauthError(w, http.StatusUnauthorized, "invalid_client", "Client authentication failed")
			return
		}
		if r.PostForm.Get("grant_type") != "refresh_token" || r.PostForm.Get("refresh_token") == "" {
			oauthError(w, http.StatusBadRequest, "invalid_grant", "The request has an invalid grant parameter : refresh_token")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token":  amazonAccessToken,
			"refresh_token": r.PostForm.Get("refresh_token"),
			"token_type":    "bearer",
			"expires_in":    tokenLifetime,
		})
		log.Info("issued mock token", "marketplace", "amazon")
	}
}

func amazonError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]string{{"code": code, "message": message}},
	})
}

func amazonDoc(o order) map[string]any {
	return map[string]any{
		"AmazonOrderId": o.id,
		"OrderStatus":   o.status,
		"PurchaseDate":  o.created.Format(time.RFC3339),
	}
}

func amazonListOrders(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("MarketplaceIds") == "" {
			amazonError(w, http.StatusBadRequest, "InvalidInput", "MarketplaceIds is required")
			return
		}
		since, err := time.Parse(time.RFC3339, q.Get("CreatedAfter"))
		if err != nil {
			amazonError(w, http.StatusBadRequest, "InvalidInput", "CreatedAfter must be an ISO 8601 date")
			return
		}

		docs := []map[string]any{}
		for _, o := range filter(st.amazon, since, q.Get("OrderStatuses"), limitParam(r, "MaxResultsPerPage")) {
			docs = append(docs, amazonDoc(o))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"payload": map[string]any{"Orders": docs},
		})
	}
}

func amazonGetOrder(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := find(st.amazon, r.PathValue("id"))
		if !ok {
			amazonError(w, http.StatusNotFound, "NotFound", "Order not found")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"payload": amazonDoc(o)})
	}
}

func amazonGetReport(*store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"reportId":         r.PathValue("id"),
			"reportType":       "GET_MERCHANT_LISTINGS_ALL_DATA",
			"processingStatus": "DONE",
			"reportDocumentId": "amzn1.spdoc.1.mock." + r.PathValue("id"),
		})
	}
}

// --- eBay ---

func ebayToken(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			log.Warn("token request missing Basic Auth header", "marketplace", "ebay")
			oauthError(w, http.StatusUnauthorized, "invalid_client", "client authentication failed")
			return
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("refresh_token") == "" {
			oauthError(w, http.StatusBadRequest, "invalid_grant", "the provided authorization refresh token is invalid")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": ebayAccessToken,
			"expires_in":   tokenLifetime,
			"token_type":   "User Access Token",
		})
		log.Info("issued mock token", "marketplace", "ebay")
	}
}

func ebayDoc(o order) map[string]any {
	return map[string]any{
		"orderId":                o.id,
		"orderFulfillmentStatus": o.status,
		"creationDate":           o.created.Format(ebayTimeLayout),
	}
}

// parseEbayFilter reads the creationdate and orderfulfillmentstatus
// clauses of a fulfillment API filter.
func parseEbayFilter(f string) (time.Time, string) {
	var (
		since  time.Time
		status string
	)
	for clause := range strings.SplitSeq(f, ",") {
		name, value, ok := strings.Cut(clause, ":")
		if !ok {
			continue
		}
		switch name {
		case "creationdate":
			from, _, _ := strings.Cut(strings.Trim(value, "[]"), "..")
			if t, err := time.Parse(time.RFC3339Nano, from); err == nil {
				since = t
			}
		case "orderfulfillmentstatus":
			status = strings.Trim(value, "{}")
		}
	}
	return since, status
}

func ebayListOrders(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		since, status := parseEbayFilter(r.URL.Query().Get("filter"))
		orders := filter(st.ebay, since, status, limitParam(r, "limit"))

		docs := make([]map[string]any, 0, len(orders))
		for _, o := range orders {
			docs = append(docs, ebayDoc(o))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"orders": docs,
			"total":  len(docs),
		})
	}
}

func ebayGetOrder(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := find(st.ebay, r.PathValue("id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"errors": []map[string]any{{"errorId": 32100, "message": "Invalid order ID"}},
			})
			return
		}
		writeJSON(w, http.StatusOK, ebayDoc(o))
	}
}

func ebayGetReturn(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		orderID, ok := st.ebayReturns[id]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"error": []map[string]any{{"errorId": 1001, "message": "Return not found"}},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"summary": map[string]any{
				"returnId": id,
				"orderId":  orderID,
				"state":    "RETURN_REQUESTED",
			},
		})
	}
}

// --- Walmart ---

func walmartToken(log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			oauthError(w, http.StatusUnauthorized, "invalid_client", "client authentication failed")
			return
		}
		if r.Header.Get("WM_SVC.NAME") == "" || r.Header.Get("WM_QOS.CORRELATION_ID") == "" {
			oauthError(w, http.StatusBadRequest, "invalid_request", "WM_SVC.NAME and WM_QOS.CORRELATION_ID are required")
			return
		}
		if err := r.ParseForm(); err != nil || r.PostForm.Get("grant_type") != "client_credentials" {
			oauthError(w, http.StatusBadRequest, "unsupported_grant_type", "grant_type must be client_credentials")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": walmartAccessToken,
			"token_type":   "Bearer",
			"expires_in":   900,
		})
		log.Info("issued mock token",
			"marketplace", "walmart",
			"correlation_id", r.Header.Get("WM_QOS.CORRELATION_ID"),
		)
	}
}

func walmartAuth(next http.HandlerFunc) http.HandlerFunc {
	return requireHeader("WM_SEC.ACCESS_TOKEN", walmartAccessToken,
		func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("WM_QOS.CORRELATION_ID") == "" || r.Header.Get("WM_SVC.NAME") == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{
					"error": "WM_QOS.CORRELATION_ID and WM_SVC.NAME are required",
				})
				return
			}
			next(w, r)
		})
}

func walmartDoc(o order) map[string]any {
	return map[string]any{
		"purchaseOrderId": o.id,
		"customerOrderId": "C" + o.id,
		"orderDate":       o.created.UnixMilli(),
		"orderLines": map[string]any{
			"orderLine": []map[string]any{{
				"lineNumber": "1",
				"orderLineStatuses": map[string]any{
					"orderLineStatus": []map[string]any{{"status": o.status}},
				},
			}},
		},
	}
}

func walmartListOrders(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var since time.Time
		if v := q.Get("createdStartDate"); v != "" {
			t, err := time.Parse(time.RFC3339, v)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid createdStartDate"})
				return
			}
			since = t
		}

		orders := filter(st.walmart, since, q.Get("status"), limitParam(r, "limit"))
		docs := make([]map[string]any, 0, len(orders))
		for _, o := range orders {
			docs = append(docs, walmartDoc(o))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"list": map[string]any{
				"meta":     map[string]any{"totalCount": len(docs)},
				"elements": map[string]any{"order": docs},
			},
		})
	}
}

func walmartGetOrder(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := find(st.walmart, r.PathValue("id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{
				"errors": map[string]any{"error": []map[string]string{{"code": "CONTENT_NOT_FOUND.GMP_ORDER_API"}}},
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"order": walmartDoc(o)})
	}
}

func walmartGetReturn(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Query().Get("returnOrderId")
		returns := []map[string]any{}
		if orderID, ok := st.walmartReturns[id]; ok {
			returns = append(returns, map[string]any{
				"returnOrderId":   id,
				"customerOrderId": "C" + orderID,
				"returnOrderLines": []map[string]any{
					{"currentRefundStatus": "REFUND_COMPLETED"},
				},
			})
		}
		writeJSON(w, http.StatusOK, map[string]any{"returnOrders": returns})
	}
}

// --- Backmarket ---

func backmarketAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if secret, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Basic "); !ok || secret == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{
				"detail": "Authentication credentials were not provided.",
			})
			return
		}
		next(w, r)
	}
}

func backmarketDoc(o order) map[string]any {
	return map[string]any{
		"order_id":      json.Number(o.id),
		"state":         json.Number(o.status),
		"date_creation": o.created.Format(time.RFC3339),
	}
}

func backmarketListOrders(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		var since time.Time
		if v := q.Get("date_creation"); v != "" {
			t, err := time.Parse(backmarketTimeLayout, v)
			if err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"detail": "invalid date_creation"})
				return
			}
			since = t
		}

		orders := filter(st.backmarket, since, q.Get("state"), 0)
		docs := make([]map[string]any, 0, len(orders))
		for _, o := range orders {
			docs = append(docs, backmarketDoc(o))
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"count":   len(docs),
			"next":    nil,
			"results": docs,
		})
	}
}

func backmarketGetOrder(st *store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		o, ok := find(st.backmarket, r.PathValue("id"))
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Not found."})
			return
		}
		writeJSON(w, http.StatusOK, backmarketDoc(o))
	}
}

func backmarketGetListing(*store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		writeJSON(w, http.StatusOK, map[string]any{
			"listing_id": id,
			"sku":        "MOCK-" + id,
			"quantity":   5,
			"price":      "199.00",
			"state":      2,
		})
	}
}
