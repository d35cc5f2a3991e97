// Package main implements a mock marketplace server for local development.
// One process serves the token and order endpoints of Amazon SP-API, eBay,
// Walmart and Backmarket under per-marketplace path prefixes, so marketbridge
// can run end to end without real seller credentials:
//
//	http://localhost:8089/amazon/      (token: /amazon/auth/o2/token)
//	http://localhost:8089/ebay/
//	http://localhost:8089/walmart/
//	http://localhost:8089/backmarket/
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/donaldgifford/marketbridge/pkg/logger"
)

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	level := flag.String("log-level", "debug", "log level (debug, info, warn, error)")
	flag.Parse()

	log := logger.New(*level, "text")

	st := newStore(time.Now().UTC())
	log.Info("seeded mock data", "orders_per_marketplace", len(st.amazon))

	addr := fmt.Sprintf(":%d", *port)
	log.Info("starting mock marketplace server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(log, newMux(log, st)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func requestLogger(log *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// newMux registers every marketplace's routes.
func newMux(log *slog.Logger, st *store) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /amazon/auth/o2/token", amazonToken(log))
	mux.HandleFunc("GET /amazon/orders/v0/orders", requireHeader("x-amz-access-token", amazonAccessToken, amazonListOrders(st)))
	mux.HandleFunc("GET /amazon/orders/v0/orders/{id}", requireHeader("x-amz-access-token", amazonAccessToken, amazonGetOrder(st)))
	mux.HandleFunc("GET /amazon/reports/2021-06-30/reports/{id}", requireHeader("x-amz-access-token", amazonAccessToken, amazonGetReport(st)))

	mux.HandleFunc("POST /ebay/identity/v1/oauth2/token", ebayToken(log))
	mux.HandleFunc("GET /ebay/sell/fulfillment/v1/order", requireHeader("Authorization", "Bearer "+ebayAccessToken, ebayListOrders(st)))
	mux.HandleFunc("GET /ebay/sell/fulfillment/v1/order/{id}", requireHeader("Authorization", "Bearer "+ebayAccessToken, ebayGetOrder(st)))
	mux.HandleFunc("GET /ebay/post-order/v2/return/{id}", requireHeader("Authorization", "IAF "+ebayAccessToken, ebayGetReturn(st)))

	mux.HandleFunc("POST /walmart/v3/token", walmartToken(log))
	mux.HandleFunc("GET /walmart/v3/orders", walmartAuth(walmartListOrders(st)))
	mux.HandleFunc("GET /walmart/v3/orders/{id}", walmartAuth(walmartGetOrder(st)))
	mux.HandleFunc("GET /walmart/v3/returns", walmartAuth(walmartGetReturn(st)))

	mux.HandleFunc("GET /backmarket/ws/orders", backmarketAuth(backmarketListOrders(st)))
	mux.HandleFunc("GET /backmarket/ws/orders/{id}", backmarketAuth(backmarketGetOrder(st)))
	mux.HandleFunc("GET /backmarket/ws/listings/{id}", backmarketAuth(backmarketGetListing(st)))

	return mux
}
