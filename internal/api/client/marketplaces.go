package client

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/marketbridge/internal/bridge"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// ordersResponse mirrors the list-orders response body.
type ordersResponse struct {
	Orders []domain.Order `json:"orders"`
	Count  int            `json:"count"`
}

type marketplacesResponse struct {
	Marketplaces []bridge.ProviderStatus `json:"marketplaces"`
}

// Statuses returns the server's configured marketplaces.
func (c *Client) Statuses(ctx context.Context) ([]bridge.ProviderStatus, error) {
	var resp marketplacesResponse
	if err := c.get(ctx, "/api/v1/marketplaces", &resp); err != nil {
		return nil, err
	}
	return resp.Marketplaces, nil
}

// Order fetches one order.
func (c *Client) Order(ctx context.Context, m domain.Marketplace, id string) (*domain.Order, error) {
	var order domain.Order
	path := "/api/v1/marketplaces/" + url.PathEscape(string(m)) + "/orders/" + url.PathEscape(id)
	if err := c.get(ctx, path, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Orders lists orders matching q.
func (c *Client) Orders(ctx context.Context, m domain.Marketplace, q domain.OrderQuery) ([]domain.Order, error) {
	params := url.Values{}
	if !q.CreatedAfter.IsZero() {
		params.Set("created_after", q.CreatedAfter.UTC().Format(time.RFC3339))
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}
	if len(q.MarketplaceIDs) > 0 {
		params.Set("marketplace_ids", strings.Join(q.MarketplaceIDs, ","))
	}

	path := "/api/v1/marketplaces/" + url.PathEscape(string(m)) + "/orders"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp ordersResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}
	return resp.Orders, nil
}

// Return fetches one return.
func (c *Client) Return(ctx context.Context, m domain.Marketplace, id string) (*domain.Return, error) {
	var ret domain.Return
	path := "/api/v1/marketplaces/" + url.PathEscape(string(m)) + "/returns/" + url.PathEscape(id)
	if err := c.get(ctx, path, &ret); err != nil {
		return nil, err
	}
	return &ret, nil
}
