package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/donaldgifford/marketbridge/pkg/auth"
	"github.com/donaldgifford/marketbridge/pkg/dispatch"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// backmarketTimeLayout is the format of the date_creation filter.
const backmarketTimeLayout = "2006-01-02 15:04:05"

// Backmarket reads orders and listings from the Backmarket seller API.
type Backmarket struct {
	provider *auth.Backmarket
	d        *dispatch.Dispatcher
}

// NewBackmarket creates a Backmarket connector that authenticates with p.
func NewBackmarket(p *auth.Backmarket, opts ...Option) *Backmarket {
	return &Backmarket{provider: p, d: newDispatcher(p, opts)}
}

// Provider returns the connector's credential provider.
func (c *Backmarket) Provider() *auth.Backmarket {
	return c.provider
}

// Backmarket sends numeric IDs and states; json.Number accepts both
// numbers and numeric strings.
type backmarketOrder struct {
	OrderID      json.Number `json:"order_id"`
	State        json.Number `json:"state"`
	DateCreation string      `json:"date_creation"`
}

// GetOrder fetches one order by ID.
func (c *Backmarket) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	raw, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "ws/orders/" + url.PathEscape(id),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("getting backmarket order %s: %w", id, err)
	}

	o, err := decodeBackmarketOrder(raw)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders lists orders created after q.CreatedAfter, optionally
// filtered by state.
func (c *Backmarket) ListOrders(ctx context.Context, q domain.OrderQuery) ([]domain.Order, error) {
	params := url.Values{}
	if !q.CreatedAfter.IsZero() {
		params.Set("date_creation", q.CreatedAfter.UTC().Format(backmarketTimeLayout))
	}
	if q.Status != "" {
		params.Set("state", q.Status)
	}

	var resp struct {
		Results []json.RawMessage `json:"results"`
	}
	if _, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "ws/orders",
		Query:    params,
	}, &resp); err != nil {
		return nil, fmt.Errorf("listing backmarket orders: %w", err)
	}

	orders, err := decodeEach(resp.Results, decodeBackmarketOrder)
	if err != nil {
		return nil, err
	}
	if q.Limit > 0 && len(orders) > q.Limit {
		orders = orders[:q.Limit]
	}
	return orders, nil
}

// GetListing fetches one listing document.
func (c *Backmarket) GetListing(ctx context.Context, id string) (json.RawMessage, error) {
	raw, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "ws/listings/" + url.PathEscape(id),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("getting backmarket listing %s: %w", id, err)
	}
	return raw, nil
}

func decodeBackmarketOrder(raw json.RawMessage) (domain.Order, error) {
	var o backmarketOrder
	if err := json.Unmarshal(raw, &o); err != nil {
		return domain.Order{}, fmt.Errorf("parsing backmarket order: %w", err)
	}
	return domain.Order{
		Marketplace: domain.MarketplaceBackmarket,
		ID:          o.OrderID.String(),
		Status:      o.State.String(),
		CreatedAt:   parseTime(o.DateCreation),
		Raw:         raw,
	}, nil
}
