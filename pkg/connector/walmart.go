package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/donaldgifford/marketbridge/pkg/auth"
	"github.com/donaldgifford/marketbridge/pkg/dispatch"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// Walmart reads orders and returns from the Walmart Marketplace API.
type Walmart struct {
	provider *auth.Walmart
	d        *dispatch.Dispatcher
}

// NewWalmart creates a Walmart connector that authenticates with p.
func NewWalmart(p *auth.Walmart, opts ...Option) *Walmart {
	return &Walmart{provider: p, d: newDispatcher(p, opts)}
}

// Provider returns the connector's credential provider.
func (c *Walmart) Provider() *auth.Walmart {
	return c.provider
}

type walmartOrder struct {
	PurchaseOrderID string `json:"purchaseOrderId"`
	OrderDate       int64  `json:"orderDate"`
	OrderLines      struct {
		OrderLine []struct {
			OrderLineStatuses struct {
				OrderLineStatus []struct {
					Status string `json:"status"`
				} `json:"orderLineStatus"`
			} `json:"orderLineStatuses"`
		} `json:"orderLine"`
	} `json:"orderLines"`
}

// status is the status of the first order line; Walmart has no
// order-level status.
func (o *walmartOrder) status() string {
	for _, line := range o.OrderLines.OrderLine {
		for _, s := range line.OrderLineStatuses.OrderLineStatus {
			if s.Status != "" {
				return s.Status
			}
		}
	}
	return ""
}

type walmartReturn struct {
	ReturnOrderID    string `json:"returnOrderId"`
	CustomerOrderID  string `json:"customerOrderId"`
	ReturnOrderLines []struct {
		CurrentRefundStatus string `json:"currentRefundStatus"`
	} `json:"returnOrderLines"`
}

// GetOrder fetches one order by purchase order ID.
func (c *Walmart) GetOrder(ctx context.Context, purchaseOrderID string) (*domain.Order, error) {
	var resp struct {
		Order json.RawMessage `json:"order"`
	}
	if _, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "v3/orders/" + url.PathEscape(purchaseOrderID),
	}, &resp); err != nil {
		return nil, fmt.Errorf("getting walmart order %s: %w", purchaseOrderID, err)
	}
	if len(resp.Order) == 0 {
		return nil, fmt.Errorf("getting walmart order %s: %w", purchaseOrderID, ErrNotFound)
	}

	o, err := decodeWalmartOrder(resp.Order)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders lists orders created on or after q.CreatedAfter.
func (c *Walmart) ListOrders(ctx context.Context, q domain.OrderQuery) ([]domain.Order, error) {
	params := url.Values{}
	if !q.CreatedAfter.IsZero() {
		params.Set("createdStartDate", q.CreatedAfter.UTC().Format(time.RFC3339))
	}
	if q.Status != "" {
		params.Set("status", q.Status)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(min(q.Limit, 200)))
	}

	var resp struct {
		List struct {
			Elements struct {
				Order []json.RawMessage `json:"order"`
			} `json:"elements"`
		} `json:"list"`
	}
	if _, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "v3/orders",
		Query:    params,
	}, &resp); err != nil {
		return nil, fmt.Errorf("listing walmart orders: %w", err)
	}

	return decodeEach(resp.List.Elements.Order, decodeWalmartOrder)
}

// GetReturn fetches one return order by its return order ID.
func (c *Walmart) GetReturn(ctx context.Context, returnOrderID string) (*domain.Return, error) {
	var resp struct {
		ReturnOrders []json.RawMessage `json:"returnOrders"`
	}
	if _, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "v3/returns",
		Query:    url.Values{"returnOrderId": {returnOrderID}},
	}, &resp); err != nil {
		return nil, fmt.Errorf("getting walmart return %s: %w", returnOrderID, err)
	}
	if len(resp.ReturnOrders) == 0 {
		return nil, fmt.Errorf("getting walmart return %s: %w", returnOrderID, ErrNotFound)
	}

	raw := resp.ReturnOrders[0]
	var r walmartReturn
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("parsing walmart return: %w", err)
	}

	var state string
	if len(r.ReturnOrderLines) > 0 {
		state = r.ReturnOrderLines[0].CurrentRefundStatus
	}
	return &domain.Return{
		Marketplace: domain.MarketplaceWalmart,
		ID:          r.ReturnOrderID,
		OrderID:     r.CustomerOrderID,
		State:       state,
		Raw:         raw,
	}, nil
}

func decodeWalmartOrder(raw json.RawMessage) (domain.Order, error) {
	var o walmartOrder
	if err := json.Unmarshal(raw, &o); err != nil {
		return domain.Order{}, fmt.Errorf("parsing walmart order: %w", err)
	}

	order := domain.Order{
		Marketplace: domain.MarketplaceWalmart,
		ID:          o.PurchaseOrderID,
		Status:      o.status(),
		Raw:         raw,
	}
	if o.OrderDate > 0 {
		t := time.UnixMilli(o.OrderDate).UTC()
		order.CreatedAt = &t
	}
	return order, nil
}
