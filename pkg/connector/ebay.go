package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/donaldgifford/marketbridge/pkg/auth"
	"github.com/donaldgifford/marketbridge/pkg/dispatch"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// eBay filter timestamps use millisecond precision.
const ebayTimeLayout = "2006-01-02T15:04:05.000Z"

// Ebay reads orders from the Sell Fulfillment API and returns from the
// Post-Order API. The two APIs take different authorization headers.
type Ebay struct {
	provider *auth.Ebay
	d        *dispatch.Dispatcher
}

// NewEbay creates an eBay connector that authenticates with p.
func NewEbay(p *auth.Ebay, opts ...Option) *Ebay {
	return &Ebay{provider: p, d: newDispatcher(p, opts)}
}

// Provider returns the connector's credential provider.
func (c *Ebay) Provider() *auth.Ebay {
	return c.provider
}

type ebayOrder struct {
	OrderID                string `json:"orderId"`
	OrderFulfillmentStatus string `json:"orderFulfillmentStatus"`
	CreationDate           string `json:"creationDate"`
}

type ebayReturn struct {
	Summary struct {
		ReturnID string `json:"returnId"`
		OrderID  string `json:"orderId"`
		State    string `json:"state"`
	} `json:"summary"`
}

// GetOrder fetches one order through the Fulfillment API.
func (c *Ebay) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	raw, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "sell/fulfillment/v1/order/" + url.PathEscape(id),
		Headers:  c.provider.BearerHeaders,
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("getting ebay order %s: %w", id, err)
	}

	o, err := decodeEbayOrder(raw)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders lists orders, optionally filtered by creation time and
// fulfillment status.
func (c *Ebay) ListOrders(ctx context.Context, q domain.OrderQuery) ([]domain.Order, error) {
	params := url.Values{}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(min(q.Limit, 200)))
	}

	var filters []string
	if !q.CreatedAfter.IsZero() {
		filters = append(filters, "creationdate:["+ebayTime(q.CreatedAfter)+"..]")
	}
	if q.Status != "" {
		filters = append(filters, "orderfulfillmentstatus:{"+q.Status+"}")
	}
	if len(filters) > 0 {
		params.Set("filter", strings.Join(filters, ","))
	}

	var resp struct {
		Orders []json.RawMessage `json:"orders"`
	}
	if _, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "sell/fulfillment/v1/order",
		Query:    params,
		Headers:  c.provider.BearerHeaders,
	}, &resp); err != nil {
		return nil, fmt.Errorf("listing ebay orders: %w", err)
	}

	return decodeEach(resp.Orders, decodeEbayOrder)
}

// GetReturn fetches one return request through the Post-Order API.
func (c *Ebay) GetReturn(ctx context.Context, id string) (*domain.Return, error) {
	var r ebayReturn
	raw, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "post-order/v2/return/" + url.PathEscape(id),
		Headers:  c.provider.IAFHeaders,
	}, &r)
	if err != nil {
		return nil, fmt.Errorf("getting ebay return %s: %w", id, err)
	}

	returnID := r.Summary.ReturnID
	if returnID == "" {
		returnID = id
	}
	return &domain.Return{
		Marketplace: domain.MarketplaceEbay,
		ID:          returnID,
		OrderID:     r.Summary.OrderID,
		State:       r.Summary.State,
		Raw:         raw,
	}, nil
}

func decodeEbayOrder(raw json.RawMessage) (domain.Order, error) {
	var o ebayOrder
	if err := json.Unmarshal(raw, &o); err != nil {
		return domain.Order{}, fmt.Errorf("parsing ebay order: %w", err)
	}
	return domain.Order{
		Marketplace: domain.MarketplaceEbay,
		ID:          o.OrderID,
		Status:      o.OrderFulfillmentStatus,
		CreatedAt:   parseTime(o.CreationDate),
		Raw:         raw,
	}, nil
}

// ebayTime formats t the way Fulfillment API filters expect.
func ebayTime(t time.Time) string {
	return t.UTC().Format(ebayTimeLayout)
}
