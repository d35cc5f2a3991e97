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

// Amazon reads orders and reports from the Selling Partner API.
type Amazon struct {
	provider *auth.Amazon
	d        *dispatch.Dispatcher
}

// NewAmazon creates an Amazon connector that authenticates with p.
func NewAmazon(p *auth.Amazon, opts ...Option) *Amazon {
	return &Amazon{provider: p, d: newDispatcher(p, opts)}
}

// Provider returns the connector's credential provider.
func (c *Amazon) Provider() *auth.Amazon {
	return c.provider
}

type amazonOrder struct {
	AmazonOrderID string `json:"AmazonOrderId"`
	OrderStatus   string `json:"OrderStatus"`
	PurchaseDate  string `json:"PurchaseDate"`
}

// GetOrder fetches one order by its Amazon order ID.
func (c *Amazon) GetOrder(ctx context.Context, id string) (*domain.Order, error) {
	var resp struct {
		Payload json.RawMessage `json:"payload"`
	}
	if _, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "orders/v0/orders/" + url.PathEscape(id),
	}, &resp); err != nil {
		return nil, fmt.Errorf("getting amazon order %s: %w", id, err)
	}
	if len(resp.Payload) == 0 {
		return nil, fmt.Errorf("getting amazon order %s: %w", id, ErrNotFound)
	}

	o, err := decodeAmazonOrder(resp.Payload)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// ListOrders lists orders created after q.CreatedAfter in the marketplaces
// named by q.MarketplaceIDs. Both fields are required by Amazon.
func (c *Amazon) ListOrders(ctx context.Context, q domain.OrderQuery) ([]domain.Order, error) {
	if len(q.MarketplaceIDs) == 0 {
		return nil, fmt.Errorf("amazon orders need at least one marketplace ID: %w", ErrInvalidQuery)
	}
	if q.CreatedAfter.IsZero() {
		return nil, fmt.Errorf("amazon orders need a created-after time: %w", ErrInvalidQuery)
	}

	params := url.Values{}
	params.Set("MarketplaceIds", strings.Join(q.MarketplaceIDs, ","))
	params.Set("CreatedAfter", q.CreatedAfter.UTC().Format(time.RFC3339))
	if q.Status != "" {
		params.Set("OrderStatuses", q.Status)
	}
	if q.Limit > 0 {
		params.Set("MaxResultsPerPage", strconv.Itoa(min(q.Limit, 100)))
	}

	var resp struct {
		Payload struct {
			Orders []json.RawMessage `json:"Orders"`
		} `json:"payload"`
	}
	if _, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "orders/v0/orders",
		Query:    params,
	}, &resp); err != nil {
		return nil, fmt.Errorf("listing amazon orders: %w", err)
	}

	return decodeEach(resp.Payload.Orders, decodeAmazonOrder)
}

// GetReport fetches a report's metadata document.
func (c *Amazon) GetReport(ctx context.Context, id string) (json.RawMessage, error) {
	raw, err := getJSON(ctx, c.d, dispatch.Request{
		Endpoint: "reports/2021-06-30/reports/" + url.PathEscape(id),
	}, nil)
	if err != nil {
		return nil, fmt.Errorf("getting amazon report %s: %w", id, err)
	}
	return raw, nil
}

func decodeAmazonOrder(raw json.RawMessage) (domain.Order, error) {
	var o amazonOrder
	if err := json.Unmarshal(raw, &o); err != nil {
		return domain.Order{}, fmt.Errorf("parsing amazon order: %w", err)
	}
	return domain.Order{
		Marketplace: domain.MarketplaceAmazon,
		ID:          o.AmazonOrderID,
		Status:      o.OrderStatus,
		CreatedAt:   parseTime(o.PurchaseDate),
		Raw:         raw,
	}, nil
}
