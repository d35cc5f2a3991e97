package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/marketbridge/internal/bridge"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// MarketplacesHandler serves order and return lookups through the bridge.
type MarketplacesHandler struct {
	svc bridge.Service
}

// NewMarketplacesHandler creates a new MarketplacesHandler.
func NewMarketplacesHandler(svc bridge.Service) *MarketplacesHandler {
	return &MarketplacesHandler{svc: svc}
}

// --- Input/Output types ---

// ListMarketplacesOutput is the response for listing configured marketplaces.
type ListMarketplacesOutput struct {
	Body struct {
		Marketplaces []bridge.ProviderStatus `json:"marketplaces"`
	}
}

// ListOrdersInput is the input for listing a marketplace's orders.
type ListOrdersInput struct {
	Marketplace    string `path:"marketplace"      doc:"Marketplace name"                                        example:"ebay"`
	CreatedAfter   string `query:"created_after"   doc:"Only orders created after this RFC 3339 time"`
	Status         string `query:"status"          doc:"Marketplace-specific order status filter"`
	Limit          int    `query:"limit"           doc:"Maximum number of orders"                                 minimum:"0" maximum:"200"`
	MarketplaceIDs string `query:"marketplace_ids" doc:"Comma-separated Amazon marketplace IDs (Amazon only)"`
}

// ListOrdersOutput is the response for listing orders.
type ListOrdersOutput struct {
	Body struct {
		Marketplace domain.Marketplace `json:"marketplace"`
		Orders      []domain.Order     `json:"orders"`
		Count       int                `json:"count"`
	}
}

// GetOrderInput is the input for getting a single order.
type GetOrderInput struct {
	Marketplace string `path:"marketplace" doc:"Marketplace name" example:"walmart"`
	ID          string `path:"id"          doc:"Marketplace order ID"`
}

// GetOrderOutput is the response for getting a single order.
type GetOrderOutput struct {
	Body domain.Order
}

// GetReturnInput is the input for getting a single return.
type GetReturnInput struct {
	Marketplace string `path:"marketplace" doc:"Marketplace name" example:"ebay"`
	ID          string `path:"id"          doc:"Marketplace return ID"`
}

// GetReturnOutput is the response for getting a single return.
type GetReturnOutput struct {
	Body domain.Return
}

// --- Handlers ---

// ListMarketplaces reports every configured marketplace with its
// environment, base URL and token state.
func (h *MarketplacesHandler) ListMarketplaces(
	_ context.Context,
	_ *struct{},
) (*ListMarketplacesOutput, error) {
	resp := &ListMarketplacesOutput{}
	resp.Body.Marketplaces = h.svc.Status()
	return resp, nil
}

// ListOrders lists one marketplace's orders.
func (h *MarketplacesHandler) ListOrders(
	ctx context.Context,
	input *ListOrdersInput,
) (*ListOrdersOutput, error) {
	m, err := parseMarketplace(input.Marketplace)
	if err != nil {
		return nil, err
	}

	q := domain.OrderQuery{
		Status: input.Status,
		Limit:  input.Limit,
	}
	if input.CreatedAfter != "" {
		t, err := time.Parse(time.RFC3339, input.CreatedAfter)
		if err != nil {
			return nil, huma.Error400BadRequest("created_after must be an RFC 3339 time")
		}
		q.CreatedAfter = t
	}
	for id := range strings.SplitSeq(input.MarketplaceIDs, ",") {
		if id = strings.TrimSpace(id); id != "" {
			q.MarketplaceIDs = append(q.MarketplaceIDs, id)
		}
	}

	orders, err := h.svc.Orders(ctx, m, q)
	if err != nil {
		return nil, toHTTPError(err)
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	resp := &ListOrdersOutput{}
	resp.Body.Marketplace = m
	resp.Body.Orders = orders
	resp.Body.Count = len(orders)
	return resp, nil
}

// GetOrder returns a single order.
func (h *MarketplacesHandler) GetOrder(
	ctx context.Context,
	input *GetOrderInput,
) (*GetOrderOutput, error) {
	m, err := parseMarketplace(input.Marketplace)
	if err != nil {
		return nil, err
	}

	order, err := h.svc.Order(ctx, m, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &GetOrderOutput{Body: *order}, nil
}

// GetReturn returns a single return request.
func (h *MarketplacesHandler) GetReturn(
	ctx context.Context,
	input *GetReturnInput,
) (*GetReturnOutput, error) {
	m, err := parseMarketplace(input.Marketplace)
	if err != nil {
		return nil, err
	}

	ret, err := h.svc.Return(ctx, m, input.ID)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &GetReturnOutput{Body: *ret}, nil
}

func parseMarketplace(name string) (domain.Marketplace, error) {
	m, err := domain.ParseMarketplace(name)
	if err != nil {
		return "", huma.Error404NotFound(fmt.Sprintf("marketplace %q not found", name))
	}
	return m, nil
}

// RegisterMarketplaceRoutes registers the marketplace endpoints with the
// Huma API.
func RegisterMarketplaceRoutes(api huma.API, h *MarketplacesHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "list-marketplaces",
		Method:      http.MethodGet,
		Path:        "/api/v1/marketplaces",
		Summary:     "List marketplaces",
		Description: "Returns every configured marketplace with its environment, base URL and token state.",
		Tags:        []string{"marketplaces"},
	}, h.ListMarketplaces)

	huma.Register(api, huma.Operation{
		OperationID: "list-orders",
		Method:      http.MethodGet,
		Path:        "/api/v1/marketplaces/{marketplace}/orders",
		Summary:     "List orders",
		Description: "Lists a marketplace's orders, optionally filtered by creation time and status.",
		Tags:        []string{"orders"},
		Errors: []int{
			http.StatusBadRequest, http.StatusNotFound,
			http.StatusBadGateway, http.StatusInternalServerError,
		},
	}, h.ListOrders)

	huma.Register(api, huma.Operation{
		OperationID: "get-order",
		Method:      http.MethodGet,
		Path:        "/api/v1/marketplaces/{marketplace}/orders/{id}",
		Summary:     "Get an order",
		Description: "Returns one order normalized across marketplaces, with the marketplace's raw document.",
		Tags:        []string{"orders"},
		Errors:      []int{http.StatusNotFound, http.StatusBadGateway, http.StatusInternalServerError},
	}, h.GetOrder)

	huma.Register(api, huma.Operation{
		OperationID: "get-return",
		Method:      http.MethodGet,
		Path:        "/api/v1/marketplaces/{marketplace}/returns/{id}",
		Summary:     "Get a return",
		Description: "Returns one return request. Marketplaces without a returns API answer 501.",
		Tags:        []string{"returns"},
		Errors: []int{
			http.StatusNotFound, http.StatusNotImplemented,
			http.StatusBadGateway, http.StatusInternalServerError,
		},
	}, h.GetReturn)
}
