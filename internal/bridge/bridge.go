// Package bridge is the marketplace-neutral facade over the connectors. It
// routes order and return lookups to the connector registered for a
// marketplace and reports the state of each credential provider.
package bridge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/donaldgifford/marketbridge/pkg/auth"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// Sentinel errors.
var (
	ErrUnknownMarketplace = errors.New("marketplace not configured")
	ErrUnsupported        = errors.New("operation not supported by marketplace")
	ErrNoMarketplaces     = errors.New("no marketplaces enabled")
)

// Service is the read API exposed to the HTTP handlers and the CLI.
type Service interface {
	Marketplaces() []domain.Marketplace
	Order(ctx context.Context, m domain.Marketplace, id string) (*domain.Order, error)
	Orders(ctx context.Context, m domain.Marketplace, q domain.OrderQuery) ([]domain.Order, error)
	Return(ctx context.Context, m domain.Marketplace, id string) (*domain.Return, error)
	Status() []ProviderStatus
}

// OrderSource is implemented by every connector.
type OrderSource interface {
	GetOrder(ctx context.Context, id string) (*domain.Order, error)
	ListOrders(ctx context.Context, q domain.OrderQuery) ([]domain.Order, error)
}

// ReturnSource is implemented by connectors whose marketplace exposes
// returns.
type ReturnSource interface {
	GetReturn(ctx context.Context, id string) (*domain.Return, error)
}

// ProviderStatus describes one registered provider.
type ProviderStatus struct {
	Marketplace domain.Marketplace `json:"marketplace"`
	Environment domain.Environment `json:"environment"`
	BaseURL     string             `json:"base_url,omitempty"`
	TokenState  string             `json:"token_state"`
	Returns     bool               `json:"returns"`
	Error       string             `json:"error,omitempty"`
}

type entry struct {
	provider auth.Provider
	orders   OrderSource
}

// Bridge holds one connector per marketplace.
type Bridge struct {
	entries        map[domain.Marketplace]entry
	marketplaceIDs []string
	log            *slog.Logger
}

var _ Service = (*Bridge)(nil)

// Option configures the Bridge.
type Option func(*Bridge)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bridge) {
		b.log = l
	}
}

// WithAmazonMarketplaceIDs sets the Amazon marketplace IDs used when an
// order query names none.
func WithAmazonMarketplaceIDs(ids []string) Option {
	return func(b *Bridge) {
		b.marketplaceIDs = slices.Clone(ids)
	}
}

// New creates an empty Bridge.
func New(opts ...Option) *Bridge {
	b := &Bridge{
		entries: make(map[domain.Marketplace]entry),
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Register adds the connector for p's marketplace, replacing any previous
// one.
func (b *Bridge) Register(p auth.Provider, orders OrderSource) {
	b.entries[p.Marketplace()] = entry{provider: p, orders: orders}
	b.log.Debug("marketplace registered",
		"marketplace", p.Marketplace(),
		"environment", p.Environment(),
	)
}

// Marketplaces returns the registered marketplaces in a stable order.
func (b *Bridge) Marketplaces() []domain.Marketplace {
	var out []domain.Marketplace
	for _, m := range domain.Marketplaces() {
		if _, ok := b.entries[m]; ok {
			out = append(out, m)
		}
	}
	return out
}

// Provider returns the credential provider registered for m.
func (b *Bridge) Provider(m domain.Marketplace) (auth.Provider, error) {
	e, err := b.lookup(m)
	if err != nil {
		return nil, err
	}
	return e.provider, nil
}

// Order fetches one order.
func (b *Bridge) Order(ctx context.Context, m domain.Marketplace, id string) (*domain.Order, error) {
	e, err := b.lookup(m)
	if err != nil {
		return nil, err
	}
	return e.orders.GetOrder(ctx, id)
}

// Orders lists orders matching q.
func (b *Bridge) Orders(ctx context.Context, m domain.Marketplace, q domain.OrderQuery) ([]domain.Order, error) {
	e, err := b.lookup(m)
	if err != nil {
		return nil, err
	}
	if m == domain.MarketplaceAmazon && len(q.MarketplaceIDs) == 0 {
		q.MarketplaceIDs = b.marketplaceIDs
	}
	return e.orders.ListOrders(ctx, q)
}

// Return fetches one return. Marketplaces without a returns API fail with
// ErrUnsupported.
func (b *Bridge) Return(ctx context.Context, m domain.Marketplace, id string) (*domain.Return, error) {
	e, err := b.lookup(m)
	if err != nil {
		return nil, err
	}
	rs, ok := e.orders.(ReturnSource)
	if !ok {
		return nil, fmt.Errorf("%s returns: %w", m, ErrUnsupported)
	}
	return rs.GetReturn(ctx, id)
}

// Status reports every registered provider's environment, base URL and
// token state.
func (b *Bridge) Status() []ProviderStatus {
	out := make([]ProviderStatus, 0, len(b.entries))
	for _, m := range b.Marketplaces() {
		e := b.entries[m]
		_, returns := e.orders.(ReturnSource)

		st := ProviderStatus{
			Marketplace: m,
			Environment: e.provider.Environment(),
			TokenState:  e.provider.State().String(),
			Returns:     returns,
		}
		if u, err := e.provider.BaseURL(); err != nil {
			st.Error = err.Error()
		} else {
			st.BaseURL = u
		}
		out = append(out, st)
	}
	return out
}

// SetProduction switches every registered provider's environment.
func (b *Bridge) SetProduction(production bool) {
	for _, e := range b.entries {
		e.provider.SetProduction(production)
	}
}

func (b *Bridge) lookup(m domain.Marketplace) (entry, error) {
	e, ok := b.entries[m]
	if !ok {
		return entry{}, fmt.Errorf("%q: %w", m, ErrUnknownMarketplace)
	}
	return e, nil
}
