// Package auth implements the per-marketplace credential providers. Each
// provider resolves the base URL for its active environment, acquires an
// access token, and projects it into the request headers its marketplace
// expects.
package auth

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/donaldgifford/marketbridge/pkg/dispatch"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// Provider is the capability set shared by every marketplace variant.
type Provider interface {
	Marketplace() domain.Marketplace
	BaseURL() (string, error)
	Production() bool
	SetProduction(production bool)
	Environment() domain.Environment
	State() TokenState
	Authenticate(ctx context.Context) error
	Headers(ctx context.Context) (http.Header, error)
}

var (
	_ Provider = (*Amazon)(nil)
	_ Provider = (*Ebay)(nil)
	_ Provider = (*Walmart)(nil)
	_ Provider = (*Backmarket)(nil)
)

// Option configures a provider. Options that do not apply to a marketplace
// are ignored by it.
type Option func(*options)

type options struct {
	client        dispatch.Doer
	nowFunc       func() time.Time
	sandboxURL    *string
	productionURL *string
	production    bool
	tokenURL      string
	correlationID func() string
	serviceName   string
	marketplaceID string
	logger        *slog.Logger
}

// WithHTTPClient overrides the HTTP client used for token requests.
func WithHTTPClient(c dispatch.Doer) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithNowFunc overrides the time function for testing.
func WithNowFunc(f func() time.Time) Option {
	return func(o *options) {
		o.nowFunc = f
	}
}

// WithSandboxURL overrides the marketplace's default sandbox base URL.
// An empty string leaves the sandbox unconfigured.
func WithSandboxURL(u string) Option {
	return func(o *options) {
		o.sandboxURL = &u
	}
}

// WithProductionURL overrides the marketplace's default production base
// URL. An empty string leaves production unconfigured.
func WithProductionURL(u string) Option {
	return func(o *options) {
		o.productionURL = &u
	}
}

// WithProduction selects the initial environment.
func WithProduction(production bool) Option {
	return func(o *options) {
		o.production = production
	}
}

// WithTokenURL overrides the Amazon LWA token endpoint.
func WithTokenURL(u string) Option {
	return func(o *options) {
		o.tokenURL = u
	}
}

// WithCorrelationIDFunc overrides the Walmart correlation ID generator.
func WithCorrelationIDFunc(f func() string) Option {
	return func(o *options) {
		o.correlationID = f
	}
}

// WithServiceName overrides the Walmart WM_SVC.NAME header value.
func WithServiceName(name string) Option {
	return func(o *options) {
		o.serviceName = name
	}
}

// WithMarketplaceID overrides the eBay X-EBAY-C-MARKETPLACE-ID value.
func WithMarketplaceID(id string) Option {
	return func(o *options) {
		o.marketplaceID = id
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		client:        dispatch.NewHTTPClient(dispatch.DefaultTimeout),
		nowFunc:       time.Now,
		correlationID: uuid.NewString,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// fetchFunc performs one marketplace-specific token acquisition against
// the given environment.
type fetchFunc func(ctx context.Context, production bool) (*tokenResponse, error)

// snapshot is the environment together with the cache generation it
// belongs to.
type snapshot struct {
	gen        uint64
	production bool
}

// base holds the state every provider variant shares: the environment
// switch, both base URLs, the token cache and the transport.
type base struct {
	marketplace   domain.Marketplace
	sandboxURL    string
	productionURL string
	tracksExpiry  bool

	client  dispatch.Doer
	nowFunc func() time.Time
	log     *slog.Logger
	fetch   fetchFunc

	mu         sync.RWMutex
	production bool

	cache tokenCache
}

func newBase(
	m domain.Marketplace,
	defaultSandbox, defaultProduction string,
	o *options,
) *base {
	b := &base{
		marketplace:   m,
		sandboxURL:    defaultSandbox,
		productionURL: defaultProduction,
		client:        o.client,
		nowFunc:       o.nowFunc,
		log:           o.logger,
		production:    o.production,
	}
	if o.sandboxURL != nil {
		b.sandboxURL = *o.sandboxURL
	}
	if o.productionURL != nil {
		b.productionURL = *o.productionURL
	}
	return b
}

// Marketplace returns the marketplace this provider authenticates against.
func (b *base) Marketplace() domain.Marketplace {
	return b.marketplace
}

// Production reports whether the provider targets production.
func (b *base) Production() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.production
}

// Environment returns the active environment.
func (b *base) Environment() domain.Environment {
	return domain.EnvironmentFor(b.Production())
}

// SetProduction switches environments. Switching to a different
// environment discards the cached token, including one still being
// acquired, so the next header request authenticates against the new
// environment with its own credentials.
func (b *base) SetProduction(production bool) {
	b.mu.Lock()
	changed := b.production != production
	b.production = production
	if changed {
		b.cache.invalidate()
	}
	b.mu.Unlock()

	if !changed {
		return
	}
	b.log.Info("marketplace environment switched",
		"marketplace", b.marketplace,
		"environment", domain.EnvironmentFor(production),
	)
}

// snapshot reads the environment and the cache generation together.
// SetProduction changes both under b.mu, so they always agree.
func (b *base) snapshot() snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return snapshot{gen: b.cache.currentGeneration(), production: b.production}
}

// BaseURL returns the URL of the active environment. It never falls back
// to the other environment.
func (b *base) BaseURL() (string, error) {
	return b.baseURLFor(b.Production())
}

func (b *base) baseURLFor(production bool) (string, error) {
	if production && b.productionURL != "" {
		return b.productionURL, nil
	}
	if !production && b.sandboxURL != "" {
		return b.sandboxURL, nil
	}
	return "", &ConfigurationError{
		Marketplace: b.marketplace,
		Environment: domain.EnvironmentFor(production),
	}
}

// State reports where the provider is in its token lifecycle.
func (b *base) State() TokenState {
	return b.cache.state(b.nowFunc(), b.tracksExpiry)
}

// Authenticate acquires a new token unconditionally and caches it.
func (b *base) Authenticate(ctx context.Context) error {
	_, err := b.authenticate(ctx, true)
	return err
}

func (b *base) authErrorFor(production bool, status int, description string, err error) *AuthenticationError {
	return &AuthenticationError{
		Marketplace: b.marketplace,
		Environment: domain.EnvironmentFor(production),
		StatusCode:  status,
		Description: description,
		Err:         err,
	}
}
