package bridge

import (
	"log/slog"

	"github.com/donaldgifford/marketbridge/internal/config"
	"github.com/donaldgifford/marketbridge/pkg/auth"
	"github.com/donaldgifford/marketbridge/pkg/connector"
	"github.com/donaldgifford/marketbridge/pkg/dispatch"
)

// FactoryOption configures FromConfig.
type FactoryOption func(*factory)

type factory struct {
	client dispatch.Doer
	log    *slog.Logger
}

// WithHTTPClient overrides the HTTP client shared by every provider and
// connector.
func WithHTTPClient(c dispatch.Doer) FactoryOption {
	return func(f *factory) {
		f.client = c
	}
}

// WithFactoryLogger sets the logger shared by the Bridge, providers and
// connectors.
func WithFactoryLogger(l *slog.Logger) FactoryOption {
	return func(f *factory) {
		f.log = l
	}
}

// FromConfig builds a provider and connector for every enabled marketplace.
func FromConfig(cfg *config.Config, opts ...FactoryOption) (*Bridge, error) {
	f := &factory{log: slog.Default()}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = dispatch.NewHTTPClient(cfg.HTTP.Timeout)
	}

	m := cfg.Marketplaces
	b := New(
		WithLogger(f.log),
		WithAmazonMarketplaceIDs(m.Amazon.MarketplaceIDs),
	)
	connOpts := []connector.Option{
		connector.WithHTTPClient(f.client),
		connector.WithLogger(f.log),
	}

	if a := m.Amazon; a.Enabled {
		p := auth.NewAmazon(
			auth.AmazonCredentials{
				ClientID:     a.ClientID,
				ClientSecret: a.ClientSecret,
				RefreshToken: a.RefreshToken,
			},
			f.providerOptions(a.Endpoints, config.IsProduction(a.Production, m.UseProduction),
				auth.WithTokenURL(a.TokenURL),
			)...,
		)
		b.Register(p, connector.NewAmazon(p, connOpts...))
	}

	if e := m.Ebay; e.Enabled {
		p := auth.NewEbay(
			auth.EbayCredentials(e.Dev),
			auth.EbayCredentials(e.Prod),
			f.providerOptions(e.Endpoints, config.IsProduction(e.Production, m.UseProduction),
				auth.WithMarketplaceID(e.MarketplaceID),
			)...,
		)
		b.Register(p, connector.NewEbay(p, connOpts...))
	}

	if w := m.Walmart; w.Enabled {
		p := auth.NewWalmart(
			auth.WalmartCredentials(w.Dev),
			auth.WalmartCredentials(w.Prod),
			f.providerOptions(w.Endpoints, config.IsProduction(w.Production, m.UseProduction),
				auth.WithServiceName(w.ServiceName),
			)...,
		)
		b.Register(p, connector.NewWalmart(p, connOpts...))
	}

	if bm := m.Backmarket; bm.Enabled {
		p := auth.NewBackmarket(
			auth.BackmarketCredentials(bm.Dev),
			auth.BackmarketCredentials(bm.Prod),
			f.providerOptions(bm.Endpoints, config.IsProduction(bm.Production, m.UseProduction))...,
		)
		b.Register(p, connector.NewBackmarket(p, connOpts...))
	}

	if len(b.entries) == 0 {
		return nil, ErrNoMarketplaces
	}
	return b, nil
}

func (f *factory) providerOptions(
	endpoints config.EndpointConfig,
	production bool,
	extra ...auth.Option,
) []auth.Option {
	opts := []auth.Option{
		auth.WithHTTPClient(f.client),
		auth.WithLogger(f.log),
		auth.WithProduction(production),
	}
	if endpoints.SandboxURL != "" {
		opts = append(opts, auth.WithSandboxURL(endpoints.SandboxURL))
	}
	if endpoints.ProductionURL != "" {
		opts = append(opts, auth.WithProductionURL(endpoints.ProductionURL))
	}
	return append(opts, extra...)
}
