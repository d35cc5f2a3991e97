package auth

import (
	"context"
	"net/http"

	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// Default Backmarket endpoints.
const (
	BackmarketSandboxURL    = "https://preprod.backmarket.com/"
	BackmarketProductionURL = "https://www.backmarket.com/"
)

// BackmarketCredentials is one Backmarket API key. ClientSecret is the
// value sent in the Authorization header.
type BackmarketCredentials struct {
	ClientID     string
	ClientSecret string
}

// Backmarket authenticates against the Backmarket seller API. Its access
// token is the configured secret itself, so authenticating never touches
// the network.
type Backmarket struct {
	*base

	dev  BackmarketCredentials
	prod BackmarketCredentials
}

// NewBackmarket creates a Backmarket provider with separate preprod and
// production keys.
func NewBackmarket(dev, prod BackmarketCredentials, opts ...Option) *Backmarket {
	o := newOptions(opts)

	p := &Backmarket{
		base: newBase(domain.MarketplaceBackmarket, BackmarketSandboxURL, BackmarketProductionURL, o),
		dev:  dev,
		prod: prod,
	}
	p.base.fetch = p.requestToken
	return p
}

// Headers returns the seller API request headers.
func (p *Backmarket) Headers(ctx context.Context) (http.Header, error) {
	tok, err := p.token(ctx)
	if err != nil {
		return nil, err
	}

	h := http.Header{}
	h.Set("Authorization", tok)
	h.Set("Accept", "application/json")
	return h, nil
}

func (p *Backmarket) requestToken(_ context.Context, production bool) (*tokenResponse, error) {
	creds := p.dev
	if production {
		creds = p.prod
	}
	if creds.ClientSecret == "" {
		return nil, p.authErrorFor(production, 0, "", ErrMissingCredentials)
	}
	return &tokenResponse{AccessToken: "Basic " + creds.ClientSecret, TokenType: "Basic"}, nil
}
