package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/donaldgifford/marketbridge/pkg/dispatch"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// Default Walmart Marketplace endpoints.
const (
	WalmartSandboxURL    = "https://sandbox.walmartapis.com/"
	WalmartProductionURL = "https://marketplace.walmartapis.com/"

	// DefaultWalmartServiceName is the WM_SVC.NAME header value.
	DefaultWalmartServiceName = "Walmart Marketplace"

	walmartTokenPath = "v3/token" //nolint:gosec // not a credential
)

// Walmart header names.
const (
	HeaderWalmartAccessToken   = "WM_SEC.ACCESS_TOKEN"
	HeaderWalmartCorrelationID = "WM_QOS.CORRELATION_ID"
	HeaderWalmartServiceName   = "WM_SVC.NAME"
)

// WalmartCredentials is one Walmart client ID and secret.
type WalmartCredentials struct {
	ClientID     string
	ClientSecret string
}

// Walmart authenticates against the Walmart Marketplace API. Walmart tokens
// are not cached across calls and every request, token requests included,
// carries a new correlation ID.
type Walmart struct {
	*base

	dev           WalmartCredentials
	prod          WalmartCredentials
	serviceName   string
	correlationID func() string
}

// NewWalmart creates a Walmart provider with separate sandbox and
// production credentials.
func NewWalmart(dev, prod WalmartCredentials, opts ...Option) *Walmart {
	o := newOptions(opts)

	p := &Walmart{
		base:          newBase(domain.MarketplaceWalmart, WalmartSandboxURL, WalmartProductionURL, o),
		dev:           dev,
		prod:          prod,
		serviceName:   DefaultWalmartServiceName,
		correlationID: o.correlationID,
	}
	if o.serviceName != "" {
		p.serviceName = o.serviceName
	}
	p.base.fetch = p.requestToken
	return p
}

// Headers returns the Marketplace API request headers with a fresh token.
func (p *Walmart) Headers(ctx context.Context) (http.Header, error) {
	tok, err := p.token(ctx)
	if err != nil {
		return nil, err
	}

	h := http.Header{}
	h.Set(HeaderWalmartAccessToken, tok)
	h.Set(HeaderWalmartCorrelationID, p.correlationID())
	h.Set(HeaderWalmartServiceName, p.serviceName)
	h.Set("Accept", "application/json")
	return h, nil
}

func (p *Walmart) credentials(production bool) WalmartCredentials {
	if production {
		return p.prod
	}
	return p.dev
}

func (p *Walmart) requestToken(ctx context.Context, production bool) (*tokenResponse, error) {
	creds := p.credentials(production)
	if creds.ClientID == "" || creds.ClientSecret == "" {
		return nil, p.authErrorFor(production, 0, "", ErrMissingCredentials)
	}

	baseURL, err := p.baseURLFor(production)
	if err != nil {
		return nil, err
	}

	form := url.Values{"grant_type": {"client_credentials"}}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		dispatch.JoinURL(baseURL, walmartTokenPath),
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, p.authErrorFor(production, 0, "", fmt.Errorf("creating token request: %w", err))
	}
	req.Header.Set("Authorization", basicAuth(creds.ClientID, creds.ClientSecret))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderWalmartServiceName, p.serviceName)
	req.Header.Set(HeaderWalmartCorrelationID, p.correlationID())

	return p.exchange(req, production)
}
