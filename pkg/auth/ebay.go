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

// Default eBay endpoints.
const (
	EbaySandboxURL    = "https://api.sandbox.ebay.com/"
	EbayProductionURL = "https://api.ebay.com/"

	// DefaultEbayMarketplaceID is sent with IAF-authorized requests.
	DefaultEbayMarketplaceID = "EBAY_US"

	ebayTokenPath = "identity/v1/oauth2/token" //nolint:gosec // not a credential
)

// EbayCredentials is one eBay keyset with its user refresh token.
type EbayCredentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Ebay authenticates against the eBay Sell and Post-Order APIs. The token
// is cached until shortly before its reported expiry.
//
// eBay has no default header shape: the Sell APIs take a Bearer token and
// the Post-Order API takes an IAF token, so callers choose BearerHeaders or
// IAFHeaders per request.
type Ebay struct {
	*base

	dev           EbayCredentials
	prod          EbayCredentials
	marketplaceID string
}

// NewEbay creates an eBay provider with separate sandbox and production
// keysets.
func NewEbay(dev, prod EbayCredentials, opts ...Option) *Ebay {
	o := newOptions(opts)

	p := &Ebay{
		base:          newBase(domain.MarketplaceEbay, EbaySandboxURL, EbayProductionURL, o),
		dev:           dev,
		prod:          prod,
		marketplaceID: DefaultEbayMarketplaceID,
	}
	if o.marketplaceID != "" {
		p.marketplaceID = o.marketplaceID
	}
	p.tracksExpiry = true
	p.base.fetch = p.requestToken
	return p
}

// Headers always fails for eBay. Use BearerHeaders or IAFHeaders.
func (*Ebay) Headers(context.Context) (http.Header, error) {
	return nil, ErrHeaderStrategyRequired
}

// BearerHeaders returns headers for the Sell APIs.
func (p *Ebay) BearerHeaders(ctx context.Context) (http.Header, error) {
	tok, err := p.token(ctx)
	if err != nil {
		return nil, err
	}

	h := http.Header{}
	h.Set("Authorization", "Bearer "+tok)
	h.Set("Content-Type", "application/json")
	return h, nil
}

// IAFHeaders returns headers for the Post-Order API.
func (p *Ebay) IAFHeaders(ctx context.Context) (http.Header, error) {
	tok, err := p.token(ctx)
	if err != nil {
		return nil, err
	}

	h := http.Header{}
	h.Set("Authorization", "IAF "+tok)
	h.Set("Content-Type", "application/json")
	h.Set("X-EBAY-C-MARKETPLACE-ID", p.marketplaceID)
	return h, nil
}

func (p *Ebay) credentials(production bool) EbayCredentials {
	if production {
		return p.prod
	}
	return p.dev
}

func (p *Ebay) requestToken(ctx context.Context, production bool) (*tokenResponse, error) {
	creds := p.credentials(production)
	if creds.ClientID == "" || creds.ClientSecret == "" || creds.RefreshToken == "" {
		return nil, p.authErrorFor(production, 0, "", ErrMissingCredentials)
	}

	baseURL, err := p.baseURLFor(production)
	if err != nil {
		return nil, err
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {creds.RefreshToken},
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		dispatch.JoinURL(baseURL, ebayTokenPath),
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, p.authErrorFor(production, 0, "", fmt.Errorf("creating token request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Authorization", basicAuth(creds.ClientID, creds.ClientSecret))

	return p.exchange(req, production)
}
