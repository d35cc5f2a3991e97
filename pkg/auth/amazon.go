package auth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// Default Amazon Selling Partner API endpoints.
const (
	AmazonSandboxURL    = "https://sandbox.sellingpartnerapi-na.amazon.com/"
	AmazonProductionURL = "https://sellingpartnerapi-na.amazon.com/"

	// AmazonTokenURL is the Login with Amazon endpoint. It lives on a
	// different host than the API.
	AmazonTokenURL = "https://api.amazon.com/auth/o2/token" //nolint:gosec // not a credential

	amazonDateLayout = "2006-01-02 15:04:05"
)

// AmazonCredentials is the single LWA credential set used in both
// environments.
type AmazonCredentials struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
}

// Amazon authenticates against the Selling Partner API. Amazon tokens are
// not cached across calls.
type Amazon struct {
	*base

	creds    AmazonCredentials
	tokenURL string
}

// NewAmazon creates an Amazon provider.
func NewAmazon(creds AmazonCredentials, opts ...Option) *Amazon {
	o := newOptions(opts)

	p := &Amazon{
		base:     newBase(domain.MarketplaceAmazon, AmazonSandboxURL, AmazonProductionURL, o),
		creds:    creds,
		tokenURL: AmazonTokenURL,
	}
	if o.tokenURL != "" {
		p.tokenURL = o.tokenURL
	}
	p.base.fetch = p.requestToken
	return p
}

// Headers returns the Selling Partner request headers with a fresh token.
func (p *Amazon) Headers(ctx context.Context) (http.Header, error) {
	tok, err := p.token(ctx)
	if err != nil {
		return nil, err
	}

	h := http.Header{}
	h.Set("x-amz-access-token", tok)
	h.Set("x-amz-date", p.nowFunc().UTC().Format(amazonDateLayout))
	h.Set("User-Agent", p.creds.ClientID+"/1 (Go)")
	h.Set("Content-Type", "application/json")
	return h, nil
}

func (p *Amazon) requestToken(ctx context.Context, production bool) (*tokenResponse, error) {
	if p.creds.ClientID == "" || p.creds.ClientSecret == "" || p.creds.RefreshToken == "" {
		return nil, p.authErrorFor(production, 0, "", ErrMissingCredentials)
	}

	form := url.Values{
		"grant_type":    {"refresh_token"},
		"refresh_token": {p.creds.RefreshToken},
		"client_id":     {p.creds.ClientID},
		"client_secret": {p.creds.ClientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, p.authErrorFor(production, 0, "", fmt.Errorf("creating token request: %w", err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return p.exchange(req, production)
}
