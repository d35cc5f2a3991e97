package auth_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/marketbridge/pkg/auth"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

var amazonCreds = auth.AmazonCredentials{
	ClientID:     "amzn-client",
	ClientSecret: "amzn-secret",
	RefreshToken: "Atzr|refresh",
}

func newTestAmazon(t *testing.T, handler http.HandlerFunc, opts ...auth.Option) (*auth.Amazon, *countingServer) {
	t.Helper()

	srv := newCountingServer(t, handler)
	opts = append([]auth.Option{
		auth.WithTokenURL(srv.URL + "/auth/o2/token"),
		auth.WithHTTPClient(srv.Client()),
		auth.WithLogger(discardLogger()),
	}, opts...)
	return auth.NewAmazon(amazonCreds, opts...), srv
}

func TestAmazon_BaseURL(t *testing.T) {
	t.Parallel()

	p := auth.NewAmazon(amazonCreds)
	got, err := p.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, auth.AmazonSandboxURL, got)

	p.SetProduction(true)
	got, err = p.BaseURL()
	require.NoError(t, err)
	assert.Equal(t, auth.AmazonProductionURL, got)

	p = auth.NewAmazon(amazonCreds, auth.WithSandboxURL(""))
	_, err = p.BaseURL()
	require.ErrorIs(t, err, auth.ErrConfiguration)
	assert.Equal(t, "amazon sandbox base URL not configured", err.Error())
}

func TestAmazon_Headers(t *testing.T) {
	t.Parallel()

	clock := newFakeClock()
	p, srv := newTestAmazon(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/o2/token", r.URL.Path)
		assert.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		assert.Equal(t, "Atzr|refresh", r.PostForm.Get("refresh_token"))
		assert.Equal(t, "amzn-client", r.PostForm.Get("client_id"))
		assert.Equal(t, "amzn-secret", r.PostForm.Get("client_secret"))

		writeToken(w, `{"access_token":"Atza|token","token_type":"bearer","expires_in":3600}`)
	}, auth.WithNowFunc(clock.Now))

	h, err := p.Headers(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Atza|token", h.Get("x-amz-access-token"))
	assert.Equal(t, "2026-03-01 12:00:00", h.Get("x-amz-date"))
	assert.Equal(t, "amzn-client/1 (Go)", h.Get("User-Agent"))
	assert.Equal(t, "application/json", h.Get("Content-Type"))
	assert.Equal(t, int32(1), srv.hits.Load())
}

func TestAmazon_ReauthenticatesEveryCall(t *testing.T) {
	t.Parallel()

	p, srv := newTestAmazon(t, func(w http.ResponseWriter, _ *http.Request) {
		writeToken(w, `{"access_token":"tok","expires_in":3600}`)
	})

	for range 3 {
		_, err := p.Headers(context.Background())
		require.NoError(t, err)
	}
	assert.Equal(t, int32(3), srv.hits.Load())
	assert.Equal(t, auth.StateAuthenticated, p.State())
}

func TestAmazon_TokenMissing(t *testing.T) {
	t.Parallel()

	p, _ := newTestAmazon(t, func(w http.ResponseWriter, _ *http.Request) {
		writeToken(w, `{"token_type":"bearer","expires_in":3600}`)
	})

	_, err := p.Headers(context.Background())
	require.ErrorIs(t, err, auth.ErrTokenMissing)
	require.ErrorIs(t, err, auth.ErrAuthentication)

	var authErr *auth.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, domain.MarketplaceAmazon, authErr.Marketplace)
	assert.Equal(t, http.StatusOK, authErr.StatusCode)
}

func TestAmazon_MalformedBody(t *testing.T) {
	t.Parallel()

	p, _ := newTestAmazon(t, func(w http.ResponseWriter, _ *http.Request) {
		writeToken(w, `not json`)
	})

	_, err := p.Headers(context.Background())
	require.ErrorIs(t, err, auth.ErrAuthentication)
	assert.NotErrorIs(t, err, auth.ErrTokenMissing)
	assert.Contains(t, err.Error(), "parsing token response")
}

func TestAmazon_Unauthorized(t *testing.T) {
	t.Parallel()

	p, _ := newTestAmazon(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_client","error_description":"Client authentication failed"}`))
	})

	_, err := p.Headers(context.Background())

	var authErr *auth.AuthenticationError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, http.StatusUnauthorized, authErr.StatusCode)
	assert.Equal(t, "invalid_client - Client authentication failed", authErr.Description)
	assert.Equal(t,
		"amazon sandbox authentication failed (status 401): invalid_client - Client authentication failed",
		err.Error(),
	)
}

func TestAmazon_TransportFailure(t *testing.T) {
	t.Parallel()

	p := auth.NewAmazon(amazonCreds,
		auth.WithTokenURL("http://127.0.0.1:1/auth/o2/token"),
		auth.WithLogger(discardLogger()),
	)

	_, err := p.Headers(context.Background())
	require.ErrorIs(t, err, auth.ErrAuthentication)
	assert.Contains(t, err.Error(), "executing token request")
}

func TestAmazon_MissingCredentials(t *testing.T) {
	t.Parallel()

	p := auth.NewAmazon(auth.AmazonCredentials{ClientID: "only-id"},
		auth.WithHTTPClient(failingDoer{t}),
		auth.WithLogger(discardLogger()),
	)

	err := p.Authenticate(context.Background())
	require.ErrorIs(t, err, auth.ErrMissingCredentials)
}
