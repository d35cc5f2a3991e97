package auth

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestTokenCache_Valid(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		token  string
		expiry time.Time
		want   bool
	}{
		{name: "empty", want: false},
		{name: "no expiry is never reused", token: "t", want: false},
		{name: "fresh", token: "t", expiry: now.Add(time.Hour), want: true},
		{name: "inside refresh buffer", token: "t", expiry: now.Add(59 * time.Second), want: false},
		{name: "exactly at buffer edge", token: "t", expiry: now.Add(refreshBuffer), want: false},
		{name: "just outside buffer", token: "t", expiry: now.Add(refreshBuffer + time.Second), want: true},
		{name: "expired", token: "t", expiry: now.Add(-time.Minute), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := &tokenCache{token: tt.token, expiry: tt.expiry}
			_, ok := c.valid(now)
			assert.Equal(t, tt.want, ok)
		})
	}
}

func TestTokenCache_StoreAfterInvalidate(t *testing.T) {
	t.Parallel()

	c := &tokenCache{}
	gen := c.currentGeneration()

	c.invalidate()
	assert.False(t, c.store(gen, "stale", time.Time{}))
	assert.Equal(t, StateUninitialized, c.state(time.Now(), true))

	assert.True(t, c.store(c.currentGeneration(), "fresh", time.Time{}))
	assert.Equal(t, StateAuthenticated, c.state(time.Now(), false))
}

func TestTokenState_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "uninitialized", StateUninitialized.String())
	assert.Equal(t, "authenticated", StateAuthenticated.String())
	assert.Equal(t, "expired", StateExpired.String())
}

func TestDescribeTokenError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "error and description", body: `{"error":"invalid_grant","error_description":"expired"}`, want: "invalid_grant - expired"},
		{name: "error only", body: `{"error":"invalid_client"}`, want: "invalid_client"},
		{name: "plain text", body: "  bad gateway \n", want: "bad gateway"},
		{name: "long body truncated", body: strings.Repeat("x", 250), want: strings.Repeat("x", 200) + "..."},
		{name: "truncation keeps runes whole", body: strings.Repeat("x", 199) + strings.Repeat("é", 5), want: strings.Repeat("x", 199) + "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := describeTokenError([]byte(tt.body))
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestBasicAuth(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Basic aWQ6c2VjcmV0", basicAuth("id", "secret"))
}
