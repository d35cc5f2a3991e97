package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/singleflight"

	"github.com/donaldgifford/marketbridge/internal/metrics"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// refreshBuffer is how long before expiry a cached token stops being used.
const refreshBuffer = 60 * time.Second

// TokenState is a provider's position in the token lifecycle.
type TokenState int

// Token lifecycle states.
const (
	StateUninitialized TokenState = iota
	StateAuthenticated
	StateExpired
)

func (s TokenState) String() string {
	switch s {
	case StateAuthenticated:
		return "authenticated"
	case StateExpired:
		return "expired"
	default:
		return "uninitialized"
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

type tokenErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// tokenCache holds the current token. generation changes on every
// invalidation so that an acquisition started before it cannot store its
// result afterwards. fetches numbers every token request started; forcing
// counts Authenticate calls waiting for a request newer than their own
// start.
type tokenCache struct {
	mu         sync.Mutex
	token      string
	expiry     time.Time
	generation uint64
	fetches    uint64
	forcing    int

	group singleflight.Group
}

// flight is the outcome of one singleflight call. seq is zero when the
// cached token was reused.
type flight struct {
	token string
	seq   uint64
}

// valid returns the cached token if it carries an expiry that is more than
// refreshBuffer away. Tokens without an expiry are never reused.
func (c *tokenCache) valid(now time.Time) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.validLocked(now)
}

func (c *tokenCache) validLocked(now time.Time) (string, bool) {
	if c.token != "" && !c.expiry.IsZero() && now.Before(c.expiry.Add(-refreshBuffer)) {
		return c.token, true
	}
	return "", false
}

// reusable is valid unless a forced authentication is waiting.
func (c *tokenCache) reusable(now time.Time) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.forcing > 0 {
		return "", false
	}
	return c.validLocked(now)
}

func (c *tokenCache) currentGeneration() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.generation
}

// startFetch numbers a new token request.
func (c *tokenCache) startFetch() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fetches++
	return c.fetches
}

// beginForce registers a forced caller and returns the number of the last
// token request started before it.
func (c *tokenCache) beginForce() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forcing++
	return c.fetches
}

func (c *tokenCache) endForce() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.forcing--
}

// store saves token if no invalidation happened since gen was read.
func (c *tokenCache) store(gen uint64, token string, expiry time.Time) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		return false
	}
	c.token = token
	c.expiry = expiry
	return true
}

func (c *tokenCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.token = ""
	c.expiry = time.Time{}
	c.generation++
}

func (c *tokenCache) state(now time.Time, tracksExpiry bool) TokenState {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.token == "":
		return StateUninitialized
	case tracksExpiry && !c.expiry.IsZero() && !now.Before(c.expiry.Add(-refreshBuffer)):
		return StateExpired
	default:
		return StateAuthenticated
	}
}

// token returns a usable access token, authenticating when the cache has
// nothing fresh.
func (b *base) token(ctx context.Context) (string, error) {
	if tok, ok := b.cache.valid(b.nowFunc()); ok {
		metrics.TokenCacheHitsTotal.WithLabelValues(string(b.marketplace)).Inc()
		return tok, nil
	}
	return b.authenticate(ctx, false)
}

// authenticate acquires a token with at most one token request in flight
// per provider and environment. Concurrent callers share the in-flight
// result but stop waiting when their own context ends. A forced call only
// accepts a token from a request that started after it was made; it waits
// out an older flight and then runs its own.
func (b *base) authenticate(ctx context.Context, force bool) (string, error) {
	var after uint64
	if force {
		after = b.cache.beginForce()
		defer b.cache.endForce()
	}

	for {
		snap := b.snapshot()
		ch := b.cache.group.DoChan(strconv.FormatUint(snap.gen, 10), func() (any, error) {
			return b.acquire(context.WithoutCancel(ctx), snap)
		})

		select {
		case <-ctx.Done():
			return "", b.authErrorFor(snap.production, 0, "", ctx.Err())
		case res := <-ch:
			f, _ := res.Val.(flight)
			if force && f.seq <= after {
				continue
			}
			if res.Err != nil {
				return "", res.Err
			}
			return f.token, nil
		}
	}
}

// acquire runs inside a flight. It reuses a fresh cached token unless a
// forced caller is waiting, and otherwise requests one for the snapshot's
// environment. A token acquired after the environment switched is handed
// to the callers of this flight but not cached.
func (b *base) acquire(ctx context.Context, snap snapshot) (flight, error) {
	if tok, ok := b.cache.reusable(b.nowFunc()); ok {
		return flight{token: tok}, nil
	}

	seq := b.cache.startFetch()
	env := domain.EnvironmentFor(snap.production)

	start := time.Now()
	resp, err := b.fetch(ctx, snap.production)
	metrics.TokenRequestDuration.WithLabelValues(string(b.marketplace)).
		Observe(time.Since(start).Seconds())

	if err != nil {
		metrics.TokenRequestsTotal.WithLabelValues(string(b.marketplace), metrics.ResultFailure).Inc()
		b.log.Warn("marketplace authentication failed",
			"marketplace", b.marketplace,
			"environment", env,
			"error", err,
		)
		return flight{seq: seq}, err
	}
	metrics.TokenRequestsTotal.WithLabelValues(string(b.marketplace), metrics.ResultSuccess).Inc()

	var expiry time.Time
	if b.tracksExpiry && resp.ExpiresIn > 0 {
		expiry = b.nowFunc().Add(time.Duration(resp.ExpiresIn) * time.Second)
	}
	if !b.cache.store(snap.gen, resp.AccessToken, expiry) {
		b.log.Debug("discarding token acquired before environment switch",
			"marketplace", b.marketplace,
			"environment", env,
		)
	}

	b.log.Debug("marketplace token acquired",
		"marketplace", b.marketplace,
		"environment", env,
		"expires_in", resp.ExpiresIn,
	)
	return flight{token: resp.AccessToken, seq: seq}, nil
}

// exchange sends a prepared token request and decodes the response.
// production names the environment the request was built for.
func (b *base) exchange(req *http.Request, production bool) (*tokenResponse, error) {
	authError := func(status int, description string, err error) *AuthenticationError {
		return b.authErrorFor(production, status, description, err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, authError(0, "", fmt.Errorf("executing token request: %w", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, authError(resp.StatusCode, "", fmt.Errorf("reading token response: %w", err))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, authError(resp.StatusCode, describeTokenError(body), nil)
	}

	var tokenResp tokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, authError(resp.StatusCode, "", fmt.Errorf("parsing token response: %w", err))
	}
	if tokenResp.AccessToken == "" {
		return nil, authError(resp.StatusCode, "", ErrTokenMissing)
	}

	return &tokenResp, nil
}

// describeTokenError extracts an OAuth error description from a failed
// token response, falling back to a prefix of the raw body.
func describeTokenError(body []byte) string {
	var errResp tokenErrorResponse
	_ = json.Unmarshal(body, &errResp) //nolint:errcheck // best-effort error parsing

	switch {
	case errResp.Error != "" && errResp.ErrorDescription != "":
		return errResp.Error + " - " + errResp.ErrorDescription
	case errResp.Error != "":
		return errResp.Error
	}

	text := strings.TrimSpace(string(body))
	if len(text) > 200 {
		cut := 200
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + "..."
	}
	return text
}

func basicAuth(clientID, clientSecret string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(clientID+":"+clientSecret))
}
