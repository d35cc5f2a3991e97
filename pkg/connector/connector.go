// Package connector exposes marketplace resources (orders, returns,
// reports, listings) on top of the credential providers and the request
// dispatcher.
//
// Every connector checks the response status: 2xx bodies are decoded into
// the marketplace-neutral types in pkg/types, anything else is returned as
// an *APIError carrying the upstream status and body.
package connector

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/donaldgifford/marketbridge/pkg/dispatch"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// maxErrorBody caps how much of a failed response is kept in an APIError.
const maxErrorBody = 2048

// Sentinel errors.
var (
	// ErrNotFound is returned when a marketplace answers 2xx but the
	// requested resource is absent from the result.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidQuery is returned before any request is made when a
	// listing query lacks a field the marketplace requires.
	ErrInvalidQuery = errors.New("invalid query")
)

// APIError reports a non-2xx response from a marketplace API.
type APIError struct {
	Marketplace domain.Marketplace
	StatusCode  int
	Body        string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s API error (status %d)", e.Marketplace, e.StatusCode)
	}
	return fmt.Sprintf("%s API error (status %d): %s", e.Marketplace, e.StatusCode, e.Body)
}

// Option configures a connector.
type Option func(*options)

type options struct {
	client dispatch.Doer
	logger *slog.Logger
}

// WithHTTPClient overrides the HTTP client used for API requests.
func WithHTTPClient(c dispatch.Doer) Option {
	return func(o *options) {
		o.client = c
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func newDispatcher(creds dispatch.Credentials, opts []Option) *dispatch.Dispatcher {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	var dopts []dispatch.Option
	if o.client != nil {
		dopts = append(dopts, dispatch.WithHTTPClient(o.client))
	}
	if o.logger != nil {
		dopts = append(dopts, dispatch.WithLogger(o.logger))
	}
	return dispatch.New(creds, dopts...)
}

// getJSON dispatches req, checks the status and decodes the body into v.
// The raw body is returned alongside.
func getJSON(
	ctx context.Context,
	d *dispatch.Dispatcher,
	req dispatch.Request,
	v any,
) (json.RawMessage, error) {
	marketplace := d.Credentials().Marketplace()

	resp, err := d.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s response body: %w", marketplace, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{
			Marketplace: marketplace,
			StatusCode:  resp.StatusCode,
			Body:        truncate(strings.TrimSpace(string(body)), maxErrorBody),
		}
	}

	if v != nil {
		if err := json.Unmarshal(body, v); err != nil {
			return nil, fmt.Errorf("parsing %s response: %w", marketplace, err)
		}
	}
	return json.RawMessage(body), nil
}

// truncate keeps at most n bytes of s, backing off to a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

// parseTime parses an RFC 3339 timestamp, returning nil when s is empty or
// malformed.
func parseTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil
	}
	t = t.UTC()
	return &t
}

// decodeEach decodes every element of raws with decode.
func decodeEach[T any](raws []json.RawMessage, decode func(json.RawMessage) (T, error)) ([]T, error) {
	out := make([]T, 0, len(raws))
	for _, raw := range raws {
		v, err := decode(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
