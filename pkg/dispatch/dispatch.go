// Package dispatch issues authenticated requests against a marketplace API.
// It resolves the base URL and headers through a credential source, merges
// them with caller input, and returns the raw response without inspecting
// its status.
package dispatch

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/donaldgifford/marketbridge/internal/metrics"
	domain "github.com/donaldgifford/marketbridge/pkg/types"
)

// DefaultTimeout bounds every request made through NewHTTPClient.
const DefaultTimeout = 30 * time.Second

const tracerName = "github.com/donaldgifford/marketbridge/pkg/dispatch"

// resolveAttempts bounds how often Do re-resolves credentials when the
// environment switches underneath it.
const resolveAttempts = 3

// ErrEnvironmentChanged is returned when the base URL keeps changing while
// the request headers are being resolved.
var ErrEnvironmentChanged = errors.New("environment changed while resolving credentials")

// Doer executes HTTP requests. *http.Client satisfies it; tests substitute
// a fake.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// HeaderFunc produces the authentication headers for a single request.
type HeaderFunc func(ctx context.Context) (http.Header, error)

// Credentials is the view of a credential provider the dispatcher needs.
type Credentials interface {
	Marketplace() domain.Marketplace
	BaseURL() (string, error)
	Headers(ctx context.Context) (http.Header, error)
}

// credentialHeaders are never overridden by caller-supplied values.
var credentialHeaders = []string{
	http.CanonicalHeaderKey("Authorization"),
	http.CanonicalHeaderKey("x-amz-access-token"),
	http.CanonicalHeaderKey("WM_SEC.ACCESS_TOKEN"),
}

// NewHTTPClient returns an *http.Client with a bounded timeout and an
// OpenTelemetry-instrumented transport. A non-positive timeout selects
// DefaultTimeout.
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
}

// Request describes one call relative to the marketplace base URL.
type Request struct {
	Method   string
	Endpoint string
	Query    url.Values
	Body     io.Reader
	Header   http.Header

	// Headers selects the header strategy. Nil means the credential
	// source's Headers method.
	Headers HeaderFunc
}

// Dispatcher sends requests on behalf of one credential source.
type Dispatcher struct {
	creds  Credentials
	client Doer
	tracer trace.Tracer
	log    *slog.Logger
}

// Option configures the Dispatcher.
type Option func(*Dispatcher)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c Doer) Option {
	return func(d *Dispatcher) {
		d.client = c
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(d *Dispatcher) {
		d.log = l
	}
}

// New creates a Dispatcher for the given credential source.
func New(creds Credentials, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		creds:  creds,
		client: NewHTTPClient(DefaultTimeout),
		tracer: otel.Tracer(tracerName),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Credentials returns the credential source the dispatcher authenticates with.
func (d *Dispatcher) Credentials() Credentials {
	return d.creds
}

// resolve returns a base URL and headers that belong to the same
// environment. The base URL is read again after the headers; if a switch
// landed in between, both are resolved anew.
func (d *Dispatcher) resolve(ctx context.Context, headerFn HeaderFunc) (string, http.Header, error) {
	base, err := d.creds.BaseURL()
	if err != nil {
		return "", nil, err
	}
	for range resolveAttempts {
		headers, err := headerFn(ctx)
		if err != nil {
			return "", nil, err
		}
		current, err := d.creds.BaseURL()
		if err != nil {
			return "", nil, err
		}
		if current == base {
			return base, headers, nil
		}
		d.log.Debug("environment switched while resolving headers",
			"marketplace", d.creds.Marketplace(),
			"from", base,
			"to", current,
		)
		base = current
	}
	return "", nil, ErrEnvironmentChanged
}

// Do resolves the URL and headers for req and sends it. Any response that
// arrives is returned as-is, whatever its status; the caller owns the body.
// Transport failures are returned as *RequestError. Base URL and header
// failures are returned unchanged so callers can match them with errors.Is
// and errors.As.
func (d *Dispatcher) Do(ctx context.Context, req Request) (*http.Response, error) {
	marketplace := d.creds.Marketplace()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}

	headerFn := req.Headers
	if headerFn == nil {
		headerFn = d.creds.Headers
	}
	base, authHeaders, err := d.resolve(ctx, headerFn)
	if err != nil {
		return nil, err
	}

	target := JoinURL(base, req.Endpoint)
	if len(req.Query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + req.Query.Encode()
	}

	ctx, span := d.tracer.Start(ctx, "dispatch "+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("marketplace", string(marketplace)),
			attribute.String("http.request.method", method),
			attribute.String("marketbridge.endpoint", req.Endpoint),
		),
	)
	defer span.End()

	body := req.Body
	if body == nil {
		body = http.NoBody
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "building request")
		return nil, &RequestError{Marketplace: marketplace, Method: method, URL: target, Err: err}
	}
	httpReq.Header = MergeHeaders(req.Header, authHeaders)

	start := time.Now()
	resp, err := d.client.Do(httpReq)
	elapsed := time.Since(start)
	metrics.DispatchDuration.WithLabelValues(string(marketplace)).Observe(elapsed.Seconds())

	if err != nil {
		metrics.DispatchRequestsTotal.WithLabelValues(string(marketplace), method, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport failure")
		d.log.Warn("marketplace request failed",
			"marketplace", marketplace,
			"method", method,
			"endpoint", req.Endpoint,
			"error", err,
		)
		return nil, &RequestError{Marketplace: marketplace, Method: method, URL: target, Err: err}
	}

	code := strconv.Itoa(resp.StatusCode)
	metrics.DispatchRequestsTotal.WithLabelValues(string(marketplace), method, code).Inc()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	d.log.Debug("marketplace request",
		"marketplace", marketplace,
		"method", method,
		"endpoint", req.Endpoint,
		"status", resp.StatusCode,
		"duration_ms", elapsed.Milliseconds(),
	)

	return resp, nil
}

// JoinURL joins base and endpoint with exactly one slash between them,
// whatever slashes either side already carries.
func JoinURL(base, endpoint string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// MergeHeaders combines caller headers with authentication headers.
// Caller values win on ordinary keys; authentication values always win on
// credential-bearing keys such as Authorization.
func MergeHeaders(caller, auth http.Header) http.Header {
	merged := make(http.Header, len(caller)+len(auth))
	for k, v := range caller {
		merged[http.CanonicalHeaderKey(k)] = slices.Clone(v)
	}
	for k, v := range auth {
		key := http.CanonicalHeaderKey(k)
		if _, set := merged[key]; set && !slices.Contains(credentialHeaders, key) {
			continue
		}
		merged[key] = slices.Clone(v)
	}
	return merged
}
