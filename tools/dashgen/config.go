package main

import "errors"

// histograms are exported as _bucket, _sum and _count series.
var histograms = []string{
	"marketbridge_http_request_duration_seconds",
	"marketbridge_token_request_duration_seconds",
	"marketbridge_dispatch_duration_seconds",
}

// KnownMetrics is the set of metric names exported by marketbridge plus
// recording rule names referenced in dashboards and alerts.
var KnownMetrics = withHistogramSeries(map[string]bool{
	// HTTP metrics.
	"marketbridge_http_requests_total": true,

	// Health metrics.
	"marketbridge_healthz_up": true,
	"marketbridge_readyz_up":  true,

	// Token lifecycle.
	"marketbridge_token_requests_total":   true,
	"marketbridge_token_cache_hits_total": true,

	// Marketplace API calls.
	"marketbridge_dispatch_requests_total": true,

	// Recording rules.
	"marketbridge:http_requests:rate5m":     true,
	"marketbridge:http_errors:rate5m":       true,
	"marketbridge:token_requests:rate5m":    true,
	"marketbridge:token_failures:rate5m":    true,
	"marketbridge:dispatch_requests:rate5m": true,
	"marketbridge:dispatch_errors:rate5m":   true,

	// Standard Prometheus metrics referenced in dashboards.
	"up":                         true,
	"process_start_time_seconds": true,
})

func withHistogramSeries(known map[string]bool) map[string]bool {
	for _, h := range histograms {
		for _, suffix := range []string{"_bucket", "_sum", "_count"} {
			known[h+suffix] = true
		}
	}
	return known
}

// Config controls which artifacts the generator produces and where they go.
type Config struct {
	OutputDir        string
	DashboardEnabled bool
	RulesEnabled     bool
}

// DefaultConfig returns a Config that generates all artifacts into ../../deploy
// (relative to tools/dashgen/).
func DefaultConfig() Config {
	return Config{
		OutputDir:        "../../deploy",
		DashboardEnabled: true,
		RulesEnabled:     true,
	}
}

// Validate checks that the config is usable.
func (c Config) Validate() error {
	if c.OutputDir == "" {
		return errors.New("output directory must be set")
	}
	if !c.DashboardEnabled && !c.RulesEnabled {
		return errors.New("at least one of dashboard or rules must be enabled")
	}
	return nil
}
