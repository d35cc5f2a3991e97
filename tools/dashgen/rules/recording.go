package rules

// RecordingRules returns the pre-computed rates used by the dashboard and
// the alert rules.
func RecordingRules() PrometheusRule {
	return newPrometheusRule("marketbridge-recording-rules",
		Rule{
			Record: "marketbridge:http_requests:rate5m",
			Expr:   `sum(rate(marketbridge_http_requests_total[5m]))`,
		},
		Rule{
			Record: "marketbridge:http_errors:rate5m",
			Expr:   `sum(rate(marketbridge_http_requests_total{status=~"5.."}[5m]))`,
		},
		Rule{
			Record: "marketbridge:token_requests:rate5m",
			Expr:   `sum by (marketplace, result) (rate(marketbridge_token_requests_total[5m]))`,
		},
		Rule{
			Record: "marketbridge:token_failures:rate5m",
			Expr:   `sum by (marketplace) (rate(marketbridge_token_requests_total{result="failure"}[5m]))`,
		},
		Rule{
			Record: "marketbridge:dispatch_requests:rate5m",
			Expr:   `sum by (marketplace, code) (rate(marketbridge_dispatch_requests_total[5m]))`,
		},
		Rule{
			Record: "marketbridge:dispatch_errors:rate5m",
			Expr:   `sum by (marketplace) (rate(marketbridge_dispatch_requests_total{code=~"error|5.."}[5m]))`,
		},
	)
}
