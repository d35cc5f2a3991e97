package rules

// AlertRules returns the alerts for marketbridge operational monitoring.
func AlertRules() PrometheusRule {
	return newPrometheusRule("marketbridge-alerts",
		Rule{
			Alert: "MarketbridgeDown",
			Expr:  `absent(up{job="marketbridge"})`,
			For:   "2m",
			Labels: map[string]string{
				"severity": "critical",
			},
			Annotations: map[string]string{
				"summary":     "marketbridge is down",
				"description": "The marketbridge job has been absent for more than 2 minutes.",
			},
		},
		Rule{
			Alert: "MarketbridgeReadinessDown",
			Expr:  `marketbridge_readyz_up == 0`,
			For:   "2m",
			Labels: map[string]string{
				"severity": "critical",
			},
			Annotations: map[string]string{
				"summary":     "marketbridge readiness check is failing",
				"description": "At least one marketplace has no base URL for its active environment.",
			},
		},
		Rule{
			Alert: "MarketbridgeHighErrorRate",
			Expr:  `marketbridge:http_errors:rate5m / marketbridge:http_requests:rate5m > 0.05`,
			For:   "5m",
			Labels: map[string]string{
				"severity": "warning",
			},
			Annotations: map[string]string{
				"summary":     "High HTTP error rate on marketbridge",
				"description": "More than 5% of HTTP requests are returning 5xx errors over the last 5 minutes.",
			},
		},
		Rule{
			Alert: "MarketbridgeAuthFailures",
			Expr:  `marketbridge:token_failures:rate5m > 0`,
			For:   "5m",
			Labels: map[string]string{
				"severity": "warning",
			},
			Annotations: map[string]string{
				"summary":     "Token acquisition failing for {{ $labels.marketplace }}",
				"description": "The {{ $labels.marketplace }} token endpoint has been rejecting requests for more than 5 minutes.",
			},
		},
		Rule{
			Alert: "MarketbridgeUpstreamErrors",
			Expr:  `marketbridge:dispatch_errors:rate5m > 0.1`,
			For:   "5m",
			Labels: map[string]string{
				"severity": "warning",
			},
			Annotations: map[string]string{
				"summary":     "{{ $labels.marketplace }} API is failing",
				"description": "Transport failures or 5xx responses from {{ $labels.marketplace }} exceed 0.1/s over 5 minutes.",
			},
		},
	)
}
