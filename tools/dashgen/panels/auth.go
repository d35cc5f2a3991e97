package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// TokenRequestRate returns a timeseries panel showing token acquisitions
// per marketplace and result.
func TokenRequestRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Token Requests").
		Description("Token acquisitions per second by marketplace and result").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`marketbridge:token_requests:rate5m`, "{{marketplace}} {{result}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TokenLatency returns a timeseries panel showing p95 token request
// latency per marketplace.
func TokenLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Token Latency p95").
		Description("95th percentile token endpoint latency by marketplace").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(marketbridge_token_request_duration_seconds_bucket{job="marketbridge"}[5m])) by (le, marketplace))`,
			"{{marketplace}}",
			"A",
		)).
		Unit("s").
		FillOpacity(10).
		LineWidth(2).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// TokenCacheHitRatio returns a timeseries panel showing the share of
// header requests served from a cached token. Only marketplaces that track
// token expiry (eBay) ever hit the cache.
func TokenCacheHitRatio() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Token Cache Hit %").
		Description("Header requests served from a cached token").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`sum by (marketplace) (rate(marketbridge_token_cache_hits_total{job="marketbridge"}[5m])) / `+
				`(sum by (marketplace) (rate(marketbridge_token_cache_hits_total{job="marketbridge"}[5m])) + `+
				`sum by (marketplace) (rate(marketbridge_token_requests_total{job="marketbridge"}[5m]))) * 100`,
			"{{marketplace}}",
			"A",
		)).
		Unit("percent").
		Min(0).
		Max(100).
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}
