package panels

import (
	"github.com/grafana/grafana-foundation-sdk/go/common"
	"github.com/grafana/grafana-foundation-sdk/go/timeseries"
)

// DispatchRate returns a timeseries panel showing marketplace API calls per
// marketplace and response code.
func DispatchRate() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Marketplace API Calls").
		Description("Marketplace API requests per second by marketplace and status code").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`marketbridge:dispatch_requests:rate5m`, "{{marketplace}} {{code}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Legend(TableLegend("mean", "max")).
		Tooltip(MultiTooltip()).
		Thresholds(ThresholdsGreenOnly()).
		ColorScheme(ColorSchemePaletteClassic()).
		DrawStyle(common.GraphDrawStyleLine)
}

// DispatchLatency returns a timeseries panel showing p95 marketplace API
// latency.
func DispatchLatency() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Marketplace API Latency p95").
		Description("95th percentile marketplace API latency by marketplace").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(
			`histogram_quantile(0.95, sum(rate(marketbridge_dispatch_duration_seconds_bucket{job="marketbridge"}[5m])) by (le, marketplace))`,
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

// DispatchErrors returns a timeseries panel showing transport failures
// and 5xx answers from marketplace APIs.
func DispatchErrors() *timeseries.PanelBuilder {
	return timeseries.NewPanelBuilder().
		Title("Marketplace API Errors").
		Description("Transport failures and 5xx responses per second by marketplace").
		Datasource(DSRef()).
		Height(TSHeight).
		Span(8).
		WithTarget(PromQuery(`marketbridge:dispatch_errors:rate5m`, "{{marketplace}}", "A")).
		Unit("reqps").
		FillOpacity(10).
		LineWidth(2).
		Thresholds(ThresholdsGreenYellowRed(0.01, 0.1)).
		ColorScheme(ColorSchemeThresholds()).
		DrawStyle(common.GraphDrawStyleLine)
}
