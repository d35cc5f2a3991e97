// Package dashboards assembles Grafana dashboard definitions from panel builders.
package dashboards

import (
	"github.com/grafana/grafana-foundation-sdk/go/dashboard"

	"github.com/donaldgifford/marketbridge/tools/dashgen/panels"
)

// UID is the stable identifier of the overview dashboard.
const UID = "marketbridge-overview"

// BuildOverview constructs the marketbridge Overview dashboard.
func BuildOverview() *dashboard.DashboardBuilder {
	b := dashboard.NewDashboardBuilder("marketbridge Overview").
		Uid(UID).
		Tags([]string{"marketbridge"}).
		Refresh("30s").
		Time("now-6h", "now").
		Timezone("browser").
		Editable().
		Tooltip(dashboard.DashboardCursorSyncCrosshair).
		WithVariable(datasourceVar())

	b.WithRow(dashboard.NewRowBuilder("Overview").
		WithPanel(panels.HealthzStat()).
		WithPanel(panels.ReadyzStat()).
		WithPanel(panels.AuthFailuresStat()).
		WithPanel(panels.UptimeStat()))

	b.WithRow(dashboard.NewRowBuilder("HTTP").
		WithPanel(panels.RequestRate()).
		WithPanel(panels.LatencyPercentiles()).
		WithPanel(panels.ErrorRate()))

	b.WithRow(dashboard.NewRowBuilder("Authentication").
		WithPanel(panels.TokenRequestRate()).
		WithPanel(panels.TokenLatency()).
		WithPanel(panels.TokenCacheHitRatio()))

	b.WithRow(dashboard.NewRowBuilder("Marketplace API").
		WithPanel(panels.DispatchRate()).
		WithPanel(panels.DispatchLatency()).
		WithPanel(panels.DispatchErrors()))

	return b
}

func datasourceVar() *dashboard.DatasourceVariableBuilder {
	return dashboard.NewDatasourceVariableBuilder("datasource").
		Label("Datasource").
		Type("prometheus")
}
