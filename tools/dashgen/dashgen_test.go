package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/marketbridge/tools/dashgen/dashboards"
	"github.com/donaldgifford/marketbridge/tools/dashgen/rules"
	"github.com/donaldgifford/marketbridge/tools/dashgen/validate"
)

func TestDefaultConfigValid(t *testing.T) {
	t.Parallel()
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfigValidate_EmptyOutputDir(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "", DashboardEnabled: true}
	assert.Error(t, cfg.Validate())
}

func TestConfigValidate_NothingEnabled(t *testing.T) {
	t.Parallel()
	cfg := Config{OutputDir: "/tmp", DashboardEnabled: false, RulesEnabled: false}
	assert.Error(t, cfg.Validate())
}

func TestKnownMetrics_HistogramSeries(t *testing.T) {
	t.Parallel()

	for _, h := range histograms {
		for _, suffix := range []string{"_bucket", "_sum", "_count"} {
			assert.True(t, KnownMetrics[h+suffix], "%s%s missing", h, suffix)
		}
	}

	res := validate.Expr(
		`histogram_quantile(0.95, sum(rate(marketbridge_dispatch_duration_seconds_bucket[5m])) by (le, marketplace))`,
		KnownMetrics,
	)
	assert.True(t, res.Ok(), "validation errors: %v", res.Errors)
}

func TestBuildOverviewDashboard(t *testing.T) {
	t.Parallel()

	dash, err := dashboards.BuildOverview().Build()
	require.NoError(t, err)

	require.NotNil(t, dash.Uid)
	assert.Equal(t, "marketbridge-overview", *dash.Uid)

	require.NotNil(t, dash.Title)
	assert.Equal(t, "marketbridge Overview", *dash.Title)

	require.NotNil(t, dash.Templating)
	assert.Len(t, dash.Templating.List, 1)
	assert.Equal(t, "datasource", dash.Templating.List[0].Name)

	assert.Len(t, dash.Panels, 4)

	totalPanels := 0
	for _, p := range dash.Panels {
		if p.RowPanel != nil {
			totalPanels += len(p.RowPanel.Panels)
		}
	}
	assert.Equal(t, 13, totalPanels)

	result := validate.Dashboard(dash, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
	assert.Empty(t, result.Warnings, "unexpected warnings: %v", result.Warnings)
}

func TestRecordingRules(t *testing.T) {
	t.Parallel()

	cr := rules.RecordingRules()
	assert.Equal(t, "monitoring.coreos.com/v1", cr.APIVersion)
	assert.Equal(t, "PrometheusRule", cr.Kind)
	assert.Equal(t, "marketbridge-recording-rules", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "marketbridge-recording-rules", group.Name)

	expectedRecords := []string{
		"marketbridge:http_requests:rate5m",
		"marketbridge:http_errors:rate5m",
		"marketbridge:token_requests:rate5m",
		"marketbridge:token_failures:rate5m",
		"marketbridge:dispatch_requests:rate5m",
		"marketbridge:dispatch_errors:rate5m",
	}
	require.Len(t, group.Rules, len(expectedRecords))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedRecords[i], rule.Record)
		assert.True(t, KnownMetrics[rule.Record], "%s missing from KnownMetrics", rule.Record)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)

	data, err := yaml.Marshal(cr)
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: monitoring.coreos.com/v1")
}

func TestAlertRules(t *testing.T) {
	t.Parallel()

	cr := rules.AlertRules()
	assert.Equal(t, "marketbridge-alerts", cr.Metadata.Name)

	require.Len(t, cr.Spec.Groups, 1)
	group := cr.Spec.Groups[0]
	assert.Equal(t, "marketbridge-alerts", group.Name)

	expectedAlerts := []string{
		"MarketbridgeDown",
		"MarketbridgeReadinessDown",
		"MarketbridgeHighErrorRate",
		"MarketbridgeAuthFailures",
		"MarketbridgeUpstreamErrors",
	}
	require.Len(t, group.Rules, len(expectedAlerts))
	for i, rule := range group.Rules {
		assert.Equal(t, expectedAlerts[i], rule.Alert)
		assert.NotEmpty(t, rule.Labels["severity"], "alert %s missing severity", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["summary"], "alert %s missing summary", rule.Alert)
		assert.NotEmpty(t, rule.Annotations["description"], "alert %s missing description", rule.Alert)
	}

	result := validate.Rules(cr, KnownMetrics)
	assert.True(t, result.Ok(), "validation errors: %v", result.Errors)
}

func TestRun_WritesArtifacts(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := DefaultConfig()
	cfg.OutputDir = dir

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, false))

	dashJSON, err := os.ReadFile(filepath.Join(dir, "grafana", "data", "marketbridge-overview.json"))
	require.NoError(t, err)
	var dash map[string]any
	require.NoError(t, json.Unmarshal(dashJSON, &dash))
	assert.Equal(t, "marketbridge-overview", dash["uid"])

	for _, name := range []string{"marketbridge-recording-rules.yaml", "marketbridge-alerts.yaml"} {
		data, err := os.ReadFile(filepath.Join(dir, "prometheus", name))
		require.NoError(t, err, name)
		assert.True(t, strings.HasPrefix(string(data), generatedHeader), name)

		var cr rules.PrometheusRule
		require.NoError(t, yaml.Unmarshal(data, &cr), name)
		assert.Equal(t, "PrometheusRule", cr.Kind)
	}

	assert.Equal(t, 3, strings.Count(out.String(), "dashgen: wrote"))
}

func TestRun_ValidateOnly(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg := Config{OutputDir: filepath.Join(dir, "out"), RulesEnabled: true}

	var out bytes.Buffer
	require.NoError(t, run(&out, cfg, true))

	assert.Equal(t, "validation passed\n", out.String())
	_, err := os.Stat(cfg.OutputDir)
	assert.True(t, os.IsNotExist(err), "validate-only must not write files")
}
