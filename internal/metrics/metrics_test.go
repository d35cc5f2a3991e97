package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
	assert.NotNil(t, TokenRequestsTotal)
	assert.NotNil(t, TokenRequestDuration)
	assert.NotNil(t, TokenCacheHitsTotal)
	assert.NotNil(t, DispatchRequestsTotal)
	assert.NotNil(t, DispatchDuration)
}

func TestTokenRequestsTotal_Labels(t *testing.T) {
	t.Parallel()

	c := TokenRequestsTotal.WithLabelValues("metrics-test", ResultFailure)
	before := testutil.ToFloat64(c)
	c.Inc()
	assert.InDelta(t, before+1, testutil.ToFloat64(c), 0.0001)
}
