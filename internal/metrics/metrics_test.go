package metrics_test

import (
	"testing"

	"github.com/UnknownOlympus/plutus/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()

	appMetrics := metrics.NewMetrics(reg)

	require.NotNil(t, appMetrics)
	assert.Equal(t, 3, testutil.CollectAndCount(appMetrics.InvalidInputs))
	assert.InDelta(t, 0, testutil.ToFloat64(appMetrics.InvalidInputs.WithLabelValues("name")), 0)
}

func TestNewMetrics_DoubleRegistration(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewMetrics(reg)

	assert.Panics(t, func() {
		_ = metrics.NewMetrics(reg)
	})
}
