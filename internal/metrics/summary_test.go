package metrics_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/plutus/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	appMetrics.EmployeesRegistered.WithLabelValues("full_time").Inc()
	appMetrics.EmployeesRegistered.WithLabelValues("full_time").Inc()
	appMetrics.EmployeesRegistered.WithLabelValues("contractual").Inc()
	appMetrics.InvalidInputs.WithLabelValues("name").Inc()
	appMetrics.DuplicateIDs.Inc()
	appMetrics.MenuSelections.WithLabelValues("report").Inc()

	summary, err := metrics.Summarize(reg)

	require.NoError(t, err)
	assert.Equal(t, map[string]float64{"full_time": 2, "contractual": 1}, summary.Registered)
	assert.Equal(t, map[string]float64{"integer": 0, "decimal": 0, "name": 1}, summary.InvalidInputs)
	assert.InDelta(t, 1, summary.DuplicateIDs, 0)
}

func TestSummarize_Empty(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	_ = metrics.NewMetrics(reg)

	summary, err := metrics.Summarize(reg)

	require.NoError(t, err)
	assert.Empty(t, summary.Registered)
	assert.InDelta(t, 0, summary.DuplicateIDs, 0)
}

func TestSummarize_GatherError(t *testing.T) {
	t.Parallel()

	gatherer := prometheus.GathererFunc(func() ([]*dto.MetricFamily, error) {
		return nil, assert.AnError
	})

	_, err := metrics.Summarize(gatherer)

	require.ErrorIs(t, err, assert.AnError)
	require.EqualError(t, err, "failed to gather metrics: "+assert.AnError.Error())
}

func TestSummary_LogValue(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	summary := metrics.Summary{
		Registered:    map[string]float64{"part_time": 3},
		InvalidInputs: map[string]float64{"decimal": 2},
		DuplicateIDs:  1,
	}
	testLogger.Info("done", "summary", summary)

	output := logBuf.String()
	assert.Contains(t, output, "summary.registered.part_time=3")
	assert.Contains(t, output, "summary.invalid_inputs.decimal=2")
	assert.Contains(t, output, "summary.duplicate_ids=1")
}
