package metrics

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Summary is the per-session view of the counters, read back from a registry.
type Summary struct {
	Registered    map[string]float64 // by employee kind
	InvalidInputs map[string]float64 // by input field
	DuplicateIDs  float64
}

// Summarize gathers the session counters from gatherer.
func Summarize(gatherer prometheus.Gatherer) (Summary, error) {
	families, err := gatherer.Gather()
	if err != nil {
		return Summary{}, fmt.Errorf("failed to gather metrics: %w", err)
	}

	summary := Summary{
		Registered:    make(map[string]float64),
		InvalidInputs: make(map[string]float64),
	}

	for _, family := range families {
		switch family.GetName() {
		case employeesRegisteredName:
			countByLabel(family, "kind", summary.Registered)
		case invalidInputsName:
			countByLabel(family, "field", summary.InvalidInputs)
		case duplicateIDsName:
			for _, metric := range family.GetMetric() {
				summary.DuplicateIDs += metric.GetCounter().GetValue()
			}
		}
	}

	return summary, nil
}

// LogValue renders the summary as nested slog groups.
func (s Summary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Group("registered", groupArgs(s.Registered)...),
		slog.Group("invalid_inputs", groupArgs(s.InvalidInputs)...),
		slog.Float64("duplicate_ids", s.DuplicateIDs),
	)
}

func countByLabel(family *dto.MetricFamily, label string, into map[string]float64) {
	for _, metric := range family.GetMetric() {
		for _, pair := range metric.GetLabel() {
			if pair.GetName() == label {
				into[pair.GetValue()] += metric.GetCounter().GetValue()
			}
		}
	}
}

func groupArgs(values map[string]float64) []any {
	args := make([]any, 0, len(values))
	for _, key := range slices.Sorted(maps.Keys(values)) {
		args = append(args, slog.Float64(key, values[key]))
	}

	return args
}
