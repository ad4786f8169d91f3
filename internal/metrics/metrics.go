package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	employeesRegisteredName = "plutus_employees_registered_total"
	invalidInputsName       = "plutus_invalid_inputs_total"
	duplicateIDsName        = "plutus_duplicate_ids_total"
)

// Metrics holds the counters and histograms collected during a payroll session.
type Metrics struct {
	EmployeesRegistered *prometheus.CounterVec
	InvalidInputs       *prometheus.CounterVec
	DuplicateIDs        prometheus.Counter
	MenuSelections      *prometheus.CounterVec
	RegistryOpDuration  *prometheus.HistogramVec
}

// NewMetrics creates a new Metrics instance registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	metrics := &Metrics{
		EmployeesRegistered: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: employeesRegisteredName,
			Help: "Total number of employees added to the payroll register.",
		}, []string{"kind"}),
		InvalidInputs: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: invalidInputsName,
			Help: "Total number of rejected input lines.",
		}, []string{"field"}), // field: 'integer', 'decimal', 'name'
		DuplicateIDs: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: duplicateIDsName,
			Help: "Total number of employee IDs rejected because they were already registered.",
		}),
		MenuSelections: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "plutus_menu_selections_total",
			Help: "Total number of menu choices by action.",
		}, []string{"action"}),
		RegistryOpDuration: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "plutus_registry_op_duration_seconds",
			Help:    "Duration of registry operations.",
			Buckets: prometheus.DefBuckets,
		}, []string{"op"}),
	}

	metrics.InvalidInputs.WithLabelValues("integer")
	metrics.InvalidInputs.WithLabelValues("decimal")
	metrics.InvalidInputs.WithLabelValues("name")

	return metrics
}
