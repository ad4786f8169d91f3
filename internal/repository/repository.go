package repository

import (
	"errors"

	"github.com/UnknownOlympus/plutus/internal/metrics"
	"github.com/UnknownOlympus/plutus/internal/models"
)

var ErrAlreadyExists = errors.New("employee already exists")

// Repository keeps the registered employees in insertion order for the lifetime of a session.
type Repository struct {
	employees []models.Employee
	metrics   *metrics.Metrics
}

// EmployeeRepoIface represents the interface for interacting with the employee register.
type EmployeeRepoIface interface {
	SaveEmployee(employee models.Employee) error
	IsDuplicateID(identifier int) bool
	ListEmployees() []models.Employee
}

func NewEmployeeRepository(metrics *metrics.Metrics) EmployeeRepoIface {
	return &Repository{metrics: metrics}
}
