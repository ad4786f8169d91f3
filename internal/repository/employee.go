package repository

import (
	"fmt"
	"time"

	"github.com/UnknownOlympus/plutus/internal/models"
)

// SaveEmployee appends an employee to the end of the register.
// Callers check IsDuplicateID first; a repeated ID is still refused with ErrAlreadyExists.
func (r *Repository) SaveEmployee(employee models.Employee) error {
	defer r.observe("save_employee", time.Now())

	if r.find(employee.ID) {
		return fmt.Errorf("failed to save employee %d: %w", employee.ID, ErrAlreadyExists)
	}

	r.employees = append(r.employees, employee)
	r.metrics.EmployeesRegistered.WithLabelValues(employee.Kind().String()).Inc()

	return nil
}

// IsDuplicateID reports whether an employee with the given ID is already registered.
func (r *Repository) IsDuplicateID(identifier int) bool {
	defer r.observe("is_duplicate_id", time.Now())

	return r.find(identifier)
}

// ListEmployees returns the registered employees in insertion order.
// The returned slice is a copy.
func (r *Repository) ListEmployees() []models.Employee {
	defer r.observe("list_employees", time.Now())

	result := make([]models.Employee, len(r.employees))
	copy(result, r.employees)

	return result
}

func (r *Repository) find(identifier int) bool {
	for _, employee := range r.employees {
		if employee.ID == identifier {
			return true
		}
	}

	return false
}

func (r *Repository) observe(opn string, startTime time.Time) {
	r.metrics.RegistryOpDuration.WithLabelValues(opn).Observe(time.Since(startTime).Seconds())
}
