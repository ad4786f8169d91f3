package models_test

import (
	"testing"

	"github.com/UnknownOlympus/plutus/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSalary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		employee models.Employee
		expected string
	}{
		{"full time", models.NewFullTime(1, "Tom", decimal.NewFromInt(5000)), "5000"},
		{"part time", models.NewPartTime(2, "Sam", decimal.NewFromInt(20), 10), "200"},
		{"contractual", models.NewContractual(3, "Ana", decimal.NewFromInt(500), 3), "1500"},
		{"fractional wage", models.NewPartTime(4, "Lee", decimal.RequireFromString("15.5"), 3), "46.5"},
		{"zero hours", models.NewPartTime(5, "Kim", decimal.NewFromInt(20), 0), "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, tt.employee.Salary().String())
		})
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, models.FullTime, models.NewFullTime(1, "Tom", decimal.Zero).Kind())
	assert.Equal(t, models.PartTime, models.NewPartTime(1, "Tom", decimal.Zero, 0).Kind())
	assert.Equal(t, models.Contractual, models.NewContractual(1, "Tom", decimal.Zero, 0).Kind())
	assert.Equal(t, "part_time", models.PartTime.String())
	assert.Equal(t, "unknown", models.Kind(0).String())
}

func TestDescribe_FullTime(t *testing.T) {
	t.Parallel()

	employee := models.NewFullTime(1, "Tom", decimal.NewFromInt(3000))

	expected := "Employee: Tom (ID: 1)\n" +
		"Fixed Monthly Salary: $3000\n\n"
	assert.Equal(t, expected, employee.Describe())
}

func TestDescribe_PartTime(t *testing.T) {
	t.Parallel()

	employee := models.NewPartTime(2, "Sam", decimal.NewFromInt(15), 40)

	expected := "Employee: Sam (ID: 2)\n" +
		"Hourly Wage: $15\n" +
		"Hours Worked: 40\n" +
		"Total Salary: $600\n\n"
	assert.Equal(t, expected, employee.Describe())
}

func TestDescribe_Contractual(t *testing.T) {
	t.Parallel()

	employee := models.NewContractual(3, "Mary Ann", decimal.RequireFromString("250.25"), 2)

	expected := "Employee: Mary Ann (ID: 3)\n" +
		"Contract Payment Per Project: $250.25\n" +
		"Projects Completed: 2\n" +
		"Total Salary: $500.5\n\n"
	assert.Equal(t, expected, employee.Describe())
}
