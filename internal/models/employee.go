package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Kind identifies one of the three compensation variants.
type Kind int

const (
	FullTime Kind = iota + 1
	PartTime
	Contractual
)

// String returns the label used for logs and metrics.
func (k Kind) String() string {
	switch k {
	case FullTime:
		return "full_time"
	case PartTime:
		return "part_time"
	case Contractual:
		return "contractual"
	default:
		return "unknown"
	}
}

// Compensation is the closed set of pay schemes. Only the types in this package implement it.
type Compensation interface {
	Kind() Kind
	compensation()
}

// FixedSalary pays a fixed monthly amount.
type FixedSalary struct {
	Salary decimal.Decimal
}

// HourlyWage pays per hour worked.
type HourlyWage struct {
	Wage  decimal.Decimal
	Hours int
}

// ProjectPayment pays per completed project.
type ProjectPayment struct {
	Payment  decimal.Decimal
	Projects int
}

func (FixedSalary) Kind() Kind    { return FullTime }
func (HourlyWage) Kind() Kind     { return PartTime }
func (ProjectPayment) Kind() Kind { return Contractual }

func (FixedSalary) compensation()    {}
func (HourlyWage) compensation()     {}
func (ProjectPayment) compensation() {}

// Employee represents a registered employee. It is never mutated after construction.
type Employee struct {
	ID   int
	Name string
	Pay  Compensation
}

// NewFullTime creates a full-time employee with a fixed salary.
func NewFullTime(id int, name string, salary decimal.Decimal) Employee {
	return Employee{ID: id, Name: name, Pay: FixedSalary{Salary: salary}}
}

// NewPartTime creates a part-time employee paid by the hour.
func NewPartTime(id int, name string, wage decimal.Decimal, hours int) Employee {
	return Employee{ID: id, Name: name, Pay: HourlyWage{Wage: wage, Hours: hours}}
}

// NewContractual creates a contractual employee paid per project.
func NewContractual(id int, name string, payment decimal.Decimal, projects int) Employee {
	return Employee{ID: id, Name: name, Pay: ProjectPayment{Payment: payment, Projects: projects}}
}

// Kind returns the compensation variant of the employee.
func (e Employee) Kind() Kind {
	if e.Pay == nil {
		return 0
	}
	return e.Pay.Kind()
}

// Salary computes the employee's pay from its own attributes.
func (e Employee) Salary() decimal.Decimal {
	switch pay := e.Pay.(type) {
	case FixedSalary:
		return pay.Salary
	case HourlyWage:
		return pay.Wage.Mul(decimal.NewFromInt(int64(pay.Hours)))
	case ProjectPayment:
		return pay.Payment.Mul(decimal.NewFromInt(int64(pay.Projects)))
	default:
		return decimal.Zero
	}
}

// Describe renders the report block for the employee, terminated by a blank line.
func (e Employee) Describe() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Employee: %s (ID: %d)\n", e.Name, e.ID)

	switch pay := e.Pay.(type) {
	case FixedSalary:
		fmt.Fprintf(&b, "Fixed Monthly Salary: $%s\n", pay.Salary)
	case HourlyWage:
		fmt.Fprintf(&b, "Hourly Wage: $%s\n", pay.Wage)
		fmt.Fprintf(&b, "Hours Worked: %d\n", pay.Hours)
		fmt.Fprintf(&b, "Total Salary: $%s\n", e.Salary())
	case ProjectPayment:
		fmt.Fprintf(&b, "Contract Payment Per Project: $%s\n", pay.Payment)
		fmt.Fprintf(&b, "Projects Completed: %d\n", pay.Projects)
		fmt.Fprintf(&b, "Total Salary: $%s\n", e.Salary())
	}

	b.WriteString("\n")

	return b.String()
}
