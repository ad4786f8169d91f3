package payroll

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/UnknownOlympus/plutus/internal/config"
	"github.com/UnknownOlympus/plutus/internal/lib/logger/sl"
	"github.com/UnknownOlympus/plutus/internal/metrics"
	"github.com/UnknownOlympus/plutus/internal/models"
	"github.com/UnknownOlympus/plutus/internal/prompt"
	"github.com/UnknownOlympus/plutus/internal/repository"
)

const menu = `
Menu:
1 - Full-time Employee
2 - Part-time Employee
3 - Contractual Employee
4 - Display Payroll Report
5 - Exit
`

const (
	choiceFullTime = iota + 1
	choicePartTime
	choiceContractual
	choiceReport
	choiceExit
)

// InputReader reads validated values from the operator.
type InputReader interface {
	IntInRange(ctx context.Context, prompt string, minValue, maxValue int) (int, error)
	DecimalWithMin(ctx context.Context, prompt string, minValue decimal.Decimal) (decimal.Decimal, error)
	Name(ctx context.Context, prompt string) (string, error)
}

// Limits bounds the integer fields of an employee record.
type Limits struct {
	MaxEmployeeID int
	MaxUnits      int
}

// DefaultLimits returns the bounds used when nothing is configured.
func DefaultLimits() Limits {
	return Limits{MaxEmployeeID: config.DefaultMaxEmployeeID, MaxUnits: config.DefaultMaxUnits}
}

// Payroll drives the interactive menu over a single employee register.
type Payroll struct {
	log     *slog.Logger
	repo    repository.EmployeeRepoIface
	input   InputReader
	out     io.Writer
	metrics *metrics.Metrics
	limits  Limits
}

func NewPayroll(
	log *slog.Logger,
	repo repository.EmployeeRepoIface,
	input InputReader,
	out io.Writer,
	metrics *metrics.Metrics,
	limits Limits,
) *Payroll {
	return &Payroll{log: log, repo: repo, input: input, out: out, metrics: metrics, limits: limits}
}

func (p *Payroll) initLogger(opn string) *slog.Logger {
	return p.log.With(
		sl.Op(opn),
		slog.String("division", "payroll"),
	)
}

// Run shows the menu and dispatches choices until the operator exits or the input ends.
// The end of input is a normal way out and returns nil.
func (p *Payroll) Run(ctx context.Context) error {
	const opn = "Payroll.Run"
	log := p.initLogger(opn)

	for {
		fmt.Fprint(p.out, menu)

		choice, err := p.input.IntInRange(ctx, "Enter choice: ", choiceFullTime, choiceExit)
		if err != nil {
			return p.stop(ctx, log, fmt.Errorf("failed to read menu choice: %w", err))
		}

		switch choice {
		case choiceFullTime, choicePartTime, choiceContractual:
			kind := models.Kind(choice)
			p.metrics.MenuSelections.WithLabelValues("add_" + kind.String()).Inc()
			if err = p.AddEmployee(ctx, kind); err != nil {
				return p.stop(ctx, log, err)
			}
		case choiceReport:
			p.metrics.MenuSelections.WithLabelValues("report").Inc()
			p.Report(ctx)
		case choiceExit:
			p.metrics.MenuSelections.WithLabelValues("exit").Inc()
			fmt.Fprintln(p.out, "Exiting...")
			log.InfoContext(ctx, "Operator left the payroll session")
			return nil
		}
	}
}

func (p *Payroll) stop(ctx context.Context, log *slog.Logger, err error) error {
	if errors.Is(err, prompt.ErrInputClosed) {
		log.InfoContext(ctx, "Input closed, leaving the payroll session")
		return nil
	}

	log.ErrorContext(ctx, "Payroll session failed", sl.Err(err))
	return err
}

// AddEmployee reads a new employee of the given kind and appends it to the register.
// A duplicate ID only repeats the ID prompt; the rest of the record is read once.
func (p *Payroll) AddEmployee(ctx context.Context, kind models.Kind) error {
	const opn = "Payroll.AddEmployee"
	log := p.initLogger(opn)

	if kind < models.FullTime || kind > models.Contractual {
		return fmt.Errorf("failed to add employee: unknown kind %d", kind)
	}

	identifier, err := p.readUniqueID(ctx, log)
	if err != nil {
		return err
	}

	name, err := p.input.Name(ctx, "Enter Employee Name: ")
	if err != nil {
		return fmt.Errorf("failed to read employee name: %w", err)
	}

	employee, err := p.readCompensation(ctx, kind, identifier, name)
	if err != nil {
		return err
	}

	if err = p.repo.SaveEmployee(employee); err != nil {
		return fmt.Errorf("failed to add employee: %w", err)
	}

	log.InfoContext(ctx, "Employee registered", "id", employee.ID, "kind", kind.String())

	return nil
}

func (p *Payroll) readUniqueID(ctx context.Context, log *slog.Logger) (int, error) {
	for {
		identifier, err := p.input.IntInRange(ctx, "Enter Employee ID: ", 1, p.limits.MaxEmployeeID)
		if err != nil {
			return 0, fmt.Errorf("failed to read employee id: %w", err)
		}

		if !p.repo.IsDuplicateID(identifier) {
			return identifier, nil
		}

		p.metrics.DuplicateIDs.Inc()
		log.DebugContext(ctx, "Employee ID already registered", "id", identifier)
		fmt.Fprintln(p.out, "Error: Employee ID already exists! Please enter a unique ID.")
	}
}

func (p *Payroll) readCompensation(
	ctx context.Context,
	kind models.Kind,
	identifier int,
	name string,
) (models.Employee, error) {
	switch kind {
	case models.FullTime:
		salary, err := p.input.DecimalWithMin(ctx, "Enter Fixed Salary: $", decimal.Zero)
		if err != nil {
			return models.Employee{}, fmt.Errorf("failed to read fixed salary: %w", err)
		}
		return models.NewFullTime(identifier, name, salary), nil

	case models.PartTime:
		wage, err := p.input.DecimalWithMin(ctx, "Enter Hourly Wage: $", decimal.Zero)
		if err != nil {
			return models.Employee{}, fmt.Errorf("failed to read hourly wage: %w", err)
		}
		hours, err := p.input.IntInRange(ctx, "Enter Hours Worked: ", 0, p.limits.MaxUnits)
		if err != nil {
			return models.Employee{}, fmt.Errorf("failed to read hours worked: %w", err)
		}
		return models.NewPartTime(identifier, name, wage, hours), nil

	case models.Contractual:
		payment, err := p.input.DecimalWithMin(ctx, "Enter Payment Per Project: $", decimal.Zero)
		if err != nil {
			return models.Employee{}, fmt.Errorf("failed to read payment per project: %w", err)
		}
		projects, err := p.input.IntInRange(ctx, "Enter Projects Completed: ", 0, p.limits.MaxUnits)
		if err != nil {
			return models.Employee{}, fmt.Errorf("failed to read projects completed: %w", err)
		}
		return models.NewContractual(identifier, name, payment, projects), nil

	default:
		return models.Employee{}, fmt.Errorf("failed to add employee: unknown kind %d", kind)
	}
}

// Report writes every registered employee in insertion order.
func (p *Payroll) Report(ctx context.Context) {
	const opn = "Payroll.Report"
	log := p.initLogger(opn)

	employees := p.repo.ListEmployees()
	if len(employees) == 0 {
		fmt.Fprintln(p.out, "No employees in the payroll system.")
		return
	}

	fmt.Fprint(p.out, "\nPayroll Report:\n")
	for _, employee := range employees {
		fmt.Fprint(p.out, employee.Describe())
	}

	log.DebugContext(ctx, "Payroll report printed", "employees", len(employees))
}
