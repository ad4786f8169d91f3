// Package prompt reads validated values from a line-oriented console.
// Every reader repeats its prompt until the input is valid; there is no retry limit.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/UnknownOlympus/plutus/internal/metrics"
	"github.com/UnknownOlympus/plutus/internal/parser"
)

// ErrInputClosed is returned when the input ends before a valid value was read.
var ErrInputClosed = errors.New("input closed")

type Reader struct {
	in      *bufio.Reader
	out     io.Writer
	log     *slog.Logger
	metrics *metrics.Metrics
}

func NewReader(in io.Reader, out io.Writer, log *slog.Logger, metrics *metrics.Metrics) *Reader {
	return &Reader{
		in:      bufio.NewReader(in),
		out:     out,
		log:     log.With(slog.String("division", "prompt")),
		metrics: metrics,
	}
}

// IntInRange reads an integer within [minValue, maxValue].
func (r *Reader) IntInRange(ctx context.Context, prompt string, minValue, maxValue int) (int, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return 0, err
		}

		number, err := parser.Integer(line)
		if err == nil && number >= minValue && number <= maxValue {
			return number, nil
		}

		r.reject(ctx, "integer", line)
		fmt.Fprintf(r.out, "Invalid input! Enter a number between %d and %d.\n", minValue, maxValue)
	}
}

// DecimalWithMin reads a decimal not lower than minValue.
func (r *Reader) DecimalWithMin(ctx context.Context, prompt string, minValue decimal.Decimal) (decimal.Decimal, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}

		number, err := parser.Decimal(line)
		if err == nil && number.GreaterThanOrEqual(minValue) {
			return number, nil
		}

		r.reject(ctx, "decimal", line)
		fmt.Fprintf(r.out, "Invalid input! Enter a number greater than %s.\n", minValue)
	}
}

// Name reads a name that contains no digits.
func (r *Reader) Name(ctx context.Context, prompt string) (string, error) {
	for {
		line, err := r.readLine(prompt)
		if err != nil {
			return "", err
		}

		name, err := parser.Name(line)
		if err == nil {
			return name, nil
		}

		r.reject(ctx, "name", line)
		fmt.Fprintln(r.out, "Invalid input! Name should not contain numbers.")
	}
}

func (r *Reader) readLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}

	line = strings.TrimSuffix(line, "\n")

	return strings.TrimSuffix(line, "\r"), nil
}

func (r *Reader) reject(ctx context.Context, field, line string) {
	r.metrics.InvalidInputs.WithLabelValues(field).Inc()
	r.log.DebugContext(ctx, "Input rejected", "field", field, "input", line)
}
