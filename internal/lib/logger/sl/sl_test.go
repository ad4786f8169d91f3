package sl_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/UnknownOlympus/plutus/internal/lib/logger/sl"
	"github.com/stretchr/testify/assert"
)

func TestErr(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	testLogger.Warn("expected result:", sl.Err(assert.AnError))

	assert.Contains(t, logBuf.String(), assert.AnError.Error())
}

func TestOp(t *testing.T) {
	t.Parallel()

	var logBuf bytes.Buffer
	testLogger := slog.New(slog.NewTextHandler(&logBuf, &slog.HandlerOptions{}))

	testLogger.Info("step", sl.Op("Payroll.Run"))

	assert.Contains(t, logBuf.String(), "op=Payroll.Run")
}
