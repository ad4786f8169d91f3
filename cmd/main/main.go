package main

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/UnknownOlympus/plutus/internal/config"
	"github.com/UnknownOlympus/plutus/internal/lib/logger/sl"
	"github.com/UnknownOlympus/plutus/internal/metrics"
	"github.com/UnknownOlympus/plutus/internal/prompt"
	"github.com/UnknownOlympus/plutus/internal/repository"
	"github.com/UnknownOlympus/plutus/internal/services/payroll"
)

const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	ctx := context.Background()

	cfg := config.MustLoad()

	// stdout belongs to the operator dialogue, logs go to stderr
	logger := setupLogger(cfg.Env, os.Stderr).With(slog.String("session", uuid.NewString()))

	reg := prometheus.NewRegistry()
	appMetrics := metrics.NewMetrics(reg)

	employeeRepo := repository.NewEmployeeRepository(appMetrics)
	reader := prompt.NewReader(os.Stdin, os.Stdout, logger, appMetrics)
	limits := payroll.Limits{MaxEmployeeID: cfg.Limits.MaxEmployeeID, MaxUnits: cfg.Limits.MaxUnits}
	service := payroll.NewPayroll(logger, employeeRepo, reader, os.Stdout, appMetrics, limits)

	logger.DebugContext(ctx, "Payroll session started", "limits", limits)

	runErr := service.Run(ctx)

	summary, err := metrics.Summarize(reg)
	if err != nil {
		logger.WarnContext(ctx, "Failed to summarize payroll session", sl.Err(err))
	} else {
		logger.DebugContext(ctx, "Payroll session finished", "summary", summary)
	}

	if runErr != nil {
		logger.ErrorContext(ctx, "Payroll session stopped with error", sl.Err(runErr))
		os.Exit(1)
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
func setupLogger(env string, out io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(out, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: false,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level:       slog.LevelWarn,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{
				Level:       slog.LevelError,
				AddSource:   false,
				ReplaceAttr: dropTime,
			}),
		)

		log.Error(
			"The env parameter was not specified, or was invalid. Logging will be minimal, by default." +
				" Please specify the value of `env`: local, development, production")
	}

	return log
}

func dropTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey {
		return slog.Attr{Key: "", Value: slog.Value{}}
	}
	return a
}
