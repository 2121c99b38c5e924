package converterApp

import (
	"context"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/langowen/converter/deploy/config"
	"github.com/langowen/converter/internal/converter/adapter/metrics/prometheus"
	"github.com/langowen/converter/internal/converter/adapter/storage/memory"
	"github.com/langowen/converter/internal/converter/ports/cli"
	"github.com/langowen/converter/internal/converter/service"
	"github.com/pkg/errors"
)

type ConverterApp struct {
	cfg     *config.Config
	in      io.Reader
	out     io.Writer
	logOut  io.Writer
	logFile *os.File
}

func NewConverterApp(cfg *config.Config, in io.Reader, out io.Writer) *ConverterApp {
	return &ConverterApp{
		cfg:    cfg,
		in:     in,
		out:    out,
		logOut: os.Stderr,
	}
}

// Start wires the rate table, metrics and service into a session and runs it to completion.
func (a *ConverterApp) Start(ctx context.Context) error {
	const op = "app.Start"

	logger, err := a.initLogger()
	if err != nil {
		return errors.Wrap(err, op)
	}
	defer a.closeLogFile()

	logger.Debug("Logger initialized")

	storage := a.initStorage()
	logger.Debug("Storage initialized")

	metrics := a.initMetrics()
	logger.Debug("Metrics initialized")

	converterService := a.initService(storage, metrics)
	logger.Debug("Service initialized")

	session := cli.NewSession(a.in, a.out, converterService,
		cli.WithMetrics(metrics),
		cli.WithLogger(logger),
	)

	runErr := session.Run(ctx)

	if a.cfg.Metrics.Summary {
		if err := metrics.LogSummary(logger.With("session_id", session.ID())); err != nil {
			logger.Error("Failed to summarize metrics", "error", err.Error())
		}
	}

	if runErr != nil {
		return errors.Wrap(runErr, op)
	}

	return nil
}

func (a *ConverterApp) initLogger() (*slog.Logger, error) {
	const op = "app.initLogger"

	level, err := a.cfg.Log.SlogLevel()
	if err != nil {
		return nil, errors.Wrap(err, op)
	}

	out := a.logOut
	if a.cfg.Log.File != "" {
		file, err := os.OpenFile(a.cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, errors.Wrap(err, op)
		}
		a.logFile = file
		out = file
	}

	logger := slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{
		Level:     level,
		AddSource: false,
	}))
	slog.SetDefault(logger)

	return logger, nil
}

func (a *ConverterApp) closeLogFile() {
	if a.logFile == nil {
		return
	}
	if err := a.logFile.Close(); err != nil {
		log.Println("Failed to close log file:", err)
	}
	a.logFile = nil
}

func (a *ConverterApp) initStorage() *memory.Storage {
	return memory.New()
}

func (a *ConverterApp) initMetrics() *prometheus.Metrics {
	metrics, err := prometheus.New()
	if err != nil {
		log.Fatalln("Failed to initialize metrics", "error", err)
	}

	return metrics
}

func (a *ConverterApp) initService(storage service.Storage, metrics service.Metrics) *service.Service {
	return service.NewService(storage, metrics)
}
