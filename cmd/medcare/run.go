package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"medcare/internal/boundary"
	"medcare/internal/config"
	"medcare/internal/logging"
	"medcare/internal/telemetry"
	"medcare/internal/ui"
)

const shutdownTimeout = 5 * time.Second

// loadConfig reads the config file and applies command-line overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.route != "" {
		cfg.StartRoute = opts.route
	}
	if len(opts.faults) > 0 {
		cfg.Faults = append(cfg.Faults, opts.faults...)
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.verbose {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// reporters holds the failure sinks and the exporters behind them.
type reporters struct {
	boundary.MultiReporter
	tracing *telemetry.Tracing
	metrics *telemetry.Metrics
}

func newReporters(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*reporters, error) {
	tracing, err := telemetry.NewTracing(ctx, cfg.Telemetry.ServiceName)
	if err != nil {
		return nil, fmt.Errorf("set up tracing: %w", err)
	}
	metrics := telemetry.NewMetrics(cfg.Metrics.Textfile)
	counter, err := boundary.NewMetricsReporter(metrics.Registry)
	if err != nil {
		return nil, err
	}
	return &reporters{
		MultiReporter: boundary.MultiReporter{
			boundary.LogReporter{Logger: logger.Named("boundary")},
			boundary.TraceReporter{Tracer: tracing.Tracer()},
			counter,
		},
		tracing: tracing,
		metrics: metrics,
	}, nil
}

// close flushes the exporters. Both are attempted.
func (r *reporters) close(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return errors.Join(r.tracing.Shutdown(ctx), r.metrics.Flush())
}

func run(ctx context.Context, opts options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	rep, err := newReporters(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := rep.close(context.Background()); err != nil {
			logger.Warn("flush telemetry", zap.Error(err))
		}
	}()

	app, err := ui.NewAppModel(ui.AppConfig{
		StartRoute: cfg.StartRoute,
		Faults:     cfg.Faults,
		Logger:     logger,
		Reporter:   rep,
	})
	if err != nil {
		return err
	}

	logger.Info("starting dashboard",
		zap.String("version", Version),
		zap.String("route", cfg.StartRoute),
		zap.Strings("faults", cfg.Faults),
		zap.Bool("tracing", rep.tracing.Enabled()))

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	logger.Info("dashboard exited")
	return nil
}
