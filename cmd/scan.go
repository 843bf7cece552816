package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"vdpscanner/internal/aggregator"
	"vdpscanner/internal/api"
	"vdpscanner/internal/config"
	"vdpscanner/internal/report"
	"vdpscanner/internal/runner"
	"vdpscanner/internal/source"
	"vdpscanner/internal/vdp"
	"vdpscanner/pkg/fetcher/httphash"
	"vdpscanner/pkg/logger"
	"vdpscanner/pkg/metrics"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// inputPath resolves a listing file name the way reports are resolved:
// relative names live in the input directory.
func inputPath(cfg *config.Config, name string) string {
	if filepath.IsAbs(name) || cfg.Source.InputDirectory == "" {
		return name
	}

	return filepath.Join(cfg.Source.InputDirectory, name)
}

func localCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "local FILE",
		Short: "Scans the domains listed in a local DotGov CSV file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd.Context(), a.cfg, source.Local{Path: inputPath(a.cfg, args[0])})
		},
	}
}

func githubCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "github",
		Short: "Scans the domains of the DotGov listing published on GitHub",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runScan(cmd.Context(), a.cfg, source.Remote{
				HTTPClient: &http.Client{Timeout: a.cfg.Fetch.Timeout},
				URL:        a.cfg.Source.GitHubURL,
			})
		},
	}
}

func postgresCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "postgres",
		Short: "Scans the domains stored in the database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			strg, closeStrg, err := getPostgres(ctx, a.cfg)
			if err != nil {
				return fmt.Errorf("could not create postgres storage: %w", err)
			}
			defer closeStrg()

			return runScan(ctx, a.cfg, source.Store{Storage: strg})
		},
	}
}

// startDebugListener starts the optional debug listener and returns a function
// stopping it.
func startDebugListener(ctx context.Context, cfg *config.Config, exp *metrics.Exporter) (func(), error) {
	if cfg.HTTP.Addr == "" {
		return func() {}, nil
	}

	srv, err := api.Start(ctx, exp.Handler(), api.NewOptions(cfg))
	if err != nil {
		return nil, fmt.Errorf("could not start debug listener: %w", err)
	}

	return func() {
		logger.Debug(ctx, "stopping debug listener...")
		if err := srv.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error(ctx, "could not stop debug listener", zap.Error(err))
		}
	}, nil
}

// runScan reads the listing from provider, checks every domain and writes
// the reports. An interrupt stops pending fetches; the reports are still
// written with the outcomes gathered so far.
func runScan(parent context.Context, cfg *config.Config, provider source.Provider) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exp, err := metrics.New()
	if err != nil {
		return err //nolint: wrapcheck
	}
	defer func() {
		if err := exp.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Warn(ctx, "could not shutdown metrics", zap.Error(err))
		}
	}()

	stopListener, err := startDebugListener(ctx, cfg, exp)
	if err != nil {
		return err
	}
	defer stopListener()

	records, err := provider.Domains(ctx)
	if err != nil {
		return fmt.Errorf("could not load domain listing: %w", err)
	}

	checker, err := vdp.New(httphash.New(httphash.Options{
		Timeout:      cfg.Fetch.Timeout,
		UserAgent:    cfg.Fetch.UserAgent,
		MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
		MaxRedirects: cfg.Fetch.MaxRedirects,
	}), vdp.Options{
		MeterProvider:  exp.MeterProvider(),
		TracerProvider: exp.TracerProvider(),
	})
	if err != nil {
		return fmt.Errorf("could not create checker: %w", err)
	}

	agg := aggregator.New(cfg.Source.MissingSecurityContact)
	r := &runner.Runner{
		Checker:     checker,
		Recorder:    agg,
		Concurrency: cfg.Runner.Concurrency,
		RateLimit:   cfg.Runner.RateLimit,
	}
	summary := r.Run(ctx, records)

	writer := newReportWriter(cfg, summary.Started)
	if _, err := writer.Write(context.WithoutCancel(ctx), agg); err != nil {
		return err //nolint: wrapcheck
	}

	if cfg.Metrics.TextfilePath != "" {
		if err := exp.WriteTextfile(cfg.Metrics.TextfilePath); err != nil {
			return err //nolint: wrapcheck
		}
	}

	return nil
}

func newReportWriter(cfg *config.Config, started time.Time) *report.Writer {
	w := report.NewWriter(started)
	w.Directory = cfg.Output.Directory
	w.Workbook = cfg.Output.Workbook
	if cfg.Output.AgencyCSV != "" {
		w.AgencyCSV = cfg.Output.AgencyCSV
	}
	if cfg.Output.DomainCSV != "" {
		w.DomainCSV = cfg.Output.DomainCSV
	}

	return w
}
