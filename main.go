// Command squadstats browses and exports the stats tables of an aggregated
// squad combat log.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ikari-pl/go-squadstats/internal/config"
	"github.com/ikari-pl/go-squadstats/internal/dashboard"
	"github.com/ikari-pl/go-squadstats/internal/output"
	"github.com/ikari-pl/go-squadstats/internal/pivot"
	"github.com/ikari-pl/go-squadstats/internal/stats"
	"github.com/ikari-pl/go-squadstats/internal/tui"
)

func main() {
	cfg := config.NewConfig()
	if err := cfg.ParseFlags(os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	logger, closeLog, err := cfg.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	ui := tui.NewTUI(logger, tui.Options{
		Theme:   cfg.Theme,
		Section: cfg.Domain(),
		View:    cfg.View,
	})

	err = run(ctx, cfg, logger, stats.NewRepository(logger), ui)
	stop()
	_ = closeLog()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewDashboard builds the dashboard a configuration asks for.
func NewDashboard(cfg *config.Config, ds *stats.Dataset) *dashboard.Dashboard {
	return dashboard.New(ds, dashboard.Options{
		Format: pivot.FormatOptions{
			RoundCounts: cfg.RoundCountStats,
			Compact:     cfg.CompactNumbers,
		},
		Mode:         cfg.Mode(),
		HideZeroRows: cfg.HideZeroRowOverrides(),
		Incoming:     cfg.Incoming,
	})
}

// run loads the stats file and either starts the TUI or exports the
// configured section.
func run(ctx context.Context, cfg *config.Config, logger *slog.Logger, repo stats.Repository, ui tui.TUI) error {
	logger.Debug("Loading stats", "file", cfg.StatsFile)

	ds, err := repo.Load(ctx, cfg.StatsFile)
	if err != nil {
		return fmt.Errorf("failed to load stats: %w", err)
	}
	dash := NewDashboard(cfg, ds)

	logger.Debug("Dashboard ready",
		"title", dash.Title(),
		"sections", len(dash.Sections()),
	)

	if cfg.Interactive() {
		return ui.Run(ctx, dash)
	}

	if cfg.OutputFile == "" {
		return export(ctx, cfg, dash, os.Stdout)
	}

	f, err := os.Create(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := export(ctx, cfg, dash, f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	logger.Info("Export written", "file", cfg.OutputFile, "format", cfg.OutputFormat)
	return nil
}

// export writes the configured section in the configured format. The detail
// view exports the ranking of the section's first metric.
func export(ctx context.Context, cfg *config.Config, dash *dashboard.Dashboard, w io.Writer) error {
	sec, err := dash.Section(cfg.Domain())
	if err != nil {
		return err
	}

	m := sec.DenseMatrix()
	if cfg.View == config.ViewDetail {
		m = sec.DetailMatrix()
	}

	table := output.NewTable(dash.Title(), string(sec.Spec().Domain), m)
	return output.NewManager().Format(ctx, cfg.OutputFormat, table, w)
}
