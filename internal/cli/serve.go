package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen/quotegen/internal/adapters/http"
	"github.com/jsamuelsen/quotegen/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotegen/internal/app"
	"github.com/jsamuelsen/quotegen/internal/platform/telemetry"
)

func newServeCmd(opts *rootOptions, build BuildInfo) *cobra.Command {
	var noSync bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the quote API over HTTP",
		Long: `Serve /api/v1 and the /-/ probe routes until SIGINT or SIGTERM.
With sync.enabled the remote collection is reconciled at startup and then
every sync.interval.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return serve(ctx, opts, build, !noSync && opts.cfg.Sync.Enabled)
		},
	}

	cmd.Flags().BoolVar(&noSync, "no-sync", false, "disable periodic reconciliation")

	return cmd
}

func serve(ctx context.Context, opts *rootOptions, build BuildInfo, withSync bool) error {
	cfg, logger := opts.cfg, opts.logger

	logger.InfoContext(ctx, "starting service",
		slog.String("version", build.Version),
		slog.String("commit", build.Commit),
		slog.String("environment", cfg.App.Environment),
	)

	provider, err := telemetry.New(ctx, telemetry.ConfigFrom(cfg))
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if err := provider.Shutdown(context.WithoutCancel(ctx)); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	wireOpts := WireOptions{Logger: logger, Registerer: prometheus.DefaultRegisterer}
	if cfg.Notify.Console {
		wireOpts.Console = color.Error
	}

	rt, err := Wire(ctx, cfg, wireOpts)
	if err != nil {
		return err
	}

	defer func() {
		if err := rt.Close(); err != nil {
			logger.Warn("closing storage failed", slog.Any("error", err))
		}
	}()

	server := http.New(&cfg.Server, logger)

	routerCfg := http.NewRouterConfig(cfg, logger)
	routerCfg.HealthHandler = handlers.NewHealthHandler(rt.Health,
		handlers.NewBuildInfo(build.Version, build.Commit, build.BuildTime))
	routerCfg.QuoteHandler = handlers.NewQuoteHandler(rt.Quotes)
	routerCfg.SyncHandler = handlers.NewSyncHandler(rt.Sync, rt.Quotes, rt.Feed)

	http.SetupRouter(server.Engine(), routerCfg)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return server.Run(ctx)
	})

	if withSync {
		scheduler := app.NewScheduler(app.SchedulerConfig{
			Sync:     rt.Sync,
			Interval: cfg.Sync.Interval,
			Logger:   logger,
		})

		g.Go(func() error {
			return scheduler.Run(ctx)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("shutdown complete")

	return nil
}
