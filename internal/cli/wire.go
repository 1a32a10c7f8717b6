package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotegen/internal/adapters/clients"
	"github.com/jsamuelsen/quotegen/internal/adapters/clients/acl"
	"github.com/jsamuelsen/quotegen/internal/adapters/notify"
	"github.com/jsamuelsen/quotegen/internal/adapters/session"
	"github.com/jsamuelsen/quotegen/internal/adapters/storage"
	"github.com/jsamuelsen/quotegen/internal/app"
	"github.com/jsamuelsen/quotegen/internal/platform/config"
	"github.com/jsamuelsen/quotegen/internal/platform/telemetry"
	"github.com/jsamuelsen/quotegen/internal/ports"
)

// Runtime is the wired application shared by every command.
type Runtime struct {
	Config  *config.Config
	Logger  *slog.Logger
	Storage storage.Store
	Remote  *acl.QuoteClient
	Store   *app.QuoteStore
	Quotes  *app.QuoteService
	Sync    *app.SyncService
	Feed    *notify.Feed
	Health  *ports.DefaultHealthRegistry
}

// WireOptions tune Wire for the calling command.
type WireOptions struct {
	Logger *slog.Logger

	// Console receives notifications as colored lines. Nil disables it.
	Console io.Writer

	// Registerer receives the sync metrics. Nil uses the default registry.
	Registerer prometheus.Registerer
}

// Wire opens storage, builds the remote client and the application services,
// and loads the quote list. Callers must Close the runtime.
func Wire(ctx context.Context, cfg *config.Config, opts WireOptions) (*Runtime, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	store, err := storage.Open(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("opening storage: %w", err)
	}

	rt, err := wire(ctx, cfg, store, logger, opts)
	if err != nil {
		return nil, errors.Join(err, store.Close())
	}

	return rt, nil
}

func wire(ctx context.Context, cfg *config.Config, store storage.Store, logger *slog.Logger, opts WireOptions) (*Runtime, error) {
	httpClient, err := clients.New(&clients.Config{
		BaseURL:     cfg.Remote.BaseURL,
		ServiceName: cfg.Remote.Name,
		UserAgent:   cfg.Client.UserAgent,
		Timeout:     cfg.Client.Timeout,
		Circuit:     cfg.Client.CircuitBreaker,
		Transport:   cfg.Client.Transport,
		Logger:      logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating HTTP client: %w", err)
	}

	remote := acl.NewQuoteClient(acl.QuoteClientConfig{
		Client:     httpClient,
		Path:       cfg.Remote.Path,
		FetchLimit: cfg.Remote.FetchLimit,
		UserID:     cfg.Remote.UserID,
		Logger:     logger,
	})

	health := ports.NewHealthRegistry()
	if err := health.Register(store); err != nil {
		return nil, fmt.Errorf("registering storage health check: %w", err)
	}

	if err := health.RegisterOptional(remote); err != nil {
		return nil, fmt.Errorf("registering remote health check: %w", err)
	}

	feed := notify.NewFeed(cfg.Notify.TTL, cfg.Notify.History)

	notifiers := notify.Multi{feed}
	if opts.Console != nil {
		notifiers = append(notifiers, notify.NewConsole(opts.Console))
	}

	metrics, err := telemetry.NewSyncMetrics(opts.Registerer)
	if err != nil {
		return nil, fmt.Errorf("registering sync metrics: %w", err)
	}

	quoteStore := app.NewQuoteStore(app.QuoteStoreConfig{
		Storage: store,
		Logger:  logger,
	})

	if _, err := quoteStore.Initialize(ctx); err != nil {
		return nil, fmt.Errorf("loading quotes: %w", err)
	}

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:           quoteStore,
		Storage:         store,
		Remote:          remote,
		Session:         session.New(cfg.Session.TTL),
		Notifier:        notifiers,
		Logger:          logger,
		SubmitOnAdd:     cfg.Remote.SubmitOnAdd,
		PushConcurrency: cfg.Remote.PushConcurrency,
		RemoteTimeout:   cfg.Sync.Timeout,
	})

	syncer := app.NewSyncService(app.SyncServiceConfig{
		Store:    quoteStore,
		Remote:   remote,
		Notifier: notifiers,
		Observer: metrics,
		Timeout:  cfg.Sync.Timeout,
		Logger:   logger,
	})

	return &Runtime{
		Config:  cfg,
		Logger:  logger,
		Storage: store,
		Remote:  remote,
		Store:   quoteStore,
		Quotes:  quotes,
		Sync:    syncer,
		Feed:    feed,
		Health:  health,
	}, nil
}

// Close releases the storage driver.
func (r *Runtime) Close() error {
	return r.Storage.Close()
}
