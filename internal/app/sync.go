package app

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/ports"
)

// DefaultRemoteTimeout bounds every remote fetch and submit.
const DefaultRemoteTimeout = 5 * time.Second

// Sync results reported to observers.
const (
	SyncChanged   = "changed"
	SyncUnchanged = "unchanged"
	SyncDegraded  = "degraded"
	SyncFailed    = "failed"
	SyncSkipped   = "skipped"
)

// SyncReport describes one reconciliation run.
type SyncReport struct {
	Result  string `json:"result"`
	Updated int    `json:"updated"`
	Added   int    `json:"added"`
}

// SyncObserver receives the outcome of every run.
type SyncObserver interface {
	ObserveSync(ctx context.Context, report SyncReport)
}

// SyncService reconciles the remote batch into the quote store.
// At most one run is in flight at a time.
type SyncService struct {
	slot     chan struct{}
	store    *QuoteStore
	remote   ports.RemoteQuotes
	notifier ports.Notifier
	observer SyncObserver
	timeout  time.Duration
	logger   *slog.Logger
}

// SyncServiceConfig holds dependencies for SyncService.
type SyncServiceConfig struct {
	Store    *QuoteStore
	Remote   ports.RemoteQuotes
	Notifier ports.Notifier
	Observer SyncObserver
	Timeout  time.Duration
	Logger   *slog.Logger
}

// NewSyncService creates a sync service. It panics if Store or Remote is nil.
func NewSyncService(cfg SyncServiceConfig) *SyncService {
	if cfg.Store == nil {
		panic("sync service requires a quote store")
	}

	if cfg.Remote == nil {
		panic("sync service requires a remote quote source")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRemoteTimeout
	}

	return &SyncService{
		slot:     make(chan struct{}, 1),
		store:    cfg.Store,
		remote:   cfg.Remote,
		notifier: cfg.Notifier,
		observer: cfg.Observer,
		timeout:  timeout,
		logger:   logger.With(slog.String("component", "sync")),
	}
}

// Sync runs a reconciliation, waiting behind any run already in flight.
func (s *SyncService) Sync(ctx context.Context) (SyncReport, error) {
	select {
	case s.slot <- struct{}{}:
	case <-ctx.Done():
		return SyncReport{Result: SyncSkipped}, ctx.Err()
	}

	defer func() { <-s.slot }()

	return s.run(ctx)
}

// TrySync runs a reconciliation unless one is already in flight, in which
// case it returns immediately with a skipped report.
func (s *SyncService) TrySync(ctx context.Context) (SyncReport, error) {
	select {
	case s.slot <- struct{}{}:
	default:
		s.logger.DebugContext(ctx, "sync already in flight, dropping tick")

		report := SyncReport{Result: SyncSkipped}
		s.observe(ctx, report)

		return report, nil
	}

	defer func() { <-s.slot }()

	return s.run(ctx)
}

func (s *SyncService) run(ctx context.Context) (SyncReport, error) {
	start := time.Now()

	fetchCtx, cancel := context.WithTimeout(ctx, s.timeout)
	remote, fetchErr := s.remote.FetchRemoteQuotes(fetchCtx)

	cancel()

	degraded := fetchErr != nil
	if degraded {
		s.logger.WarnContext(ctx, "remote fetch failed, reconciling against an empty batch",
			slog.Any("error", fetchErr),
		)
		s.notify(ctx, ports.LevelWarning, MsgSyncDegraded)

		remote = domain.QuoteList{}
	}

	result, err := s.store.ApplyRemote(ctx, remote)
	if err != nil {
		report := SyncReport{Result: SyncFailed}
		s.observe(ctx, report)
		s.notify(ctx, ports.LevelError, MsgSyncFailed)

		return report, fmt.Errorf("applying remote quotes: %w", err)
	}

	report := SyncReport{Updated: result.Updated, Added: result.Added}

	switch {
	case result.Changed():
		report.Result = SyncChanged
		s.notify(ctx, ports.LevelInfo,
			fmt.Sprintf("%s %d updated, %d added.", MsgSynced, result.Updated, result.Added))
	case degraded:
		report.Result = SyncDegraded
	default:
		report.Result = SyncUnchanged
	}

	s.observe(ctx, report)

	s.logger.InfoContext(ctx, "sync finished",
		slog.String("result", report.Result),
		slog.Int("updated", report.Updated),
		slog.Int("added", report.Added),
		slog.Duration("duration", time.Since(start)),
	)

	return report, nil
}

func (s *SyncService) notify(ctx context.Context, level ports.Level, msg string) {
	if s.notifier != nil {
		s.notifier.Notify(ctx, ports.Notification{Level: level, Message: msg})
	}
}

func (s *SyncService) observe(ctx context.Context, report SyncReport) {
	if s.observer != nil {
		s.observer.ObserveSync(ctx, report)
	}
}
