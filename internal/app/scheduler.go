package app

import (
	"context"
	"log/slog"
	"time"
)

// DefaultSyncInterval is the period between timer-driven reconciliations.
const DefaultSyncInterval = 5 * time.Minute

// Scheduler drives the sync service from a ticker. Ticks that find a run in
// flight are dropped. Manual syncs call SyncService.Sync directly and queue
// behind the same slot.
type Scheduler struct {
	sync     *SyncService
	interval time.Duration
	logger   *slog.Logger
}

// SchedulerConfig holds dependencies for Scheduler.
type SchedulerConfig struct {
	Sync     *SyncService
	Interval time.Duration
	Logger   *slog.Logger
}

// NewScheduler creates a scheduler. It panics if Sync is nil.
func NewScheduler(cfg SchedulerConfig) *Scheduler {
	if cfg.Sync == nil {
		panic("scheduler requires a sync service")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	interval := cfg.Interval
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	return &Scheduler{
		sync:     cfg.Sync,
		interval: interval,
		logger:   logger.With(slog.String("component", "scheduler")),
	}
}

// Run performs an initial sync and then serves ticks until ctx is canceled.
// It always returns nil.
func (s *Scheduler) Run(ctx context.Context) error {
	s.logger.InfoContext(ctx, "scheduler started", slog.Duration("interval", s.interval))

	s.tick(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.InfoContext(context.WithoutCancel(ctx), "scheduler stopped")
			return nil
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	if _, err := s.sync.TrySync(ctx); err != nil && ctx.Err() == nil {
		s.logger.ErrorContext(ctx, "scheduled sync failed", slog.Any("error", err))
	}
}
