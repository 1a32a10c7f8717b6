package telemetry

import (
	"context"
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quotegen/internal/app"
)

// SyncMetrics counts reconciliation runs and the quotes they changed.
// It implements app.SyncObserver.
type SyncMetrics struct {
	runs   *prometheus.CounterVec
	quotes *prometheus.CounterVec
}

// NewSyncMetrics registers the sync counters with reg. Collectors that are
// already registered are reused, so calling it twice against one registry is safe.
func NewSyncMetrics(reg prometheus.Registerer) (*SyncMetrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	runs, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_sync_runs_total",
		Help: "Reconciliation runs by result.",
	}, []string{"result"}))
	if err != nil {
		return nil, err
	}

	quotes, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "quote_sync_quotes_total",
		Help: "Quotes changed by reconciliation, by kind of change.",
	}, []string{"change"}))
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{runs: runs, quotes: quotes}, nil
}

// ObserveSync implements app.SyncObserver.
func (m *SyncMetrics) ObserveSync(_ context.Context, report app.SyncReport) {
	m.runs.WithLabelValues(report.Result).Inc()

	if report.Updated > 0 {
		m.quotes.WithLabelValues("updated").Add(float64(report.Updated))
	}

	if report.Added > 0 {
		m.quotes.WithLabelValues("added").Add(float64(report.Added))
	}
}

func registerCounterVec(reg prometheus.Registerer, c *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	err := reg.Register(c)
	if err == nil {
		return c, nil
	}

	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
			return existing, nil
		}
	}

	return nil, err
}
