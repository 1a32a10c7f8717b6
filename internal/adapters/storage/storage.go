// Package storage implements ports.QuoteStorage on top of sqlite, redis or
// process memory. Every driver stores the same two values: the quote list as a
// JSON array blob and the last selected category as a plain string.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/platform/config"
	"github.com/jsamuelsen/quotegen/internal/ports"
)

// Keys under which values are stored.
const (
	KeyQuotes   = "quotes"
	KeyCategory = "selected_category"
)

// Store is a quote storage driver that can also report its health.
type Store interface {
	ports.QuoteStorage
	ports.HealthChecker
	io.Closer
}

// Open builds the driver selected by cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(slog.String("component", "storage"), slog.String("driver", cfg.Driver))

	switch cfg.Driver {
	case config.DriverSQLite:
		s, err := OpenSQLite(ctx, cfg.SQLite.Path, logger)
		if err != nil {
			return nil, err
		}

		return s, nil
	case config.DriverRedis:
		s, err := OpenRedis(ctx, cfg.Redis, logger)
		if err != nil {
			return nil, err
		}

		return s, nil
	case config.DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

func encodeQuotes(quotes domain.QuoteList) ([]byte, error) {
	data, err := json.Marshal(quotes.Clone())
	if err != nil {
		return nil, fmt.Errorf("encoding quotes: %w", err)
	}

	return data, nil
}

// decodeQuotes reads the quote blob. Records that violate quote invariants
// are dropped and reported with a domain.CorruptDataError next to the valid
// remainder. A blob that is not a JSON array yields no quotes and the same
// error kind.
func decodeQuotes(data []byte) (domain.QuoteList, error) {
	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, domain.NewCorruptDataError(KeyQuotes, err)
	}

	quotes := make(domain.QuoteList, 0, len(records))

	var (
		dropped  int
		firstErr error
	)

	for i, raw := range records {
		var q domain.Quote

		err := json.Unmarshal(raw, &q)
		if err == nil {
			err = q.Validate()
		}

		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("record %d: %w", i, err)
			}

			dropped++

			continue
		}

		quotes = append(quotes, q)
	}

	if dropped > 0 {
		return quotes, domain.NewDroppedRecordsError(KeyQuotes, dropped, firstErr)
	}

	return quotes, nil
}

func notFound(key string) error {
	return domain.NewNotFoundError("stored value", key)
}
