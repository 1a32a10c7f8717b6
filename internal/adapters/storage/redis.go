package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/platform/config"
)

// Redis stores values as plain string keys under a prefix.
type Redis struct {
	rdb    redis.UniversalClient
	prefix string
	logger *slog.Logger
}

// OpenRedis connects to the configured server and verifies it answers.
func OpenRedis(ctx context.Context, cfg config.RedisConfig, logger *slog.Logger) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: cfg.DialTimeout,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.Addr, err)
	}

	return NewRedis(rdb, cfg.Prefix, logger), nil
}

// NewRedis wraps an existing client.
func NewRedis(rdb redis.UniversalClient, prefix string, logger *slog.Logger) *Redis {
	if logger == nil {
		logger = slog.Default()
	}

	return &Redis{rdb: rdb, prefix: prefix, logger: logger}
}

// LoadQuotes implements ports.QuoteStorage.
func (r *Redis) LoadQuotes(ctx context.Context) (domain.QuoteList, error) {
	data, err := r.get(ctx, KeyQuotes)
	if err != nil {
		return nil, err
	}

	return decodeQuotes(data)
}

// SaveQuotes implements ports.QuoteStorage.
func (r *Redis) SaveQuotes(ctx context.Context, quotes domain.QuoteList) error {
	data, err := encodeQuotes(quotes)
	if err != nil {
		return err
	}

	return r.put(ctx, KeyQuotes, data)
}

// LoadCategory implements ports.QuoteStorage.
func (r *Redis) LoadCategory(ctx context.Context) (string, error) {
	data, err := r.get(ctx, KeyCategory)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// SaveCategory implements ports.QuoteStorage.
func (r *Redis) SaveCategory(ctx context.Context, category string) error {
	return r.put(ctx, KeyCategory, []byte(category))
}

// Close implements ports.QuoteStorage.
func (r *Redis) Close() error {
	return r.rdb.Close()
}

// Name implements ports.HealthChecker.
func (r *Redis) Name() string {
	return "storage"
}

// Check implements ports.HealthChecker.
func (r *Redis) Check(ctx context.Context) error {
	return r.rdb.Ping(ctx).Err()
}

func (r *Redis) key(name string) string {
	if r.prefix == "" {
		return name
	}

	return r.prefix + ":" + name
}

func (r *Redis) get(ctx context.Context, name string) ([]byte, error) {
	data, err := r.rdb.Get(ctx, r.key(name)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, notFound(name)
	}

	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", name, err)
	}

	return data, nil
}

func (r *Redis) put(ctx context.Context, name string, value []byte) error {
	if err := r.rdb.Set(ctx, r.key(name), value, 0).Err(); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	return nil
}
