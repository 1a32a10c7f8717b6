//go:build integration

package integration

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotegen/internal/cli"
	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/platform/config"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// TestConfig_LayeredLoadWiresSQLite verifies base, profile and environment
// layers end up in a runtime that persists to the configured sqlite file.
func TestConfig_LayeredLoadWiresSQLite(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "quotes.db")

	writeFile(t, filepath.Join(dir, "base.yaml"), `
storage:
  driver: memory
session:
  ttl: 1m
sync:
  interval: 1m
`)
	writeFile(t, filepath.Join(dir, "qa.yaml"), `
app:
  environment: qa
storage:
  driver: sqlite
`)
	t.Setenv("APP_STORAGE__SQLITE__PATH", dbPath)
	t.Setenv("APP_REMOTE__FETCH_LIMIT", "3")

	cfg, err := config.LoadFrom(dir, "qa")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "qa", cfg.App.Environment)
	assert.Equal(t, config.DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, dbPath, cfg.Storage.SQLite.Path)
	assert.Equal(t, 3, cfg.Remote.FetchLimit)
	assert.Equal(t, time.Minute, cfg.Session.TTL)

	ctx := context.Background()

	rt, err := cli.Wire(ctx, cfg, cli.WireOptions{Registerer: prometheus.NewRegistry()})
	require.NoError(t, err)

	_, err = rt.Quotes.AddQuote(ctx, "Persisted", "Config")
	require.NoError(t, err)
	require.NoError(t, rt.Close())

	_, err = os.Stat(dbPath)
	require.NoError(t, err)

	reopened, err := cli.Wire(ctx, cfg, cli.WireOptions{Registerer: prometheus.NewRegistry()})
	require.NoError(t, err)
	defer reopened.Close()

	quotes := reopened.Quotes.ListByCategory(ctx, "Config")
	require.Len(t, quotes, 1)
	assert.Equal(t, "Persisted", quotes[0].Text)

	result := reopened.Health.CheckAll(ctx)
	assert.Contains(t, result.Checks, "storage")
}

// TestConfig_InvalidDriverFailsValidation verifies misconfiguration is caught
// before any adapter is built.
func TestConfig_InvalidDriverFailsValidation(t *testing.T) {
	t.Setenv("APP_STORAGE__DRIVER", "postgres")

	cfg, err := config.LoadFrom(t.TempDir(), "")
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "storage.driver")
}

// TestConfig_SubmitOnAdd verifies remote.submit_on_add routes new quotes
// through the remote collection.
func TestConfig_SubmitOnAdd(t *testing.T) {
	remote := newFakeRemote()

	s, err := startStack(context.Background(), remote, func(cfg *config.Config) {
		cfg.Remote.SubmitOnAdd = true
	})
	require.NoError(t, err)
	defer s.Close()

	q, err := s.runtime.Quotes.AddQuote(context.Background(), "Shared", "Remote")
	require.NoError(t, err)

	require.True(t, q.HasID())
	assert.Equal(t, 101, *q.ID)
	assert.Equal(t, int64(1), remote.submits.Load())
	assert.Len(t, s.runtime.Store.LocalOnly(), len(domain.SeedQuotes()))
}
