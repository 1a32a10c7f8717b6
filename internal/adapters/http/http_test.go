package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotegen/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotegen/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotegen/internal/adapters/notify"
	"github.com/jsamuelsen/quotegen/internal/adapters/session"
	"github.com/jsamuelsen/quotegen/internal/adapters/storage"
	"github.com/jsamuelsen/quotegen/internal/app"
	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/mocks"
	"github.com/jsamuelsen/quotegen/internal/platform/config"
	"github.com/jsamuelsen/quotegen/internal/ports"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testServerConfig(port int, maxBody int64) *config.ServerConfig {
	return &config.ServerConfig{
		Host:            "127.0.0.1",
		Port:            port,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     30 * time.Second,
		ShutdownTimeout: 2 * time.Second,
		RequestTimeout:  5 * time.Second,
		MaxRequestSize:  maxBody,
	}
}

func TestServerNew(t *testing.T) {
	cfg := testServerConfig(8080, 1<<20)
	logger := discardLogger()

	srv := New(cfg, logger)

	require.NotNil(t, srv)
	assert.NotNil(t, srv.Engine())
	assert.Equal(t, cfg, srv.Config())
	assert.Equal(t, logger, srv.logger)
}

func TestServerAddr(t *testing.T) {
	tests := []struct {
		name         string
		host         string
		port         int
		expectedAddr string
	}{
		{name: "localhost", host: "localhost", port: 8080, expectedAddr: "localhost:8080"},
		{name: "all interfaces", host: "0.0.0.0", port: 3000, expectedAddr: "0.0.0.0:3000"},
		{name: "dynamic port", host: "127.0.0.1", port: 0, expectedAddr: "127.0.0.1:0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testServerConfig(tt.port, 1<<20)
			cfg.Host = tt.host

			assert.Equal(t, tt.expectedAddr, New(cfg, discardLogger()).Addr())
		})
	}
}

func TestServerStartShutdown(t *testing.T) {
	srv := New(testServerConfig(0, 1<<20), discardLogger())

	errCh := srv.Start()

	time.Sleep(50 * time.Millisecond)

	select {
	case err := <-errCh:
		require.NoError(t, err)
	default:
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	_, ok := <-errCh
	assert.False(t, ok, "error channel should be closed")
}

func TestServerRun_StopsOnCancel(t *testing.T) {
	srv := New(testServerConfig(0, 1<<20), discardLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestServerRun_ListenFailure(t *testing.T) {
	cfg := testServerConfig(0, 1<<20)
	cfg.Host = "256.0.0.1"

	err := New(cfg, discardLogger()).Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "http server error")
}

func TestMaxBodySizeMiddleware(t *testing.T) {
	srv := New(testServerConfig(0, 16), discardLogger())

	srv.Engine().POST("/test", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.JSON(http.StatusOK, gin.H{"received": len(body)})
	})

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "under limit", body: "short", want: http.StatusOK},
		{name: "over limit", body: strings.Repeat("x", 64), want: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/test", strings.NewReader(tt.body)))

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestNewRouterConfig(t *testing.T) {
	logger := discardLogger()

	tests := []struct {
		name        string
		cfg         config.Config
		wantName    string
		wantTimeout time.Duration
	}{
		{
			name: "telemetry service name wins",
			cfg: config.Config{
				App:       config.AppConfig{Name: "quotegen"},
				Server:    config.ServerConfig{RequestTimeout: 2 * time.Second},
				Telemetry: config.TelemetryConfig{ServiceName: "quotegen-api"},
			},
			wantName:    "quotegen-api",
			wantTimeout: 2 * time.Second,
		},
		{
			name:        "falls back to app name and default timeout",
			cfg:         config.Config{App: config.AppConfig{Name: "quotegen"}},
			wantName:    "quotegen",
			wantTimeout: DefaultRequestTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc := NewRouterConfig(&tt.cfg, logger)

			assert.Equal(t, logger, rc.Logger)
			assert.Equal(t, tt.wantName, rc.ServiceName)
			assert.Equal(t, tt.wantTimeout, rc.Timeout)
			assert.Nil(t, rc.QuoteHandler)
		})
	}
}

// newTestRouter wires every handler over in-memory storage.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	ctx := context.Background()
	logger := discardLogger()

	mem := storage.NewMemory()
	require.NoError(t, mem.SaveQuotes(ctx, domain.QuoteList{
		{ID: domain.IntPtr(1), Text: "Stay hungry.", Category: "Life"},
	}))

	store := app.NewQuoteStore(app.QuoteStoreConfig{Storage: mem, Logger: logger})
	_, err := store.Initialize(ctx)
	require.NoError(t, err)

	remote := mocks.NewMockRemoteQuotes(t)
	feed := notify.NewFeed(time.Minute, 10)

	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Storage:  mem,
		Remote:   remote,
		Session:  session.New(time.Minute),
		Notifier: feed,
		Logger:   logger,
	})
	syncer := app.NewSyncService(app.SyncServiceConfig{
		Store:    store,
		Remote:   remote,
		Notifier: feed,
		Logger:   logger,
	})

	engine := gin.New()
	SetupRouter(engine, RouterConfig{
		Logger:        logger,
		ServiceName:   "quotegen",
		HealthHandler: handlers.NewHealthHandler(ports.NewHealthRegistry(), handlers.NewBuildInfo("1.0.0", "abc", "now")),
		QuoteHandler:  handlers.NewQuoteHandler(quotes),
		SyncHandler:   handlers.NewSyncHandler(syncer, quotes, feed),
		Timeout:       5 * time.Second,
	})

	return engine
}

func TestSetupRouter_Routes(t *testing.T) {
	engine := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/-/live", http.StatusOK},
		{http.MethodGet, "/-/ready", http.StatusOK},
		{http.MethodGet, "/-/build", http.StatusOK},
		{http.MethodGet, "/-/metrics", http.StatusOK},
		{http.MethodGet, "/api/v1/quotes", http.StatusOK},
		{http.MethodGet, "/api/v1/quotes/random", http.StatusOK},
		{http.MethodGet, "/api/v1/categories", http.StatusOK},
		{http.MethodGet, "/api/v1/quotes/export", http.StatusOK},
		{http.MethodGet, "/api/v1/notifications", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, http.NoBody))

			assert.Equal(t, tt.want, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
			assert.NotEmpty(t, w.Header().Get("X-Correlation-ID"))
		})
	}
}

func TestSetupRouter_ErrorEnvelopes(t *testing.T) {
	engine := newTestRouter(t)

	tests := []struct {
		name     string
		method   string
		path     string
		wantCode int
		wantErr  string
	}{
		{name: "unknown route", method: http.MethodGet, path: "/api/v1/authors", wantCode: http.StatusNotFound, wantErr: dto.ErrorCodeNotFound},
		{name: "wrong method", method: http.MethodDelete, path: "/api/v1/quotes", wantCode: http.StatusMethodNotAllowed, wantErr: dto.ErrorCodeMethod},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, http.NoBody)
			req.Header.Set("X-Request-ID", "req-1")

			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			require.Equal(t, tt.wantCode, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantErr, resp.Error.Code)
			assert.Equal(t, "req-1", resp.TraceID)
		})
	}
}

func TestSetupRouter_WithoutHandlers(t *testing.T) {
	engine := gin.New()
	SetupRouter(engine, RouterConfig{Logger: discardLogger(), ServiceName: "quotegen"})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
