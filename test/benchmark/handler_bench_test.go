package benchmark

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	quotehttp "github.com/jsamuelsen/quotegen/internal/adapters/http"
	"github.com/jsamuelsen/quotegen/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotegen/internal/adapters/notify"
	"github.com/jsamuelsen/quotegen/internal/adapters/session"
	"github.com/jsamuelsen/quotegen/internal/adapters/storage"
	"github.com/jsamuelsen/quotegen/internal/app"
	"github.com/jsamuelsen/quotegen/internal/domain"
	"github.com/jsamuelsen/quotegen/internal/ports"
)

func init() {
	gin.SetMode(gin.ReleaseMode)
}

// nopRemote never answers with data. Benchmarks do not sync.
type nopRemote struct{}

func (nopRemote) FetchRemoteQuotes(context.Context) (domain.QuoteList, error) {
	return domain.QuoteList{}, nil
}

func (nopRemote) SubmitQuote(_ context.Context, q domain.Quote) (domain.Quote, error) {
	return q, nil
}

// quoteList builds n quotes spread over ten categories, every other one
// carrying a remote ID.
func quoteList(n int) domain.QuoteList {
	quotes := make(domain.QuoteList, n)
	for i := range quotes {
		quotes[i] = domain.Quote{
			Text:     fmt.Sprintf("Quote number %d", i),
			Category: fmt.Sprintf("Category %d", i%10),
		}
		if i%2 == 0 {
			quotes[i] = quotes[i].WithID(i + 1)
		}
	}

	return quotes
}

// setupRouter wires the full middleware chain over n stored quotes.
func setupRouter(b *testing.B, n int) *gin.Engine {
	b.Helper()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	mem := storage.NewMemory()
	if err := mem.SaveQuotes(ctx, quoteList(n)); err != nil {
		b.Fatal(err)
	}

	store := app.NewQuoteStore(app.QuoteStoreConfig{Storage: mem, Logger: logger})
	if _, err := store.Initialize(ctx); err != nil {
		b.Fatal(err)
	}

	feed := notify.NewFeed(time.Minute, 50)
	quotes := app.NewQuoteService(app.QuoteServiceConfig{
		Store:    store,
		Storage:  mem,
		Remote:   nopRemote{},
		Session:  session.New(time.Minute),
		Notifier: feed,
		Logger:   logger,
	})
	syncer := app.NewSyncService(app.SyncServiceConfig{Store: store, Remote: nopRemote{}, Logger: logger})

	engine := gin.New()
	quotehttp.SetupRouter(engine, quotehttp.RouterConfig{
		Logger:        logger,
		ServiceName:   "quotegen",
		HealthHandler: setupHealthHandler(),
		QuoteHandler:  handlers.NewQuoteHandler(quotes),
		SyncHandler:   handlers.NewSyncHandler(syncer, quotes, feed),
		Timeout:       time.Second,
	})

	return engine
}

func serve(b *testing.B, engine *gin.Engine, method, path string) {
	b.Helper()

	req := httptest.NewRequest(method, path, http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", w.Code)
		}
	}
}

// setupHealthHandler creates a HealthHandler with a minimal registry for benchmarking.
func setupHealthHandler() *handlers.HealthHandler {
	registry := ports.NewHealthRegistry()
	buildInfo := handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z")
	return handlers.NewHealthHandler(registry, buildInfo)
}

// BenchmarkLivenessHandler measures the liveness probe without middleware.
func BenchmarkLivenessHandler(b *testing.B) {
	handler := setupHealthHandler()
	req := httptest.NewRequest(http.MethodGet, "/-/live", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		handler.Liveness(c)
	}
}

// BenchmarkReadinessHandler_WithChecks measures readiness with one critical
// and one optional check.
func BenchmarkReadinessHandler_WithChecks(b *testing.B) {
	registry := ports.NewHealthRegistry()
	_ = registry.Register(&simpleHealthChecker{name: "storage"})
	_ = registry.RegisterOptional(&simpleHealthChecker{name: "quote-api"})

	handler := handlers.NewHealthHandler(registry, handlers.NewBuildInfo("1.0.0", "abc123", "2024-01-01T00:00:00Z"))
	req := httptest.NewRequest(http.MethodGet, "/-/ready", http.NoBody)

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = req
		handler.Readiness(c)
	}
}

// BenchmarkRandomQuote measures the full chain for GET /quotes/random.
func BenchmarkRandomQuote(b *testing.B) {
	serve(b, setupRouter(b, 1000), http.MethodGet, "/api/v1/quotes/random")
}

// BenchmarkListByCategory measures filtering and paging a large list.
func BenchmarkListByCategory(b *testing.B) {
	serve(b, setupRouter(b, 1000), http.MethodGet, "/api/v1/quotes?category=Category%203&limit=50")
}

// BenchmarkCategories measures deriving the category set.
func BenchmarkCategories(b *testing.B) {
	serve(b, setupRouter(b, 1000), http.MethodGet, "/api/v1/categories")
}

// BenchmarkReconcile measures merging a remote batch into a local list.
func BenchmarkReconcile(b *testing.B) {
	for _, n := range []int{10, 100, 1000} {
		b.Run(fmt.Sprintf("local=%d", n), func(b *testing.B) {
			local := quoteList(n)
			remote := quoteList(10)
			for i := range remote {
				remote[i].Text += " (edited)"
			}

			b.ResetTimer()
			b.ReportAllocs()

			for i := 0; i < b.N; i++ {
				_ = domain.Reconcile(local, remote)
			}
		})
	}
}

// simpleHealthChecker is a minimal health checker for benchmarking.
type simpleHealthChecker struct {
	name string
}

func (s *simpleHealthChecker) Name() string {
	return s.name
}

func (s *simpleHealthChecker) Check(_ context.Context) error {
	return nil
}
