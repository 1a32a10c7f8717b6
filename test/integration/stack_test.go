//go:build integration

package integration

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	quotehttp "github.com/jsamuelsen/quotegen/internal/adapters/http"
	"github.com/jsamuelsen/quotegen/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotegen/internal/cli"
	"github.com/jsamuelsen/quotegen/internal/platform/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// post is a record of the fake JSONPlaceholder-style collection.
type post struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Body   string `json:"body"`
	UserID int    `json:"userId"`
}

// fakeRemote serves GET and POST on /posts.
type fakeRemote struct {
	mu      sync.Mutex
	posts   []post
	nextID  int
	status  atomic.Int32
	delay   atomic.Int64
	gets    atomic.Int64
	submits atomic.Int64
	headers []http.Header
}

func newFakeRemote(posts ...post) *fakeRemote {
	return &fakeRemote{posts: posts, nextID: 100}
}

// failWith makes every request answer status. Zero restores normal behavior.
func (f *fakeRemote) failWith(status int) {
	f.status.Store(int32(status))
}

func (f *fakeRemote) slowDown(d time.Duration) {
	f.delay.Store(int64(d))
}

func (f *fakeRemote) seenHeaders() []http.Header {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]http.Header(nil), f.headers...)
}

func (f *fakeRemote) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.headers = append(f.headers, r.Header.Clone())
	f.mu.Unlock()

	if d := time.Duration(f.delay.Load()); d > 0 {
		select {
		case <-time.After(d):
		case <-r.Context().Done():
			return
		}
	}

	if status := int(f.status.Load()); status != 0 {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.URL.Path != "/posts":
		w.WriteHeader(http.StatusNotFound)
	case r.Method == http.MethodGet:
		f.gets.Add(1)

		f.mu.Lock()
		defer f.mu.Unlock()

		_ = json.NewEncoder(w).Encode(f.posts)
	case r.Method == http.MethodPost:
		f.submits.Add(1)

		var p post
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		f.mu.Lock()
		f.nextID++
		p.ID = f.nextID
		f.mu.Unlock()

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(p)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// stack is the full application served in-process.
type stack struct {
	remote    *fakeRemote
	remoteSrv *httptest.Server
	runtime   *cli.Runtime
	server    *httptest.Server
	registry  *prometheus.Registry
}

// startStack wires storage, services and the router the way "quotegen serve"
// does, against an in-memory store and a fake remote.
func startStack(ctx context.Context, remote *fakeRemote, mutate func(*config.Config)) (*stack, error) {
	remoteSrv := httptest.NewServer(remote)

	cfg, err := config.LoadFrom("testdata", "")
	if err != nil {
		remoteSrv.Close()
		return nil, err
	}

	cfg.Storage.Driver = config.DriverMemory
	cfg.Remote.BaseURL = remoteSrv.URL
	cfg.Sync.Timeout = 2 * time.Second
	cfg.Client.Timeout = 2 * time.Second

	if mutate != nil {
		mutate(cfg)
	}

	if err := cfg.Validate(); err != nil {
		remoteSrv.Close()
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	registry := prometheus.NewRegistry()

	rt, err := cli.Wire(ctx, cfg, cli.WireOptions{Logger: logger, Registerer: registry})
	if err != nil {
		remoteSrv.Close()
		return nil, err
	}

	routerCfg := quotehttp.NewRouterConfig(cfg, logger)
	routerCfg.HealthHandler = handlers.NewHealthHandler(rt.Health, handlers.NewBuildInfo("test", "none", "now")).
		WithGatherer(registry)
	routerCfg.QuoteHandler = handlers.NewQuoteHandler(rt.Quotes)
	routerCfg.SyncHandler = handlers.NewSyncHandler(rt.Sync, rt.Quotes, rt.Feed)

	engine := gin.New()
	quotehttp.SetupRouter(engine, routerCfg)

	return &stack{
		remote:    remote,
		remoteSrv: remoteSrv,
		runtime:   rt,
		server:    httptest.NewServer(engine),
		registry:  registry,
	}, nil
}

func (s *stack) URL() string {
	return s.server.URL
}

func (s *stack) Close() {
	s.server.Close()
	s.remoteSrv.Close()
	_ = s.runtime.Close()
}
