package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotegen/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotegen/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotegen/internal/platform/config"
	"github.com/jsamuelsen/quotegen/internal/platform/telemetry"
)

// DefaultRequestTimeout applies when the configuration does not set one.
const DefaultRequestTimeout = 30 * time.Second

// APIPrefix is the route group of the quote API.
const APIPrefix = "/api/v1"

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName names the server spans and metrics.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler
	SyncHandler   *handlers.SyncHandler

	// Timeout is the deadline of every /api/v1 request. Zero disables it.
	Timeout time.Duration
}

// NewRouterConfig derives the router settings from the loaded configuration.
// Handlers are left for the caller to set.
func NewRouterConfig(cfg *config.Config, logger *slog.Logger) RouterConfig {
	timeout := cfg.Server.RequestTimeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	name := cfg.Telemetry.ServiceName
	if name == "" {
		name = cfg.App.Name
	}

	return RouterConfig{
		Logger:      logger,
		ServiceName: name,
		Timeout:     timeout,
	}
}

// SetupRouter installs middleware and routes on engine.
// Middleware order, first to last:
//  1. Recovery
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry tracing, then HTTP metrics and trace ID propagation
//  5. Logging (skips /-/ routes)
//
// The /api/v1 group additionally runs under the request timeout.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(cfg.ServiceName),
		middleware.Logging(cfg.Logger),
	)

	engine.NoRoute(notFound)
	engine.NoMethod(methodNotAllowed)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutesOnEngine(engine)
	}

	api := engine.Group(APIPrefix)
	if cfg.Timeout > 0 {
		api.Use(middleware.Timeout(cfg.Timeout))
	}

	if cfg.QuoteHandler != nil {
		cfg.QuoteHandler.RegisterQuoteRoutes(api)
	}

	if cfg.SyncHandler != nil {
		cfg.SyncHandler.RegisterSyncRoutes(api)
	}
}
