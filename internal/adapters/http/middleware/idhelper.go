package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type idMiddlewareConfig struct {
	headerName string
	contextKey string

	// enrich tags the request context with the ID.
	enrich func(ctx context.Context, id string) context.Context
}

// createIDMiddleware takes the ID from the request header or generates a
// UUID, then exposes it on the gin context, the response and the request
// context.
func createIDMiddleware(cfg idMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(cfg.headerName)
		if id == "" {
			id = uuid.NewString()
		}

		c.Set(cfg.contextKey, id)
		c.Header(cfg.headerName, id)

		if cfg.enrich != nil {
			c.Request = c.Request.WithContext(cfg.enrich(c.Request.Context(), id))
		}

		c.Next()
	}
}

func getIDFromContext(c *gin.Context, key string) string {
	return c.GetString(key)
}
