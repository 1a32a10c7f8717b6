package middleware

import "github.com/gin-gonic/gin"

const (
	// HeaderCorrelationID spans a whole transaction across services, unlike
	// the per-request X-Request-ID.
	HeaderCorrelationID = "X-Correlation-ID"

	// ContextKeyCorrelationID is the gin context key of the correlation ID.
	ContextKeyCorrelationID = "correlation_id"
)

// CorrelationID returns middleware that propagates X-Correlation-ID, starting
// a new transaction when the caller did not send one.
func CorrelationID() gin.HandlerFunc {
	return createIDMiddleware(idMiddlewareConfig{
		headerName: HeaderCorrelationID,
		contextKey: ContextKeyCorrelationID,
		enrich:     WithCorrelation,
	})
}

// GetCorrelationID returns the correlation ID of c, or "".
func GetCorrelationID(c *gin.Context) string {
	return getIDFromContext(c, ContextKeyCorrelationID)
}
