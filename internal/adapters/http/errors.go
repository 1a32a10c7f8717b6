package http

import (
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotegen/internal/adapters/http/dto"
)

// notFound answers unknown routes with the standard error envelope.
func notFound(c *gin.Context) {
	dto.RespondWithCode(c, dto.ErrorCodeNotFound, "no route for "+c.Request.Method+" "+c.Request.URL.Path)
}

// methodNotAllowed answers known paths hit with the wrong method.
func methodNotAllowed(c *gin.Context) {
	dto.RespondWithCode(c, dto.ErrorCodeMethod, c.Request.Method+" not allowed on "+c.Request.URL.Path)
}
