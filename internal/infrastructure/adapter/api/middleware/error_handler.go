package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	domainerr "github.com/texthub/bulksms-portal/internal/domain/error"
	coreport "github.com/texthub/bulksms-portal/internal/domain/port/core"
	"github.com/texthub/bulksms-portal/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler recovers from handler panics, logs the request context with
// the stack trace, and answers with the generic 500 shape so internals
// never leak to callers.
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logPanic(logger, c, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
					Message: "Internal server error",
				})
			}
		}()

		c.Next()
	}
}

func logPanic(logger coreport.Logger, c *gin.Context, r any) {
	logger.Error("Panic recovered in API request", map[string]any{
		"error":      fmt.Sprintf("%v", r),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
		"client_ip":  c.ClientIP(),
		"user_agent": c.Request.UserAgent(),
		"request_id": c.GetHeader("X-Request-ID"),
		"stack":      string(debug.Stack()),
	})
}
