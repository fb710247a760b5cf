package middleware

import (
	"hr-payroll/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger, pre-tagged with the
// request id, so services and repos can log without knowing about Gin.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
		)

		ctx := contextutil.WithLogger(c.Request.Context(), reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
