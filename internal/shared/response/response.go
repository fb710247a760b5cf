package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hr-payroll/internal/shared/apperror"
	"hr-payroll/internal/shared/contextutil"
)

// The dashboard consumes the payloads of the legacy API verbatim, so
// success bodies are written as-is and every failure is a JSON object
// with a message field.

func JSON(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// Error writes the mapped failure body. Server-side failures are logged
// with the request-scoped logger; the cause stays out of the response.
func Error(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)

	if httpErr.Status >= http.StatusInternalServerError {
		contextutil.GetLogger(c.Request.Context(), zap.L()).Error("request failed",
			zap.String("code", httpErr.Code),
			zap.Int("status", httpErr.Status),
			zap.Error(err),
		)
	}

	c.JSON(httpErr.Status, gin.H{"message": httpErr.Message})
}
