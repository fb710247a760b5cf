package auth

import (
	"hr-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/login",
		middleware.RateLimitByIP(1, 5),
		handler.Login,
	)
}
