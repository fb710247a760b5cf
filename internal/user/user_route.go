package user

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/users", handler.GetAll)
	r.POST("/users", handler.Register)
	r.DELETE("/users", handler.Delete)
	r.GET("/total-users", handler.Count)
}
