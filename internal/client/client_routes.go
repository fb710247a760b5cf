package client

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/clients", handler.Create)
	r.GET("/clients", handler.GetAll)
	r.GET("/clients/:clientId", handler.GetByID)
	r.PUT("/clients/:clientId", handler.Update)
	r.DELETE("/clients/:clientId", handler.Delete)

	r.GET("/total-clients", handler.Count)
}
