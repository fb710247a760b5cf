package tds

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/tds", handler.Create)
	r.GET("/tds", handler.GetAll)
	r.PUT("/tds/:tdsId", handler.Update)
	r.DELETE("/tds/:tdsId", handler.Delete)
}
