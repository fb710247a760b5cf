package employeecode

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/employee-codes", handler.Create)
	r.GET("/employee-codes", handler.GetAll)
	r.GET("/employee-codes/:employeeId", handler.GetByEmployeeID)
	r.PUT("/employee-codes/:employeeId", handler.Update)
	r.DELETE("/employee-codes/:employeeId", handler.Delete)
}
