package employee

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.POST("/employees", handler.Create)
	r.GET("/employees", handler.GetAll)
	r.GET("/employees/:employeeId", handler.GetByID)
	r.PUT("/employees/:employeeId", handler.Update)
	r.DELETE("/employees/:employeeId", handler.Delete)

	r.GET("/total-employees", handler.Count)
	r.GET("/total-salary-spent", handler.TotalSalary)
}
