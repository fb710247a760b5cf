package payslip

import (
	"hr-payroll/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	upload := []gin.HandlerFunc{handler.Upload}
	if rdb != nil {
		upload = append([]gin.HandlerFunc{middleware.Idempotency(rdb)}, upload...)
	}
	r.POST("/payslip", upload...)

	r.GET("/payslips/:employeeId", handler.ListByEmployee)
	r.GET("/payslips/:employeeId/:payPeriod", handler.ListByEmployeeAndPeriod)
	r.DELETE("/payslips/:id", handler.Delete)
	r.GET("/payslip/download/:payslipId", handler.Download)

	r.GET("/count-by-month", handler.CountByMonth)
	r.GET("/total-payslips", handler.Count)
}
