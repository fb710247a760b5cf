package app

import (
	"hr-payroll/internal/auth"
	"hr-payroll/internal/client"
	"hr-payroll/internal/employee"
	"hr-payroll/internal/employeecode"
	"hr-payroll/internal/payslip"
	"hr-payroll/internal/shared/counter"
	"hr-payroll/internal/tds"
	"hr-payroll/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	gormDB *gorm.DB,
	rdb *redis.Client,
	jwtSecret string,
) error {
	// --- Repositories ---
	counterRepo := counter.NewRepository(gormDB)
	userRepo := user.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	payslipRepo := payslip.NewRepository(gormDB)
	clientRepo := client.NewRepository(gormDB)
	employeeCodeRepo := employeecode.NewRepository(gormDB)
	tdsRepo := tds.NewRepository(gormDB)

	// --- Services ---
	authService := auth.NewService(userRepo, jwtSecret)
	userService := user.NewService(userRepo)
	employeeService := employee.NewService(employeeRepo, counterRepo)
	payslipService := payslip.NewService(payslipRepo, counterRepo)
	clientService := client.NewService(clientRepo, counterRepo)
	employeeCodeService := employeecode.NewService(employeeCodeRepo, counterRepo)
	tdsService := tds.NewService(tdsRepo, counterRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	employeeHandler := employee.NewHandler(employeeService)
	payslipHandler := payslip.NewHandlerWithRedis(payslipService, rdb)
	clientHandler := client.NewHandler(clientService)
	employeeCodeHandler := employeecode.NewHandler(employeeCodeService)
	tdsHandler := tds.NewHandler(tdsService)

	// --- Routes Registration ---
	// The legacy API mounts everything at the root, no version prefix.
	root := router.Group("")
	{
		auth.RegisterRoutes(root, authHandler)
		user.RegisterRoutes(root, userHandler)
		employee.RegisterRoutes(root, employeeHandler)
		payslip.RegisterRoutes(root, payslipHandler, rdb)
		client.RegisterRoutes(root, clientHandler)
		employeecode.RegisterRoutes(root, employeeCodeHandler)
		tds.RegisterRoutes(root, tdsHandler)
	}

	return nil
}
