package app

import (
	"fmt"
	"os"

	"hr-payroll/internal/client"
	"hr-payroll/internal/employee"
	"hr-payroll/internal/employeecode"
	"hr-payroll/internal/middleware"
	"hr-payroll/internal/payslip"
	"hr-payroll/internal/shared/connection"
	"hr-payroll/internal/shared/counter"
	"hr-payroll/internal/tds"
	"hr-payroll/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildApp(router *gin.Engine) error {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return fmt.Errorf("connect postgres: %w", err)
	}
	logger.Info("database connection established")

	if err := migrate(db); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	logger.Info("redis connection established")

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}

	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// Register Modules & Routes
	return registerModules(router, db, redisClient, jwtSecret)
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&counter.EntityCounter{},
		&user.User{},
		&employee.Employee{},
		&payslip.Payslip{},
		&client.Client{},
		&employeecode.EmployeeCode{},
		&tds.TDSRecord{},
	)
}
