package app

import (
	"database/sql"

	"github.com/natthaphattoichatturat/payroll-system/internal/attendance"
	"github.com/natthaphattoichatturat/payroll-system/internal/employee"
	"github.com/natthaphattoichatturat/payroll-system/internal/leave"
	"github.com/natthaphattoichatturat/payroll-system/internal/messaging/kafka"
	"github.com/natthaphattoichatturat/payroll-system/internal/middleware"
	"github.com/natthaphattoichatturat/payroll-system/internal/payroll"
	"github.com/natthaphattoichatturat/payroll-system/internal/period"
	"github.com/natthaphattoichatturat/payroll-system/internal/scan"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)
	periodRepo := period.NewRepository(gormDB)
	scanRepo := scan.NewRepository(gormDB)

	// --- Services ---
	attendanceService := attendance.NewServiceWithOutbox(db, attendanceRepo, outboxRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	leaveService := leave.NewService(db, leaveRepo)
	payrollService := payroll.NewService(db, payrollRepo)
	periodService := period.NewService(db, periodRepo)
	scanService := scan.NewService(db, scanRepo, employeeService)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	employeeHandler := employee.NewHandler(employeeService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	payrollHandler := payroll.NewHandlerWithRedis(payrollService, rdb)
	periodHandler := period.NewHandler(periodService)
	scanHandler := scan.NewHandlerWithRedis(scanService, rdb)

	router.Use(middleware.RequestID())

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RateLimitByIP(rate.Limit(50), 100))
	{
		attendance.RegisterRoutes(api, attendanceHandler, rdb)
		employee.RegisterRoutes(api, employeeHandler)
		leave.RegisterRoutes(api, leaveHandler, rdb)
		payroll.RegisterRoutes(api, payrollHandler, rdb)
		period.RegisterRoutes(api, periodHandler)
		scan.RegisterRoutes(api, scanHandler, rdb)
	}

	return nil
}
