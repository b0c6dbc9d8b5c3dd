package attendance

import (
	"github.com/natthaphattoichatturat/payroll-system/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	attendances := r.Group("/attendance")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.POST("/calculate", middleware.Idempotency(rdb), h.Calculate)
		attendances.GET("/daily", h.GetAllByPeriod)
		attendances.GET("/daily/:employee_id", h.GetByEmployee)
	}
}
