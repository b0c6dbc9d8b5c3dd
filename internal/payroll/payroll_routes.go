package payroll

import (
	"github.com/natthaphattoichatturat/payroll-system/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	payrolls := r.Group("/payroll")
	payrolls.Use(middleware.AuthMiddleware())
	{
		payrolls.POST("/calculate", middleware.Idempotency(rdb), h.Calculate)
		payrolls.GET("", h.GetAllByPeriod)
	}
}
