package scan

import (
	"github.com/natthaphattoichatturat/payroll-system/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	scans := r.Group("/scans")
	scans.Use(middleware.AuthMiddleware())
	{
		scans.POST("/import", middleware.Idempotency(rdb), h.Import)
		scans.GET("", h.GetAll)
	}
}
