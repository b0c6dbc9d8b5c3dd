package period

import (
	"github.com/natthaphattoichatturat/payroll-system/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	periods := r.Group("/periods")
	periods.Use(middleware.AuthMiddleware())
	{
		periods.POST("", h.Create)
		periods.GET("", h.GetAll)
		periods.GET("/:id", h.GetByID)
	}
}
