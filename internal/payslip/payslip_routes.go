package payslip

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service, rdb *redis.Client, logger *zap.Logger) {
	payslips := r.Group("/payslips")
	payslips.Use(middleware.AuthMiddleware())
	payslips.Use(middleware.ContextLogger(logger))
	{
		payslips.GET("", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetAll)
		payslips.GET("/:id", middleware.RBACAuthorize(rbacService, "payslip", "read"), handler.GetByID)
		payslips.POST("",
			middleware.RBACAuthorize(rbacService, "payslip", "create"),
			middleware.Idempotency(rdb),
			handler.Generate,
		)
		payslips.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "payslip", "update"), handler.UpdateStatus)
		payslips.DELETE("/:id", middleware.RBACAuthorize(rbacService, "payslip", "delete"), handler.Delete)
	}
}
