package deduction

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	deductions := r.Group("/deductions")
	deductions.Use(middleware.AuthMiddleware())
	{
		deductions.GET("", middleware.RBACAuthorize(rbacService, "deduction", "read"), handler.GetAll)
		deductions.GET("/:id", middleware.RBACAuthorize(rbacService, "deduction", "read"), handler.GetByID)
		deductions.POST("", middleware.RBACAuthorize(rbacService, "deduction", "create"), handler.Create)
		deductions.PUT("/:id", middleware.RBACAuthorize(rbacService, "deduction", "update"), handler.Update)
		deductions.DELETE("/:id", middleware.RBACAuthorize(rbacService, "deduction", "delete"), handler.Delete)
	}
}
