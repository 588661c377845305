package additiontype

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	types := r.Group("/addition-types")
	types.Use(middleware.AuthMiddleware())
	{
		types.GET("", middleware.RBACAuthorize(rbacService, "addition-type", "read"), handler.GetAll)
		types.GET("/:id", middleware.RBACAuthorize(rbacService, "addition-type", "read"), handler.GetByID)
		types.POST("", middleware.RBACAuthorize(rbacService, "addition-type", "create"), handler.Create)
		types.PUT("/:id", middleware.RBACAuthorize(rbacService, "addition-type", "update"), handler.Update)
		types.DELETE("/:id", middleware.RBACAuthorize(rbacService, "addition-type", "delete"), handler.Delete)
	}
}
