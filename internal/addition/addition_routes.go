package addition

import (
	"go-payroll/internal/middleware"
	"go-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	additions := r.Group("/additions")
	additions.Use(middleware.AuthMiddleware())
	{
		additions.GET("", middleware.RBACAuthorize(rbacService, "addition", "read"), handler.GetAll)
		additions.GET("/:id", middleware.RBACAuthorize(rbacService, "addition", "read"), handler.GetByID)
		additions.POST("", middleware.RBACAuthorize(rbacService, "addition", "create"), handler.Create)
		additions.PUT("/:id", middleware.RBACAuthorize(rbacService, "addition", "update"), handler.Update)
		additions.DELETE("/:id", middleware.RBACAuthorize(rbacService, "addition", "delete"), handler.Delete)
	}
}
