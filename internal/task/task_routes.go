package task

import (
	"aakb-wms/internal/middleware"
	"aakb-wms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
) {
	tasks := r.Group("/tasks")
	tasks.Use(auth)
	{
		tasks.GET("/me", middleware.RBACAuthorize(rbacService, "task", "self"), handler.Mine)
		tasks.PATCH("/:id/status", middleware.RBACAuthorize(rbacService, "task", "self"), handler.UpdateStatus)

		tasks.GET("", middleware.RBACAuthorize(rbacService, "task", "assign"), handler.GetAll)
		tasks.GET("/:id", middleware.RBACAuthorize(rbacService, "task", "assign"), handler.GetByID)
		tasks.POST("", middleware.RBACAuthorize(rbacService, "task", "assign"), handler.Create)
		tasks.PUT("/:id", middleware.RBACAuthorize(rbacService, "task", "assign"), handler.Update)
		tasks.DELETE("/:id", middleware.RBACAuthorize(rbacService, "task", "assign"), handler.Delete)
	}
}
