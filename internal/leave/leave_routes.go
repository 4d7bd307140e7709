package leave

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
	leaves := r.Group("/leaves")
	leaves.Use(auth)
	{
		leaves.GET("/me", middleware.RBACAuthorize(rbacService, "leave", "self"), handler.Mine)
		leaves.POST("", middleware.RBACAuthorize(rbacService, "leave", "self"), handler.Create)
		leaves.POST("/:id/cancel", middleware.RBACAuthorize(rbacService, "leave", "self"), handler.Cancel)

		leaves.GET("", middleware.RBACAuthorize(rbacService, "leave", "read_all"), handler.GetAll)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read_all"), handler.GetByID)

		leaves.POST("/:id/approve", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Approve)
		leaves.POST("/:id/reject", middleware.RBACAuthorize(rbacService, "leave", "approve"), handler.Reject)
	}
}
