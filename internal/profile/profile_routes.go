package profile

import (
	"aakb-wms/internal/middleware"
	"aakb-wms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, auth gin.HandlerFunc) {
	profiles := r.Group("/profiles")
	profiles.Use(auth)
	{
		profiles.GET("", middleware.RBACAuthorize(rbacService, "profile", "read"), h.GetAll)
		profiles.GET("/:id", middleware.RBACAuthorize(rbacService, "profile", "read"), h.GetByID)
		profiles.POST("/invite",
			middleware.RateLimitByUser(0.2, 3),
			middleware.RBACAuthorize(rbacService, "profile", "manage"),
			h.Invite,
		)
		profiles.PATCH("/:id", middleware.RBACAuthorize(rbacService, "profile", "manage"), h.Update)
		profiles.DELETE("/:id", middleware.RBACAuthorize(rbacService, "profile", "manage"), h.Delete)
	}
}
