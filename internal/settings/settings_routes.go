package settings

import (
	"aakb-wms/internal/middleware"
	"aakb-wms/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, auth gin.HandlerFunc) {
	g := r.Group("/settings")
	g.Use(auth)
	{
		g.GET("/kiosk", middleware.RBACAuthorize(rbacService, "attendance", "self"), h.KioskStatus)
		g.POST("/kiosk", middleware.RBACAuthorize(rbacService, "settings", "manage"), h.RegisterKiosk)
		g.DELETE("/kiosk", middleware.RBACAuthorize(rbacService, "settings", "manage"), h.ClearKiosk)

		g.GET("", middleware.RBACAuthorize(rbacService, "settings", "manage"), h.List)
		g.PUT("/:key", middleware.RBACAuthorize(rbacService, "settings", "manage"), h.Update)
	}
}
