package report

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
	reports := r.Group("/reports")
	reports.Use(auth, middleware.RBACAuthorize(rbacService, "report", "read"))
	{
		reports.GET("/roster", handler.Roster)
		reports.GET("/attendance.xlsx", handler.ExportAttendance)
	}
}
