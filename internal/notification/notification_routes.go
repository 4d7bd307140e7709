package notification

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
	notifications := r.Group("/notifications")
	notifications.Use(auth, middleware.RBACAuthorize(rbacService, "notification", "self"))
	{
		notifications.GET("", handler.List)
		notifications.GET("/unread-count", handler.UnreadCount)
		notifications.GET("/stream", handler.Stream)
		notifications.POST("/read-all", handler.MarkAllRead)
		notifications.POST("/:id/read", handler.MarkRead)
		notifications.POST("/push-tokens", handler.RegisterPushToken)
		notifications.DELETE("/push-tokens", handler.UnregisterPushToken)
	}
}
