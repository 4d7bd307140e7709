package auth

import (
	"aakb-wms/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	g := r.Group("/auth")
	{
		g.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		g.POST("/refresh", middleware.RateLimitByIP(0.5, 5), handler.RefreshToken)
		g.POST("/logout", handler.Logout)
		g.GET("/me", auth, middleware.RateLimitByUser(2, 5), handler.Me)
		g.POST("/password", auth, middleware.RateLimitByUser(0.1, 3), handler.ChangePassword)
	}
}
