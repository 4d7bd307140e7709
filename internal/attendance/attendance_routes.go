package attendance

import (
	"aakb-wms/internal/middleware"
	"aakb-wms/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rbacService rbac.Service, auth gin.HandlerFunc, rdb *redis.Client) {
	self := middleware.RBACAuthorize(rbacService, "attendance", "self")
	readAll := middleware.RBACAuthorize(rbacService, "attendance", "read_all")

	startDay := []gin.HandlerFunc{self, middleware.RateLimitByUser(1, 3)}
	if rdb != nil {
		startDay = append(startDay, middleware.Idempotency(rdb))
	}
	startDay = append(startDay, h.StartDay)

	g := r.Group("/attendance")
	g.Use(auth)
	{
		g.GET("/today", self, h.Today)
		g.GET("/history", self, h.MyHistory)
		g.POST("/start-day", startDay...)
		g.POST("/mode", self, h.SwitchMode)
		g.POST("/early-exit", self, h.RequestEarlyExit)
		g.GET("/early-exit/watch", self, h.WatchApproval)
		g.POST("/end-day", self, h.EndDay)

		g.GET("", readAll, h.ListByDate)
		g.GET("/workers/:worker_id/history", readAll, h.WorkerHistory)
		g.POST("/early-exit/:id/approve", middleware.RBACAuthorize(rbacService, "attendance", "approve"), h.ApproveEarlyExit)
	}
}
