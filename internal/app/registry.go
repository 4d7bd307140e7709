package app

import (
	"database/sql"
	"net/http"

	"aakb-wms/internal/attendance"
	"aakb-wms/internal/auth"
	"aakb-wms/internal/config"
	"aakb-wms/internal/holiday"
	"aakb-wms/internal/leave"
	"aakb-wms/internal/messaging/kafka"
	"aakb-wms/internal/middleware"
	"aakb-wms/internal/notification"
	"aakb-wms/internal/profile"
	"aakb-wms/internal/rbac"
	"aakb-wms/internal/rbac/infra"
	"aakb-wms/internal/report"
	"aakb-wms/internal/settings"
	"aakb-wms/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	logger *zap.Logger,
) error {
	policy, err := attendance.NewPolicy(cfg.Attendance)
	if err != nil {
		return err
	}

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	holidayRepo := holiday.NewRepository(gormDB)
	leaveRepo := leave.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	profileRepo := profile.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	settingsRepo := settings.NewRepository(gormDB)
	taskRepo := task.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return err
	}

	// --- Services ---
	notifier := notification.NewOutboxSink(outboxRepo, cfg.Notification.Topic, logger)
	settingsService := settings.NewService(settingsRepo, rdb, logger)

	attendanceService := attendance.NewService(db, attendanceRepo, attendance.Dependencies{
		Policy:    policy,
		Kiosk:     settingsService,
		Contacts:  settingsService,
		Notifier:  notifier,
		Approvals: attendance.NewRedisApprovalChannel(rdb, logger),
	}, logger)
	authService := auth.NewService(authRepo, auth.TokenConfig{
		Secret:     cfg.Auth.JWTSecret,
		AccessTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTTL: cfg.Auth.RefreshTokenTTL,
	}, logger)
	holidayService := holiday.NewService(db, holidayRepo, notifier, policy.Location, logger)
	leaveService := leave.NewService(db, leaveRepo, notifier, logger)
	notificationService := notification.NewService(db, notificationRepo, notification.NewRedisBroadcaster(rdb, logger), logger)
	profileService := profile.NewService(profileRepo, logger)
	reportService := report.NewService(reportRepo, policy, logger)
	taskService := task.NewService(db, taskRepo, notifier, logger)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	authHandler := auth.NewHandler(authService, auth.CookieConfig{
		Secure:     cfg.Auth.CookieSecure,
		AccessTTL:  cfg.Auth.AccessTokenTTL,
		RefreshTTL: cfg.Auth.RefreshTokenTTL,
	}, logger)
	holidayHandler := holiday.NewHandler(holidayService, logger)
	leaveHandler := leave.NewHandler(leaveService, logger)
	notificationHandler := notification.NewHandler(notificationService, logger)
	profileHandler := profile.NewHandler(profileService, logger)
	rbacHandler := rbac.NewHandler(rbacService, logger)
	reportHandler := report.NewHandler(reportService, logger)
	settingsHandler := settings.NewHandler(settingsService)
	taskHandler := task.NewHandler(taskService, logger)

	authMW := middleware.AuthMiddleware(cfg.Auth.JWTSecret)

	router.GET("/healthz", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		attendance.RegisterRoutes(api, attendanceHandler, rbacService, authMW, rdb)
		holiday.RegisterRoutes(api, holidayHandler, rbacService, authMW)
		leave.RegisterRoutes(api, leaveHandler, rbacService, authMW)
		notification.RegisterRoutes(api, notificationHandler, rbacService, authMW)
		profile.RegisterRoutes(api, profileHandler, rbacService, authMW)
		rbac.RegisterRoutes(api, rbacHandler, authMW)
		report.RegisterRoutes(api, reportHandler, rbacService, authMW)
		settings.RegisterRoutes(api, settingsHandler, rbacService, authMW)
		task.RegisterRoutes(api, taskHandler, rbacService, authMW)
	}

	logger.Info("modules registered", zap.String("timezone", policy.Location.String()))
	return nil
}
