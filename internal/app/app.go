package app

import (
	"database/sql"
	"fmt"

	"aakb-wms/internal/config"
	"aakb-wms/internal/shared/connection"
	"aakb-wms/internal/shared/database"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const redisMaxRetries = 5

// BuildApp connects the stores, applies migrations and mounts every module on
// router. The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config, logger *zap.Logger) (func(), error) {
	gormDB, sqlDB, err := openDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	rdb, err := openRedis(cfg, logger)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = rdb.Close()
		_ = sqlDB.Close()
	}

	if err := registerModules(router, cfg, sqlDB, gormDB, rdb, logger); err != nil {
		cleanup()
		return nil, err
	}
	return cleanup, nil
}

func openDatabase(cfg *config.Config, logger *zap.Logger) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, logger)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}

	if cfg.Database.AutoMigrate {
		if err := database.RunMigrations(sqlDB, logger); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
	}
	return gormDB, sqlDB, nil
}

func openRedis(cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	return connection.ConnectRedisWithRetry(cfg.Redis, redisMaxRetries, logger)
}
