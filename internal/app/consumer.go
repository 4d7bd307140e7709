package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aakb-wms/internal/config"
	"aakb-wms/internal/messaging/kafka/consumer"
	"aakb-wms/internal/notification"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const consumerRetryBackoff = 2 * time.Second

// RunConsumer stores and broadcasts requested notifications until SIGINT or
// SIGTERM.
func RunConsumer(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.consumer")

	gormDB, sqlDB, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	rdb, err := openRedis(cfg, logger)
	if err != nil {
		return err
	}
	defer rdb.Close()

	notificationService := notification.NewService(
		sqlDB,
		notification.NewRepository(gormDB),
		notification.NewRedisBroadcaster(rdb, logger),
		logger,
	)

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:        cfg.Kafka.Brokers,
		Topic:          cfg.Notification.Topic,
		GroupID:        cfg.Notification.ConsumerGroup,
		CommitInterval: 0,
		StartOffset:    kafkago.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	consumer.ConsumeNotificationRequested(ctx, reader, notificationService, logger, consumerRetryBackoff)

	log.Info("consumer shutting down")
	return nil
}
