package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"aakb-wms/internal/config"
	"aakb-wms/internal/messaging/kafka"
	"aakb-wms/internal/messaging/kafka/producer"
	"aakb-wms/internal/shared/connection"

	"go.uber.org/zap"
)

const kafkaMaxRetries = 5

// RunWorker relays the notification outbox to Kafka until SIGINT or SIGTERM.
func RunWorker(cfg *config.Config, logger *zap.Logger) error {
	log := logger.Named("app.worker")

	_, sqlDB, err := openDatabase(cfg, logger)
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	kafkaWriter, err := connection.ConnectKafkaWithRetry(cfg.Kafka, kafkaMaxRetries, logger)
	if err != nil {
		return err
	}
	defer kafkaWriter.Close()

	outboxRepo := kafka.NewOutboxRepository(sqlDB)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	producer.ProcessOutboxEvents(ctx, outboxRepo, kafkaWriter, logger, cfg.Notification.PollInterval)

	log.Info("worker shutting down")
	return nil
}
