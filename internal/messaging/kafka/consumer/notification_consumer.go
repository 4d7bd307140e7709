package consumer

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"aakb-wms/internal/events"
	"aakb-wms/internal/notification"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const maxDeliverAttempts = 3

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// ConsumeNotificationRequested fans notification events out to recipients
// until ctx is cancelled. Undecodable or invalid events are committed and
// skipped; store failures are retried before the offset moves on.
func ConsumeNotificationRequested(
	ctx context.Context,
	reader MessageReader,
	service notification.Service,
	logger *zap.Logger,
	backoff time.Duration,
) {
	log := logger.Named("kafka.consumer.notification")
	log.Info("notification consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification consumer stopped")
				return
			}
			log.Error("fetch notification message failed", zap.Error(err))
			continue
		}

		handleMessage(ctx, msg, service, log, backoff)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification message failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		}
	}
}

func handleMessage(ctx context.Context, msg kafkago.Message, service notification.Service, log *zap.Logger, backoff time.Duration) {
	var event events.NotificationRequestedEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode notification event failed", zap.Int64("offset", msg.Offset), zap.Error(err))
		return
	}
	if event.EventType != events.NotificationRequestedEventType {
		log.Warn("skip unexpected event type", zap.String("event_type", event.EventType))
		return
	}

	ctx = contextutil.WithRequestID(ctx, event.RequestID)
	message := notification.Message{
		RecipientIDs:   event.RecipientIDs,
		RecipientRoles: event.RecipientRoles,
		Title:          event.Title,
		Body:           event.Body,
		Data:           event.Data,
	}

	for attempt := 1; attempt <= maxDeliverAttempts; attempt++ {
		delivered, err := service.Deliver(ctx, message)
		if err == nil {
			log.Info("notification event delivered",
				zap.String("request_id", event.RequestID),
				zap.String("title", event.Title),
				zap.Int("recipients", delivered),
			)
			return
		}
		if appErr, ok := apperror.As(err); ok && appErr.HTTPStatus < http.StatusInternalServerError {
			log.Warn("drop invalid notification event",
				zap.String("request_id", event.RequestID),
				zap.String("code", appErr.Code),
			)
			return
		}

		log.Error("deliver notification failed",
			zap.String("request_id", event.RequestID),
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt == maxDeliverAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(backoff * time.Duration(attempt)):
		}
	}

	log.Error("notification event dropped after retries",
		zap.String("request_id", event.RequestID),
		zap.String("title", event.Title),
	)
}
