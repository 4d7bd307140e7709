package notification

import (
	"context"
	"encoding/json"
	"time"

	"aakb-wms/internal/events"
	"aakb-wms/internal/messaging/kafka"
	notificationerrors "aakb-wms/internal/notification/errors"
	"aakb-wms/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const aggregateType = "notification"

type outboxSink struct {
	outbox kafka.OutboxRepository
	topic  string
	clock  func() time.Time
	logger *zap.Logger
}

// NewOutboxSink queues every notification as an outbox row; the worker relays
// it to topic and the consumer fans it out.
func NewOutboxSink(outbox kafka.OutboxRepository, topic string, logger ...*zap.Logger) Sink {
	l := zap.L().Named("notification.outbox")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.outbox")
	}
	if topic == "" {
		topic = events.NotificationRequestedTopic
	}
	return &outboxSink{outbox: outbox, topic: topic, clock: time.Now, logger: l}
}

func (s *outboxSink) Notify(ctx context.Context, msg Message) error {
	if msg.Title == "" || (len(msg.RecipientIDs) == 0 && len(msg.RecipientRoles) == 0) {
		return notificationerrors.ErrInvalidMessage
	}

	rid := contextutil.GetRequestID(ctx)
	payload, err := json.Marshal(events.NotificationRequestedEvent{
		EventType:      events.NotificationRequestedEventType,
		RequestID:      rid,
		RecipientIDs:   msg.RecipientIDs,
		RecipientRoles: msg.RecipientRoles,
		Title:          msg.Title,
		Body:           msg.Body,
		Data:           msg.Data,
		OccurredAt:     s.clock().UTC(),
	})
	if err != nil {
		return err
	}

	event := kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: aggregateType,
		AggregateID:   aggregateKey(msg),
		EventType:     events.NotificationRequestedEventType,
		Topic:         s.topic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	}
	if err := s.outbox.Create(ctx, event); err != nil {
		s.logger.Error("queue notification failed",
			zap.String("request_id", rid),
			zap.String("title", msg.Title),
			zap.Error(err),
		)
		return err
	}

	s.logger.Debug("notification queued",
		zap.String("request_id", rid),
		zap.String("outbox_id", event.ID),
		zap.String("title", msg.Title),
	)
	return nil
}

func aggregateKey(msg Message) string {
	if len(msg.RecipientIDs) > 0 {
		return msg.RecipientIDs[0]
	}
	return "role:" + msg.RecipientRoles[0]
}
