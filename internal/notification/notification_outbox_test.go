package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"aakb-wms/internal/domain"
	"aakb-wms/internal/events"
	"aakb-wms/internal/messaging/kafka"
	kafkaMock "aakb-wms/internal/messaging/kafka/mock"
	"aakb-wms/internal/notification"
	notificationerrors "aakb-wms/internal/notification/errors"
	"aakb-wms/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOutboxSink_Notify(t *testing.T) {
	ctx := contextutil.WithRequestID(context.Background(), "req-42")

	t.Run("queues a role notification", func(t *testing.T) {
		outbox := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		sink := notification.NewOutboxSink(outbox, "")

		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.NotificationRequestedTopic, ev.Topic)
			assert.Equal(t, "role:"+domain.RoleSwamiji, ev.AggregateID)
			assert.Equal(t, "req-42", ev.RequestID)
			assert.Equal(t, kafka.OutboxStatusPending, ev.Status)
			assert.NoError(t, kafka.ValidateOutboxEvent(ev))

			var payload events.NotificationRequestedEvent
			require.NoError(t, json.Unmarshal(ev.Payload, &payload))
			assert.Equal(t, events.NotificationRequestedEventType, payload.EventType)
			assert.Equal(t, "Early exit requested", payload.Title)
			assert.Equal(t, "att-1", payload.Data["attendance_id"])
			return nil
		})

		err := sink.Notify(ctx, notification.Message{
			RecipientRoles: domain.OverseerRoles,
			Title:          "Early exit requested",
			Data:           map[string]any{"attendance_id": "att-1"},
		})
		require.NoError(t, err)
	})

	t.Run("direct recipient keys by id", func(t *testing.T) {
		outbox := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		sink := notification.NewOutboxSink(outbox, "custom.topic")

		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, "custom.topic", ev.Topic)
			assert.Equal(t, "w-1", ev.AggregateID)
			return nil
		})

		require.NoError(t, sink.Notify(ctx, notification.Message{RecipientIDs: []string{"w-1"}, Title: "x"}))
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		outbox := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		sink := notification.NewOutboxSink(outbox, "")
		outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("db down"))

		assert.Error(t, sink.Notify(ctx, notification.Message{RecipientIDs: []string{"w-1"}, Title: "x"}))
	})

	t.Run("no recipients", func(t *testing.T) {
		outbox := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		sink := notification.NewOutboxSink(outbox, "")

		assert.ErrorIs(t, sink.Notify(ctx, notification.Message{Title: "x"}), notificationerrors.ErrInvalidMessage)
	})
}
