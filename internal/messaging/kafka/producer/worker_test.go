package producer_test

import (
	"context"
	"errors"
	"testing"

	"aakb-wms/internal/messaging/kafka"
	kafkaMock "aakb-wms/internal/messaging/kafka/mock"
	"aakb-wms/internal/messaging/kafka/producer"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type fakeWriter struct {
	written []kafkago.Message
	failFor map[string]error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	for _, m := range msgs {
		if err := w.failFor[string(m.Key)]; err != nil {
			return err
		}
		w.written = append(w.written, m)
	}
	return nil
}

func header(m kafkago.Message, key string) string {
	for _, h := range m.Headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

func TestProcessPendingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("relays and marks sent", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		writer := &fakeWriter{}

		repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
			{ID: "e-1", RequestID: "req-1", AggregateID: "w-1", EventType: "notification_requested", Topic: "t", Payload: []byte("{}")},
			{ID: "e-2", AggregateID: "role:admin", EventType: "notification_requested", Topic: "t", Payload: []byte("{}")},
		}, nil)
		repo.EXPECT().MarkSent(gomock.Any(), "e-1").Return(nil)
		repo.EXPECT().MarkSent(gomock.Any(), "e-2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 2, sent)
		require.Len(t, writer.written, 2)
		assert.Equal(t, "w-1", string(writer.written[0].Key))
		assert.Equal(t, "req-1", header(writer.written[0], "request_id"))
		assert.Equal(t, "", header(writer.written[1], "request_id"))
		assert.Equal(t, "e-2", header(writer.written[1], "outbox_id"))
	})

	t.Run("failed publish schedules retry and continues", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		writer := &fakeWriter{failFor: map[string]error{"w-1": errors.New("leader not available")}}

		repo.EXPECT().ListPending(gomock.Any(), 50).Return([]kafka.OutboxEvent{
			{ID: "e-1", AggregateID: "w-1", Topic: "t", Payload: []byte("{}")},
			{ID: "e-2", AggregateID: "w-2", Topic: "t", Payload: []byte("{}")},
		}, nil)
		repo.EXPECT().MarkFailed(gomock.Any(), "e-1", "leader not available").Return(nil)
		repo.EXPECT().MarkSent(gomock.Any(), "e-2").Return(nil)

		sent, err := producer.ProcessPendingEvents(ctx, repo, writer, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("list failure", func(t *testing.T) {
		repo := kafkaMock.NewMockOutboxRepository(gomock.NewController(t))
		repo.EXPECT().ListPending(gomock.Any(), 50).Return(nil, errors.New("db down"))

		_, err := producer.ProcessPendingEvents(ctx, repo, &fakeWriter{}, zap.NewNop())
		assert.Error(t, err)
	})
}
