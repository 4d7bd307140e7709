package consumer_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"aakb-wms/internal/domain"
	"aakb-wms/internal/events"
	"aakb-wms/internal/messaging/kafka/consumer"
	"aakb-wms/internal/notification"
	notificationerrors "aakb-wms/internal/notification/errors"
	notificationMock "aakb-wms/internal/notification/mock"
	"aakb-wms/internal/shared/apperror"
	"aakb-wms/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

// fakeReader serves queued messages, then blocks until ctx ends.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafkago.Message
	committed []int64
	drained   chan struct{}
}

func newFakeReader(msgs ...kafkago.Message) *fakeReader {
	return &fakeReader{queue: msgs, drained: make(chan struct{})}
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafkago.Message, error) {
	r.mu.Lock()
	if len(r.queue) > 0 {
		m := r.queue[0]
		r.queue = r.queue[1:]
		r.mu.Unlock()
		return m, nil
	}
	r.mu.Unlock()
	<-ctx.Done()
	return kafkago.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafkago.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	if len(r.queue) == 0 {
		select {
		case <-r.drained:
		default:
			close(r.drained)
		}
	}
	return nil
}

func eventMessage(t *testing.T, offset int64, ev events.NotificationRequestedEvent) kafkago.Message {
	t.Helper()
	b, err := json.Marshal(ev)
	assert.NoError(t, err)
	return kafkago.Message{Offset: offset, Value: b}
}

func run(t *testing.T, reader *fakeReader, svc notification.Service) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		consumer.ConsumeNotificationRequested(ctx, reader, svc, zap.NewNop(), time.Millisecond)
		close(done)
	}()

	select {
	case <-reader.drained:
	case <-time.After(2 * time.Second):
		t.Fatal("consumer did not drain")
	}
	cancel()
	<-done
}

func TestConsumeNotificationRequested(t *testing.T) {
	t.Run("delivers and commits", func(t *testing.T) {
		svc := notificationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Deliver(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, msg notification.Message) (int, error) {
			assert.Equal(t, "req-7", contextutil.GetRequestID(ctx))
			assert.Equal(t, domain.OverseerRoles, msg.RecipientRoles)
			assert.Equal(t, "Day started", msg.Title)
			return 2, nil
		})

		reader := newFakeReader(eventMessage(t, 1, events.NotificationRequestedEvent{
			EventType:      events.NotificationRequestedEventType,
			RequestID:      "req-7",
			RecipientRoles: domain.OverseerRoles,
			Title:          "Day started",
		}))
		run(t, reader, svc)
		assert.Equal(t, []int64{1}, reader.committed)
	})

	t.Run("malformed payload is skipped", func(t *testing.T) {
		svc := notificationMock.NewMockService(gomock.NewController(t))
		reader := newFakeReader(kafkago.Message{Offset: 3, Value: []byte("{not json")})
		run(t, reader, svc)
		assert.Equal(t, []int64{3}, reader.committed)
	})

	t.Run("invalid message is not retried", func(t *testing.T) {
		svc := notificationMock.NewMockService(gomock.NewController(t))
		svc.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(0, notificationerrors.ErrInvalidMessage).Times(1)

		reader := newFakeReader(eventMessage(t, 4, events.NotificationRequestedEvent{
			EventType: events.NotificationRequestedEventType,
		}))
		run(t, reader, svc)
		assert.Equal(t, []int64{4}, reader.committed)
	})

	t.Run("store failure retries", func(t *testing.T) {
		svc := notificationMock.NewMockService(gomock.NewController(t))
		gomock.InOrder(
			svc.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(0, apperror.StoreUnavailable(errors.New("db down"))),
			svc.EXPECT().Deliver(gomock.Any(), gomock.Any()).Return(1, nil),
		)

		reader := newFakeReader(eventMessage(t, 5, events.NotificationRequestedEvent{
			EventType:    events.NotificationRequestedEventType,
			RecipientIDs: []string{"6f1c2d4e-8a3b-4c5d-9e7f-0a1b2c3d4e5f"},
			Title:        "Leave approved",
		}))
		run(t, reader, svc)
		assert.Equal(t, []int64{5}, reader.committed)
	})
}
