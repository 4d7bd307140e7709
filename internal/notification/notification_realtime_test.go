package notification_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"aakb-wms/internal/notification"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisBroadcaster_Publish(t *testing.T) {
	rdb, mock := redismock.NewClientMock()
	b := notification.NewRedisBroadcaster(rdb)

	n := notification.NotificationResponse{ID: "n-1", Title: "Task completed", CreatedAt: "2026-03-02T10:00:00Z"}
	payload, err := json.Marshal(n)
	require.NoError(t, err)

	mock.ExpectPublish("notifications:p-1", payload).SetVal(1)
	require.NoError(t, b.Publish(context.Background(), "p-1", n))

	mock.ExpectPublish("notifications:p-2", payload).SetErr(errors.New("redis gone"))
	assert.Error(t, b.Publish(context.Background(), "p-2", n))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "notifications:abc", notification.ChannelName("abc"))
}
