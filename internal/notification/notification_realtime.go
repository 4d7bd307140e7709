package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const channelPrefix = "notifications:"

func ChannelName(profileID string) string {
	return channelPrefix + profileID
}

// Broadcaster pushes delivered notifications to connected clients.
//
//go:generate mockgen -source=notification_realtime.go -destination=mock/notification_realtime_mock.go -package=mock
type Broadcaster interface {
	Publish(ctx context.Context, profileID string, n NotificationResponse) error
	Subscribe(ctx context.Context, profileID string) (<-chan NotificationResponse, func(), error)
}

type redisBroadcaster struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisBroadcaster(rdb *redis.Client, logger ...*zap.Logger) Broadcaster {
	l := zap.L().Named("notification.realtime")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.realtime")
	}
	return &redisBroadcaster{rdb: rdb, logger: l}
}

func (b *redisBroadcaster) Publish(ctx context.Context, profileID string, n NotificationResponse) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}
	return b.rdb.Publish(ctx, ChannelName(profileID), payload).Err()
}

func (b *redisBroadcaster) Subscribe(ctx context.Context, profileID string) (<-chan NotificationResponse, func(), error) {
	sub := b.rdb.Subscribe(ctx, ChannelName(profileID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("subscribe notification channel: %w", err)
	}

	out := make(chan NotificationResponse, 8)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var n NotificationResponse
			if err := json.Unmarshal([]byte(msg.Payload), &n); err != nil {
				b.logger.Warn("drop malformed notification", zap.String("profile_id", profileID), zap.Error(err))
				continue
			}
			select {
			case out <- n:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = sub.Close() }, nil
}
