package attendance

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const approvalChannelPrefix = "attendance:approval:"

func ApprovalChannelName(workerID string) string {
	return approvalChannelPrefix + workerID
}

type redisApprovalChannel struct {
	rdb    *redis.Client
	logger *zap.Logger
}

func NewRedisApprovalChannel(rdb *redis.Client, logger ...*zap.Logger) ApprovalChannel {
	l := zap.L().Named("attendance.realtime")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.realtime")
	}
	return &redisApprovalChannel{rdb: rdb, logger: l}
}

func (c *redisApprovalChannel) Publish(ctx context.Context, ev ApprovalEvent) error {
	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal approval event: %w", err)
	}
	return c.rdb.Publish(ctx, ApprovalChannelName(ev.WorkerID), payload).Err()
}

// Subscribe streams decisions for workerID until ctx ends or the returned
// cancel func is called.
func (c *redisApprovalChannel) Subscribe(ctx context.Context, workerID string) (<-chan ApprovalEvent, func(), error) {
	sub := c.rdb.Subscribe(ctx, ApprovalChannelName(workerID))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("subscribe approval channel: %w", err)
	}

	out := make(chan ApprovalEvent, 1)
	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var ev ApprovalEvent
			if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
				c.logger.Warn("drop malformed approval event", zap.String("worker_id", workerID), zap.Error(err))
				continue
			}
			select {
			case out <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, func() { _ = sub.Close() }, nil
}
