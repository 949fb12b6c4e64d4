package persistent

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"itinera/pkg/cache"
	"itinera/services/notification/internal/entity"

	"github.com/redis/go-redis/v9"
)

const (
	InboxSize = 100
	InboxTTL  = 30 * 24 * time.Hour
)

// Inbox keeps the newest notifications per user and fans them out live.
type Inbox interface {
	Push(ctx context.Context, n *entity.Notification) error
	List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error)
}

type redisInbox struct {
	client *redis.Client
}

func NewRedisInbox(client *redis.Client) Inbox {
	return &redisInbox{client: client}
}

func (i *redisInbox) Push(ctx context.Context, n *entity.Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	key := cache.NotificationsKey(n.UserID)
	_, err = i.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.LPush(ctx, key, payload)
		pipe.LTrim(ctx, key, 0, InboxSize-1)
		pipe.Expire(ctx, key, InboxTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to store notification: %w", err)
	}

	if err := i.client.Publish(ctx, cache.NotificationsChannel(n.UserID), payload).Err(); err != nil {
		return fmt.Errorf("failed to publish notification: %w", err)
	}
	return nil
}

func (i *redisInbox) List(ctx context.Context, userID string, limit, offset int) ([]entity.Notification, int64, error) {
	key := cache.NotificationsKey(userID)

	raw, err := i.client.LRange(ctx, key, int64(offset), int64(offset+limit-1)).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]entity.Notification, 0, len(raw))
	for _, item := range raw {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err == nil {
			notifications = append(notifications, n)
		}
	}

	total, err := i.client.LLen(ctx, key).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	return notifications, total, nil
}
