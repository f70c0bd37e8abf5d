package inbox

import (
	"context"
	"encoding/json"
	"fmt"

	"igclone/internal/entity"

	"github.com/redis/go-redis/v9"
)

// MaxNotifications is how many notifications are kept per recipient.
const MaxNotifications = 100

type NotificationRepository interface {
	Push(ctx context.Context, recipientID uint, notification *entity.Notification) error
	List(ctx context.Context, recipientID uint, offset, limit int) ([]*entity.Notification, error)
	Count(ctx context.Context, recipientID uint) (int64, error)
}

type notificationRepository struct {
	redisClient *redis.Client
}

func NewNotificationRepository(redisClient *redis.Client) NotificationRepository {
	return &notificationRepository{redisClient: redisClient}
}

func key(recipientID uint) string {
	return fmt.Sprintf("notifications:%d", recipientID)
}

// Push prepends notification to the recipient's inbox and trims it to MaxNotifications.
func (r *notificationRepository) Push(ctx context.Context, recipientID uint, notification *entity.Notification) error {
	data, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	pipe := r.redisClient.TxPipeline()
	pipe.LPush(ctx, key(recipientID), data)
	pipe.LTrim(ctx, key(recipientID), 0, MaxNotifications-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push notification for user %d: %w", recipientID, err)
	}
	return nil
}

// List returns up to limit notifications starting at offset, newest first.
// Entries that fail to decode are skipped.
func (r *notificationRepository) List(ctx context.Context, recipientID uint, offset, limit int) ([]*entity.Notification, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > MaxNotifications {
		limit = MaxNotifications
	}

	start := int64(offset)
	items, err := r.redisClient.LRange(ctx, key(recipientID), start, start+int64(limit)-1).Result()
	if err != nil {
		return nil, fmt.Errorf("list notifications for user %d: %w", recipientID, err)
	}

	notifications := make([]*entity.Notification, 0, len(items))
	for _, item := range items {
		var n entity.Notification
		if err := json.Unmarshal([]byte(item), &n); err != nil {
			continue
		}
		notifications = append(notifications, &n)
	}
	return notifications, nil
}

func (r *notificationRepository) Count(ctx context.Context, recipientID uint) (int64, error) {
	n, err := r.redisClient.LLen(ctx, key(recipientID)).Result()
	if err != nil {
		return 0, fmt.Errorf("count notifications for user %d: %w", recipientID, err)
	}
	return n, nil
}
