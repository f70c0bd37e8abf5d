package usecase

import (
	"context"
	"errors"
	"fmt"

	"igclone/internal/entity"
	"igclone/internal/repo/inbox"
	"igclone/internal/repo/persistent"
	"igclone/pkg/logger"
	"igclone/pkg/queue"
)

type NotificationUseCase interface {
	HandleEvent(ctx context.Context, event queue.Event) error
	GetNotifications(ctx context.Context, userID uint, offset, limit int) ([]*entity.Notification, int64, error)
}

type notificationUseCase struct {
	inboxRepo inbox.NotificationRepository
	userRepo  persistent.UserRepository
	logger    *logger.Logger
}

// NewNotificationUseCase builds the inbox use case. A nil inboxRepo disables
// notifications: events are dropped and every inbox reads as empty.
func NewNotificationUseCase(inboxRepo inbox.NotificationRepository, userRepo persistent.UserRepository, logger *logger.Logger) NotificationUseCase {
	return &notificationUseCase{
		inboxRepo: inboxRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// HandleEvent renders event into a notification for its recipient. Events
// whose actor no longer exists are dropped.
func (uc *notificationUseCase) HandleEvent(ctx context.Context, event queue.Event) error {
	if uc.inboxRepo == nil {
		return nil
	}

	actor, err := uc.userRepo.GetByID(ctx, event.ActorID)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			uc.logger.Warn("Dropping %s event from deleted user %d", event.Type, event.ActorID)
			return nil
		}
		return err
	}

	var message string
	switch event.Type {
	case queue.EventUserFollowed:
		message = fmt.Sprintf("%s started following you", actor.Name)
	case queue.EventPostLiked:
		message = fmt.Sprintf("%s liked your post", actor.Name)
	case queue.EventCommentCreated:
		message = fmt.Sprintf("%s commented on your post", actor.Name)
	default:
		uc.logger.Warn("Ignoring unknown event type %q", event.Type)
		return nil
	}

	return uc.inboxRepo.Push(ctx, event.RecipientID, &entity.Notification{
		Type:      event.Type,
		ActorID:   event.ActorID,
		PostID:    event.PostID,
		CommentID: event.CommentID,
		Message:   message,
		CreatedAt: event.CreatedAt,
	})
}

// GetNotifications returns one page of the inbox, newest first, together with
// the total number of stored notifications.
func (uc *notificationUseCase) GetNotifications(ctx context.Context, userID uint, offset, limit int) ([]*entity.Notification, int64, error) {
	if offset < 0 {
		return nil, 0, entity.ErrInvalidOffset
	}
	if uc.inboxRepo == nil {
		return []*entity.Notification{}, 0, nil
	}

	notifications, err := uc.inboxRepo.List(ctx, userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := uc.inboxRepo.Count(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	return notifications, total, nil
}
