package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"igclone/internal/entity"
	"igclone/pkg/logger"
	"igclone/pkg/queue"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHandleEvent_RendersMessage(t *testing.T) {
	inboxRepo := new(MockNotificationRepository)
	users := new(MockUserRepository)
	uc := NewNotificationUseCase(inboxRepo, users, logger.New())
	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	users.On("GetByID", mock.Anything, uint(2)).Return(&entity.User{ID: 2, Name: "bob"}, nil)
	inboxRepo.On("Push", mock.Anything, uint(1), &entity.Notification{
		Type:      queue.EventPostLiked,
		ActorID:   2,
		PostID:    5,
		Message:   "bob liked your post",
		CreatedAt: createdAt,
	}).Return(nil)

	err := uc.HandleEvent(context.Background(), queue.Event{
		Type:        queue.EventPostLiked,
		ActorID:     2,
		RecipientID: 1,
		PostID:      5,
		CreatedAt:   createdAt,
	})

	require.NoError(t, err)
	inboxRepo.AssertExpectations(t)
}

func TestHandleEvent_DropsDeletedActorAndUnknownType(t *testing.T) {
	inboxRepo := new(MockNotificationRepository)
	users := new(MockUserRepository)
	uc := NewNotificationUseCase(inboxRepo, users, logger.New())

	users.On("GetByID", mock.Anything, uint(2)).Return(nil, entity.ErrUserNotFound)
	users.On("GetByID", mock.Anything, uint(3)).Return(&entity.User{ID: 3}, nil)

	assert.NoError(t, uc.HandleEvent(context.Background(), queue.Event{Type: queue.EventUserFollowed, ActorID: 2, RecipientID: 1}))
	assert.NoError(t, uc.HandleEvent(context.Background(), queue.Event{Type: "post.viewed", ActorID: 3, RecipientID: 1}))

	inboxRepo.AssertNotCalled(t, "Push", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetNotifications(t *testing.T) {
	inboxRepo := new(MockNotificationRepository)
	uc := NewNotificationUseCase(inboxRepo, new(MockUserRepository), logger.New())
	expected := []*entity.Notification{{Type: queue.EventUserFollowed, ActorID: 2}}
	inboxRepo.On("List", mock.Anything, uint(1), 0, 20).Return(expected, nil)
	inboxRepo.On("Count", mock.Anything, uint(1)).Return(int64(3), nil)

	got, total, err := uc.GetNotifications(context.Background(), 1, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, expected, got)
	assert.Equal(t, int64(3), total)
	inboxRepo.AssertExpectations(t)

	_, _, err = uc.GetNotifications(context.Background(), 1, -1, 20)
	assert.ErrorIs(t, err, entity.ErrInvalidOffset)
}

func TestGetNotifications_CountFailure(t *testing.T) {
	inboxRepo := new(MockNotificationRepository)
	uc := NewNotificationUseCase(inboxRepo, new(MockUserRepository), logger.New())
	inboxRepo.On("List", mock.Anything, uint(1), 0, 20).Return([]*entity.Notification{}, nil)
	inboxRepo.On("Count", mock.Anything, uint(1)).Return(int64(0), errors.New("connection reset"))

	got, total, err := uc.GetNotifications(context.Background(), 1, 0, 20)
	assert.Error(t, err)
	assert.Nil(t, got)
	assert.Zero(t, total)
}

func TestNotifications_Disabled(t *testing.T) {
	uc := NewNotificationUseCase(nil, new(MockUserRepository), logger.New())

	assert.NoError(t, uc.HandleEvent(context.Background(), queue.Event{Type: queue.EventUserFollowed, ActorID: 2, RecipientID: 1}))
	got, total, err := uc.GetNotifications(context.Background(), 1, 0, 20)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, total)
}
