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

func TestFollow_PublishesEvent(t *testing.T) {
	follows := new(MockFollowRepository)
	publisher := new(MockEventPublisher)
	uc := NewGraphUseCase(follows, new(MockUserRepository), publisher, logger.New())

	createdAt := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	follows.On("Create", mock.Anything, uint(2), uint(1)).
		Return(&entity.Follow{ID: 10, FollowerID: 2, FollowingID: 1, CreatedAt: createdAt}, nil)
	publisher.On("PublishEvent", mock.Anything, queue.Event{
		Type:        queue.EventUserFollowed,
		ActorID:     2,
		RecipientID: 1,
		Priority:    5,
		CreatedAt:   createdAt,
	}).Return(nil)

	follow, err := uc.Follow(context.Background(), 2, 1)

	require.NoError(t, err)
	assert.Equal(t, uint(10), follow.ID)
	publisher.AssertExpectations(t)
}

func TestFollow_PublishFailureIsNotFatal(t *testing.T) {
	follows := new(MockFollowRepository)
	publisher := new(MockEventPublisher)
	uc := NewGraphUseCase(follows, new(MockUserRepository), publisher, logger.New())

	follows.On("Create", mock.Anything, uint(2), uint(1)).Return(&entity.Follow{ID: 10}, nil)
	publisher.On("PublishEvent", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	_, err := uc.Follow(context.Background(), 2, 1)

	assert.NoError(t, err)
}

func TestFollow_Errors(t *testing.T) {
	for _, repoErr := range []error{entity.ErrSelfFollow, entity.ErrAlreadyFollowing, entity.ErrUserNotFound} {
		follows := new(MockFollowRepository)
		publisher := new(MockEventPublisher)
		uc := NewGraphUseCase(follows, new(MockUserRepository), publisher, logger.New())
		follows.On("Create", mock.Anything, uint(2), uint(1)).Return(nil, repoErr)

		_, err := uc.Follow(context.Background(), 2, 1)

		assert.ErrorIs(t, err, repoErr)
		publisher.AssertNotCalled(t, "PublishEvent", mock.Anything, mock.Anything)
	}
}

func TestFollow_NilPublisher(t *testing.T) {
	follows := new(MockFollowRepository)
	uc := NewGraphUseCase(follows, new(MockUserRepository), nil, logger.New())
	follows.On("Create", mock.Anything, uint(2), uint(1)).Return(&entity.Follow{ID: 10}, nil)

	_, err := uc.Follow(context.Background(), 2, 1)

	assert.NoError(t, err)
}

func TestListFollowers_UnknownUser(t *testing.T) {
	follows := new(MockFollowRepository)
	users := new(MockUserRepository)
	uc := NewGraphUseCase(follows, users, nil, logger.New())
	users.On("Exists", mock.Anything, uint(9)).Return(false, nil)

	_, err := uc.ListFollowers(context.Background(), 9)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)
	_, err = uc.ListFollowing(context.Background(), 9)
	assert.ErrorIs(t, err, entity.ErrUserNotFound)

	follows.AssertNotCalled(t, "ListFollowers", mock.Anything, mock.Anything)
}

func TestListFollowing(t *testing.T) {
	follows := new(MockFollowRepository)
	users := new(MockUserRepository)
	uc := NewGraphUseCase(follows, users, nil, logger.New())
	expected := []*entity.User{{ID: 1}, {ID: 3}}
	users.On("Exists", mock.Anything, uint(2)).Return(true, nil)
	follows.On("ListFollowing", mock.Anything, uint(2)).Return(expected, nil)

	got, err := uc.ListFollowing(context.Background(), 2)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestIsFollowing(t *testing.T) {
	follows := new(MockFollowRepository)
	uc := NewGraphUseCase(follows, new(MockUserRepository), nil, logger.New())

	follows.On("Exists", mock.Anything, uint(2), uint(1)).Return(true, nil)
	follows.On("Exists", mock.Anything, uint(1), uint(2)).Return(false, nil)

	following, err := uc.IsFollowing(context.Background(), 2, 1)
	require.NoError(t, err)
	assert.True(t, following)

	following, err = uc.IsFollowing(context.Background(), 1, 2)
	require.NoError(t, err)
	assert.False(t, following)
}
