package http

import (
	"context"

	"igclone/internal/entity"
	"igclone/internal/usecase"
	"igclone/pkg/queue"

	"github.com/stretchr/testify/mock"
)

type MockAuthUseCase struct {
	mock.Mock
}

func (m *MockAuthUseCase) Register(ctx context.Context, name, email, password string) (*entity.User, error) {
	args := m.Called(ctx, name, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockAuthUseCase) Login(ctx context.Context, email, password string) (*entity.Token, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Token), args.Error(1)
}

type MockUserUseCase struct {
	mock.Mock
}

func (m *MockUserUseCase) GetUser(ctx context.Context, userID uint) (*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) ListUsers(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockUserUseCase) GetProfile(ctx context.Context, userID uint) (*entity.Profile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Profile), args.Error(1)
}

func (m *MockUserUseCase) SearchUser(ctx context.Context, viewerID uint, fragment string) (*entity.UserWithPosts, error) {
	args := m.Called(ctx, viewerID, fragment)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserWithPosts), args.Error(1)
}

func (m *MockUserUseCase) UpdateUser(ctx context.Context, actorID, userID uint, name, email string) (*entity.User, error) {
	args := m.Called(ctx, actorID, userID, name, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserUseCase) DeleteUser(ctx context.Context, actorID, userID uint) error {
	args := m.Called(ctx, actorID, userID)
	return args.Error(0)
}

func (m *MockUserUseCase) Exists(ctx context.Context, userID uint) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

type MockGraphUseCase struct {
	mock.Mock
}

func (m *MockGraphUseCase) Follow(ctx context.Context, followerID, targetID uint) (*entity.Follow, error) {
	args := m.Called(ctx, followerID, targetID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Follow), args.Error(1)
}

func (m *MockGraphUseCase) Unfollow(ctx context.Context, followerID, targetID uint) error {
	args := m.Called(ctx, followerID, targetID)
	return args.Error(0)
}

func (m *MockGraphUseCase) ListFollowing(ctx context.Context, userID uint) ([]*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockGraphUseCase) ListFollowers(ctx context.Context, userID uint) ([]*entity.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.User), args.Error(1)
}

func (m *MockGraphUseCase) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	args := m.Called(ctx, followerID, targetID)
	return args.Bool(0), args.Error(1)
}

type MockPostUseCase struct {
	mock.Mock
}

func (m *MockPostUseCase) CreatePost(ctx context.Context, ownerID uint, content string, image *entity.ImageUpload) (*entity.Post, error) {
	args := m.Called(ctx, ownerID, content, image)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) UpdatePost(ctx context.Context, actorID, postID uint, update entity.PostUpdate) (*entity.Post, error) {
	args := m.Called(ctx, actorID, postID, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockPostUseCase) DeletePost(ctx context.Context, actorID, postID uint) error {
	args := m.Called(ctx, actorID, postID)
	return args.Error(0)
}

func (m *MockPostUseCase) LikePost(ctx context.Context, actorID, postID uint) (*entity.Like, error) {
	args := m.Called(ctx, actorID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Like), args.Error(1)
}

func (m *MockPostUseCase) UnlikePost(ctx context.Context, actorID, postID uint) error {
	args := m.Called(ctx, actorID, postID)
	return args.Error(0)
}

func (m *MockPostUseCase) LikesCount(ctx context.Context, postID uint) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

type MockFeedUseCase struct {
	mock.Mock
}

func (m *MockFeedUseCase) GetPost(ctx context.Context, viewerID, postID uint) (*entity.Post, error) {
	args := m.Called(ctx, viewerID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Post), args.Error(1)
}

func (m *MockFeedUseCase) ListFeed(ctx context.Context, query entity.FeedQuery) ([]*entity.Post, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Post), args.Error(1)
}

type MockCommentUseCase struct {
	mock.Mock
}

func (m *MockCommentUseCase) AddComment(ctx context.Context, actorID, postID uint, content string) (*entity.Comment, error) {
	args := m.Called(ctx, actorID, postID, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Comment), args.Error(1)
}

func (m *MockCommentUseCase) ListComments(ctx context.Context, postID uint) ([]*entity.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entity.Comment), args.Error(1)
}

type MockNotificationUseCase struct {
	mock.Mock
}

func (m *MockNotificationUseCase) HandleEvent(ctx context.Context, event queue.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotificationUseCase) GetNotifications(ctx context.Context, userID uint, offset, limit int) ([]*entity.Notification, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*entity.Notification), args.Get(1).(int64), args.Error(2)
}

var (
	_ usecase.AuthUseCase         = (*MockAuthUseCase)(nil)
	_ usecase.UserUseCase         = (*MockUserUseCase)(nil)
	_ usecase.GraphUseCase        = (*MockGraphUseCase)(nil)
	_ usecase.PostUseCase         = (*MockPostUseCase)(nil)
	_ usecase.FeedUseCase         = (*MockFeedUseCase)(nil)
	_ usecase.CommentUseCase      = (*MockCommentUseCase)(nil)
	_ usecase.NotificationUseCase = (*MockNotificationUseCase)(nil)
)
