package usecase

import (
	"context"
	"testing"

	"igclone/internal/entity"
	"igclone/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userFixture struct {
	users   *MockUserRepository
	follows *MockFollowRepository
	feed    *MockFeedRepository
	images  *MockImageStore
	uc      UserUseCase
}

func newUserFixture() *userFixture {
	f := &userFixture{
		users:   new(MockUserRepository),
		follows: new(MockFollowRepository),
		feed:    new(MockFeedRepository),
		images:  new(MockImageStore),
	}
	f.uc = NewUserUseCase(f.users, f.follows, f.feed, f.images, logger.New())
	return f
}

func TestListUsers_Paging(t *testing.T) {
	f := newUserFixture()
	f.users.On("List", mock.Anything, 0, entity.DefaultFeedLimit).Return([]*entity.User{}, nil)
	f.users.On("List", mock.Anything, 5, entity.MaxFeedLimit).Return([]*entity.User{}, nil)

	_, err := f.uc.ListUsers(context.Background(), 0, 0)
	require.NoError(t, err)
	_, err = f.uc.ListUsers(context.Background(), 5, 500)
	require.NoError(t, err)
	_, err = f.uc.ListUsers(context.Background(), -1, 10)
	assert.ErrorIs(t, err, entity.ErrInvalidSkip)

	f.users.AssertExpectations(t)
}

func TestSearchUser_Follower(t *testing.T) {
	f := newUserFixture()
	alice := &entity.User{ID: 1, Name: "alice"}
	posts := []*entity.Post{{ID: 3, UserID: 1}, {ID: 2, UserID: 1}}

	f.users.On("FindFirstByName", mock.Anything, "ali").Return(alice, nil)
	f.follows.On("Exists", mock.Anything, uint(2), uint(1)).Return(true, nil)
	f.users.On("Profile", mock.Anything, uint(1)).Return(&entity.Profile{ID: 1, Name: "alice", PostCount: 2}, nil)
	f.feed.On("ListPosts", mock.Anything, entity.FeedFilter{
		AuthorID:  1,
		SortBy:    entity.SortByCreatedAt,
		SortOrder: entity.SortDesc,
	}).Return(posts, nil)

	result, err := f.uc.SearchUser(context.Background(), 2, " ali ")

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.PostCount)
	assert.Equal(t, posts, result.Posts)
	f.users.AssertExpectations(t)
	f.feed.AssertExpectations(t)
}

func TestSearchUser_NotFollowing(t *testing.T) {
	f := newUserFixture()
	f.users.On("FindFirstByName", mock.Anything, "ali").Return(&entity.User{ID: 1}, nil)
	f.follows.On("Exists", mock.Anything, uint(2), uint(1)).Return(false, nil)

	_, err := f.uc.SearchUser(context.Background(), 2, "ali")

	assert.ErrorIs(t, err, entity.ErrProfileForbidden)
	f.feed.AssertNotCalled(t, "ListPosts", mock.Anything, mock.Anything)
}

func TestSearchUser_Self(t *testing.T) {
	f := newUserFixture()
	f.users.On("FindFirstByName", mock.Anything, "ali").Return(&entity.User{ID: 1}, nil)
	f.users.On("Profile", mock.Anything, uint(1)).Return(&entity.Profile{ID: 1}, nil)
	f.feed.On("ListPosts", mock.Anything, mock.Anything).Return([]*entity.Post{}, nil)

	_, err := f.uc.SearchUser(context.Background(), 1, "ali")

	require.NoError(t, err)
	f.follows.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything, mock.Anything)
}

func TestSearchUser_EmptyFragment(t *testing.T) {
	f := newUserFixture()
	_, err := f.uc.SearchUser(context.Background(), 1, "  ")
	assert.ErrorIs(t, err, entity.ErrEmptySearch)
}

func TestUpdateUser(t *testing.T) {
	f := newUserFixture()
	f.users.On("GetByID", mock.Anything, uint(1)).Return(&entity.User{ID: 1}, nil)
	f.users.On("GetByID", mock.Anything, uint(9)).Return(nil, entity.ErrUserNotFound)
	f.users.On("Update", mock.Anything, uint(1), "Alice", "a@example.com").Return(&entity.User{ID: 1, Name: "Alice"}, nil)

	user, err := f.uc.UpdateUser(context.Background(), 1, 1, " Alice ", "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)

	_, err = f.uc.UpdateUser(context.Background(), 2, 1, "Alice", "a@example.com")
	assert.ErrorIs(t, err, entity.ErrNotAccountOwner)

	_, err = f.uc.UpdateUser(context.Background(), 2, 9, "Alice", "a@example.com")
	assert.ErrorIs(t, err, entity.ErrUserNotFound)

	f.users.AssertExpectations(t)
}

func TestDeleteUser_RemovesImages(t *testing.T) {
	f := newUserFixture()
	urls := []string{"http://bucket/posts/1/a.png", "http://elsewhere/b.png"}

	f.users.On("GetByID", mock.Anything, uint(1)).Return(&entity.User{ID: 1}, nil)
	f.users.On("Delete", mock.Anything, uint(1)).Return(urls, nil)
	f.images.On("KeyFromURL", urls[0]).Return("posts/1/a.png", true)
	f.images.On("KeyFromURL", urls[1]).Return("", false)
	f.images.On("DeleteFile", "posts/1/a.png").Return(nil)

	require.NoError(t, f.uc.DeleteUser(context.Background(), 1, 1))

	f.users.AssertExpectations(t)
	f.images.AssertExpectations(t)
	f.images.AssertNumberOfCalls(t, "DeleteFile", 1)
}

func TestDeleteUser_NotOwner(t *testing.T) {
	f := newUserFixture()
	f.users.On("GetByID", mock.Anything, uint(1)).Return(&entity.User{ID: 1}, nil)

	err := f.uc.DeleteUser(context.Background(), 2, 1)

	assert.ErrorIs(t, err, entity.ErrNotAccountOwner)
	f.users.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
