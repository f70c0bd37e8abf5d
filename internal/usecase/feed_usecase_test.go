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

type feedFixture struct {
	feed    *MockFeedRepository
	follows *MockFollowRepository
	users   *MockUserRepository
	uc      FeedUseCase
}

func newFeedFixture() *feedFixture {
	f := &feedFixture{
		feed:    new(MockFeedRepository),
		follows: new(MockFollowRepository),
		users:   new(MockUserRepository),
	}
	f.uc = NewFeedUseCase(f.feed, f.follows, f.users, logger.New())
	return f
}

func uintPtr(v uint) *uint { return &v }

func TestGetPost_Visibility(t *testing.T) {
	f := newFeedFixture()
	post := &entity.Post{ID: 5, UserID: 1, Content: "hello"}
	f.feed.On("GetPostWithLikes", mock.Anything, uint(5)).Return(post, nil)
	f.feed.On("GetPostWithLikes", mock.Anything, uint(9)).Return(nil, entity.ErrPostNotFound)
	f.follows.On("Exists", mock.Anything, uint(2), uint(1)).Return(true, nil)
	f.follows.On("Exists", mock.Anything, uint(3), uint(1)).Return(false, nil)

	got, err := f.uc.GetPost(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, post, got)

	got, err = f.uc.GetPost(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Equal(t, post, got)

	_, err = f.uc.GetPost(context.Background(), 3, 5)
	assert.ErrorIs(t, err, entity.ErrPostForbidden)

	_, err = f.uc.GetPost(context.Background(), 3, 9)
	assert.ErrorIs(t, err, entity.ErrPostNotFound)
}

func TestListFeed_Defaults(t *testing.T) {
	f := newFeedFixture()
	f.feed.On("ListPosts", mock.Anything, entity.FeedFilter{
		FollowerID: 2,
		Limit:      entity.DefaultFeedLimit,
		SortBy:     entity.SortByCreatedAt,
		SortOrder:  entity.SortDesc,
	}).Return([]*entity.Post{}, nil)

	_, err := f.uc.ListFeed(context.Background(), entity.FeedQuery{ViewerID: 2})

	require.NoError(t, err)
	f.feed.AssertExpectations(t)
}

func TestListFeed_ClampsLimitAndPassesSort(t *testing.T) {
	f := newFeedFixture()
	f.feed.On("ListPosts", mock.Anything, entity.FeedFilter{
		FollowerID: 2,
		Skip:       4,
		Limit:      entity.MaxFeedLimit,
		SortBy:     entity.SortByLikes,
		SortOrder:  entity.SortAsc,
	}).Return([]*entity.Post{}, nil)

	_, err := f.uc.ListFeed(context.Background(), entity.FeedQuery{
		ViewerID:  2,
		Skip:      4,
		Limit:     1000,
		SortBy:    entity.SortByLikes,
		SortOrder: entity.SortAsc,
	})

	require.NoError(t, err)
	f.feed.AssertExpectations(t)
}

func TestListFeed_Validation(t *testing.T) {
	tests := []struct {
		name  string
		query entity.FeedQuery
		err   error
	}{
		{"negative skip", entity.FeedQuery{ViewerID: 2, Skip: -1}, entity.ErrInvalidSkip},
		{"bad sort field", entity.FeedQuery{ViewerID: 2, SortBy: "title"}, entity.ErrInvalidSortBy},
		{"bad sort order", entity.FeedQuery{ViewerID: 2, SortOrder: "sideways"}, entity.ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFeedFixture()
			_, err := f.uc.ListFeed(context.Background(), tt.query)
			assert.ErrorIs(t, err, tt.err)
			f.feed.AssertNotCalled(t, "ListPosts", mock.Anything, mock.Anything)
		})
	}
}

func TestListFeed_AuthorFilter(t *testing.T) {
	f := newFeedFixture()
	f.users.On("Exists", mock.Anything, uint(1)).Return(true, nil)
	f.users.On("Exists", mock.Anything, uint(9)).Return(false, nil)
	f.follows.On("Exists", mock.Anything, uint(2), uint(1)).Return(true, nil)
	f.follows.On("Exists", mock.Anything, uint(3), uint(1)).Return(false, nil)
	f.feed.On("ListPosts", mock.Anything, mock.MatchedBy(func(filter entity.FeedFilter) bool {
		return filter.FollowerID == 0 && (filter.AuthorID == 1 || filter.AuthorID == 3)
	})).Return([]*entity.Post{}, nil)

	_, err := f.uc.ListFeed(context.Background(), entity.FeedQuery{ViewerID: 2, UserID: uintPtr(1)})
	require.NoError(t, err)

	_, err = f.uc.ListFeed(context.Background(), entity.FeedQuery{ViewerID: 3, UserID: uintPtr(1)})
	assert.ErrorIs(t, err, entity.ErrFeedForbidden)

	_, err = f.uc.ListFeed(context.Background(), entity.FeedQuery{ViewerID: 3, UserID: uintPtr(9)})
	assert.ErrorIs(t, err, entity.ErrUserNotFound)

	// Own posts need no follow edge.
	_, err = f.uc.ListFeed(context.Background(), entity.FeedQuery{ViewerID: 3, UserID: uintPtr(3)})
	require.NoError(t, err)

	f.feed.AssertNumberOfCalls(t, "ListPosts", 2)
}
