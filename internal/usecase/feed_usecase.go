package usecase

import (
	"context"

	"igclone/internal/entity"
	"igclone/internal/repo/persistent"
	"igclone/pkg/logger"
)

type FeedUseCase interface {
	GetPost(ctx context.Context, viewerID, postID uint) (*entity.Post, error)
	ListFeed(ctx context.Context, query entity.FeedQuery) ([]*entity.Post, error)
}

type feedUseCase struct {
	feedRepo   persistent.FeedRepository
	followRepo persistent.FollowRepository
	userRepo   persistent.UserRepository
	logger     *logger.Logger
}

func NewFeedUseCase(
	feedRepo persistent.FeedRepository,
	followRepo persistent.FollowRepository,
	userRepo persistent.UserRepository,
	logger *logger.Logger,
) FeedUseCase {
	return &feedUseCase{
		feedRepo:   feedRepo,
		followRepo: followRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

// GetPost returns the post if the viewer owns it or follows its owner.
func (uc *feedUseCase) GetPost(ctx context.Context, viewerID, postID uint) (*entity.Post, error) {
	post, err := uc.feedRepo.GetPostWithLikes(ctx, postID)
	if err != nil {
		return nil, err
	}

	if err := uc.canView(ctx, viewerID, post.UserID, entity.ErrPostForbidden); err != nil {
		return nil, err
	}
	return post, nil
}

// ListFeed returns one page of posts by the users the viewer follows, or by
// query.UserID when set. Filtering by author is subject to the same
// visibility rule as GetPost.
func (uc *feedUseCase) ListFeed(ctx context.Context, query entity.FeedQuery) ([]*entity.Post, error) {
	skip, limit, err := normalizePage(query.Skip, query.Limit)
	if err != nil {
		return nil, err
	}
	sortBy, sortOrder, err := normalizeSort(query.SortBy, query.SortOrder)
	if err != nil {
		return nil, err
	}

	filter := entity.FeedFilter{
		FollowerID: query.ViewerID,
		Skip:       skip,
		Limit:      limit,
		SortBy:     sortBy,
		SortOrder:  sortOrder,
	}

	if query.UserID != nil {
		authorID := *query.UserID
		if authorID != query.ViewerID {
			exists, err := uc.userRepo.Exists(ctx, authorID)
			if err != nil {
				return nil, err
			}
			if !exists {
				return nil, entity.ErrUserNotFound
			}
		}
		if err := uc.canView(ctx, query.ViewerID, authorID, entity.ErrFeedForbidden); err != nil {
			return nil, err
		}
		filter.FollowerID = 0
		filter.AuthorID = authorID
	}

	return uc.feedRepo.ListPosts(ctx, filter)
}

func (uc *feedUseCase) canView(ctx context.Context, viewerID, ownerID uint, forbidden error) error {
	if viewerID == ownerID {
		return nil
	}
	following, err := uc.followRepo.Exists(ctx, viewerID, ownerID)
	if err != nil {
		return err
	}
	if !following {
		return forbidden
	}
	return nil
}

func normalizeSort(sortBy entity.SortField, sortOrder entity.SortOrder) (entity.SortField, entity.SortOrder, error) {
	switch sortBy {
	case "":
		sortBy = entity.SortByCreatedAt
	case entity.SortByCreatedAt, entity.SortByLikes:
	default:
		return "", "", entity.ErrInvalidSortBy
	}

	switch sortOrder {
	case "":
		sortOrder = entity.SortDesc
	case entity.SortAsc, entity.SortDesc:
	default:
		return "", "", entity.ErrInvalidSortOrder
	}
	return sortBy, sortOrder, nil
}
