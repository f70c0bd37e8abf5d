package usecase

import (
	"context"
	"strings"

	"igclone/internal/entity"
	"igclone/internal/repo/persistent"
	"igclone/pkg/logger"
)

type UserUseCase interface {
	GetUser(ctx context.Context, userID uint) (*entity.User, error)
	ListUsers(ctx context.Context, skip, limit int) ([]*entity.User, error)
	GetProfile(ctx context.Context, userID uint) (*entity.Profile, error)
	SearchUser(ctx context.Context, viewerID uint, fragment string) (*entity.UserWithPosts, error)
	UpdateUser(ctx context.Context, actorID, userID uint, name, email string) (*entity.User, error)
	DeleteUser(ctx context.Context, actorID, userID uint) error
	Exists(ctx context.Context, userID uint) (bool, error)
}

type userUseCase struct {
	userRepo   persistent.UserRepository
	followRepo persistent.FollowRepository
	feedRepo   persistent.FeedRepository
	images     ImageStore
	logger     *logger.Logger
}

func NewUserUseCase(
	userRepo persistent.UserRepository,
	followRepo persistent.FollowRepository,
	feedRepo persistent.FeedRepository,
	images ImageStore,
	logger *logger.Logger,
) UserUseCase {
	return &userUseCase{
		userRepo:   userRepo,
		followRepo: followRepo,
		feedRepo:   feedRepo,
		images:     images,
		logger:     logger,
	}
}

func (uc *userUseCase) GetUser(ctx context.Context, userID uint) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, userID)
}

func (uc *userUseCase) ListUsers(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	skip, limit, err := normalizePage(skip, limit)
	if err != nil {
		return nil, err
	}
	return uc.userRepo.List(ctx, skip, limit)
}

func (uc *userUseCase) GetProfile(ctx context.Context, userID uint) (*entity.Profile, error) {
	return uc.userRepo.Profile(ctx, userID)
}

// SearchUser returns the first user whose name contains fragment, with their
// posts. Only the user themself and their followers may see the result.
func (uc *userUseCase) SearchUser(ctx context.Context, viewerID uint, fragment string) (*entity.UserWithPosts, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, entity.ErrEmptySearch
	}

	user, err := uc.userRepo.FindFirstByName(ctx, fragment)
	if err != nil {
		return nil, err
	}

	if user.ID != viewerID {
		following, err := uc.followRepo.Exists(ctx, viewerID, user.ID)
		if err != nil {
			return nil, err
		}
		if !following {
			return nil, entity.ErrProfileForbidden
		}
	}

	profile, err := uc.userRepo.Profile(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	posts, err := uc.feedRepo.ListPosts(ctx, entity.FeedFilter{
		AuthorID:  user.ID,
		SortBy:    entity.SortByCreatedAt,
		SortOrder: entity.SortDesc,
	})
	if err != nil {
		return nil, err
	}

	return &entity.UserWithPosts{Profile: *profile, Posts: posts}, nil
}

func (uc *userUseCase) UpdateUser(ctx context.Context, actorID, userID uint, name, email string) (*entity.User, error) {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if actorID != userID {
		return nil, entity.ErrNotAccountOwner
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, entity.ErrEmptyName
	}

	return uc.userRepo.Update(ctx, userID, name, email)
}

// DeleteUser removes the account and everything it owns. Post images are
// removed from object storage after the rows are gone.
func (uc *userUseCase) DeleteUser(ctx context.Context, actorID, userID uint) error {
	if _, err := uc.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if actorID != userID {
		return entity.ErrNotAccountOwner
	}

	imageURLs, err := uc.userRepo.Delete(ctx, userID)
	if err != nil {
		return err
	}

	for i := range imageURLs {
		deleteImage(uc.images, uc.logger, &imageURLs[i])
	}

	uc.logger.Info("User %d deleted with %d post images", userID, len(imageURLs))
	return nil
}

func (uc *userUseCase) Exists(ctx context.Context, userID uint) (bool, error) {
	return uc.userRepo.Exists(ctx, userID)
}

// normalizePage rejects negative offsets and clamps limit into [1, MaxFeedLimit],
// using DefaultFeedLimit when no limit was given.
func normalizePage(skip, limit int) (int, int, error) {
	if skip < 0 {
		return 0, 0, entity.ErrInvalidSkip
	}
	if limit < 1 {
		limit = entity.DefaultFeedLimit
	}
	if limit > entity.MaxFeedLimit {
		limit = entity.MaxFeedLimit
	}
	return skip, limit, nil
}
