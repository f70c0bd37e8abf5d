package usecase

import (
	"context"

	"igclone/internal/entity"
	"igclone/internal/repo/persistent"
	"igclone/pkg/logger"
	"igclone/pkg/queue"
)

type GraphUseCase interface {
	Follow(ctx context.Context, followerID, targetID uint) (*entity.Follow, error)
	Unfollow(ctx context.Context, followerID, targetID uint) error
	ListFollowing(ctx context.Context, userID uint) ([]*entity.User, error)
	ListFollowers(ctx context.Context, userID uint) ([]*entity.User, error)
	IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error)
}

type graphUseCase struct {
	followRepo persistent.FollowRepository
	userRepo   persistent.UserRepository
	publisher  EventPublisher
	logger     *logger.Logger
}

func NewGraphUseCase(
	followRepo persistent.FollowRepository,
	userRepo persistent.UserRepository,
	publisher EventPublisher,
	logger *logger.Logger,
) GraphUseCase {
	return &graphUseCase{
		followRepo: followRepo,
		userRepo:   userRepo,
		publisher:  publisher,
		logger:     logger,
	}
}

func (uc *graphUseCase) Follow(ctx context.Context, followerID, targetID uint) (*entity.Follow, error) {
	follow, err := uc.followRepo.Create(ctx, followerID, targetID)
	if err != nil {
		return nil, err
	}

	publish(ctx, uc.publisher, uc.logger, queue.Event{
		Type:        queue.EventUserFollowed,
		ActorID:     followerID,
		RecipientID: targetID,
		Priority:    5,
		CreatedAt:   follow.CreatedAt,
	})
	return follow, nil
}

func (uc *graphUseCase) Unfollow(ctx context.Context, followerID, targetID uint) error {
	return uc.followRepo.Delete(ctx, followerID, targetID)
}

func (uc *graphUseCase) ListFollowing(ctx context.Context, userID uint) ([]*entity.User, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return uc.followRepo.ListFollowing(ctx, userID)
}

func (uc *graphUseCase) ListFollowers(ctx context.Context, userID uint) ([]*entity.User, error) {
	if err := uc.requireUser(ctx, userID); err != nil {
		return nil, err
	}
	return uc.followRepo.ListFollowers(ctx, userID)
}

func (uc *graphUseCase) IsFollowing(ctx context.Context, followerID, targetID uint) (bool, error) {
	return uc.followRepo.Exists(ctx, followerID, targetID)
}

func (uc *graphUseCase) requireUser(ctx context.Context, userID uint) error {
	exists, err := uc.userRepo.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return entity.ErrUserNotFound
	}
	return nil
}
