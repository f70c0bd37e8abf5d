package persistent

import (
	"context"
	"errors"
	"fmt"

	"igclone/internal/entity"
	"igclone/pkg/models"

	"gorm.io/gorm"
)

type FollowRepository interface {
	Create(ctx context.Context, followerID, followingID uint) (*entity.Follow, error)
	Delete(ctx context.Context, followerID, followingID uint) error
	Exists(ctx context.Context, followerID, followingID uint) (bool, error)
	ListFollowing(ctx context.Context, userID uint) ([]*entity.User, error)
	ListFollowers(ctx context.Context, userID uint) ([]*entity.User, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge follower -> following. The existence checks and the
// insert share one transaction; the unique index decides concurrent races.
func (r *followRepository) Create(ctx context.Context, followerID, followingID uint) (*entity.Follow, error) {
	if followerID == followingID {
		return nil, entity.ErrSelfFollow
	}

	followModel := models.Follow{FollowerID: followerID, FollowingID: followingID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("id = ?", followingID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return entity.ErrUserNotFound
		}

		if err := tx.Model(&models.Follow{}).
			Where("follower_id = ? AND following_id = ?", followerID, followingID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return entity.ErrAlreadyFollowing
		}

		return tx.Create(&followModel).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUserNotFound), errors.Is(err, entity.ErrAlreadyFollowing):
			return nil, err
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, entity.ErrAlreadyFollowing
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			// either side was deleted after the checks
			return nil, entity.ErrUserNotFound
		case errors.Is(err, models.ErrSelfFollow):
			return nil, entity.ErrSelfFollow
		}
		return nil, fmt.Errorf("follow %d -> %d: %w", followerID, followingID, err)
	}
	return ToFollowEntity(&followModel), nil
}

func (r *followRepository) Delete(ctx context.Context, followerID, followingID uint) error {
	result := r.db.WithContext(ctx).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Delete(&models.Follow{})
	if result.Error != nil {
		return fmt.Errorf("unfollow %d -> %d: %w", followerID, followingID, result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotFollowing
	}
	return nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND following_id = ?", followerID, followingID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check follow %d -> %d: %w", followerID, followingID, err)
	}
	return count > 0, nil
}

func (r *followRepository) ListFollowing(ctx context.Context, userID uint) ([]*entity.User, error) {
	var userModels []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.following_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("users.id ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, fmt.Errorf("list following of %d: %w", userID, err)
	}
	return ToUserEntities(userModels), nil
}

func (r *followRepository) ListFollowers(ctx context.Context, userID uint) ([]*entity.User, error) {
	var userModels []models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.following_id = ?", userID).
		Order("users.id ASC").
		Find(&userModels).Error
	if err != nil {
		return nil, fmt.Errorf("list followers of %d: %w", userID, err)
	}
	return ToUserEntities(userModels), nil
}
