package persistent

import (
	"context"
	"errors"
	"fmt"

	"igclone/internal/entity"
	"igclone/pkg/models"

	"gorm.io/gorm"
)

type LikeRepository interface {
	Create(ctx context.Context, userID, postID uint) (*entity.Like, error)
	Delete(ctx context.Context, userID, postID uint) error
	CountByPost(ctx context.Context, postID uint) (int64, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) Create(ctx context.Context, userID, postID uint) (*entity.Like, error) {
	likeModel := models.Like{UserID: userID, PostID: postID}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return entity.ErrPostNotFound
		}

		if err := tx.Model(&models.Like{}).
			Where("user_id = ? AND post_id = ?", userID, postID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return entity.ErrAlreadyLiked
		}

		return tx.Create(&likeModel).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPostNotFound), errors.Is(err, entity.ErrAlreadyLiked):
			return nil, err
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, entity.ErrAlreadyLiked
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return nil, missingParent(ctx, r.db, postID)
		}
		return nil, fmt.Errorf("like post %d: %w", postID, err)
	}
	return ToLikeEntity(&likeModel), nil
}

// missingParent resolves a foreign key violation on a row that references
// both a user and a post.
func missingParent(ctx context.Context, db *gorm.DB, postID uint) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Post{}).Where("id = ?", postID).Count(&count).Error; err != nil {
		return fmt.Errorf("check post %d: %w", postID, err)
	}
	if count == 0 {
		return entity.ErrPostNotFound
	}
	return entity.ErrUserNotFound
}

func (r *likeRepository) Delete(ctx context.Context, userID, postID uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&models.Like{})
	if result.Error != nil {
		return fmt.Errorf("unlike post %d: %w", postID, result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrNotLiked
	}
	return nil
}

func (r *likeRepository) CountByPost(ctx context.Context, postID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Like{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count likes of post %d: %w", postID, err)
	}
	return count, nil
}
