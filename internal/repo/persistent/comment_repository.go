package persistent

import (
	"context"
	"errors"
	"fmt"

	"igclone/internal/entity"
	"igclone/pkg/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) error
	ListByPost(ctx context.Context, postID uint) ([]*entity.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	commentModel := ToCommentModel(comment)
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Post{}).Where("id = ?", comment.PostID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return entity.ErrPostNotFound
		}
		return tx.Create(commentModel).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPostNotFound):
			return err
		case errors.Is(err, models.ErrEmptyContent):
			return entity.ErrEmptyContent
		case errors.Is(err, gorm.ErrForeignKeyViolated):
			return missingParent(ctx, r.db, comment.PostID)
		}
		return fmt.Errorf("create comment on post %d: %w", comment.PostID, err)
	}
	*comment = *ToCommentEntity(commentModel)
	return nil
}

// ListByPost returns the comments of a post, newest first.
func (r *commentRepository) ListByPost(ctx context.Context, postID uint) ([]*entity.Comment, error) {
	var commentModels []models.Comment
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at DESC").
		Order("id DESC").
		Find(&commentModels).Error
	if err != nil {
		return nil, fmt.Errorf("list comments of post %d: %w", postID, err)
	}

	comments := make([]*entity.Comment, len(commentModels))
	for i := range commentModels {
		comments[i] = ToCommentEntity(&commentModels[i])
	}
	return comments, nil
}
