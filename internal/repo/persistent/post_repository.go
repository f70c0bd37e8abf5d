package persistent

import (
	"context"
	"errors"
	"fmt"

	"igclone/internal/entity"
	"igclone/pkg/models"

	"gorm.io/gorm"
)

type PostRepository interface {
	Create(ctx context.Context, post *entity.Post) error
	GetByID(ctx context.Context, id uint) (*entity.Post, error)
	Update(ctx context.Context, post *entity.Post) error
	Delete(ctx context.Context, id uint) error
}

type postRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

func (r *postRepository) Create(ctx context.Context, post *entity.Post) error {
	postModel := ToPostModel(post)
	if err := r.db.WithContext(ctx).Create(postModel).Error; err != nil {
		if errors.Is(err, models.ErrEmptyContent) {
			return entity.ErrEmptyContent
		}
		return fmt.Errorf("create post: %w", err)
	}
	*post = *ToPostEntity(postModel)
	return nil
}

func (r *postRepository) GetByID(ctx context.Context, id uint) (*entity.Post, error) {
	var postModel models.Post
	if err := r.db.WithContext(ctx).First(&postModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("get post %d: %w", id, err)
	}
	return ToPostEntity(&postModel), nil
}

// Update persists content and image of post and refreshes its timestamps.
func (r *postRepository) Update(ctx context.Context, post *entity.Post) error {
	var postModel models.Post
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&postModel, post.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrPostNotFound
			}
			return err
		}
		postModel.Content = post.Content
		postModel.ImageURL = post.ImageURL
		return tx.Save(&postModel).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrPostNotFound):
			return err
		case errors.Is(err, models.ErrEmptyContent):
			return entity.ErrEmptyContent
		}
		return fmt.Errorf("update post %d: %w", post.ID, err)
	}
	*post = *ToPostEntity(&postModel)
	return nil
}

// Delete removes the post; comments and likes cascade.
func (r *postRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Post{}, id)
	if result.Error != nil {
		return fmt.Errorf("delete post %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return entity.ErrPostNotFound
	}
	return nil
}
