package persistent

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"igclone/internal/entity"
	"igclone/pkg/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context, skip, limit int) ([]*entity.User, error)
	FindFirstByName(ctx context.Context, fragment string) (*entity.User, error)
	Update(ctx context.Context, id uint, name, email string) (*entity.User, error)
	Delete(ctx context.Context, id uint) ([]string, error)
	Profile(ctx context.Context, id uint) (*entity.Profile, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := ToUserModel(user)
	if err := r.db.WithContext(ctx).Create(userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entity.ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	*user = *ToUserEntity(userModel)
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var userModel models.User
	if err := r.db.WithContext(ctx).First(&userModel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel models.User
	email = strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check user %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *userRepository) List(ctx context.Context, skip, limit int) ([]*entity.User, error) {
	var userModels []models.User
	if err := r.db.WithContext(ctx).Order("id ASC").Offset(skip).Limit(limit).Find(&userModels).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return ToUserEntities(userModels), nil
}

func (r *userRepository) FindFirstByName(ctx context.Context, fragment string) (*entity.User, error) {
	var userModel models.User
	pattern := "%" + escapeLike(strings.ToLower(fragment)) + "%"
	err := r.db.WithContext(ctx).
		Where("LOWER(name) LIKE ? ESCAPE '\\'", pattern).
		Order("id ASC").
		First(&userModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entity.ErrUserNotFound
		}
		return nil, fmt.Errorf("search users: %w", err)
	}
	return ToUserEntity(&userModel), nil
}

func (r *userRepository) Update(ctx context.Context, id uint, name, email string) (*entity.User, error) {
	var userModel models.User
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&userModel, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return entity.ErrUserNotFound
			}
			return err
		}
		userModel.Name = name
		userModel.Email = email
		return tx.Save(&userModel).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, entity.ErrEmailTaken
		}
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("update user %d: %w", id, err)
	}
	return ToUserEntity(&userModel), nil
}

// Delete removes the user; foreign keys cascade to posts, comments, likes and
// follows. It returns the image URLs of the deleted posts.
func (r *userRepository) Delete(ctx context.Context, id uint) ([]string, error) {
	var imageURLs []string
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Post{}).
			Where("user_id = ? AND image_url IS NOT NULL", id).
			Pluck("image_url", &imageURLs).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return entity.ErrUserNotFound
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("delete user %d: %w", id, err)
	}
	return imageURLs, nil
}

func (r *userRepository) Profile(ctx context.Context, id uint) (*entity.Profile, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	profile := &entity.Profile{ID: user.ID, Name: user.Name}
	db := r.db.WithContext(ctx)
	if err := db.Model(&models.Post{}).Where("user_id = ?", id).Count(&profile.PostCount).Error; err != nil {
		return nil, fmt.Errorf("count posts: %w", err)
	}
	if err := db.Model(&models.Follow{}).Where("following_id = ?", id).Count(&profile.FollowersCount).Error; err != nil {
		return nil, fmt.Errorf("count followers: %w", err)
	}
	if err := db.Model(&models.Follow{}).Where("follower_id = ?", id).Count(&profile.FollowingCount).Error; err != nil {
		return nil, fmt.Errorf("count following: %w", err)
	}
	return profile, nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
