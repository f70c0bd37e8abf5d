package persistent

import (
	"igclone/internal/entity"
	"igclone/pkg/models"
)

func ToUserEntity(m *models.User) *entity.User {
	if m == nil {
		return nil
	}

	return &entity.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Password:  m.Password,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToUserModel(e *entity.User) *models.User {
	if e == nil {
		return nil
	}

	return &models.User{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToUserEntities(ms []models.User) []*entity.User {
	users := make([]*entity.User, len(ms))
	for i := range ms {
		users[i] = ToUserEntity(&ms[i])
	}
	return users
}

func ToPostEntity(m *models.Post) *entity.Post {
	if m == nil {
		return nil
	}

	return &entity.Post{
		ID:        m.ID,
		UserID:    m.UserID,
		Content:   m.Content,
		ImageURL:  m.ImageURL,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func ToPostModel(e *entity.Post) *models.Post {
	if e == nil {
		return nil
	}

	return &models.Post{
		ID:        e.ID,
		UserID:    e.UserID,
		Content:   e.Content,
		ImageURL:  e.ImageURL,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

func ToCommentEntity(m *models.Comment) *entity.Comment {
	if m == nil {
		return nil
	}

	return &entity.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func ToCommentModel(e *entity.Comment) *models.Comment {
	if e == nil {
		return nil
	}

	return &models.Comment{
		ID:        e.ID,
		PostID:    e.PostID,
		UserID:    e.UserID,
		Content:   e.Content,
		CreatedAt: e.CreatedAt,
	}
}

func ToFollowEntity(m *models.Follow) *entity.Follow {
	if m == nil {
		return nil
	}

	return &entity.Follow{
		ID:          m.ID,
		FollowerID:  m.FollowerID,
		FollowingID: m.FollowingID,
		CreatedAt:   m.CreatedAt,
	}
}

func ToLikeEntity(m *models.Like) *entity.Like {
	if m == nil {
		return nil
	}

	return &entity.Like{
		ID:        m.ID,
		UserID:    m.UserID,
		PostID:    m.PostID,
		CreatedAt: m.CreatedAt,
	}
}
