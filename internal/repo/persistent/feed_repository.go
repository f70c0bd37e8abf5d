package persistent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"igclone/internal/entity"
	"igclone/pkg/models"

	"gorm.io/gorm"
)

type FeedRepository interface {
	ListPosts(ctx context.Context, filter entity.FeedFilter) ([]*entity.Post, error)
	GetPostWithLikes(ctx context.Context, postID uint) (*entity.Post, error)
}

type feedRepository struct {
	db *gorm.DB
}

func NewFeedRepository(db *gorm.DB) FeedRepository {
	return &feedRepository{db: db}
}

// postRow is a post joined with its aggregated like count.
type postRow struct {
	ID         uint
	UserID     uint
	Content    string
	ImageURL   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	LikesCount int64
}

func (row *postRow) toEntity() *entity.Post {
	return &entity.Post{
		ID:         row.ID,
		UserID:     row.UserID,
		Content:    row.Content,
		ImageURL:   row.ImageURL,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
		LikesCount: row.LikesCount,
	}
}

func (r *feedRepository) postsWithLikes(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Model(&models.Post{}).
		Select("posts.id, posts.user_id, posts.content, posts.image_url, posts.created_at, posts.updated_at, COUNT(likes.id) AS likes_count").
		Joins("LEFT JOIN likes ON likes.post_id = posts.id").
		Group("posts.id, posts.user_id, posts.content, posts.image_url, posts.created_at, posts.updated_at")
}

// ListPosts returns one page of posts with like counts. Candidates are either
// the posts of users followed by filter.FollowerID or the posts of
// filter.AuthorID. Rows with equal sort keys are ordered by post id ascending.
func (r *feedRepository) ListPosts(ctx context.Context, filter entity.FeedFilter) ([]*entity.Post, error) {
	query := r.postsWithLikes(ctx)
	switch {
	case filter.AuthorID != 0:
		query = query.Where("posts.user_id = ?", filter.AuthorID)
	case filter.FollowerID != 0:
		query = query.Where("posts.user_id IN (?)",
			r.db.WithContext(ctx).Model(&models.Follow{}).Select("following_id").Where("follower_id = ?", filter.FollowerID))
	default:
		return nil, errors.New("feed filter needs a follower or an author")
	}

	query = query.Order(orderClause(filter.SortBy, filter.SortOrder)).Order("posts.id ASC")
	if filter.Skip > 0 {
		query = query.Offset(filter.Skip)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []postRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list feed: %w", err)
	}

	posts := make([]*entity.Post, len(rows))
	for i := range rows {
		posts[i] = rows[i].toEntity()
	}
	return posts, nil
}

func (r *feedRepository) GetPostWithLikes(ctx context.Context, postID uint) (*entity.Post, error) {
	var rows []postRow
	if err := r.postsWithLikes(ctx).Where("posts.id = ?", postID).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("get post %d: %w", postID, err)
	}
	if len(rows) == 0 {
		return nil, entity.ErrPostNotFound
	}
	return rows[0].toEntity(), nil
}

// orderClause only ever emits whitelisted columns.
func orderClause(sortBy entity.SortField, order entity.SortOrder) string {
	column := "posts.created_at"
	if sortBy == entity.SortByLikes {
		column = "likes_count"
	}
	direction := "DESC"
	if order == entity.SortAsc {
		direction = "ASC"
	}
	return column + " " + direction
}
