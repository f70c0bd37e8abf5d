package entity

import (
	"io"
	"time"
)

type Post struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	Content    string    `json:"content"`
	ImageURL   *string   `json:"image_url"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	LikesCount int64     `json:"likes_count"`
}

type Comment struct {
	ID        uint      `json:"id"`
	PostID    uint      `json:"post_id"`
	UserID    uint      `json:"user_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type Like struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	PostID    uint      `json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ImageUpload is an image received from a client, not yet stored.
type ImageUpload struct {
	Filename string
	Size     int64
	Body     io.ReadSeeker
}

// PostUpdate carries an owner's edit. Image takes precedence over RemoveImage.
type PostUpdate struct {
	Content     string
	Image       *ImageUpload
	RemoveImage bool
}
