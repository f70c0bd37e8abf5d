package models

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
)

var ErrEmptyContent = errors.New("content must not be empty")

type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index:idx_posts_user_created,priority:1" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	ImageURL  *string   `gorm:"type:varchar(500)" json:"image_url"`
	CreatedAt time.Time `gorm:"index:idx_posts_user_created,priority:2" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Post) TableName() string {
	return "posts"
}

func (p *Post) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(p.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}
