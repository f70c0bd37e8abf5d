package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

type Comment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PostID    uint      `gorm:"not null;index:idx_comments_post_created,priority:1" json:"post_id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"index:idx_comments_post_created,priority:2" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Post Post `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Comment) TableName() string {
	return "comments"
}

func (c *Comment) BeforeSave(tx *gorm.DB) error {
	if strings.TrimSpace(c.Content) == "" {
		return ErrEmptyContent
	}
	return nil
}

// All returns every model in dependency order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{&User{}, &Post{}, &Follow{}, &Comment{}, &Like{}}
}
