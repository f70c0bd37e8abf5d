package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrSelfFollow = errors.New("follower and following must differ")

type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:unique_follow,priority:1;check:chk_follows_not_self,follower_id <> following_id" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:unique_follow,priority:2;index" json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`

	Follower  User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
	Following User `gorm:"foreignKey:FollowingID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Follow) TableName() string {
	return "follows"
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.FollowerID == f.FollowingID {
		return ErrSelfFollow
	}
	return nil
}
