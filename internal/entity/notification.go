package entity

import "time"

type Notification struct {
	Type      string    `json:"type"`
	ActorID   uint      `json:"actor_id"`
	PostID    uint      `json:"post_id,omitempty"`
	CommentID uint      `json:"comment_id,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
