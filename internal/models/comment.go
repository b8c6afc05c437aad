package models

import "time"

// Comment represents a comment on a post
type Comment struct {
	ID        string    `json:"id" gorm:"primaryKey;size:64"`
	PostID    string    `json:"post_id" gorm:"index;size:64"` // ID of the post the comment belongs to
	UserID    string    `json:"user_id" gorm:"index;size:64"` // ID of the user who made the comment
	Content   string    `json:"content" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	Content string `json:"content" form:"content" validate:"notblank,max=500"`
}
