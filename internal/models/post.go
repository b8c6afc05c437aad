package models

import "time"

// Post represents a feed entry. Seed posts are stored in MongoDB when the
// database seed source is used; session copies live in memory only.
type Post struct {
	ID                string       `json:"id" bson:"_id"`
	UserID            string       `json:"user_id" bson:"user_id"` // ID of the author
	Content           string       `json:"content" bson:"content"`
	CreatedAt         time.Time    `json:"created_at" bson:"created_at"`
	Likes             int          `json:"likes" bson:"likes"`
	Comments          int          `json:"comments" bson:"comments"`
	ImageURL          string       `json:"image_url,omitempty" bson:"image_url,omitempty"` // remote URL or data URL
	TranslatedContent *Translation `json:"translated_content,omitempty" bson:"-"`
}

// Translation is a cached translation of a post's content
type Translation struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// CreatePostRequest defines the request body for creating a new post.
// Blank content is accepted here when an image is attached; the feed decides.
type CreatePostRequest struct {
	Content  string `json:"content" form:"content" validate:"max=5000"`
	ImageURL string `json:"image_url,omitempty" form:"image_url" validate:"omitempty,url|datauri"`
}

// ScrollRequest carries the viewport geometry reported by the page
type ScrollRequest struct {
	ScrollTop    int `json:"scroll_top" form:"scroll_top" validate:"min=0"`
	ClientHeight int `json:"client_height" form:"client_height" validate:"min=0"`
	ScrollHeight int `json:"scroll_height" form:"scroll_height" validate:"min=0"`
}
