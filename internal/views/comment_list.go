package views

import (
	"time"

	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/anonto42/socialwall/backend/internal/seed"
)

// NoCommentsPlaceholder is shown instead of an empty list.
const NoCommentsPlaceholder = "Aucun commentaire pour le moment."

// CommentItem is one rendered comment
type CommentItem struct {
	ID      string      `json:"id"`
	Content string      `json:"content"`
	Author  models.User `json:"author"`
	Age     string      `json:"age"`
}

// CommentList renders comments in the order given.
type CommentList struct {
	Items       []CommentItem `json:"items"`
	Placeholder string        `json:"placeholder,omitempty"`
}

func NewCommentItem(c models.Comment, author models.User, now time.Time) CommentItem {
	return CommentItem{
		ID:      c.ID,
		Content: c.Content,
		Author:  author,
		Age:     seed.FormatDate(now, c.CreatedAt),
	}
}

func NewCommentList(comments []models.Comment, dir *seed.Directory, now time.Time) CommentList {
	if len(comments) == 0 {
		return CommentList{Placeholder: NoCommentsPlaceholder}
	}
	items := make([]CommentItem, len(comments))
	for i, c := range comments {
		items[i] = NewCommentItem(c, dir.GetUserByID(c.UserID), now)
	}
	return CommentList{Items: items}
}

func (l CommentList) Empty() bool { return len(l.Items) == 0 }
