package views

import (
	"fmt"
	"time"

	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/anonto42/socialwall/backend/internal/seed"
)

// CardState is the presentational state of one post card. Counts and the
// liked flag are not kept here; they come from the feed.
type CardState struct {
	ShowComments    bool
	ShowTranslation bool
}

// PostCard is a post as rendered for one viewer
type PostCard struct {
	Post            models.Post         `json:"post"`
	Author          models.User         `json:"author"`
	Age             string              `json:"age"`
	Liked           bool                `json:"liked"`
	LikesLabel      string              `json:"likes_label"`
	CommentsLabel   string              `json:"comments_label"`
	Comments        CommentList         `json:"comments"`
	ShowComments    bool                `json:"show_comments"`
	ShowTranslation bool                `json:"show_translation"`
	Translation     *models.Translation `json:"translation,omitempty"`
	Translating     bool                `json:"translating"`
	TranslateLabel  string              `json:"translate_label"`
}

func NewPostCard(p models.Post, author models.User, liked bool, comments CommentList, st CardState, translating bool, now time.Time) PostCard {
	card := PostCard{
		Post:          p,
		Author:        author,
		Age:           seed.FormatDate(now, p.CreatedAt),
		Liked:         liked,
		LikesLabel:    fmt.Sprintf("%d j'aime", p.Likes),
		CommentsLabel: fmt.Sprintf("%d commentaires", p.Comments),
		Comments:      comments,
		ShowComments:  st.ShowComments,
		Translation:   p.TranslatedContent,
		Translating:   translating,
	}
	// Only a cached translation can be revealed.
	card.ShowTranslation = st.ShowTranslation && card.Translation != nil
	card.TranslateLabel = "Traduire"
	if translating {
		card.TranslateLabel = "..."
	}
	return card
}

// DOMID is the anchor used to scroll back to the card.
func (c PostCard) DOMID() string { return "post-" + c.Post.ID }

// HasContent is false for image-only posts.
func (c PostCard) HasContent() bool { return c.Post.Content != "" }
