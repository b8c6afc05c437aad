package feed

import "github.com/anonto42/socialwall/backend/internal/models"

type likeKey struct {
	postID, viewerID string
}

// state is a snapshot of the canonical collections. A published state is
// never mutated; writers clone it, change the clone and swap it in.
type state struct {
	posts    []models.Post
	comments []models.Comment
	likes    map[likeKey]bool
}

func newState(posts []models.Post, comments []models.Comment) *state {
	return &state{
		posts:    posts,
		comments: comments,
		likes:    make(map[likeKey]bool),
	}
}

func (s *state) clone() *state {
	next := &state{
		posts:    append([]models.Post(nil), s.posts...),
		comments: append([]models.Comment(nil), s.comments...),
		likes:    make(map[likeKey]bool, len(s.likes)),
	}
	for k, v := range s.likes {
		next.likes[k] = v
	}
	return next
}

func (s *state) indexOf(postID string) int {
	for i := range s.posts {
		if s.posts[i].ID == postID {
			return i
		}
	}
	return -1
}

// copyPost detaches the translation pointer so callers cannot reach into
// the snapshot.
func copyPost(p models.Post) models.Post {
	if p.TranslatedContent != nil {
		t := *p.TranslatedContent
		p.TranslatedContent = &t
	}
	return p
}
