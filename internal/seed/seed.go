// Package seed holds the fixed sample data a feed session starts from, plus
// the lookup and formatting helpers the views rely on.
package seed

import (
	"time"

	"github.com/anonto42/socialwall/backend/internal/models"
)

// Seed is the initial dataset injected into a feed. It is treated as
// immutable; feeds work on a Clone.
type Seed struct {
	Users    []models.User
	Posts    []models.Post
	Comments []models.Comment
}

// CurrentUserID is the viewer that authors new posts and comments.
const CurrentUserID = "1"

// Profile shown in the navigation bar and next to the create-post form.
var Profile = models.User{
	ID:     CurrentUserID,
	Name:   "Alex Dubois",
	Avatar: "https://i.pravatar.cc/150?img=2",
}

// Default returns the sample users and posts, with post ages relative to now.
func Default(now time.Time) Seed {
	return Seed{
		Users: []models.User{
			{ID: "1", Name: "Marie Dubois", Avatar: "https://i.pravatar.cc/150?img=1"},
			{ID: "2", Name: "Jean Martin", Avatar: "https://i.pravatar.cc/150?img=8"},
			{ID: "3", Name: "Sophie Laurent", Avatar: "https://i.pravatar.cc/150?img=5"},
			{ID: "4", Name: "Thomas Petit", Avatar: "https://i.pravatar.cc/150?img=3"},
		},
		Posts: []models.Post{
			{
				ID:        "1",
				UserID:    "1",
				Content:   "Bonjour à tous ! Je suis très heureux de partager cette journée avec vous.",
				CreatedAt: now.Add(-time.Hour),
				Likes:     15,
				Comments:  3,
			},
			{
				ID:        "2",
				UserID:    "2",
				Content:   "Je viens de terminer mon nouveau projet et je suis très satisfait du résultat !",
				CreatedAt: now.Add(-3 * time.Hour),
				Likes:     24,
				Comments:  5,
			},
			{
				ID:        "3",
				UserID:    "3",
				Content:   "Quelle belle journée pour une promenade dans le parc ! Le soleil brille et les oiseaux chantent.",
				ImageURL:  "https://images.unsplash.com/photo-1497436072909-60f360e1d4b1?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1024",
				CreatedAt: now.Add(-5 * time.Hour),
				Likes:     32,
				Comments:  7,
			},
			{
				ID:        "4",
				UserID:    "4",
				Content:   "Je viens de découvrir un excellent restaurant près de chez moi. Je vous le recommande vivement !",
				CreatedAt: now.Add(-10 * time.Hour),
				Likes:     18,
				Comments:  4,
			},
			{
				ID:        "5",
				UserID:    "1",
				Content:   "Aujourd'hui, j'ai commencé à apprendre une nouvelle langue. C'est difficile mais passionnant !",
				ImageURL:  "https://images.unsplash.com/photo-1488190211105-8b0e65b80b4e?ixlib=rb-4.0.3&ixid=MnwxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8&auto=format&fit=crop&w=1024",
				CreatedAt: now.Add(-24 * time.Hour),
				Likes:     21,
				Comments:  6,
			},
		},
	}
}

// Clone returns a deep copy so that callers can mutate posts and comments
// without touching the seed.
func (s Seed) Clone() Seed {
	out := Seed{
		Users:    append([]models.User(nil), s.Users...),
		Posts:    make([]models.Post, len(s.Posts)),
		Comments: append([]models.Comment(nil), s.Comments...),
	}
	for i, p := range s.Posts {
		if p.TranslatedContent != nil {
			t := *p.TranslatedContent
			p.TranslatedContent = &t
		}
		out.Posts[i] = p
	}
	return out
}
