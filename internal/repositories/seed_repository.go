package repositories

import (
	"context"

	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/anonto42/socialwall/backend/internal/seed"
	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates the PostgreSQL tables holding seed users and comments.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Comment{})
}

// SeedRepository reads and writes a whole seed across the user, post and
// comment stores.
type SeedRepository struct {
	users    UserRepository
	posts    PostRepository
	comments CommentRepository
}

// NewSeedRepository creates a new SeedRepository
func NewSeedRepository(users UserRepository, posts PostRepository, comments CommentRepository) *SeedRepository {
	return &SeedRepository{users: users, posts: posts, comments: comments}
}

// LoadSeed reads the stored seed. An empty user set is an error since
// every post needs a fallback author.
func (r *SeedRepository) LoadSeed(ctx context.Context) (seed.Seed, error) {
	users, err := r.users.GetUsers()
	if err != nil {
		return seed.Seed{}, errors.Wrap(err, "load users")
	}
	if len(users) == 0 {
		return seed.Seed{}, errors.New("no seed users stored")
	}

	posts, err := r.posts.GetAllPosts(ctx)
	if err != nil {
		return seed.Seed{}, errors.Wrap(err, "load posts")
	}

	comments, err := r.comments.GetComments()
	if err != nil {
		return seed.Seed{}, errors.Wrap(err, "load comments")
	}

	logger.Log.WithField("users", len(users)).
		WithField("posts", len(posts)).
		WithField("comments", len(comments)).
		Info("seed loaded from database")
	return seed.Seed{Users: users, Posts: posts, Comments: comments}, nil
}

// StoreSeed replaces everything stored with s.
func (r *SeedRepository) StoreSeed(ctx context.Context, s seed.Seed) error {
	if err := r.users.ReplaceUsers(s.Users); err != nil {
		return errors.Wrap(err, "store users")
	}
	posts := make([]models.Post, len(s.Posts))
	for i, p := range s.Posts {
		p.TranslatedContent = nil
		posts[i] = p
	}
	if err := r.posts.ReplacePosts(ctx, posts); err != nil {
		return errors.Wrap(err, "store posts")
	}
	if err := r.comments.ReplaceComments(s.Comments); err != nil {
		return errors.Wrap(err, "store comments")
	}
	return nil
}

// VerifySeed reads back every post of s along with its author and
// comments, failing on the first one that was not stored as written.
func (r *SeedRepository) VerifySeed(ctx context.Context, s seed.Seed) error {
	wantComments := make(map[string]int, len(s.Posts))
	for _, c := range s.Comments {
		wantComments[c.PostID]++
	}

	for _, p := range s.Posts {
		stored, err := r.posts.GetPostByID(ctx, p.ID)
		if err != nil {
			return errors.Wrapf(err, "read back post %s", p.ID)
		}
		if _, err := r.users.GetUserByID(stored.UserID); err != nil {
			return errors.Wrapf(err, "read back author %s of post %s", stored.UserID, p.ID)
		}
		comments, err := r.comments.GetCommentsByPostID(p.ID)
		if err != nil {
			return errors.Wrapf(err, "read back comments of post %s", p.ID)
		}
		if len(comments) != wantComments[p.ID] {
			return errors.Errorf("post %s has %d stored comments, want %d", p.ID, len(comments), wantComments[p.ID])
		}
	}
	return nil
}
