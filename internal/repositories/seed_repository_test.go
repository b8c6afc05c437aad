package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/anonto42/socialwall/backend/internal/seed"
	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUsers struct {
	users []models.User
	err   error
}

func (m *memUsers) GetUsers() ([]models.User, error) { return m.users, m.err }

func (m *memUsers) GetUserByID(id string) (*models.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *memUsers) ReplaceUsers(users []models.User) error {
	m.users = append([]models.User(nil), users...)
	return m.err
}

type memPosts struct {
	posts []models.Post
}

func (m *memPosts) GetAllPosts(context.Context) ([]models.Post, error) { return m.posts, nil }

func (m *memPosts) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	for _, p := range m.posts {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, ErrPostNotFound
}

func (m *memPosts) ReplacePosts(_ context.Context, posts []models.Post) error {
	m.posts = append([]models.Post(nil), posts...)
	return nil
}

type memComments struct {
	comments []models.Comment
}

func (m *memComments) GetComments() ([]models.Comment, error) { return m.comments, nil }

func (m *memComments) GetCommentsByPostID(postID string) ([]models.Comment, error) {
	var out []models.Comment
	for _, c := range m.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memComments) ReplaceComments(comments []models.Comment) error {
	m.comments = append([]models.Comment(nil), comments...)
	return nil
}

func TestSeedRepository_StoreThenLoad(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := seed.Default(now)
	s.Comments = []models.Comment{{ID: "c1", PostID: "1", UserID: "2", Content: "Bravo", CreatedAt: now}}
	s.Posts[0].TranslatedContent = &models.Translation{Text: "Hello", Language: "en"}

	repo := NewSeedRepository(&memUsers{}, &memPosts{}, &memComments{})
	require.NoError(t, repo.StoreSeed(context.Background(), s))

	loaded, err := repo.LoadSeed(context.Background())
	require.NoError(t, err)

	assert.Nil(t, loaded.Posts[0].TranslatedContent, "translations are never stored")
	s.Posts[0].TranslatedContent = nil
	if diff := cmp.Diff(s, loaded); diff != "" {
		t.Errorf("seed mismatch (-want +got):\n%s", diff)
	}
}

func TestSeedRepository_LoadRequiresUsers(t *testing.T) {
	repo := NewSeedRepository(&memUsers{}, &memPosts{}, &memComments{})
	_, err := repo.LoadSeed(context.Background())
	assert.Error(t, err)
}

func TestSeedRepository_LoadWrapsErrors(t *testing.T) {
	cause := errors.New("connection refused")
	repo := NewSeedRepository(&memUsers{err: cause}, &memPosts{}, &memComments{})
	_, err := repo.LoadSeed(context.Background())
	require.Error(t, err)
	assert.Equal(t, cause, errors.Cause(err))
	assert.Contains(t, err.Error(), "load users")
}

func TestSeedRepository_VerifySeed(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := seed.Default(now)
	s.Comments = []models.Comment{{ID: "c1", PostID: "2", UserID: "1", Content: "Super", CreatedAt: now}}

	users, posts, comments := &memUsers{}, &memPosts{}, &memComments{}
	repo := NewSeedRepository(users, posts, comments)
	require.NoError(t, repo.StoreSeed(context.Background(), s))
	require.NoError(t, repo.VerifySeed(context.Background(), s))

	posts.posts = posts.posts[1:]
	err := repo.VerifySeed(context.Background(), s)
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestSeedRepository_VerifySeedDetectsMissingAuthorAndComments(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	s := seed.Default(now)

	users, posts, comments := &memUsers{}, &memPosts{}, &memComments{}
	repo := NewSeedRepository(users, posts, comments)
	require.NoError(t, repo.StoreSeed(context.Background(), s))

	comments.comments = []models.Comment{{ID: "stray", PostID: "3", UserID: "2", Content: "?"}}
	assert.ErrorContains(t, repo.VerifySeed(context.Background(), s), "post 3 has 1 stored comments, want 0")

	comments.comments = nil
	users.users = users.users[1:]
	assert.ErrorContains(t, repo.VerifySeed(context.Background(), s), "read back author 1 of post 1")
}
