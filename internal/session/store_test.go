package session

import (
	"testing"
	"time"

	"github.com/anonto42/socialwall/backend/internal/feed"
	"github.com/anonto42/socialwall/backend/internal/seed"
	"github.com/anonto42/socialwall/backend/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFactory() *views.Page {
	now := time.Now()
	return views.NewPage(feed.New(seed.Default(now), feed.WithLoadLatency(0)), views.MaxImageBytes)
}

func TestNewStore_RejectsZeroCapacity(t *testing.T) {
	_, err := NewStore(0, testFactory)
	assert.Error(t, err)
}

func TestGetOrCreate(t *testing.T) {
	s, err := NewStore(4, testFactory)
	require.NoError(t, err)
	defer s.Close()

	id, page, created := s.GetOrCreate("")
	assert.True(t, created)
	assert.NotEmpty(t, id)

	again, samePage, created := s.GetOrCreate(id)
	assert.False(t, created)
	assert.Equal(t, id, again)
	assert.Same(t, page, samePage)

	other, _, created := s.GetOrCreate("unknown")
	assert.True(t, created)
	assert.NotEqual(t, "unknown", other)
	assert.Equal(t, 2, s.Len())
}

func TestSessionsAreIsolated(t *testing.T) {
	s, err := NewStore(4, testFactory)
	require.NoError(t, err)
	defer s.Close()

	_, a := s.Create()
	_, b := s.Create()

	_, err = a.ToggleLike("1")
	require.NoError(t, err)

	pa, _ := a.Feed().Post("1")
	pb, _ := b.Feed().Post("1")
	assert.Equal(t, 16, pa.Likes)
	assert.Equal(t, 15, pb.Likes)
}

func TestEvictionClosesPage(t *testing.T) {
	s, err := NewStore(1, testFactory)
	require.NoError(t, err)
	defer s.Close()

	first, page := s.Create()
	s.Create()

	_, ok := s.Get(first)
	assert.False(t, ok)

	_, err = page.Feed().CreatePost("late", "")
	assert.ErrorIs(t, err, feed.ErrClosed)
}
