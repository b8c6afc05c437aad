package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUserByID_SeedPosts(t *testing.T) {
	s := Default(time.Now())
	dir := NewDirectory(s.Users)

	for _, p := range s.Posts {
		assert.Equal(t, p.UserID, dir.GetUserByID(p.UserID).ID)
	}
}

func TestGetUserByID_FallsBackToFirstUser(t *testing.T) {
	s := Default(time.Now())
	dir := NewDirectory(s.Users)

	assert.Equal(t, "Marie Dubois", dir.GetUserByID("42").Name)
	assert.Equal(t, "1", dir.GetUserByID("").ID)
}

func TestGetUserByID_EmptyDirectory(t *testing.T) {
	assert.Empty(t, NewDirectory(nil).GetUserByID("1").ID)
}

func TestFormatDate(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		ago  time.Duration
		want string
	}{
		{30 * time.Second, "30 secondes"},
		{time.Second, "1 seconde"},
		{0, "0 secondes"},
		{time.Minute, "1 minute"},
		{59 * time.Minute, "59 minutes"},
		{90 * time.Minute, "1 heure"},
		{5 * time.Hour, "5 heures"},
		{25 * time.Hour, "1 jour"},
		{48 * time.Hour, "2 jours"},
		{-time.Hour, "0 secondes"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatDate(now, now.Add(-tc.ago)), tc.ago.String())
	}
}

func TestDefault_Verbatim(t *testing.T) {
	now := time.Now()
	s := Default(now)

	require.Len(t, s.Users, 4)
	require.Len(t, s.Posts, 5)
	assert.Empty(t, s.Comments)

	likes := []int{15, 24, 32, 18, 21}
	comments := []int{3, 5, 7, 4, 6}
	ages := []time.Duration{time.Hour, 3 * time.Hour, 5 * time.Hour, 10 * time.Hour, 24 * time.Hour}
	for i, p := range s.Posts {
		assert.Equal(t, likes[i], p.Likes)
		assert.Equal(t, comments[i], p.Comments)
		assert.Equal(t, now.Add(-ages[i]), p.CreatedAt)
	}
	assert.NotEmpty(t, s.Posts[2].ImageURL)
	assert.NotEmpty(t, s.Posts[4].ImageURL)
}

func TestClone_IsDeep(t *testing.T) {
	s := Default(time.Now())
	c := s.Clone()
	c.Posts[0].Likes = 999
	c.Users[0].Name = "changed"

	assert.Equal(t, 15, s.Posts[0].Likes)
	assert.Equal(t, "Marie Dubois", s.Users[0].Name)
}
