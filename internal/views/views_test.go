package views

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/anonto42/socialwall/backend/internal/feed"
	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/anonto42/socialwall/backend/internal/seed"
	"github.com/anonto42/socialwall/backend/internal/translation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newTestPage(opts ...feed.Option) *Page {
	base := []feed.Option{
		feed.WithClock(func() time.Time { return testNow }),
		feed.WithLoadLatency(0),
		feed.WithTranslator(translation.NewStub(0)),
	}
	return NewPage(feed.New(seed.Default(testNow), append(base, opts...)...), MaxImageBytes)
}

func noticeMessages(q *NoticeQueue) []string {
	var out []string
	for _, n := range q.Drain() {
		out = append(out, n.Message)
	}
	return out
}

func TestCommentForm_IgnoresBlank(t *testing.T) {
	called := false
	f := CommentForm{PostID: "1", Content: "  \t"}

	assert.False(t, f.Submit(func(string, string) { called = true }))
	assert.False(t, called)
	assert.Equal(t, "  \t", f.Content)
}

func TestCommentForm_PassesRawContentAndClears(t *testing.T) {
	var gotPost, gotContent string
	f := CommentForm{PostID: "1", Content: "  nice!  "}

	assert.True(t, f.Submit(func(postID, content string) {
		gotPost, gotContent = postID, content
	}))
	assert.Equal(t, "1", gotPost)
	assert.Equal(t, "  nice!  ", gotContent)
	assert.Empty(t, f.Content)
}

func TestCommentList_Placeholder(t *testing.T) {
	l := NewCommentList(nil, seed.NewDirectory(seed.Default(testNow).Users), testNow)
	assert.True(t, l.Empty())
	assert.Equal(t, NoCommentsPlaceholder, l.Placeholder)
}

func TestCommentList_KeepsOrderAndResolvesAuthors(t *testing.T) {
	dir := seed.NewDirectory(seed.Default(testNow).Users)
	comments := []models.Comment{
		{ID: "a", PostID: "1", UserID: "2", Content: "first", CreatedAt: testNow.Add(-2 * time.Minute)},
		{ID: "b", PostID: "1", UserID: "404", Content: "second", CreatedAt: testNow.Add(-30 * time.Second)},
	}

	l := NewCommentList(comments, dir, testNow)
	require.Len(t, l.Items, 2)
	assert.Empty(t, l.Placeholder)
	assert.Equal(t, "first", l.Items[0].Content)
	assert.Equal(t, "Jean Martin", l.Items[0].Author.Name)
	assert.Equal(t, "2 minutes", l.Items[0].Age)
	assert.Equal(t, "Marie Dubois", l.Items[1].Author.Name)
	assert.Equal(t, "30 secondes", l.Items[1].Age)
}

func TestNavbar(t *testing.T) {
	n := NewNavbar(seed.Profile)
	assert.Equal(t, "SocialWall", n.Brand)

	n.OnScroll(10)
	assert.False(t, n.Scrolled)
	n.OnScroll(11)
	assert.True(t, n.Scrolled)

	n.ToggleMenu()
	assert.True(t, n.MobileMenuOpen)
	n.ToggleMenu()
	assert.False(t, n.MobileMenuOpen)
}

func TestCreatePostForm_Expansion(t *testing.T) {
	f := NewCreatePostForm(0)
	assert.False(t, f.Expanded())

	f.Focus()
	assert.True(t, f.Expanded())
	f.Blur()
	assert.False(t, f.Expanded())

	f.SetContent("x")
	assert.True(t, f.Expanded())
	f.Cancel()
	assert.False(t, f.Expanded())
}

func TestCreatePostForm_RejectsEmpty(t *testing.T) {
	f := NewCreatePostForm(0)
	q := NewNoticeQueue(0)
	f.SetContent("   ")

	called := false
	err := f.Submit(func(string, string) error { called = true; return nil }, q)
	assert.ErrorIs(t, err, feed.ErrEmptyPost)
	assert.False(t, called)
	assert.Equal(t, []string{MsgEmptyPost}, noticeMessages(q))
}

func TestCreatePostForm_SubmitClears(t *testing.T) {
	f := NewCreatePostForm(0)
	q := NewNoticeQueue(0)
	f.Focus()
	f.SetContent("Salut")
	require.NoError(t, f.AttachImage("a.png", -1, bytes.NewReader(pngBytes(t)), q))

	var gotContent, gotImage string
	err := f.Submit(func(content, imageURL string) error {
		gotContent, gotImage = content, imageURL
		return nil
	}, q)
	require.NoError(t, err)

	assert.Equal(t, "Salut", gotContent)
	assert.True(t, strings.HasPrefix(gotImage, "data:image/png;base64,"))
	assert.Empty(t, f.Content)
	assert.Empty(t, f.ImageURL)
	assert.False(t, f.Expanded())
	assert.Equal(t, []string{MsgPostCreated}, noticeMessages(q))
}

func TestCreatePostForm_ImageOnlyIsAccepted(t *testing.T) {
	f := NewCreatePostForm(0)
	q := NewNoticeQueue(0)
	require.NoError(t, f.AttachImage("a.png", -1, bytes.NewReader(pngBytes(t)), q))
	assert.True(t, f.CanSubmit())
	assert.True(t, f.Expanded())
}

func TestCreatePostForm_OversizedImage(t *testing.T) {
	f := NewCreatePostForm(0)
	q := NewNoticeQueue(0)

	err := f.AttachImage("big.png", MaxImageBytes+1, bytes.NewReader(nil), q)
	assert.ErrorIs(t, err, ErrImageTooLarge)
	assert.Empty(t, f.ImageURL)
	assert.Equal(t, []string{MsgImageTooLarge}, noticeMessages(q))
}

func TestCreatePostForm_OversizedImageWithWrongDeclaredSize(t *testing.T) {
	f := NewCreatePostForm(16)
	q := NewNoticeQueue(0)

	err := f.AttachImage("big.png", 1, bytes.NewReader(make([]byte, 17)), q)
	assert.ErrorIs(t, err, ErrImageTooLarge)
	assert.Empty(t, f.ImageURL)
}

func TestCreatePostForm_NotAnImage(t *testing.T) {
	f := NewCreatePostForm(0)
	q := NewNoticeQueue(0)

	err := f.AttachImage("notes.txt", 5, strings.NewReader("hello"), q)
	assert.ErrorIs(t, err, ErrNotAnImage)
	assert.Empty(t, f.ImageURL)
	assert.Equal(t, []string{MsgNotAnImage}, noticeMessages(q))
}

func TestNoticeQueue_DropsOldest(t *testing.T) {
	q := NewNoticeQueue(2)
	q.Notify(models.NoticeSuccess, "a")
	q.Notify(models.NoticeSuccess, "b")
	q.Notify(models.NoticeError, "c")

	assert.Equal(t, []string{"b", "c"}, noticeMessages(q))
	assert.Zero(t, q.Len())
}

func TestPostCard_Labels(t *testing.T) {
	p := seed.Default(testNow).Posts[0]
	card := NewPostCard(p, seed.Profile, true, CommentList{Placeholder: NoCommentsPlaceholder}, CardState{ShowTranslation: true}, false, testNow)

	assert.Equal(t, "15 j'aime", card.LikesLabel)
	assert.Equal(t, "3 commentaires", card.CommentsLabel)
	assert.Equal(t, "1 heure", card.Age)
	assert.Equal(t, "Traduire", card.TranslateLabel)
	assert.False(t, card.ShowTranslation, "nothing cached to show")
	assert.Equal(t, "post-1", card.DOMID())
}

func TestPage_ToggleLikeTwiceRestores(t *testing.T) {
	p := newTestPage()
	defer p.Close()

	_, err := p.ToggleLike("1")
	require.NoError(t, err)
	card, _ := p.Card("1")
	assert.True(t, card.Liked)
	assert.Equal(t, "16 j'aime", card.LikesLabel)

	_, err = p.ToggleLike("1")
	require.NoError(t, err)
	card, _ = p.Card("1")
	assert.False(t, card.Liked)
	assert.Equal(t, "15 j'aime", card.LikesLabel)
}

func TestPage_SubmitComment(t *testing.T) {
	p := newTestPage()
	defer p.Close()

	_, ok, err := p.SubmitComment("1", "   ")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, p.Feed().CommentCount())

	c, ok, err := p.SubmitComment("1", "nice!")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "nice!", c.Content)

	card, _ := p.Card("1")
	assert.Equal(t, "4 commentaires", card.CommentsLabel)
	require.Len(t, card.Comments.Items, 1)
	assert.True(t, card.ShowComments)
	assert.Equal(t, []string{MsgCommentAdded}, noticeMessages(p.Notices()))
}

func TestPage_SubmitCommentUnknownPost(t *testing.T) {
	p := newTestPage()
	defer p.Close()

	_, ok, err := p.SubmitComment("nope", "hello")
	assert.True(t, ok)
	assert.ErrorIs(t, err, feed.ErrPostNotFound)
}

func TestPage_SubmitDraft(t *testing.T) {
	p := newTestPage()
	defer p.Close()

	_, err := p.SubmitDraft()
	assert.ErrorIs(t, err, feed.ErrEmptyPost)
	assert.Len(t, p.Feed().Posts(), 5)

	p.SetDraft("Nouveau post")
	post, err := p.SubmitDraft()
	require.NoError(t, err)

	view := p.View()
	assert.True(t, view.ScrollToTop)
	assert.Equal(t, post.ID, view.Cards[0].Post.ID)
	assert.Empty(t, view.Draft.Content)
	assert.False(t, view.Draft.Expanded)

	var msgs []string
	for _, n := range view.Notices {
		msgs = append(msgs, n.Message)
	}
	assert.Equal(t, []string{MsgEmptyPost, MsgPostCreated}, msgs)
	assert.False(t, p.View().ScrollToTop, "scroll signal is consumed")
}

func TestPage_TranslateRevealsAndHides(t *testing.T) {
	p := newTestPage()
	defer p.Close()

	tr, err := p.Translate(context.Background(), "1", "en")
	require.NoError(t, err)
	assert.Contains(t, tr.Text, "Hello")

	card, _ := p.Card("1")
	assert.True(t, card.ShowTranslation)
	require.NotNil(t, card.Translation)
	assert.Equal(t, "English", card.Translation.Language)

	p.HideTranslation("1")
	card, _ = p.Card("1")
	assert.False(t, card.ShowTranslation)
	assert.NotNil(t, card.Translation, "cache survives hiding")
}

type failingTranslator struct{}

func (failingTranslator) Translate(context.Context, string, string) (translation.Result, error) {
	return translation.Result{}, assert.AnError
}

func TestPage_TranslateFailure(t *testing.T) {
	p := newTestPage(feed.WithTranslator(failingTranslator{}))
	defer p.Close()

	_, err := p.Translate(context.Background(), "1", "en")
	require.Error(t, err)

	card, _ := p.Card("1")
	assert.False(t, card.ShowTranslation)
	assert.Nil(t, card.Translation)
	assert.Equal(t, []string{MsgTranslationFailed}, noticeMessages(p.Notices()))
}

func TestPage_ToggleComments(t *testing.T) {
	p := newTestPage()
	defer p.Close()

	shown, err := p.ToggleComments("2")
	require.NoError(t, err)
	assert.True(t, shown)

	card, _ := p.Card("2")
	assert.True(t, card.ShowComments)
	assert.True(t, card.Comments.Empty())

	shown, err = p.ToggleComments("2")
	require.NoError(t, err)
	assert.False(t, shown)

	_, err = p.ToggleComments("missing")
	assert.ErrorIs(t, err, feed.ErrPostNotFound)
}

func TestPage_ScrollLoadsOnce(t *testing.T) {
	p := newTestPage(feed.WithLoadLatency(50 * time.Millisecond))
	defer p.Close()

	far := feed.ScrollPosition{ScrollTop: 0, ClientHeight: 800, ScrollHeight: 5000}
	_, started, err := p.Scroll(far)
	require.NoError(t, err)
	assert.False(t, started)

	near := feed.ScrollPosition{ScrollTop: 4000, ClientHeight: 800, ScrollHeight: 5000}
	done, started, err := p.Scroll(near)
	require.NoError(t, err)
	require.True(t, started)

	_, again, err := p.Scroll(near)
	require.NoError(t, err)
	assert.False(t, again)
	assert.True(t, p.View().Loading)

	<-done
	view := p.View()
	assert.False(t, view.Loading)
	assert.Len(t, view.Cards, 10)
	assert.True(t, view.Navbar.Scrolled)
}

func TestPage_Reset(t *testing.T) {
	p := newTestPage()
	defer p.Close()

	p.SetDraft("draft")
	p.ToggleMenu()
	_, err := p.CreatePost("hello", "")
	require.NoError(t, err)

	p.Reset()
	view := p.View()
	assert.Len(t, view.Cards, 5)
	assert.Empty(t, view.Draft.Content)
	assert.False(t, view.Navbar.MobileMenuOpen)
	assert.Empty(t, view.Notices)
	assert.Equal(t, "Alex Dubois", view.Navbar.Profile.Name)
}

func TestPage_DraftAndNavbarKeepNotices(t *testing.T) {
	p := newTestPage()
	defer p.Close()

	_, err := p.CreatePost("", "")
	require.Error(t, err)

	p.FocusDraft()
	assert.True(t, p.Draft().Expanded)
	p.OnNavbarScroll(30)
	assert.True(t, p.Navbar().Scrolled)

	assert.Equal(t, []string{MsgEmptyPost}, noticeMessages(p.Notices()))
}
