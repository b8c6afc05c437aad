// Package views turns feed snapshots into renderable page state and routes
// user intents back to the feed, which stays the only writer.
package views

import (
	"context"
	"io"
	"sync"

	"github.com/anonto42/socialwall/backend/internal/feed"
	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/anonto42/socialwall/backend/internal/seed"
	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Page is the feed page of one session.
type Page struct {
	feed    *feed.Feed
	notices *NoticeQueue

	mu            sync.Mutex
	navbar        *Navbar
	draft         *CreatePostForm
	cards         map[string]*CardState
	scrollToTop   bool
	profile       models.User
	maxImageBytes int64
}

// PageView is everything a renderer needs for one paint
type PageView struct {
	Navbar      Navbar          `json:"navbar"`
	Draft       DraftView       `json:"draft"`
	Cards       []PostCard      `json:"cards"`
	Loading     bool            `json:"loading"`
	Notices     []models.Notice `json:"notices"`
	ScrollToTop bool            `json:"scroll_to_top"`
}

// NewPage wraps f. The page owns f and closes it on Close.
func NewPage(f *feed.Feed, maxImageBytes int64) *Page {
	p := &Page{
		feed:          f,
		notices:       NewNoticeQueue(defaultNoticeCapacity),
		cards:         make(map[string]*CardState),
		profile:       seed.Profile,
		maxImageBytes: maxImageBytes,
	}
	p.resetViewState()
	return p
}

func (p *Page) resetViewState() {
	p.navbar = NewNavbar(p.profile)
	p.draft = NewCreatePostForm(p.maxImageBytes)
	p.cards = make(map[string]*CardState)
	p.scrollToTop = false
}

func (p *Page) Feed() *feed.Feed { return p.feed }

func (p *Page) Notices() *NoticeQueue { return p.notices }

func (p *Page) log() *logrus.Entry {
	return logger.Log.WithField("component", "page")
}

// card must be called with mu held.
func (p *Page) card(postID string) *CardState {
	st, ok := p.cards[postID]
	if !ok {
		st = &CardState{}
		p.cards[postID] = st
	}
	return st
}

// CreatePost submits a post directly, bypassing the draft.
func (p *Page) CreatePost(content, imageURL string) (models.Post, error) {
	post, err := p.feed.CreatePost(content, imageURL)
	if err != nil {
		if errors.Is(err, feed.ErrEmptyPost) {
			p.notices.Notify(models.NoticeError, MsgEmptyPost)
		}
		return models.Post{}, err
	}
	p.notices.Notify(models.NoticeSuccess, MsgPostCreated)

	p.mu.Lock()
	p.scrollToTop = true
	p.mu.Unlock()
	return post, nil
}

// SetDraft replaces the draft text.
func (p *Page) SetDraft(content string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft.SetContent(content)
}

// AttachImage attaches an image to the draft.
func (p *Page) AttachImage(name string, size int64, r io.Reader) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draft.AttachImage(name, size, r, p.notices)
}

// MaxImageBytes is the largest image the draft accepts.
func (p *Page) MaxImageBytes() int64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draft.maxImageBytes
}

// RejectImage reports an upload refused before it could be read.
func (p *Page) RejectImage() error {
	p.notices.Notify(models.NoticeError, MsgImageTooLarge)
	return ErrImageTooLarge
}

// SubmitDraft publishes the draft and scrolls back to the top.
func (p *Page) SubmitDraft() (models.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	var created models.Post
	err := p.draft.Submit(func(content, imageURL string) error {
		post, err := p.feed.CreatePost(content, imageURL)
		created = post
		return err
	}, p.notices)
	if err != nil {
		return models.Post{}, err
	}
	p.scrollToTop = true
	return created, nil
}

func (p *Page) FocusDraft() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft.Focus()
}

func (p *Page) BlurDraft() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft.Blur()
}

func (p *Page) CancelDraft() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft.Cancel()
}

func (p *Page) RemoveDraftImage() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft.RemoveImage()
}

// SubmitComment runs content through a comment form for postID. It returns
// false without error when the form ignored blank content.
func (p *Page) SubmitComment(postID, content string) (models.Comment, bool, error) {
	form := CommentForm{PostID: postID, Content: content}
	var (
		created models.Comment
		err     error
	)
	submitted := form.Submit(func(postID, content string) {
		created, err = p.AddComment(postID, content)
	})
	return created, submitted, err
}

// AddComment stores a comment through the feed and opens the card's
// comment section.
func (p *Page) AddComment(postID, content string) (models.Comment, error) {
	c, err := p.feed.AddComment(postID, content)
	if err != nil {
		return models.Comment{}, err
	}
	p.notices.Notify(models.NoticeSuccess, MsgCommentAdded)

	p.mu.Lock()
	p.card(postID).ShowComments = true
	p.mu.Unlock()
	return c, nil
}

// ToggleComments flips the visibility of a card's comments.
func (p *Page) ToggleComments(postID string) (bool, error) {
	if _, ok := p.feed.Post(postID); !ok {
		return false, feed.ErrPostNotFound
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	st := p.card(postID)
	st.ShowComments = !st.ShowComments
	return st.ShowComments, nil
}

// ToggleLike likes or unlikes a post as the session viewer.
func (p *Page) ToggleLike(postID string) (feed.Like, error) {
	return p.feed.ToggleLike(postID, p.feed.ViewerID())
}

// Translate reveals the translation of a post, asking the translator only
// when nothing is cached. Failures are logged and reported as a notice and
// keep the overlay hidden.
func (p *Page) Translate(ctx context.Context, postID, targetLanguage string) (models.Translation, error) {
	tr, err := p.feed.Translate(ctx, postID, targetLanguage)
	switch {
	case err == nil:
	case errors.Is(err, feed.ErrPostNotFound), errors.Is(err, feed.ErrTranslationPending):
		return models.Translation{}, err
	case errors.Is(err, feed.ErrStale), errors.Is(err, feed.ErrClosed):
		p.log().WithField("post_id", postID).Debug("translation discarded")
		return models.Translation{}, err
	default:
		p.log().WithError(err).WithField("post_id", postID).Error("translation failed")
		p.notices.Notify(models.NoticeError, MsgTranslationFailed)
		p.mu.Lock()
		p.card(postID).ShowTranslation = false
		p.mu.Unlock()
		return models.Translation{}, err
	}

	p.mu.Lock()
	p.card(postID).ShowTranslation = true
	p.mu.Unlock()
	return tr, nil
}

// HideTranslation closes the translation overlay; the cache is kept.
func (p *Page) HideTranslation(postID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.card(postID).ShowTranslation = false
}

// Scroll records the viewport position and starts a feed load when the
// bottom is near. started is false when no load was needed or one is
// already running.
func (p *Page) Scroll(pos feed.ScrollPosition) (done <-chan struct{}, started bool, err error) {
	p.mu.Lock()
	p.navbar.OnScroll(pos.ScrollTop)
	p.mu.Unlock()

	if !p.feed.ShouldLoad(pos) {
		return nil, false, nil
	}
	done, err = p.feed.LoadMore()
	if errors.Is(err, feed.ErrLoadInFlight) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return done, true, nil
}

func (p *Page) OnNavbarScroll(scrollY int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navbar.OnScroll(scrollY)
}

func (p *Page) ToggleMenu() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.navbar.ToggleMenu()
	return p.navbar.MobileMenuOpen
}

// Draft returns the current state of the create-post form.
func (p *Page) Draft() DraftView {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.draft.View()
}

// Navbar returns a copy of the navbar state.
func (p *Page) Navbar() Navbar {
	p.mu.Lock()
	defer p.mu.Unlock()
	return *p.navbar
}

// Card renders a single post card.
func (p *Page) Card(postID string) (PostCard, bool) {
	post, ok := p.feed.Post(postID)
	if !ok {
		return PostCard{}, false
	}
	p.mu.Lock()
	st := *p.card(postID)
	p.mu.Unlock()
	return p.renderCard(post, st), true
}

func (p *Page) renderCard(post models.Post, st CardState) PostCard {
	f := p.feed
	now := f.Now()
	comments := NewCommentList(f.Comments(post.ID), f.Directory(), now)
	return NewPostCard(
		post,
		f.Directory().GetUserByID(post.UserID),
		f.Liked(post.ID, f.ViewerID()),
		comments,
		st,
		f.Translating(post.ID),
		now,
	)
}

// Cards renders every post in feed order.
func (p *Page) Cards() []PostCard {
	posts := p.feed.Posts()

	p.mu.Lock()
	states := make([]CardState, len(posts))
	for i, post := range posts {
		if st, ok := p.cards[post.ID]; ok {
			states[i] = *st
		}
	}
	p.mu.Unlock()

	cards := make([]PostCard, len(posts))
	for i, post := range posts {
		cards[i] = p.renderCard(post, states[i])
	}
	return cards
}

// View renders the whole page and consumes queued notices and the pending
// scroll-to-top signal.
func (p *Page) View() PageView {
	cards := p.Cards()

	p.mu.Lock()
	view := PageView{
		Navbar:      *p.navbar,
		Draft:       p.draft.View(),
		Cards:       cards,
		ScrollToTop: p.scrollToTop,
	}
	p.scrollToTop = false
	p.mu.Unlock()

	view.Loading = p.feed.Loading()
	view.Notices = p.notices.Drain()
	return view
}

// Reset returns the page and its feed to the seed state.
func (p *Page) Reset() {
	p.feed.Reset()
	p.notices.Drain()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.resetViewState()
}

// Close discards pending work of the feed.
func (p *Page) Close() {
	p.feed.Close()
}
