// Package feed owns the canonical posts, comments and likes of one session.
// It is the only writer of that state; views read snapshots and send intents.
package feed

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/anonto42/socialwall/backend/internal/metrics"
	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/anonto42/socialwall/backend/internal/seed"
	"github.com/anonto42/socialwall/backend/internal/translation"
	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Feed is safe for concurrent use.
type Feed struct {
	seed seed.Seed
	dir  *seed.Directory

	now         func() time.Time
	intn        func(n int) int
	translator  translation.Translator
	loadLatency time.Duration
	threshold   int
	viewerID    string

	mu          sync.Mutex
	state       *state
	loading     bool
	translating map[string]bool
	generation  uint64
	seq         uint64
	life        context.Context
	cancel      context.CancelFunc
	closed      bool
}

// Like is the outcome of a like toggle
type Like struct {
	PostID string `json:"post_id"`
	Liked  bool   `json:"liked"`
	Likes  int    `json:"likes"`
}

// ScrollPosition is the viewport geometry used to decide on loading more.
type ScrollPosition struct {
	ScrollTop    int
	ClientHeight int
	ScrollHeight int
}

// New creates a feed starting from a copy of s.
func New(s seed.Seed, opts ...Option) *Feed {
	f := &Feed{seed: s.Clone()}
	defaults(f)
	for _, opt := range opts {
		opt(f)
	}
	f.dir = seed.NewDirectory(f.seed.Users)
	f.start()
	return f
}

func (f *Feed) start() {
	c := f.seed.Clone()
	f.state = newState(c.Posts, c.Comments)
	f.loading = false
	f.translating = make(map[string]bool)
	f.life, f.cancel = context.WithCancel(context.Background())
}

func (f *Feed) log() *logrus.Entry {
	return logger.Log.WithField("component", "feed")
}

// Directory resolves authors.
func (f *Feed) Directory() *seed.Directory { return f.dir }

// ViewerID is the user that authors new posts and comments.
func (f *Feed) ViewerID() string { return f.viewerID }

// Now is the feed's clock.
func (f *Feed) Now() time.Time { return f.now() }

func (f *Feed) snapshot() *state {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Posts returns the posts, newest created first, loaded batches last.
func (f *Feed) Posts() []models.Post {
	s := f.snapshot()
	out := make([]models.Post, len(s.posts))
	for i, p := range s.posts {
		out[i] = copyPost(p)
	}
	return out
}

// Post returns a single post.
func (f *Feed) Post(postID string) (models.Post, bool) {
	s := f.snapshot()
	i := s.indexOf(postID)
	if i < 0 {
		return models.Post{}, false
	}
	return copyPost(s.posts[i]), true
}

// Comments returns the comments of a post in insertion order.
func (f *Feed) Comments(postID string) []models.Comment {
	s := f.snapshot()
	var out []models.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	return out
}

// CommentCount is the number of canonical comments, all posts included.
func (f *Feed) CommentCount() int {
	return len(f.snapshot().comments)
}

// Liked reports whether viewerID currently likes postID.
func (f *Feed) Liked(postID, viewerID string) bool {
	return f.snapshot().likes[likeKey{postID, viewerID}]
}

// Loading reports whether a LoadMore batch is in flight.
func (f *Feed) Loading() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.loading
}

// Translating reports whether a translation of postID is in flight.
func (f *Feed) Translating(postID string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.translating[postID]
}

// nextID must be called with mu held.
func (f *Feed) nextID(prefix string) string {
	f.seq++
	return fmt.Sprintf("%s-%d-%d", prefix, f.now().UnixNano(), f.seq)
}

// CreatePost prepends a post authored by the viewer. Content may be blank
// only when an image is attached.
func (f *Feed) CreatePost(content, imageURL string) (models.Post, error) {
	if strings.TrimSpace(content) == "" && imageURL == "" {
		return models.Post{}, ErrEmptyPost
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return models.Post{}, ErrClosed
	}

	post := models.Post{
		ID:        f.nextID("post"),
		UserID:    f.viewerID,
		Content:   content,
		CreatedAt: f.now(),
		ImageURL:  imageURL,
	}
	next := f.state.clone()
	next.posts = append([]models.Post{post}, next.posts...)
	f.state = next

	metrics.PostsCreated.Inc()
	f.log().WithField("post_id", post.ID).Debug("post created")
	return post, nil
}

// AddComment appends a comment by the viewer and increments the post's
// comment counter by exactly one.
func (f *Feed) AddComment(postID, content string) (models.Comment, error) {
	if strings.TrimSpace(content) == "" {
		return models.Comment{}, ErrEmptyComment
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return models.Comment{}, ErrClosed
	}

	i := f.state.indexOf(postID)
	if i < 0 {
		return models.Comment{}, errors.Wrapf(ErrPostNotFound, "comment on %q", postID)
	}

	comment := models.Comment{
		ID:        f.nextID("comment"),
		PostID:    postID,
		UserID:    f.viewerID,
		Content:   content,
		CreatedAt: f.now(),
	}
	next := f.state.clone()
	next.comments = append(next.comments, comment)
	next.posts[i].Comments++
	f.state = next

	metrics.CommentsAdded.Inc()
	f.log().WithFields(logrus.Fields{"post_id": postID, "comment_id": comment.ID}).Debug("comment added")
	return comment, nil
}

// ToggleLike flips viewerID's like on postID and moves the counter by one
// in the same direction.
func (f *Feed) ToggleLike(postID, viewerID string) (Like, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return Like{}, ErrClosed
	}

	i := f.state.indexOf(postID)
	if i < 0 {
		return Like{}, errors.Wrapf(ErrPostNotFound, "like %q", postID)
	}

	key := likeKey{postID, viewerID}
	next := f.state.clone()
	liked := !next.likes[key]
	if liked {
		next.likes[key] = true
		next.posts[i].Likes++
	} else {
		delete(next.likes, key)
		next.posts[i].Likes--
	}
	f.state = next

	metrics.LikesToggled.WithLabelValues(fmt.Sprint(liked)).Inc()
	return Like{PostID: postID, Liked: liked, Likes: next.posts[i].Likes}, nil
}

// Translate returns the cached translation of a post, or asks the
// translator once and caches the answer for the rest of the session. A
// second call while the first is pending fails with ErrTranslationPending.
func (f *Feed) Translate(ctx context.Context, postID, targetLanguage string) (models.Translation, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return models.Translation{}, ErrClosed
	}
	i := f.state.indexOf(postID)
	if i < 0 {
		f.mu.Unlock()
		return models.Translation{}, errors.Wrapf(ErrPostNotFound, "translate %q", postID)
	}
	if cached := f.state.posts[i].TranslatedContent; cached != nil {
		f.mu.Unlock()
		metrics.Translations.WithLabelValues("cached").Inc()
		return *cached, nil
	}
	if f.translating[postID] {
		f.mu.Unlock()
		return models.Translation{}, ErrTranslationPending
	}
	f.translating[postID] = true
	gen, life := f.generation, f.life
	content := f.state.posts[i].Content
	f.mu.Unlock()

	// Work ends with whichever of the request or the feed ends first.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(life, cancel)
	defer stop()

	res, err := f.translator.Translate(ctx, content, targetLanguage)

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation {
		metrics.Translations.WithLabelValues("discarded").Inc()
		return models.Translation{}, ErrStale
	}
	delete(f.translating, postID)
	if err != nil {
		metrics.Translations.WithLabelValues("failed").Inc()
		return models.Translation{}, errors.Wrapf(err, "translate %q", postID)
	}

	tr := models.Translation{Text: res.TranslatedText, Language: res.Language}
	if i = f.state.indexOf(postID); i >= 0 && f.state.posts[i].TranslatedContent == nil {
		next := f.state.clone()
		cached := tr
		next.posts[i].TranslatedContent = &cached
		f.state = next
	}
	metrics.Translations.WithLabelValues("translated").Inc()
	return tr, nil
}

// ShouldLoad reports whether pos is within the scroll threshold of the
// bottom of the page.
func (f *Feed) ShouldLoad(pos ScrollPosition) bool {
	return pos.ScrollTop+pos.ClientHeight >= pos.ScrollHeight-f.threshold
}

// LoadMore starts a simulated page load: after the load latency a batch of
// seed post clones is appended. Only one load runs at a time; the returned
// channel closes when the load has finished or was discarded.
func (f *Feed) LoadMore() (<-chan struct{}, error) {
	f.mu.Lock()
	if f.closed {
		f.mu.Unlock()
		return nil, ErrClosed
	}
	if f.loading {
		f.mu.Unlock()
		metrics.FeedLoads.WithLabelValues("suppressed").Inc()
		return nil, ErrLoadInFlight
	}
	f.loading = true
	gen, life := f.generation, f.life
	f.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		f.load(life, gen)
	}()
	return done, nil
}

func (f *Feed) load(ctx context.Context, gen uint64) {
	timer := time.NewTimer(f.loadLatency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if gen != f.generation || ctx.Err() != nil {
		metrics.FeedLoads.WithLabelValues("discarded").Inc()
		return
	}

	now := f.now()
	next := f.state.clone()
	for i, p := range f.seed.Posts {
		clone := p
		clone.ID = f.nextID("clone-" + p.ID)
		clone.CreatedAt = now.Add(-time.Duration(i+1) * 24 * time.Hour)
		clone.Likes = f.intn(maxClonedLikes)
		clone.Comments = f.intn(maxClonedComments)
		clone.TranslatedContent = nil
		next.posts = append(next.posts, clone)
	}
	f.state = next
	f.loading = false

	metrics.FeedLoads.WithLabelValues("loaded").Inc()
	f.log().WithField("posts", len(next.posts)).Debug("feed batch loaded")
}

// Reset restores the seed state. In-flight loads and translations are
// cancelled and their results discarded.
func (f *Feed) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.cancel()
	f.generation++
	f.start()
}

// Close cancels in-flight work; later mutations fail with ErrClosed.
func (f *Feed) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return
	}
	f.closed = true
	f.generation++
	f.cancel()
}
