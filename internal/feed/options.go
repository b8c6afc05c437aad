package feed

import (
	"math/rand/v2"
	"time"

	"github.com/anonto42/socialwall/backend/internal/seed"
	"github.com/anonto42/socialwall/backend/internal/translation"
)

const (
	DefaultLoadLatency     = 1500 * time.Millisecond
	DefaultScrollThreshold = 300

	maxClonedLikes    = 50
	maxClonedComments = 10
)

// Option configures a Feed.
type Option func(*Feed)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(f *Feed) { f.now = now }
}

// WithRandom replaces the source of cloned like/comment counts. intn must
// return a value in [0, n).
func WithRandom(intn func(n int) int) Option {
	return func(f *Feed) { f.intn = intn }
}

// WithTranslator sets the translation backend.
func WithTranslator(t translation.Translator) Option {
	return func(f *Feed) { f.translator = t }
}

// WithLoadLatency sets the simulated latency of LoadMore.
func WithLoadLatency(d time.Duration) Option {
	return func(f *Feed) { f.loadLatency = d }
}

// WithScrollThreshold sets how close to the bottom (in px) a scroll must get
// before ShouldLoad reports true.
func WithScrollThreshold(px int) Option {
	return func(f *Feed) { f.threshold = px }
}

// WithViewer sets the user that authors new posts and comments.
func WithViewer(userID string) Option {
	return func(f *Feed) { f.viewerID = userID }
}

func defaults(f *Feed) {
	f.now = time.Now
	f.intn = rand.IntN
	f.translator = translation.NewStub(translation.DefaultLatency)
	f.loadLatency = DefaultLoadLatency
	f.threshold = DefaultScrollThreshold
	f.viewerID = seed.CurrentUserID
}
