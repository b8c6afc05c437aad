package feed

import "github.com/pkg/errors"

var (
	ErrEmptyPost          = errors.New("post has neither text nor image")
	ErrEmptyComment       = errors.New("comment is empty")
	ErrPostNotFound       = errors.New("post not found")
	ErrLoadInFlight       = errors.New("a feed load is already in flight")
	ErrTranslationPending = errors.New("a translation is already pending for this post")
	ErrStale              = errors.New("feed was reset before the operation completed")
	ErrClosed             = errors.New("feed is closed")
)
