// Package session keeps one feed page per browser session in memory.
package session

import (
	"sync"

	"github.com/anonto42/socialwall/backend/internal/metrics"
	"github.com/anonto42/socialwall/backend/internal/views"
	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// CookieName carries the session id.
const CookieName = "socialwall_session"

// Factory builds a fresh page from the seed.
type Factory func() *views.Page

// Store is a bounded set of live pages. The least recently used page is
// closed when capacity is exceeded.
type Store struct {
	newPage Factory
	pages   *lru.Cache
	mu      sync.Mutex
}

// NewStore holds up to capacity pages.
func NewStore(capacity int, newPage Factory) (*Store, error) {
	if capacity <= 0 {
		return nil, errors.Errorf("session capacity must be positive, got %d", capacity)
	}
	pages, err := lru.NewWithEvict(capacity, func(key, value interface{}) {
		if page, ok := value.(*views.Page); ok {
			page.Close()
		}
		metrics.LiveSessions.Dec()
		logger.Log.WithField("session_id", key).Debug("session evicted")
	})
	if err != nil {
		return nil, errors.Wrap(err, "create session cache")
	}
	return &Store{newPage: newPage, pages: pages}, nil
}

// Get returns the page of an existing session.
func (s *Store) Get(id string) (*views.Page, bool) {
	if id == "" {
		return nil, false
	}
	v, ok := s.pages.Get(id)
	if !ok {
		return nil, false
	}
	return v.(*views.Page), true
}

// Create starts a new session.
func (s *Store) Create() (string, *views.Page) {
	id := uuid.NewString()
	page := s.newPage()
	s.pages.Add(id, page)
	metrics.LiveSessions.Inc()
	return id, page
}

// GetOrCreate returns the page for id, creating a new session when id is
// unknown. created reports whether a new id was issued.
func (s *Store) GetOrCreate(id string) (sessionID string, page *views.Page, created bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if page, ok := s.Get(id); ok {
		return id, page, false
	}
	sessionID, page = s.Create()
	return sessionID, page, true
}

// Len is the number of live sessions.
func (s *Store) Len() int { return s.pages.Len() }

// Close drops every session.
func (s *Store) Close() {
	s.pages.Purge()
}
