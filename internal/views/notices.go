package views

import (
	"sync"
	"time"

	"github.com/anonto42/socialwall/backend/internal/metrics"
	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/sirupsen/logrus"
)

// User-visible notice texts.
const (
	MsgPostCreated       = "Message publié avec succès !"
	MsgEmptyPost         = "Votre message est vide."
	MsgImageTooLarge     = "L'image est trop volumineuse (5 Mo maximum)."
	MsgNotAnImage        = "Seules les images sont acceptées."
	MsgCommentAdded      = "Commentaire ajouté !"
	MsgTranslationFailed = "Translation failed. Please try again."
)

const defaultNoticeCapacity = 20

// Notifier shows a transient notice. Nothing is returned to the caller.
type Notifier interface {
	Notify(kind models.NoticeKind, message string)
}

// NoticeQueue keeps the most recent notices until the page drains them.
type NoticeQueue struct {
	mu    sync.Mutex
	items []models.Notice
	max   int
	now   func() time.Time
}

// NewNoticeQueue keeps at most max notices, dropping the oldest.
func NewNoticeQueue(max int) *NoticeQueue {
	if max <= 0 {
		max = defaultNoticeCapacity
	}
	return &NoticeQueue{max: max, now: time.Now}
}

func (q *NoticeQueue) Notify(kind models.NoticeKind, message string) {
	metrics.Notices.WithLabelValues(string(kind)).Inc()
	logger.Log.WithFields(logrus.Fields{"kind": kind, "message": message}).Debug("notice")

	q.mu.Lock()
	defer q.mu.Unlock()
	q.items = append(q.items, models.Notice{Kind: kind, Message: message, CreatedAt: q.now()})
	if over := len(q.items) - q.max; over > 0 {
		q.items = append([]models.Notice(nil), q.items[over:]...)
	}
}

// Drain returns and forgets the queued notices.
func (q *NoticeQueue) Drain() []models.Notice {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := q.items
	q.items = nil
	return out
}

// Len is the number of queued notices.
func (q *NoticeQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}
