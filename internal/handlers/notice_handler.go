package handlers

import (
	"net/http"

	"github.com/anonto42/socialwall/backend/internal/middleware"
	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// NoticeHandler hands queued toasts to the page
type NoticeHandler struct{}

// NewNoticeHandler creates a new NoticeHandler
func NewNoticeHandler() *NoticeHandler {
	return &NoticeHandler{}
}

// RegisterNoticeRoutes registers notice routes
func (h *NoticeHandler) RegisterNoticeRoutes(g *echo.Group) {
	g.GET("/notices", h.DrainNotices)
}

// DrainNotices returns and clears the session's pending notices
func (h *NoticeHandler) DrainNotices(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	notices := page.Notices().Drain()
	if notices == nil {
		notices = []models.Notice{}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"notices": notices,
		"count":   len(notices),
	})
}
