package handlers

import (
	"net/http"

	"github.com/anonto42/socialwall/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// PageTemplate is the template rendered for the feed page
const PageTemplate = "feed.html"

// PageHandler serves the feed page
type PageHandler struct{}

// NewPageHandler creates a new PageHandler
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// RegisterPageRoutes registers the page routes
func (h *PageHandler) RegisterPageRoutes(e *echo.Echo, m ...echo.MiddlewareFunc) {
	e.GET("/", h.GetPage, m...)
}

// GetPage renders the whole page. Queued notices are shown once.
func (h *PageHandler) GetPage(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}

	view := page.View()
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, view)
	}
	return c.Render(http.StatusOK, PageTemplate, view)
}
