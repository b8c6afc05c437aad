package handlers

import (
	"net/http"

	"github.com/anonto42/socialwall/backend/internal/feed"
	"github.com/anonto42/socialwall/backend/internal/middleware"
	"github.com/anonto42/socialwall/backend/internal/translation"
	"github.com/anonto42/socialwall/backend/internal/views"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TranslationHandler reveals and hides post translations
type TranslationHandler struct{}

// NewTranslationHandler creates a new TranslationHandler
func NewTranslationHandler() *TranslationHandler {
	return &TranslationHandler{}
}

// RegisterTranslationRoutes registers translation routes
func (h *TranslationHandler) RegisterTranslationRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/translation", h.Translate)
	g.DELETE("/posts/:post_id/translation", h.Hide)
	g.POST("/posts/:post_id/translation/hide", h.Hide)
}

// Translate shows the translation of a post, translating it on first use.
// The target language comes from the "lang" query parameter.
func (h *TranslationHandler) Translate(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")
	anchor := "post-" + postID

	lang := c.QueryParam("lang")
	if lang == "" {
		lang = translation.DefaultTarget
	}

	tr, err := page.Translate(c.Request().Context(), postID, lang)
	if err != nil {
		// Failures other than an unknown post are already queued as a notice.
		if !wantsJSON(c) && !errors.Is(err, feed.ErrPostNotFound) {
			return respond(c, http.StatusSeeOther, nil, anchor)
		}
		switch {
		case errors.Is(err, feed.ErrPostNotFound),
			errors.Is(err, feed.ErrTranslationPending),
			errors.Is(err, feed.ErrStale),
			errors.Is(err, feed.ErrClosed):
			return httpError(err)
		default:
			return echo.NewHTTPError(http.StatusBadGateway, views.MsgTranslationFailed)
		}
	}
	return respond(c, http.StatusOK, tr, anchor)
}

// Hide closes the translation overlay; the cached translation is kept
func (h *TranslationHandler) Hide(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	if _, ok := page.Feed().Post(postID); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	page.HideTranslation(postID)
	return respond(c, http.StatusNoContent, nil, "post-"+postID)
}
