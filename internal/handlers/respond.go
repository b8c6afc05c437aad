package handlers

import (
	"net/http"
	"strings"

	"github.com/anonto42/socialwall/backend/internal/feed"
	"github.com/anonto42/socialwall/backend/internal/views"
	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// wantsJSON is true for API clients; browsers posting forms get redirects.
func wantsJSON(c echo.Context) bool {
	req := c.Request()
	return strings.Contains(req.Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) ||
		strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON)
}

// respond writes payload for API clients and redirects browsers back to
// the page, optionally to an anchor.
func respond(c echo.Context, code int, payload interface{}, anchor string) error {
	if wantsJSON(c) {
		if payload == nil {
			return c.NoContent(code)
		}
		return c.JSON(code, payload)
	}
	target := "/"
	if anchor != "" {
		target += "#" + anchor
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// fail maps domain errors to HTTP errors. Browsers are sent back to the
// page for rejections the user already sees as a notice.
func fail(c echo.Context, err error, anchor string) error {
	if !wantsJSON(c) && isRejection(err) {
		return respond(c, http.StatusSeeOther, nil, anchor)
	}
	return httpError(err)
}

func isRejection(err error) bool {
	for _, target := range []error{
		feed.ErrEmptyPost,
		feed.ErrEmptyComment,
		feed.ErrLoadInFlight,
		feed.ErrTranslationPending,
		views.ErrImageTooLarge,
		views.ErrNotAnImage,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func httpError(err error) error {
	var he *echo.HTTPError
	switch {
	case errors.As(err, &he):
		return he
	case errors.Is(err, feed.ErrPostNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	case errors.Is(err, feed.ErrEmptyPost):
		return echo.NewHTTPError(http.StatusBadRequest, views.MsgEmptyPost)
	case errors.Is(err, feed.ErrEmptyComment):
		return echo.NewHTTPError(http.StatusBadRequest, "Comment is empty")
	case errors.Is(err, views.ErrImageTooLarge):
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, views.MsgImageTooLarge)
	case errors.Is(err, views.ErrNotAnImage):
		return echo.NewHTTPError(http.StatusUnsupportedMediaType, views.MsgNotAnImage)
	case errors.Is(err, feed.ErrLoadInFlight), errors.Is(err, feed.ErrTranslationPending):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, feed.ErrStale), errors.Is(err, feed.ErrClosed):
		return echo.NewHTTPError(http.StatusConflict, "Session was reset, please retry")
	default:
		logger.Log.WithError(err).Error("request failed")
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
