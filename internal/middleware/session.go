package middleware

import (
	"net/http"
	"time"

	"github.com/anonto42/socialwall/backend/internal/session"
	"github.com/anonto42/socialwall/backend/internal/views"
	"github.com/labstack/echo/v4"
)

const (
	pageKey      = "page"
	sessionIDKey = "sessionID"

	cookieMaxAge = 24 * time.Hour
)

// SessionMiddleware attaches the caller's feed page to the context, starting
// a new session (and setting the cookie) when none is known.
func SessionMiddleware(store *session.Store) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var id string
			if cookie, err := c.Cookie(session.CookieName); err == nil {
				id = cookie.Value
			}

			id, page, created := store.GetOrCreate(id)
			if created {
				c.SetCookie(&http.Cookie{
					Name:     session.CookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   int(cookieMaxAge.Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			// Store the page in context
			c.Set(pageKey, page)
			c.Set(sessionIDKey, id)

			return next(c)
		}
	}
}

// PageFromContext returns the page attached by SessionMiddleware.
func PageFromContext(c echo.Context) (*views.Page, error) {
	page, ok := c.Get(pageKey).(*views.Page)
	if !ok || page == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "Session not initialised")
	}
	return page, nil
}

// SessionIDFromContext returns the id of the current session.
func SessionIDFromContext(c echo.Context) string {
	id, _ := c.Get(sessionIDKey).(string)
	return id
}
