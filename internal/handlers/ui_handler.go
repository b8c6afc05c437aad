package handlers

import (
	"net/http"

	"github.com/anonto42/socialwall/backend/internal/middleware"
	"github.com/anonto42/socialwall/backend/pkg/logger"
	"github.com/labstack/echo/v4"
)

// UIHandler handles page interactions that do not touch feed data:
// the create-post draft, the navbar and session reset.
type UIHandler struct{}

// NewUIHandler creates a new UIHandler
func NewUIHandler() *UIHandler {
	return &UIHandler{}
}

type navbarScrollRequest struct {
	ScrollY int `json:"scroll_y" form:"scroll_y" validate:"min=0"`
}

// RegisterUIRoutes registers draft, navbar and session routes
func (h *UIHandler) RegisterUIRoutes(g *echo.Group) {
	g.POST("/draft/focus", h.FocusDraft)
	g.POST("/draft/blur", h.BlurDraft)
	g.POST("/draft/cancel", h.CancelDraft)
	g.POST("/draft/image", h.AttachDraftImage)
	g.POST("/draft/image/remove", h.RemoveDraftImage)
	g.POST("/navbar/scroll", h.NavbarScroll)
	g.POST("/navbar/menu", h.ToggleMenu)
	g.POST("/session/reset", h.ResetSession)
}

func (h *UIHandler) FocusDraft(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	page.FocusDraft()
	return respond(c, http.StatusOK, page.Draft(), "top")
}

func (h *UIHandler) BlurDraft(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	page.BlurDraft()
	return respond(c, http.StatusOK, page.Draft(), "top")
}

// CancelDraft clears the draft text and image and collapses the form
func (h *UIHandler) CancelDraft(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	page.CancelDraft()
	return respond(c, http.StatusOK, page.Draft(), "top")
}

// AttachDraftImage attaches the "image" form file to the draft without
// publishing it. The typed text travels along so it is not lost.
func (h *UIHandler) AttachDraftImage(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	if err := limitUpload(c, page); err != nil {
		return fail(c, err, "top")
	}
	if err := attachImage(c, page); err != nil {
		return fail(c, err, "top")
	}
	if content := c.FormValue("content"); content != "" {
		page.SetDraft(content)
	}
	return respond(c, http.StatusOK, page.Draft(), "top")
}

func (h *UIHandler) RemoveDraftImage(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	page.RemoveDraftImage()
	return respond(c, http.StatusOK, page.Draft(), "top")
}

// NavbarScroll records the window scroll offset for the navbar style
func (h *UIHandler) NavbarScroll(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}

	var req navbarScrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	page.OnNavbarScroll(req.ScrollY)
	return respond(c, http.StatusOK, page.Navbar(), "")
}

// ToggleMenu opens or closes the mobile menu
func (h *UIHandler) ToggleMenu(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	open := page.ToggleMenu()
	return respond(c, http.StatusOK, echo.Map{"mobile_menu_open": open}, "")
}

// ResetSession returns the session's feed to the seed posts
func (h *UIHandler) ResetSession(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	page.Reset()
	logger.Log.WithField("session_id", middleware.SessionIDFromContext(c)).Info("session reset")
	return respond(c, http.StatusNoContent, nil, "")
}
