package handlers

import (
	"net/http"
	"strings"

	"github.com/anonto42/socialwall/backend/internal/middleware"
	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct{}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler() *CommentHandler {
	return &CommentHandler{}
}

// RegisterCommentRoutes registers comment-related routes
func (h *CommentHandler) RegisterCommentRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/comments", h.CreateComment)
	g.GET("/posts/:post_id/comments", h.GetCommentsByPostID)
	g.POST("/posts/:post_id/comments/toggle", h.ToggleComments)
}

// CreateComment creates a new comment on a post. Blank content is ignored
// for form submissions and rejected for API clients.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")
	anchor := "post-" + postID

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if strings.TrimSpace(req.Content) == "" && !wantsJSON(c) {
		return respond(c, http.StatusSeeOther, nil, anchor)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, _, err := page.SubmitComment(postID, req.Content)
	if err != nil {
		return fail(c, err, anchor)
	}
	return respond(c, http.StatusCreated, comment, anchor)
}

// GetCommentsByPostID retrieves the rendered comment list of a post
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}

	// Verify post exists
	card, ok := page.Card(c.Param("post_id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	return c.JSON(http.StatusOK, card.Comments)
}

// ToggleComments shows or hides the comment section of a post
func (h *CommentHandler) ToggleComments(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	open, err := page.ToggleComments(postID)
	if err != nil {
		return fail(c, err, "")
	}
	return respond(c, http.StatusOK, echo.Map{"post_id": postID, "show_comments": open}, "post-"+postID)
}
