package handlers

import (
	"net/http"

	"github.com/anonto42/socialwall/backend/internal/middleware"
	"github.com/labstack/echo/v4"
)

// LikeHandler handles HTTP requests related to likes
type LikeHandler struct{}

// NewLikeHandler creates a new LikeHandler
func NewLikeHandler() *LikeHandler {
	return &LikeHandler{}
}

// RegisterLikeRoutes registers like-related routes
func (h *LikeHandler) RegisterLikeRoutes(g *echo.Group) {
	g.POST("/posts/:post_id/likes", h.ToggleLike)
	g.GET("/posts/:post_id/likes/status", h.GetUserLikeStatusForPost)
}

// ToggleLike likes the post, or unlikes it when the viewer already does
func (h *LikeHandler) ToggleLike(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")

	like, err := page.ToggleLike(postID)
	if err != nil {
		return fail(c, err, "")
	}
	return respond(c, http.StatusOK, like, "post-"+postID)
}

// GetUserLikeStatusForPost checks if the session viewer likes a specific post
func (h *LikeHandler) GetUserLikeStatusForPost(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	postID := c.Param("post_id")
	f := page.Feed()

	// Verify post exists
	post, ok := f.Post(postID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"post_id":   postID,
		"user_id":   f.ViewerID(),
		"has_liked": f.Liked(postID, f.ViewerID()),
		"likes":     post.Likes,
	})
}
