package handlers

import (
	"math"
	"net/http"
	"strconv"

	"github.com/anonto42/socialwall/backend/internal/feed"
	"github.com/anonto42/socialwall/backend/internal/middleware"
	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/labstack/echo/v4"
)

// FeedHandler handles feed-related HTTP requests
type FeedHandler struct{}

// NewFeedHandler creates a new FeedHandler
func NewFeedHandler() *FeedHandler {
	return &FeedHandler{}
}

// RegisterFeedRoutes registers feed-related routes
func (h *FeedHandler) RegisterFeedRoutes(g *echo.Group) {
	g.GET("/feed", h.GetFeed)
	g.POST("/feed/scroll", h.Scroll)
	g.GET("/feed/status", h.GetStatus)
}

// GetFeed returns rendered post cards for the session viewer
func (h *FeedHandler) GetFeed(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}

	pageNum, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if pageNum < 1 {
		pageNum = 1
	}
	if limit < 1 || limit > 50 {
		limit = 10
	}

	cards := page.Cards()
	totalItems := len(cards)

	start := (pageNum - 1) * limit
	if start > totalItems {
		start = totalItems
	}
	end := start + limit
	if end > totalItems {
		end = totalItems
	}

	totalPages := int(math.Ceil(float64(totalItems) / float64(limit)))

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data": echo.Map{
			"posts":   cards[start:end],
			"loading": page.Feed().Loading(),
		},
		"meta": echo.Map{
			"currentPage":     pageNum,
			"totalPages":      totalPages,
			"totalItems":      totalItems,
			"itemsPerPage":    limit,
			"hasNextPage":     pageNum < totalPages,
			"hasPreviousPage": pageNum > 1,
		},
	})
}

// Scroll reports the viewport geometry. A batch load starts in the
// background when the bottom of the feed is near; 202 means one started.
func (h *FeedHandler) Scroll(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}

	var req models.ScrollRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	_, started, err := page.Scroll(feed.ScrollPosition{
		ScrollTop:    req.ScrollTop,
		ClientHeight: req.ClientHeight,
		ScrollHeight: req.ScrollHeight,
	})
	if err != nil {
		return httpError(err)
	}

	code := http.StatusOK
	if started {
		code = http.StatusAccepted
	}
	return c.JSON(code, echo.Map{
		"started": started,
		"loading": page.Feed().Loading(),
	})
}

// GetStatus reports whether a batch is loading and how many posts exist
func (h *FeedHandler) GetStatus(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}
	f := page.Feed()

	return c.JSON(http.StatusOK, echo.Map{
		"loading":        f.Loading(),
		"total_posts":    len(f.Posts()),
		"total_comments": f.CommentCount(),
	})
}
