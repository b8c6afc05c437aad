package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/anonto42/socialwall/backend/internal/middleware"
	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/anonto42/socialwall/backend/internal/views"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct{}

// NewPostHandler creates a new PostHandler
func NewPostHandler() *PostHandler {
	return &PostHandler{}
}

// RegisterPostRoutes registers post-related routes
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.POST("/posts", h.CreatePost)
	g.GET("/posts/:id", h.GetPost)
	g.GET("/posts", h.GetPosts)
}

// CreatePost creates a new post. JSON bodies are published directly; form
// submissions go through the session's draft, including an optional
// "image" file.
func (h *PostHandler) CreatePost(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}

	if err := limitUpload(c, page); err != nil {
		return fail(c, err, "top")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		if uploadTooLarge(err) {
			return fail(c, page.RejectImage(), "top")
		}
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		post, err := page.CreatePost(req.Content, req.ImageURL)
		if err != nil {
			return fail(c, err, "top")
		}
		return c.JSON(http.StatusCreated, post)
	}

	page.SetDraft(req.Content)
	if err := attachImage(c, page); err != nil {
		return fail(c, err, "top")
	}
	post, err := page.SubmitDraft()
	if err != nil {
		return fail(c, err, "top")
	}
	return respond(c, http.StatusCreated, post, "top")
}

// uploadSlack leaves room for multipart framing and the other form fields.
const uploadSlack = 1 << 20

// limitUpload refuses bodies that cannot hold an acceptable image and caps
// the read of the rest. Upload routes skip the global body limit so that an
// oversized photo ends in a notice rather than a bare 413.
func limitUpload(c echo.Context, page *views.Page) error {
	req := c.Request()
	limit := 2*page.MaxImageBytes() + uploadSlack
	if req.ContentLength > limit {
		return page.RejectImage()
	}
	req.Body = http.MaxBytesReader(c.Response(), req.Body, limit)
	return nil
}

func uploadTooLarge(err error) bool {
	var tooLarge *http.MaxBytesError
	return errors.As(err, &tooLarge)
}

// attachImage reads the optional "image" form file into the draft.
func attachImage(c echo.Context, page *views.Page) error {
	fh, err := c.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	if uploadTooLarge(err) {
		return page.RejectImage()
	}
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid image upload")
	}
	if fh.Size == 0 && fh.Filename == "" {
		return nil
	}

	src, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded image")
	}
	defer src.Close()

	return page.AttachImage(fh.Filename, fh.Size, src)
}

// GetPost retrieves a post card by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}

	card, ok := page.Card(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}
	return c.JSON(http.StatusOK, card)
}

// GetPosts retrieves post cards in feed order
func (h *PostHandler) GetPosts(c echo.Context) error {
	page, err := middleware.PageFromContext(c)
	if err != nil {
		return err
	}

	userID := c.QueryParam("user_id")
	skip, _ := strconv.Atoi(c.QueryParam("skip"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = 10 // Default limit
	}

	cards := page.Cards()
	if userID != "" {
		filtered := cards[:0]
		for _, card := range cards {
			if card.Post.UserID == userID {
				filtered = append(filtered, card)
			}
		}
		cards = filtered
	}

	if skip > len(cards) {
		skip = len(cards)
	}
	end := skip + limit
	if end > len(cards) {
		end = len(cards)
	}
	return c.JSON(http.StatusOK, cards[skip:end])
}
