package validators

import (
	"strings"
	"testing"

	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestValidate_CommentRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&models.CreateCommentRequest{Content: "nice!"}))
	assert.Error(t, v.Validate(&models.CreateCommentRequest{Content: "   "}))
	assert.Error(t, v.Validate(&models.CreateCommentRequest{Content: strings.Repeat("a", 501)}))
}

func TestValidate_PostRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&models.CreatePostRequest{Content: "hello"}))
	assert.NoError(t, v.Validate(&models.CreatePostRequest{ImageURL: "https://example.com/a.png"}))
	assert.NoError(t, v.Validate(&models.CreatePostRequest{ImageURL: "data:image/png;base64,iVBORw0KGgo="}))
	assert.Error(t, v.Validate(&models.CreatePostRequest{ImageURL: "not a url"}))
}

func TestValidate_ScrollRequest(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&models.ScrollRequest{ScrollTop: 10, ClientHeight: 800, ScrollHeight: 2000}))
	assert.Error(t, v.Validate(&models.ScrollRequest{ScrollTop: -1}))
}
