package views

import (
	"io"
	"strings"

	"github.com/anonto42/socialwall/backend/internal/feed"
	"github.com/anonto42/socialwall/backend/internal/models"
	"github.com/pkg/errors"
)

// CreatePostForm is the draft of a new post.
type CreatePostForm struct {
	Content   string
	ImageURL  string
	ImageName string

	focused       bool
	maxImageBytes int64
}

// DraftView is the renderable state of the form
type DraftView struct {
	Content   string `json:"content"`
	ImageURL  string `json:"image_url,omitempty"`
	ImageName string `json:"image_name,omitempty"`
	Expanded  bool   `json:"expanded"`
	CanSubmit bool   `json:"can_submit"`
}

func NewCreatePostForm(maxImageBytes int64) *CreatePostForm {
	if maxImageBytes <= 0 {
		maxImageBytes = MaxImageBytes
	}
	return &CreatePostForm{maxImageBytes: maxImageBytes}
}

func (f *CreatePostForm) Focus() { f.focused = true }
func (f *CreatePostForm) Blur()  { f.focused = false }

func (f *CreatePostForm) SetContent(content string) { f.Content = content }

// Expanded is true while focused or while the draft holds anything.
func (f *CreatePostForm) Expanded() bool {
	return f.focused || f.Content != "" || f.ImageURL != ""
}

// CanSubmit reports whether Submit would accept the draft.
func (f *CreatePostForm) CanSubmit() bool {
	return strings.TrimSpace(f.Content) != "" || f.ImageURL != ""
}

// AttachImage reads the image into a data URL. Oversized or non-image files
// are rejected with a notice and leave the draft untouched.
func (f *CreatePostForm) AttachImage(name string, size int64, r io.Reader, n Notifier) error {
	dataURL, err := ImageDataURL(r, size, f.maxImageBytes)
	switch {
	case errors.Is(err, ErrImageTooLarge):
		n.Notify(models.NoticeError, MsgImageTooLarge)
		return err
	case errors.Is(err, ErrNotAnImage):
		n.Notify(models.NoticeError, MsgNotAnImage)
		return err
	case err != nil:
		return err
	}
	f.ImageURL = dataURL
	f.ImageName = name
	return nil
}

func (f *CreatePostForm) RemoveImage() {
	f.ImageURL = ""
	f.ImageName = ""
}

// Cancel discards the draft and collapses the form.
func (f *CreatePostForm) Cancel() {
	f.Content = ""
	f.RemoveImage()
	f.focused = false
}

// Submit passes the draft to create. An empty draft is rejected with a
// notice; a successful one clears and collapses the form.
func (f *CreatePostForm) Submit(create func(content, imageURL string) error, n Notifier) error {
	if !f.CanSubmit() {
		n.Notify(models.NoticeError, MsgEmptyPost)
		return feed.ErrEmptyPost
	}
	if err := create(f.Content, f.ImageURL); err != nil {
		return err
	}
	f.Cancel()
	n.Notify(models.NoticeSuccess, MsgPostCreated)
	return nil
}

func (f *CreatePostForm) View() DraftView {
	return DraftView{
		Content:   f.Content,
		ImageURL:  f.ImageURL,
		ImageName: f.ImageName,
		Expanded:  f.Expanded(),
		CanSubmit: f.CanSubmit(),
	}
}
