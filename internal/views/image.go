package views

import (
	"encoding/base64"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

// MaxImageBytes caps attached images.
const MaxImageBytes int64 = 5 << 20

var (
	ErrImageTooLarge = errors.New("image exceeds the size limit")
	ErrNotAnImage    = errors.New("attachment is not an image")
)

// ImageDataURL reads an image fully and embeds it as a base64 data URL.
// size is the declared size, or -1 when unknown; the read itself is capped
// at max so a wrong declaration cannot exceed it.
func ImageDataURL(r io.Reader, size, max int64) (string, error) {
	if max <= 0 {
		max = MaxImageBytes
	}
	if size > max {
		return "", ErrImageTooLarge
	}

	data, err := io.ReadAll(io.LimitReader(r, max+1))
	if err != nil {
		return "", errors.Wrap(err, "read image")
	}
	if int64(len(data)) > max {
		return "", ErrImageTooLarge
	}

	mime := mimetype.Detect(data).String()
	mime, _, _ = strings.Cut(mime, ";")
	if !strings.HasPrefix(mime, "image/") {
		return "", ErrNotAnImage
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
