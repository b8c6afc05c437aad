package views

import "strings"

// CommentForm composes one comment for a post.
type CommentForm struct {
	PostID  string
	Content string
}

// Submit hands the raw content to onSubmit and clears the input. Blank
// content is ignored and false is returned. The parent persists the comment.
func (f *CommentForm) Submit(onSubmit func(postID, content string)) bool {
	if strings.TrimSpace(f.Content) == "" {
		return false
	}
	content := f.Content
	f.Content = ""
	onSubmit(f.PostID, content)
	return true
}
