package entity

import "io"

// ServeResult tells the serve endpoint how to answer for one media item:
// either redirect to RedirectURL, or stream Body with the given headers.
type ServeResult struct {
	RedirectURL string
	Body        io.ReadCloser
	Size        int64
	ContentType string
}
