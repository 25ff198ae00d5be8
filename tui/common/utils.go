package common

import (
	"errors"

	"github.com/lastnpcalex/ATProto/domain"
)

// Hyperlink wraps url in an OSC 8 escape sequence so terminals that
// support it render a clickable link. The visible text is the URL itself.
func Hyperlink(url string) string {
	if url == "" {
		return ""
	}
	return "\x1b]8;;" + url + "\x1b\\" + url + "\x1b]8;;\x1b\\"
}

// ErrorMessage translates a navigation error into a one-line status
// message for the user.
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return "Not a valid input. Enter a bsky.app post URL or an at:// URI."
	case errors.Is(err, domain.ErrUnknownHandle):
		return "Could not resolve that handle to an account."
	case errors.Is(err, domain.ErrNotFound):
		return "That post does not exist."
	case errors.Is(err, domain.ErrRestricted):
		return "That post is not accessible (blocked or deleted author)."
	case errors.Is(err, domain.ErrNoParent):
		return "This post has no parent."
	case errors.Is(err, domain.ErrNoRoot):
		return "This post is not part of a thread."
	case errors.Is(err, domain.ErrUnauthorized):
		return "Session is no longer valid. Restart and log in again."
	default:
		return "Error: " + err.Error()
	}
}
