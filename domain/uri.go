package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// PostCollection is the AT Protocol record collection for feed posts.
const PostCollection = "app.bsky.feed.post"

var (
	atURIRe   = regexp.MustCompile(`^at://([^/]+)/app\.bsky\.feed\.post/([^/]+)$`)
	postURLRe = regexp.MustCompile(`^https://bsky\.app/profile/([^/]+)/post/([^/]+)$`)
)

// PostRef identifies a post by the actor that owns it and the record key.
// Actor is a DID for canonical references, but may be a handle when parsed
// from a bsky.app URL that has not been resolved yet.
type PostRef struct {
	Actor string
	RKey  string
}

// ATURI returns the at:// URI for this reference. Only canonical when
// Actor is a DID.
func (r PostRef) ATURI() string {
	return fmt.Sprintf("at://%s/%s/%s", r.Actor, PostCollection, r.RKey)
}

// WebURL returns the bsky.app URL for this reference.
func (r PostRef) WebURL() string {
	return fmt.Sprintf("https://bsky.app/profile/%s/post/%s", r.Actor, r.RKey)
}

// IsDID reports whether s looks like a decentralized identifier.
func IsDID(s string) bool {
	return strings.HasPrefix(s, "did:")
}

// IsATURI reports whether s is an at:// post URI.
func IsATURI(s string) bool {
	return atURIRe.MatchString(s)
}

// ParseATURI splits an at://<did>/app.bsky.feed.post/<rkey> URI.
func ParseATURI(s string) (PostRef, error) {
	m := atURIRe.FindStringSubmatch(s)
	if m == nil {
		return PostRef{}, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return PostRef{Actor: m[1], RKey: m[2]}, nil
}

// ParsePostURL splits an https://bsky.app/profile/<handle-or-did>/post/<rkey>
// URL. The returned Actor may be a handle that still needs resolution.
func ParsePostURL(s string) (PostRef, error) {
	m := postURLRe.FindStringSubmatch(s)
	if m == nil {
		return PostRef{}, fmt.Errorf("%w: %q", ErrInvalidInput, s)
	}
	return PostRef{Actor: m[1], RKey: m[2]}, nil
}
