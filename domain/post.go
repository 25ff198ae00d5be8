package domain

import "time"

// Post represents a single Bluesky post ready for terminal display.
type Post struct {
	URI               string // at://<did>/app.bsky.feed.post/<rkey>
	CID               string
	AuthorDID         string
	AuthorHandle      string
	AuthorDisplayName string
	Text              string
	CreatedAt         time.Time
	Images            []Image
}

// Author returns the most human-readable author label available,
// falling back to the DID when the profile could not be fetched.
func (p Post) Author() string {
	switch {
	case p.AuthorDisplayName != "" && p.AuthorHandle != "":
		return p.AuthorDisplayName + " (@" + p.AuthorHandle + ")"
	case p.AuthorHandle != "":
		return "@" + p.AuthorHandle
	default:
		return p.AuthorDID
	}
}

// WebURL returns the bsky.app URL for this post, or "" if the URI is malformed.
func (p Post) WebURL() string {
	ref, err := ParseATURI(p.URI)
	if err != nil {
		return ""
	}
	return ref.WebURL()
}

// Image is one embedded image attachment on a post.
type Image struct {
	URL string
	Alt string
}

// Thread is the context around the currently displayed post.
// Parent and Root are nil when absent: the post is top-level, or the chain
// upward is broken by a blocked or deleted account. Replies keep the order
// the API returned them in.
type Thread struct {
	Parent  *Post
	Root    *Post
	Replies []Post
}

// Like records one account that liked a post.
type Like struct {
	Handle      string
	DisplayName string
	IndexedAt   time.Time
}
