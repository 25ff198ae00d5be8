package domain

import "errors"

var (
	// ErrInvalidInput indicates a string that is neither a bsky.app post
	// URL nor an at:// post URI.
	ErrInvalidInput = errors.New("not a bsky.app post URL or at:// URI")

	// ErrUnknownHandle indicates a handle that did not resolve to a DID.
	ErrUnknownHandle = errors.New("unknown handle")

	// ErrNotFound indicates the post does not exist.
	ErrNotFound = errors.New("post not found")

	// ErrRestricted indicates the post exists but cannot be viewed
	// (blocked or deleted author).
	ErrRestricted = errors.New("post is not accessible")

	// ErrNoParent indicates a parent navigation on a top-level post.
	ErrNoParent = errors.New("post has no parent")

	// ErrNoRoot indicates a root navigation on a post that is not a reply.
	ErrNoRoot = errors.New("post is not part of a thread")

	// ErrUnauthorized indicates missing or invalid credentials.
	ErrUnauthorized = errors.New("unauthorized")
)
