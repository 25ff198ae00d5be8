package app

import (
	"context"

	"github.com/lastnpcalex/ATProto/domain"
)

// PostService fetches posts and their thread context from the network.
type PostService interface {
	// Fetch returns the post at uri together with its thread context:
	// parent, root, and one level of replies.
	Fetch(ctx context.Context, uri string) (domain.Post, domain.Thread, error)

	// Likes returns the accounts that liked the post at uri.
	Likes(ctx context.Context, uri string) ([]domain.Like, error)

	// Quotes returns the posts quoting the post at uri.
	Quotes(ctx context.Context, uri string) ([]domain.Post, error)
}

// IdentityService resolves human-readable handles to DIDs.
type IdentityService interface {
	ResolveHandle(ctx context.Context, handle string) (string, error)
}
