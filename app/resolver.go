package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/lastnpcalex/ATProto/domain"
)

// Resolver converts user-supplied bsky.app URLs and at:// URIs into
// canonical at:// URIs, resolving handles to DIDs when needed.
type Resolver struct {
	identity IdentityService
}

// NewResolver creates a Resolver backed by the given identity service.
func NewResolver(identity IdentityService) *Resolver {
	return &Resolver{identity: identity}
}

// Resolve returns the canonical at:// URI for input. An at:// URI passes
// through unchanged and a URL carrying a DID is rebuilt directly; only a
// URL carrying a handle costs a network call.
func (r *Resolver) Resolve(ctx context.Context, input string) (string, error) {
	input = strings.TrimSpace(input)
	if domain.IsATURI(input) {
		return input, nil
	}

	ref, err := domain.ParsePostURL(input)
	if err != nil {
		return "", err
	}
	if domain.IsDID(ref.Actor) {
		return ref.ATURI(), nil
	}

	did, err := r.identity.ResolveHandle(ctx, ref.Actor)
	if err != nil {
		return "", fmt.Errorf("resolving handle %s: %w", ref.Actor, err)
	}
	if did == "" {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownHandle, ref.Actor)
	}

	return domain.PostRef{Actor: did, RKey: ref.RKey}.ATURI(), nil
}
