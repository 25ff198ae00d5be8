package app

import (
	"context"
	"errors"
	"testing"

	"github.com/lastnpcalex/ATProto/domain"
)

type stubIdentity struct {
	did   string
	err   error
	calls int
}

func (s *stubIdentity) ResolveHandle(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.did, s.err
}

func TestResolve_ATURIIsIdentity(t *testing.T) {
	identity := &stubIdentity{}
	r := NewResolver(identity)

	in := "at://did:plc:abc/app.bsky.feed.post/xyz"
	got, err := r.Resolve(context.Background(), in)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != in {
		t.Fatalf("AT URI must pass through unchanged, got %q", got)
	}
	if identity.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", identity.calls)
	}
}

func TestResolve_URLWithDIDSkipsNetwork(t *testing.T) {
	identity := &stubIdentity{}
	r := NewResolver(identity)

	got, err := r.Resolve(context.Background(), "https://bsky.app/profile/did:plc:abc/post/xyz")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "at://did:plc:abc/app.bsky.feed.post/xyz" {
		t.Fatalf("unexpected URI: %q", got)
	}
	if identity.calls != 0 {
		t.Fatalf("expected zero network calls, got %d", identity.calls)
	}
}

func TestResolve_URLWithHandleResolvesOnce(t *testing.T) {
	identity := &stubIdentity{did: "did:plc:resolved"}
	r := NewResolver(identity)

	got, err := r.Resolve(context.Background(), "https://bsky.app/profile/user.bsky.social/post/xyz")
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if got != "at://did:plc:resolved/app.bsky.feed.post/xyz" {
		t.Fatalf("unexpected URI: %q", got)
	}
	if identity.calls != 1 {
		t.Fatalf("expected exactly one resolution call, got %d", identity.calls)
	}
}

func TestResolve_EmptyDIDIsUnknownHandle(t *testing.T) {
	r := NewResolver(&stubIdentity{did: ""})

	_, err := r.Resolve(context.Background(), "https://bsky.app/profile/nobody.example/post/xyz")
	if !errors.Is(err, domain.ErrUnknownHandle) {
		t.Fatalf("expected ErrUnknownHandle, got %v", err)
	}
}

func TestResolve_ResolutionErrorIsWrapped(t *testing.T) {
	r := NewResolver(&stubIdentity{err: domain.ErrUnknownHandle})

	_, err := r.Resolve(context.Background(), "https://bsky.app/profile/nobody.example/post/xyz")
	if !errors.Is(err, domain.ErrUnknownHandle) {
		t.Fatalf("expected wrapped ErrUnknownHandle, got %v", err)
	}
}

func TestResolve_MalformedInputNeverReachesNetwork(t *testing.T) {
	identity := &stubIdentity{did: "did:plc:abc"}
	r := NewResolver(identity)

	_, err := r.Resolve(context.Background(), "not a url")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if identity.calls != 0 {
		t.Fatalf("malformed input must not hit the resolver, got %d calls", identity.calls)
	}
}
