package common

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/lastnpcalex/ATProto/domain"
)

func TestHyperlink_WrapsInOSC8(t *testing.T) {
	got := Hyperlink("https://bsky.app/profile/x/post/y")
	if !strings.Contains(got, "\x1b]8;;https://bsky.app/profile/x/post/y\x1b\\") {
		t.Fatalf("expected OSC 8 open sequence: %q", got)
	}
	if !strings.HasSuffix(got, "\x1b]8;;\x1b\\") {
		t.Fatalf("expected OSC 8 close sequence: %q", got)
	}
	if Hyperlink("") != "" {
		t.Fatalf("empty url must render empty")
	}
}

func TestErrorMessage_ClassifiesDomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{domain.ErrInvalidInput, "valid input"},
		{fmt.Errorf("resolving handle x: %w", domain.ErrUnknownHandle), "resolve that handle"},
		{domain.ErrNotFound, "does not exist"},
		{domain.ErrRestricted, "not accessible"},
		{domain.ErrNoParent, "no parent"},
		{domain.ErrNoRoot, "not part of a thread"},
		{errors.New("connection refused"), "connection refused"},
	}
	for _, tc := range cases {
		got := ErrorMessage(tc.err)
		if !strings.Contains(got, tc.want) {
			t.Fatalf("message for %v must mention %q, got %q", tc.err, tc.want, got)
		}
	}
}
