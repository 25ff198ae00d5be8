package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeCreds(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "creds.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write creds failed: %v", err)
	}
	return path
}

func TestLoad_ParsesRequiredAndOptionalFields(t *testing.T) {
	path := writeCreds(t, `{
		"username": "user.bsky.social",
		"password": "app-pass",
		"bluesky_url": "https://bsky.app/profile/user.bsky.social/post/xyz"
	}`)

	creds, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if creds.Username != "user.bsky.social" || creds.Password != "app-pass" {
		t.Fatalf("unexpected credentials: %#v", creds)
	}
	if creds.BlueskyURL != "https://bsky.app/profile/user.bsky.social/post/xyz" {
		t.Fatalf("optional URL must survive loading: %q", creds.BlueskyURL)
	}
	if creds.Service != "" {
		t.Fatalf("service must default to empty: %q", creds.Service)
	}
}

func TestLoad_MissingRequiredFields(t *testing.T) {
	for _, content := range []string{
		`{"password": "x"}`,
		`{"username": "x"}`,
		`{"username": "  ", "password": "x"}`,
		`{}`,
	} {
		if _, err := Load(writeCreds(t, content)); err == nil {
			t.Fatalf("expected error for %s", content)
		}
	}
}

func TestLoad_MissingFileAndBadJSON(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Fatalf("expected error for missing file")
	}
	if _, err := Load(writeCreds(t, "not-json")); err == nil {
		t.Fatalf("expected parse error for invalid json")
	}
}

func TestLoad_ServiceMustBeHTTPS(t *testing.T) {
	_, err := Load(writeCreds(t, `{"username": "u", "password": "p", "service": "http://insecure.local"}`))
	if err == nil {
		t.Fatalf("expected error for non-https service")
	}

	creds, err := Load(writeCreds(t, `{"username": "u", "password": "p", "service": "https://pds.example/"}`))
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if creds.Service != "https://pds.example" {
		t.Fatalf("service must be normalized: %q", creds.Service)
	}
}
