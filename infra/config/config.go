package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"strings"
)

// Credentials holds the login details read from the user's JSON file.
// Username and Password are required; BlueskyURL optionally names a post
// to open on startup; Service optionally overrides the PDS endpoint.
type Credentials struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	BlueskyURL string `json:"bluesky_url,omitempty"`
	Service    string `json:"service,omitempty"`
}

// Load reads and validates a credentials file.
func Load(path string) (Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Credentials{}, fmt.Errorf("reading credentials file: %w", err)
	}

	var creds Credentials
	if err := json.Unmarshal(data, &creds); err != nil {
		return Credentials{}, fmt.Errorf("parsing credentials file: %w", err)
	}

	creds.Username = strings.TrimSpace(creds.Username)
	creds.Password = strings.TrimSpace(creds.Password)
	if creds.Username == "" || creds.Password == "" {
		return Credentials{}, fmt.Errorf("credentials file must set username and password")
	}

	if creds.Service != "" {
		parsed, err := url.Parse(creds.Service)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return Credentials{}, fmt.Errorf("invalid service: must be an absolute URL")
		}
		if parsed.Scheme != "https" {
			return Credentials{}, fmt.Errorf("invalid service: only https is allowed")
		}
		creds.Service = strings.TrimRight(parsed.String(), "/")
	}

	return creds, nil
}
