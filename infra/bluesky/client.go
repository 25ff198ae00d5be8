package bluesky

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/lastnpcalex/ATProto/domain"
)

// DefaultServiceURL is the public Bluesky PDS entrypoint.
const DefaultServiceURL = "https://bsky.social"

// Client is a thin HTTP wrapper for the AT Protocol XRPC API.
// It handles endpoint construction, session creation, and bearer token
// injection. The session lives in memory for the life of the process.
type Client struct {
	baseURL string
	http    *http.Client

	accessJwt string
	did       string
	handle    string
}

// NewClient creates an XRPC client for the given service. An empty baseURL
// selects the public bsky.social endpoint.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultServiceURL
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// Error is an XRPC error payload returned by the API.
type Error struct {
	Code    string `json:"error"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// Unwrap maps well-known XRPC error codes onto domain sentinels so callers
// can classify failures with errors.Is.
func (e *Error) Unwrap() error {
	switch e.Code {
	case "NotFound", "RecordNotFound":
		return domain.ErrNotFound
	case "Blocked", "BlockedActor", "BlockedByActor", "AccountTakedown":
		return domain.ErrRestricted
	case "AuthenticationRequired", "InvalidToken", "ExpiredToken", "AuthFactorTokenRequired", "AuthMissing":
		return domain.ErrUnauthorized
	}
	return nil
}

type sessionResponse struct {
	AccessJwt string `json:"accessJwt"`
	Did       string `json:"did"`
	Handle    string `json:"handle"`
}

// Login creates an API session with an account identifier (handle or email)
// and an app password. Any failure here is terminal for the process.
func (c *Client) Login(ctx context.Context, identifier, password string) error {
	body, err := json.Marshal(map[string]string{
		"identifier": identifier,
		"password":   password,
	})
	if err != nil {
		return fmt.Errorf("encoding session request: %w", err)
	}

	data, err := c.do(ctx, http.MethodPost, "com.atproto.server.createSession", nil, bytes.NewReader(body), false)
	if err != nil {
		return fmt.Errorf("creating session: %w", err)
	}

	var session sessionResponse
	if err := json.Unmarshal(data, &session); err != nil {
		return fmt.Errorf("parsing session response: %w", err)
	}
	if session.AccessJwt == "" {
		return fmt.Errorf("creating session: %w", domain.ErrUnauthorized)
	}

	c.accessJwt = session.AccessJwt
	c.did = session.Did
	c.handle = session.Handle
	return nil
}

// DID returns the DID of the logged-in account, or "" before Login.
func (c *Client) DID() string {
	return c.did
}

// Get performs an authenticated XRPC query.
func (c *Client) Get(ctx context.Context, nsid string, params url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, nsid, params, nil, true)
}

func (c *Client) do(ctx context.Context, method, nsid string, params url.Values, body io.Reader, authed bool) ([]byte, error) {
	endpoint := c.baseURL + "/xrpc/" + nsid
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if authed {
		if c.accessJwt == "" {
			return nil, fmt.Errorf("%s: %w: no session, call Login first", nsid, domain.ErrUnauthorized)
		}
		req.Header.Set("Authorization", "Bearer "+c.accessJwt)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request to %s: %w", nsid, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var xe Error
		if json.Unmarshal(data, &xe) == nil && xe.Code != "" {
			return nil, fmt.Errorf("%s: %w", nsid, &xe)
		}
		return nil, fmt.Errorf("API %s returned %d: %s", nsid, resp.StatusCode, string(data))
	}

	return data, nil
}
