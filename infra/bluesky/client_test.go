package bluesky

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lastnpcalex/ATProto/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL)
}

func TestNewClient_DefaultsToPublicService(t *testing.T) {
	c := NewClient("")
	assert.Equal(t, DefaultServiceURL, c.baseURL)

	c = NewClient("https://pds.example/")
	assert.Equal(t, "https://pds.example", c.baseURL)
}

func TestLogin_Success(t *testing.T) {
	var gotPath string
	var gotBody map[string]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(sessionResponse{
			AccessJwt: "jwt-123",
			Did:       "did:plc:me",
			Handle:    "me.bsky.social",
		})
	})

	err := c.Login(context.Background(), "me.bsky.social", "app-pass")
	require.NoError(t, err)

	assert.Equal(t, "/xrpc/com.atproto.server.createSession", gotPath)
	assert.Equal(t, "me.bsky.social", gotBody["identifier"])
	assert.Equal(t, "app-pass", gotBody["password"])
	assert.Equal(t, "jwt-123", c.accessJwt)
	assert.Equal(t, "did:plc:me", c.DID())
}

func TestLogin_BadCredentials(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(Error{
			Code:    "AuthenticationRequired",
			Message: "Invalid identifier or password",
		})
	})

	err := c.Login(context.Background(), "me.bsky.social", "wrong")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Empty(t, c.accessJwt)
}

func TestLogin_EmptyTokenIsUnauthorized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(sessionResponse{})
	})

	err := c.Login(context.Background(), "me.bsky.social", "pass")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestGet_InjectsBearerToken(t *testing.T) {
	var gotAuth string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	})
	c.accessJwt = "jwt-123"

	params := url.Values{}
	params.Set("actor", "did:plc:abc")
	_, err := c.Get(context.Background(), "app.bsky.actor.getProfile", params)
	require.NoError(t, err)
	assert.Equal(t, "Bearer jwt-123", gotAuth)
}

func TestGet_WithoutSessionFailsLocally(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.Get(context.Background(), "app.bsky.feed.getPostThread", nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.False(t, called, "unauthenticated request must not reach the network")
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		code string
		want error
	}{
		{"NotFound", domain.ErrNotFound},
		{"RecordNotFound", domain.ErrNotFound},
		{"Blocked", domain.ErrRestricted},
		{"BlockedByActor", domain.ErrRestricted},
		{"ExpiredToken", domain.ErrUnauthorized},
		{"AuthenticationRequired", domain.ErrUnauthorized},
	}
	for _, tc := range cases {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(Error{Code: tc.code, Message: "nope"})
		})
		c.accessJwt = "jwt"

		_, err := c.Get(context.Background(), "com.atproto.repo.getRecord", nil)
		assert.ErrorIs(t, err, tc.want, "code %s", tc.code)
	}
}

func TestErrorMapping_UnknownCodePreservesPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(Error{Code: "MelvilleError", Message: "call me Ishmael"})
	})
	c.accessJwt = "jwt"

	_, err := c.Get(context.Background(), "com.atproto.repo.getRecord", nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "MelvilleError")
	assert.Contains(t, err.Error(), "call me Ishmael")
}

func TestErrorMapping_NonJSONBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream exploded"))
	})
	c.accessJwt = "jwt"

	_, err := c.Get(context.Background(), "app.bsky.feed.getLikes", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
