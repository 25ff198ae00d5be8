package bluesky

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/lastnpcalex/ATProto/domain"
)

// identityService implements app.IdentityService using the Bluesky API.
type identityService struct {
	client *Client
}

// NewIdentityService creates an IdentityService backed by Bluesky.
func NewIdentityService(client *Client) *identityService {
	return &identityService{client: client}
}

func (s *identityService) ResolveHandle(ctx context.Context, handle string) (string, error) {
	params := url.Values{}
	params.Set("handle", handle)

	data, err := s.client.Get(ctx, "com.atproto.identity.resolveHandle", params)
	if err != nil {
		// The PDS reports unknown handles as InvalidRequest.
		var xe *Error
		if errors.As(err, &xe) && xe.Code == "InvalidRequest" {
			return "", fmt.Errorf("%w: %s", domain.ErrUnknownHandle, handle)
		}
		return "", fmt.Errorf("resolving handle: %w", err)
	}

	var resolved resolveHandleResponse
	if err := json.Unmarshal(data, &resolved); err != nil {
		return "", fmt.Errorf("parsing resolve response: %w", err)
	}
	return resolved.Did, nil
}
