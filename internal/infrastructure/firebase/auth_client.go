package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// AuthClient verifies store operator identity. Token issuance and the rest of
// the account lifecycle belong to the identity platform; the panel only ever
// checks that a bearer token is valid and extracts its uid.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

func (f *AuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}
