package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func TestGoogleVerifier_Verify(t *testing.T) {
	v := NewGoogleVerifier("client-123")
	v.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		assert.Equal(t, "client-123", audience)
		if token != "good" {
			return nil, errors.New("bad signature")
		}
		return &idtoken.Payload{
			Subject: "google-sub-1",
			Claims: map[string]any{
				"email":          "rep@example.com",
				"email_verified": true,
				"name":           "Li Wei",
			},
		}, nil
	}

	id, err := v.Verify(context.Background(), "good")
	require.NoError(t, err)
	assert.Equal(t, &Identity{
		Provider:      "google",
		Subject:       "google-sub-1",
		Email:         "rep@example.com",
		EmailVerified: true,
		Name:          "Li Wei",
	}, id)

	_, err = v.Verify(context.Background(), "bad")
	assert.Error(t, err)
}

func TestGoogleVerifier_MissingEmail(t *testing.T) {
	v := NewGoogleVerifier("client-123")
	v.validate = func(ctx context.Context, token, audience string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Subject: "s", Claims: map[string]any{}}, nil
	}

	_, err := v.Verify(context.Background(), "token")
	assert.Error(t, err)
}

func TestGoogleVerifier_NotConfigured(t *testing.T) {
	_, err := NewGoogleVerifier("").Verify(context.Background(), "token")
	assert.Error(t, err)
}
