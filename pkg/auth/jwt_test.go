package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-minimum-32-characters-long"

func TestGenerateAndValidateJWT(t *testing.T) {
	token, err := GenerateJWT("user-123", "rep@example.com", testSecret, 24)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "rep@example.com", claims.Email)
	assert.Equal(t, "user-123", claims.Subject)

	remaining := claims.RemainingLifetime(time.Now())
	assert.InDelta(t, (24 * time.Hour).Seconds(), remaining.Seconds(), 5)
}

func TestValidateJWT_WrongSecret(t *testing.T) {
	token, err := GenerateJWT("user-123", "rep@example.com", testSecret, 24)
	require.NoError(t, err)

	_, err = ValidateJWT(token, "another-secret-key-minimum-32-characters")
	assert.Error(t, err)
}

func TestValidateJWT_Expired(t *testing.T) {
	claims := &Claims{
		UserID: "user-123",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
	assert.Equal(t, time.Duration(0), claims.RemainingLifetime(time.Now()))
}

func TestValidateJWT_RejectsNoneAlgorithm(t *testing.T) {
	claims := &Claims{UserID: "user-123"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestValidateJWT_MissingUserID(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{Email: "x@example.com"}).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = ValidateJWT(token, testSecret)
	assert.Error(t, err)
}

func TestValidateJWTWithBlacklist(t *testing.T) {
	client, _ := setupTestRedis(t)
	blacklist := NewTokenBlacklist(client)
	ctx := context.Background()

	token, err := GenerateJWT("user-123", "rep@example.com", testSecret, 1)
	require.NoError(t, err)

	claims, err := ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)

	require.NoError(t, blacklist.Add(ctx, token, time.Hour))
	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, blacklist)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = ValidateJWTWithBlacklist(ctx, token, testSecret, nil)
	assert.NoError(t, err, "nil blacklist skips the revocation check")
}
