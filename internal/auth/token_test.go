package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenService_issueAndValidate(t *testing.T) {
	ts := NewTokenService("test-secret", 900)
	publicID := uuid.New()

	tokenStr, err := ts.IssueToken(publicID)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	isValid, claims, err := ts.ValidateToken(tokenStr)
	require.NoError(t, err)

	assert.True(t, isValid)
	assert.Equal(t, publicID.String(), claims.PublicID)
}

func TestTokenService_expiredToken(t *testing.T) {
	ts := NewTokenService("test-secret", -1)

	tokenStr, err := ts.IssueToken(uuid.New())
	require.NoError(t, err)

	isValid, _, err := ts.ValidateToken(tokenStr)
	assert.False(t, isValid)
	assert.Error(t, err)
}

func TestTokenService_wrongSecret(t *testing.T) {
	issuer := NewTokenService("issuer-secret", 900)
	verifier := NewTokenService("other-secret", 900)

	tokenStr, err := issuer.IssueToken(uuid.New())
	require.NoError(t, err)

	isValid, _, err := verifier.ValidateToken(tokenStr)
	assert.False(t, isValid)
	assert.Error(t, err)
}

func TestTokenService_garbageToken(t *testing.T) {
	ts := NewTokenService("test-secret", 900)

	isValid, _, err := ts.ValidateToken("not.a.token")
	assert.False(t, isValid)
	assert.Error(t, err)
}

func TestTokenService_expiryWindow(t *testing.T) {
	ts := NewTokenService("test-secret", 900)

	tokenStr, err := ts.IssueToken(uuid.New())
	require.NoError(t, err)

	_, claims, err := ts.ValidateToken(tokenStr)
	require.NoError(t, err)

	window := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 900*time.Second, window)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("testpass")
	require.NoError(t, err)

	assert.NotEqual(t, "testpass", hash)
	assert.True(t, CheckPassword(hash, "testpass"))
	assert.False(t, CheckPassword(hash, "wrongpass"))
}
