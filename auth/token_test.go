package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_GuestAndUser(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	guest, _, err := issuer.Issue("sess-1", nil)
	require.NoError(t, err)
	claims, err := issuer.Parse(guest)
	require.NoError(t, err)
	assert.Equal(t, "sess-1", claims.SessionID)
	assert.Equal(t, RoleGuest, claims.Role)
	assert.Empty(t, claims.UserID)

	user, _, err := issuer.Issue("sess-1", &Identity{UID: "u1", Email: "u1@example.com"})
	require.NoError(t, err)
	claims, err = issuer.Parse(user)
	require.NoError(t, err)
	assert.Equal(t, RoleUser, claims.Role)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "u1@example.com", claims.Email)
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Minute)
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return start }

	tok, expires, err := issuer.Issue("sess-2", nil)
	require.NoError(t, err)
	assert.Equal(t, start.Add(time.Minute), expires)

	issuer.now = func() time.Time { return start.Add(2 * time.Minute) }
	_, err = issuer.Parse(tok)
	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	tok, _, err := NewTokenIssuer("other", time.Hour).Issue("sess-3", nil)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Parse(tok)
	assert.Error(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Parse("not-a-token")
	assert.Error(t, err)
}
