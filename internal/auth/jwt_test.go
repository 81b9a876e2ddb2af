package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("super-secret-key", 15*time.Minute)

	token, err := issuer.GenerateToken("admin", "admin")
	require.NoError(t, err)

	claims, err := issuer.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
}

func TestParseToken_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("super-secret-key", time.Minute)
	other := NewTokenIssuer("another-key", time.Minute)

	foreign, err := other.GenerateToken("admin", "admin")
	require.NoError(t, err)
	_, err = issuer.ParseToken(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	expired := NewTokenIssuer("super-secret-key", time.Minute)
	expired.now = func() time.Time { return time.Now().Add(-time.Hour) }
	old, err := expired.GenerateToken("admin", "admin")
	require.NoError(t, err)
	_, err = issuer.ParseToken(old)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.ParseToken("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCheckCredentials(t *testing.T) {
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NoError(t, CheckCredentials("admin", hash, "admin", "secret"))
	assert.ErrorIs(t, CheckCredentials("admin", hash, "admin", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, CheckCredentials("admin", hash, "root", "secret"), ErrInvalidCredentials)
	assert.ErrorIs(t, CheckCredentials("admin", "", "admin", "secret"), ErrInvalidCredentials)
}
