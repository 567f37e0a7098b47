package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTIssuer_IssueAndParse(t *testing.T) {
	issuer := NewJWTIssuer([]byte("test-secret"), 24*time.Hour)

	token, err := issuer.Issue(42, "jane@x.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "jane@x.com", claims.Email)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestJWTIssuer_WrongSecret(t *testing.T) {
	issuer := NewJWTIssuer([]byte("secret-a"), time.Hour)
	other := NewJWTIssuer([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue(1, "user@example.com")
	require.NoError(t, err)

	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestJWTIssuer_Expired(t *testing.T) {
	issuer := NewJWTIssuer([]byte("test-secret"), -time.Minute)

	token, err := issuer.Issue(1, "user@example.com")
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	assert.Error(t, err)
}

func TestJWTIssuer_Garbage(t *testing.T) {
	issuer := NewJWTIssuer([]byte("test-secret"), time.Hour)

	_, err := issuer.Parse("not-a-token")
	assert.Error(t, err)
}
