package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndVerify_RoundTrip(t *testing.T) {
	secret := []byte("test-secret-at-least-32-bytes-long")
	issuer := NewIssuer(secret, time.Hour)
	verifier := NewVerifier(secret)

	signed, err := issuer.Issue("user-1", "Riley Park")
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	claims, err := verifier.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Riley Park", claims.Name)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewIssuer([]byte("test-secret-at-least-32-bytes-long"), time.Hour)
	verifier := NewVerifier([]byte("a-completely-different-secret-here"))

	signed, err := issuer.Issue("user-1", "Riley Park")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_ExpiredToken(t *testing.T) {
	secret := []byte("test-secret-at-least-32-bytes-long")
	issuer := NewIssuer(secret, -time.Minute)
	verifier := NewVerifier(secret)

	signed, err := issuer.Issue("user-1", "Riley Park")
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	verifier := NewVerifier([]byte("test-secret-at-least-32-bytes-long"))

	_, err := verifier.Verify("")
	assert.Error(t, err)

	_, err = verifier.Verify("not.a.token")
	assert.Error(t, err)
}
