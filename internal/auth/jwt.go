// Package auth issues and verifies the HS256 bearer tokens the API uses to
// identify principals. Tokens carry the user id as the subject and the
// display name as a private claim.
package auth

import (
	"fmt"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

const issuerName = "pulse"

// Claims are the verified fields extracted from a bearer token.
type Claims struct {
	UserID string
	Name   string
}

// Issuer signs tokens for authenticated users.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates a token issuer with the given signing secret and lifetime.
func NewIssuer(secret []byte, ttl time.Duration) *Issuer {
	return &Issuer{secret: secret, ttl: ttl}
}

// Issue builds and signs a token for the user.
func (i *Issuer) Issue(userID, name string) (string, error) {
	now := time.Now().UTC()
	token, err := jwt.NewBuilder().
		Issuer(issuerName).
		Subject(userID).
		Claim("name", name).
		IssuedAt(now).
		Expiration(now.Add(i.ttl)).
		Build()
	if err != nil {
		return "", fmt.Errorf("failed to build token: %w", err)
	}

	signed, err := jwt.Sign(token, jwt.WithKey(jwa.HS256, i.secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return string(signed), nil
}

// Verifier validates bearer tokens and extracts their claims.
type Verifier struct {
	secret []byte
}

// NewVerifier creates a token verifier for the given signing secret.
func NewVerifier(secret []byte) *Verifier {
	return &Verifier{secret: secret}
}

// Verify checks the signature and registered claims (expiry included) and
// returns the principal the token identifies.
func (v *Verifier) Verify(tokenString string) (*Claims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, fmt.Errorf("empty token")
	}

	token, err := jwt.Parse([]byte(tokenString),
		jwt.WithKey(jwa.HS256, v.secret),
		jwt.WithIssuer(issuerName),
		jwt.WithValidate(true),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims := &Claims{UserID: token.Subject()}
	if name, ok := token.Get("name"); ok {
		if s, ok := name.(string); ok {
			claims.Name = s
		}
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("token missing subject")
	}
	return claims, nil
}
