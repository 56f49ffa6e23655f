package core

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenTTL is the fixed lifetime of a session token. The expiry lives in
// the signed payload; the cookie carries no independent max-age.
const TokenTTL = 7 * 24 * time.Hour

type sessionClaims struct {
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed session tokens. A token carries
// the subject email and nothing else; roles are resolved per request so a
// revocation takes effect without re-authentication.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, now: time.Now}
}

// Issue produces a signed credential embedding the subject and an absolute
// expiry TokenTTL from now. No side effects beyond signing.
func (t *TokenService) Issue(subject string) (string, error) {
	if subject == "" {
		return "", ErrEmailRequired
	}

	now := t.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the subject of a valid token. Verification is binary and
// fails closed: a missing, malformed, tampered, or expired token is
// ErrInvalidToken, with no partial-trust mode.
func (t *TokenService) Verify(token string) (string, error) {
	if token == "" {
		return "", ErrMissingToken
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
