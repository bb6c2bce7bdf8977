// Package token issues and verifies the signed, time-bounded tokens used by
// the account flow: bearer session tokens and single-use password-reset tokens.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned when a token fails signature, shape or expiry
// validation.
var ErrInvalidToken = errors.New("invalid or expired token")

// SessionClaims is the payload of a bearer session token.
type SessionClaims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

// ResetClaims is the payload of a password-reset token. The embedded email is
// cross-checked against the address supplied on reset completion.
type ResetClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Service signs and verifies HS256 tokens. Claim shape and TTL are chosen per
// call, not per service instance.
type Service struct {
	secret []byte
}

// NewService creates a token service signing with the given secret.
func NewService(secret string) *Service {
	return &Service{secret: []byte(secret)}
}

// sign produces a signed compact token for the given claims.
func (s *Service) sign(claims jwt.Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// keyFunc returns the HMAC secret and rejects any other signing algorithm.
func (s *Service) keyFunc(t *jwt.Token) (interface{}, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, jwt.ErrSignatureInvalid
	}
	return s.secret, nil
}

// registeredClaims builds the standard time claims for the given TTL.
func registeredClaims(ttl time.Duration) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

// IssueSession mints a bearer token carrying the user ID.
func (s *Service) IssueSession(userID uint, ttl time.Duration) (string, error) {
	return s.sign(SessionClaims{
		UserID:           userID,
		RegisteredClaims: registeredClaims(ttl),
	})
}

// IssueReset mints a password-reset token carrying the user ID and email.
func (s *Service) IssueReset(userID uint, email string, ttl time.Duration) (string, error) {
	return s.sign(ResetClaims{
		UserID:           userID,
		Email:            email,
		RegisteredClaims: registeredClaims(ttl),
	})
}

// VerifySession validates a bearer token and returns its claims.
// Expired or tampered tokens yield ErrInvalidToken.
func (s *Service) VerifySession(tokenStr string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, s.keyFunc)
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// VerifyReset validates a password-reset token and returns the embedded user
// ID and email. Expired or tampered tokens yield ErrInvalidToken.
func (s *Service) VerifyReset(tokenStr string) (uint, string, error) {
	claims := &ResetClaims{}
	parsed, err := jwt.ParseWithClaims(tokenStr, claims, s.keyFunc)
	if err != nil || !parsed.Valid {
		return 0, "", ErrInvalidToken
	}
	return claims.UserID, claims.Email, nil
}
