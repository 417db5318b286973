// Package auth issues and validates the signed bearer tokens that gate all
// mutating API operations.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	// ErrExpiredToken indicates the token signature was valid but the
	// expiry timestamp has passed.
	ErrExpiredToken = errors.New("token has expired")
	// ErrMalformedToken indicates the token failed signature verification
	// or is missing required claims.
	ErrMalformedToken = errors.New("malformed token")
)

// TokenService issues and validates HS256-signed tokens carrying the user's
// email as the subject claim.
type TokenService struct {
	secret []byte
	expiry time.Duration
}

// NewTokenService returns a TokenService with the given signing secret and
// default token lifetime.
func NewTokenService(secret string, expiry time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), expiry: expiry}
}

// DefaultExpiry returns the configured default token lifetime.
func (s *TokenService) DefaultExpiry() time.Duration {
	return s.expiry
}

// Issue creates a signed token for the given email. A zero lifetime uses the
// configured default. The legacy "email" claim is kept alongside "sub" so
// tokens stay readable by older clients.
func (s *TokenService) Issue(email string, lifetime time.Duration) (string, error) {
	if len(s.secret) == 0 {
		return "", fmt.Errorf("token secret not configured")
	}
	if lifetime == 0 {
		lifetime = s.expiry
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   email,
		"email": email, // deprecated; kept for backward compatibility
		"exp":   now.Add(lifetime).Unix(),
		"iat":   now.Unix(),
		"jti":   fmt.Sprintf("%d-%s", now.Unix(), uuid.NewString()[:8]),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate verifies signature and expiry and returns the subject email.
// Expired tokens return ErrExpiredToken; every other failure mode, including
// a missing subject, returns ErrMalformedToken.
func (s *TokenService) Validate(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpiredToken
		}
		return "", ErrMalformedToken
	}
	if !token.Valid {
		return "", ErrMalformedToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrMalformedToken
	}

	// "sub" is canonical; "email" is accepted for tokens issued by older
	// versions of the validation logic.
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub, nil
	}
	if email, ok := claims["email"].(string); ok && email != "" {
		return email, nil
	}
	return "", ErrMalformedToken
}
