// Package jwtmw issues and verifies the signed access tokens used for
// authentication, and provides the Gin middleware that enforces them.
package jwtmw

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"sweetshop_backend/internal/feature/auth/domain/entity"
)

// ErrInvalidToken is returned by Decode for every token failure: bad
// signature, malformed structure, unknown role, or expiry. Collapsing the
// causes into one sentinel keeps the outward signal uniform.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the payload carried by an access token: the subject (email),
// the role, and the registered issued-at/expiry timestamps.
type Claims struct {
	Role entity.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec encodes and decodes self-contained access tokens signed with a
// process-wide HMAC secret. Issuance and decoding are pure and cheap; no
// locking or server-side session state is involved. Rotating the secret
// invalidates every previously issued token.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a Codec with the given signing secret and token TTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue creates a signed HS256 token for the given subject and role,
// valid from now until now + TTL.
func (c *Codec) Issue(subject string, role entity.Role) (string, error) {
	now := c.now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature and expiry of tokenStr and returns its
// claims. The signature is re-derived over the received header and claim
// bytes; unsigned or tampered claims are never trusted. Any failure is
// reported as ErrInvalidToken.
func (c *Codec) Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		// Only HMAC is acceptable; an attacker must not be able to
		// downgrade the algorithm.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithTimeFunc(c.now))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	// Tokens issued before roles existed carry no role claim; treat them
	// as plain users rather than rejecting them.
	if claims.Role == "" {
		claims.Role = entity.RoleUser
	}
	if !claims.Role.Valid() {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// IsExpired reports whether the claims' expiry has passed. It assumes the
// signature has already been verified via Decode and does not re-check it.
func (c *Codec) IsExpired(claims *Claims) bool {
	if claims.ExpiresAt == nil {
		return true
	}
	return !c.now().Before(claims.ExpiresAt.Time)
}
