// Package token issues and validates the signed bearer tokens that carry a
// principal's identity between requests. Tokens are self-contained: there is
// no server-side session store, validity rests entirely on the HMAC
// signature and the embedded expiry.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/smarttask/task-system/internal/core/domain"
)

const defaultTTL = 24 * time.Hour

// Codec signs and verifies compact JWTs with a single process-wide symmetric
// key. Issuer and verifier are the same process, so HS256 is sufficient;
// there is no key rotation.
type Codec struct {
	key []byte
	ttl time.Duration
}

// NewCodec builds a Codec around the shared signing key. A non-positive ttl
// falls back to 24 hours.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Codec{key: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for subject, valid from now until now+ttl.
func (c *Codec) Issue(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.key)
}

// Validate parses and verifies raw, returning the embedded subject.
// All failures collapse to one of three typed errors; raw is
// attacker-controlled on every request, so nothing here may panic or leak a
// partial result. A token whose expiry equals the validation instant is
// already expired.
func (c *Codec) Validate(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.key, nil
	}, jwt.WithExpirationRequired())

	switch {
	case err == nil && parsed.Valid:
		if claims.Subject == "" {
			return "", domain.ErrTokenMalformed
		}
		return claims.Subject, nil
	case errors.Is(err, jwt.ErrTokenExpired):
		return "", domain.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "", domain.ErrTokenSignatureInvalid
	default:
		return "", domain.ErrTokenMalformed
	}
}
