// Package token issues and validates the signed, time-bounded credentials
// that prove caller identity. Tokens are stateless and single-lived: there
// is no revocation list, a token stays valid until its expiry elapses.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token lifetime: 360000 seconds (100 hours).
const DefaultTTL = 360000 * time.Second

// Leeway tolerated when checking expiry, to absorb minor clock skew
// between issuing and verifying hosts.
const leeway = 2 * time.Second

var ErrNoSecret = errors.New("token: signing secret not configured")
var ErrInvalidToken = errors.New("token: invalid token")

// Identity is the resolved caller for one request. It exists only for the
// request's duration and is never persisted.
type Identity struct {
	UserID string
}

// userClaims mirrors the wire shape {"user":{"id":"..."}} plus the
// registered iat/exp claims.
type userClaims struct {
	User struct {
		ID string `json:"id"`
	} `json:"user"`
	jwt.RegisteredClaims
}

// Codec signs and verifies identity tokens with a process-wide secret
// injected at startup.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec builds a Codec. A non-positive ttl falls back to DefaultTTL.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding userID, the current timestamp,
// and an expiry ttl from now. It fails only when the signing secret is
// missing, which is a configuration failure rather than a runtime path.
func (c *Codec) Issue(userID string) (string, error) {
	if len(c.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := userClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	claims.User.ID = userID

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Decode verifies the token's signature and expiry and returns the embedded
// identity. Any malformed, tampered, or expired token fails with
// ErrInvalidToken; the cause is not distinguished.
func (c *Codec) Decode(tokenString string) (Identity, error) {
	claims := &userClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	}, jwt.WithLeeway(leeway))
	if err != nil || !tkn.Valid || claims.User.ID == "" {
		return Identity{}, ErrInvalidToken
	}

	return Identity{UserID: claims.User.ID}, nil
}
