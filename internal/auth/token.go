package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrExpiredToken is returned for a structurally valid, correctly signed
	// token whose expiry has passed. The expiry boundary is exclusive: a
	// token valid "until" T fails at T.
	ErrExpiredToken = errors.New("token expired")
	// ErrInvalidToken covers every other verification failure. Payload and
	// signature tampering fail identically so the caller cannot tell which
	// part was rejected.
	ErrInvalidToken = errors.New("invalid token")
)

// DefaultSessionTTL is the lifetime of a login session token.
const DefaultSessionTTL = 30 * 24 * time.Hour

// Claims is the payload minted into every credential. Email is only set by
// services that need it.
type Claims struct {
	UserID string `json:"userId"`
	Role   Role   `json:"role"`
	Email  string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// Codec mints and verifies signed, time-bound credentials against a shared
// secret. It is stateless and safe for concurrent use.
type Codec struct {
	secret []byte
}

func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue signs a credential for the given subject. A non-positive ttl falls
// back to DefaultSessionTTL.
func (c *Codec) Issue(userID string, role Role, email string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Verify validates the signature and expiry of a credential and returns its
// claims.
func (c *Codec) Verify(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
