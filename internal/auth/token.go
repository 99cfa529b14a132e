package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers bad signatures, expired tokens and malformed input
// alike; callers must not distinguish between them.
var ErrInvalidToken = errors.New("invalid or expired token")

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenCodec issues and validates signed session tokens. It is a pure
// function of secret + payload + clock, constructed once at startup.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (c *TokenCodec) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID,
	})

	return token.SignedString(c.secret)
}

// Validate returns the embedded user id, or ErrInvalidToken.
func (c *TokenCodec) Validate(tokenString string) (string, error) {
	parsed := &claims{}

	token, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", ErrInvalidToken
	}

	if !token.Valid || parsed.UserID == "" {
		return "", ErrInvalidToken
	}

	return parsed.UserID, nil
}
