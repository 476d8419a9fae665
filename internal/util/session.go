package util

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the signed payload of the PIN-gate cookie.
// LastActive is refreshed on every gated request; the middleware compares
// it against the inactivity window instead of relying on token expiry.
type SessionClaims struct {
	Authorized bool  `json:"authorized"`
	LastActive int64 `json:"last_active"`
	jwt.RegisteredClaims
}

// NewSessionToken signs a session token marking the holder as authorized,
// with LastActive set to lastActive (unix seconds).
func NewSessionToken(secret string, lastActive time.Time) (string, error) {
	claims := &SessionClaims{
		Authorized: true,
		LastActive: lastActive.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(lastActive),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseSessionToken parses and verifies a session token.
func ParseSessionToken(secret, tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid session token")
	}
	return claims, nil
}
