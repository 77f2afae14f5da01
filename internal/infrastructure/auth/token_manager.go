package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"rentnest/pkg/errors"
)

// TokenManager issues and verifies the self-contained session tokens used on
// every protected route. There is no server-side session store; the token's
// signature and expiry are the whole session.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expirySeconds int64) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		expiry: time.Duration(expirySeconds) * time.Second,
	}
}

type sessionClaims struct {
	ID string `json:"id"`
	jwt.RegisteredClaims
}

func (m *TokenManager) Generate(userID string) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		ID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", errors.Internal("Failed to sign session token", err)
	}

	return signed, nil
}

// Verify returns the user id carried by a valid token.
func (m *TokenManager) Verify(tokenString string) (string, error) {
	var claims sessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errors.Unauthorized("Invalid or expired token", err)
	}
	if claims.ID == "" {
		return "", errors.Unauthorized("Invalid or expired token", nil)
	}

	return claims.ID, nil
}
