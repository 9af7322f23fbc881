package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// Admin session tokens, minted when the PIN gate unlocks. The token
// alone is not enough to reach admin routes: the middleware also checks
// the gate flag, so relocking revokes access before the token expires.

func GenerateAdminToken(secret string) (string, error) {
	claims := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
	})

	return claims.SignedString([]byte(secret))
}

func ParseAdminToken(tokenString, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return err
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid || claims.Subject != "admin" {
		return jwt.ErrTokenInvalidClaims
	}
	return nil
}
