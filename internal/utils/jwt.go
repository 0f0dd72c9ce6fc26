package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID string `json:"uid"`
	Role   string `json:"role"`
	Type   string `json:"typ,omitempty"` // "refresh" on refresh tokens
	jwt.RegisteredClaims
}

func SignJWT(secret string, userID string, role string, expiresMin int) (string, error) {
	return signToken(secret, userID, role, "", expiresMin)
}

// SignRefreshJWT issues the longer-lived token of the pair returned at login.
func SignRefreshJWT(secret string, userID string, role string, expiresMin int) (string, error) {
	return signToken(secret, userID, role, "refresh", expiresMin)
}

func signToken(secret, userID, role, typ string, expiresMin int) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Role:   role,
		Type:   typ,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiresMin) * time.Minute)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func ParseJWT(secret, tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
