package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Time-limited tokens for unauthenticated pass downloads. The token only
// carries the pass serial; possession of the URL is the credential.

type downloadClaims struct {
	Serial string `json:"serial"`
	jwt.RegisteredClaims
}

func SignDownloadToken(serial, secret string, ttl time.Duration) (string, error) {
	claims := &downloadClaims{
		Serial: serial,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func VerifyDownloadToken(tokenStr, secret string) (string, error) {
	claims := &downloadClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return "", err
	}
	if claims.Serial == "" {
		return "", errors.New("missing serial")
	}
	return claims.Serial, nil
}
