package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"storeadmin_backend/internals/configs"
)

const accessTTLDefault = 24 * time.Hour

// IssueToken signs an access token carrying the admin id.
func IssueToken(adminID string) (string, time.Time, error) {
	if configs.JWTSecret == "" {
		return "", time.Time{}, errors.New("JWT secret is not configured")
	}
	expiresAt := time.Now().Add(accessTTLDefault)
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"iat":      time.Now().Unix(),
		"exp":      expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}
