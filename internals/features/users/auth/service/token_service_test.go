package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"storeadmin_backend/internals/configs"
)

func TestIssueTokenRoundTrip(t *testing.T) {
	configs.JWTSecret = "test-secret"
	t.Cleanup(func() { configs.JWTSecret = "" })

	adminID := "9f1c7b3a-0000-4000-8000-000000000001"
	signed, expiresAt, err := IssueToken(adminID)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if time.Until(expiresAt) <= 0 {
		t.Error("token already expired")
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse: %v", err)
	}
	if claims["admin_id"] != adminID {
		t.Errorf("admin_id = %v", claims["admin_id"])
	}
}

func TestIssueTokenRequiresSecret(t *testing.T) {
	configs.JWTSecret = ""
	if _, _, err := IssueToken("any"); err == nil {
		t.Fatal("expected error without a secret")
	}
}
