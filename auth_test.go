package main

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testConfig() Config {
	return Config{SecretKey: "test-secret", Algorithm: "HS256", TokenTTL: 60 * time.Minute}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := testConfig()
	token, err := createAccessToken(cfg, "user@example.com")
	if err != nil {
		t.Fatalf("createAccessToken failed: %v", err)
	}
	sub, err := parseAccessToken(cfg, token)
	if err != nil {
		t.Fatalf("parseAccessToken failed: %v", err)
	}
	if sub != "user@example.com" {
		t.Fatalf("expected subject user@example.com, got %q", sub)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := testConfig()
	cfg.TokenTTL = -time.Minute
	token, err := createAccessToken(cfg, "user@example.com")
	if err != nil {
		t.Fatalf("createAccessToken failed: %v", err)
	}
	if _, err := parseAccessToken(cfg, token); !errors.Is(err, ErrCredentials) {
		t.Fatalf("expected ErrCredentials for expired token, got %v", err)
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	cfg := testConfig()
	token, err := createAccessToken(cfg, "user@example.com")
	if err != nil {
		t.Fatalf("createAccessToken failed: %v", err)
	}
	other := cfg
	other.SecretKey = "another-secret"
	if _, err := parseAccessToken(other, token); !errors.Is(err, ErrCredentials) {
		t.Fatalf("expected ErrCredentials for wrong secret, got %v", err)
	}
}

func TestTokenWithoutSubjectRejected(t *testing.T) {
	cfg := testConfig()
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := raw.SignedString([]byte(cfg.SecretKey))
	if err != nil {
		t.Fatalf("sign failed: %v", err)
	}
	if _, err := parseAccessToken(cfg, token); !errors.Is(err, ErrCredentials) {
		t.Fatalf("expected ErrCredentials for missing sub, got %v", err)
	}
}

func TestNonHMACAlgorithmRefused(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = "RS256"
	if _, err := createAccessToken(cfg, "user@example.com"); err == nil {
		t.Fatal("expected error for non-HMAC algorithm")
	}
}

func TestHS512Supported(t *testing.T) {
	cfg := testConfig()
	cfg.Algorithm = "HS512"
	token, err := createAccessToken(cfg, "user@example.com")
	if err != nil {
		t.Fatalf("createAccessToken failed: %v", err)
	}
	if _, err := parseAccessToken(cfg, token); err != nil {
		t.Fatalf("parseAccessToken failed: %v", err)
	}
}
