package main

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "SECRET_KEY", "ALGORITHM", "ACCESS_TOKEN_EXPIRE_MINUTES", "ADMIN_EMAIL"} {
		t.Setenv(key, "")
	}
	c := loadConfig()
	if c.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %s", c.Addr)
	}
	if c.Algorithm != "HS256" {
		t.Fatalf("expected default algorithm HS256, got %s", c.Algorithm)
	}
	if c.TokenTTL != 60*time.Minute {
		t.Fatalf("expected default TTL 60m, got %s", c.TokenTTL)
	}
	if c.AdminEmail != "admin@example.com" {
		t.Fatalf("expected default admin e-mail, got %s", c.AdminEmail)
	}
	if c.EnforceAuthorizedDocs {
		t.Fatal("authorized-docs enforcement must default to off")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("ALGORITHM", "HS512")
	t.Setenv("AUTHORIZED_DOCS_ENFORCE", "true")
	c := loadConfig()
	if c.Addr != ":9000" {
		t.Fatalf("expected :9000, got %s", c.Addr)
	}
	if c.TokenTTL != 15*time.Minute {
		t.Fatalf("expected 15m TTL, got %s", c.TokenTTL)
	}
	if c.Algorithm != "HS512" {
		t.Fatalf("expected HS512, got %s", c.Algorithm)
	}
	if !c.EnforceAuthorizedDocs {
		t.Fatal("expected enforcement on")
	}
}

func TestLoadConfigBadMinutesFallsBack(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "sixty")
	c := loadConfig()
	if c.TokenTTL != 60*time.Minute {
		t.Fatalf("expected fallback 60m TTL, got %s", c.TokenTTL)
	}
}
