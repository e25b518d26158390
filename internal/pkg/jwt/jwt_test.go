package jwt

import (
	"testing"
	"time"
)

func TestSignAndParse(t *testing.T) {
	token, err := Sign("user-1", "editor", time.Minute)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	claims, err := Parse(token)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != "editor" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestParseRejectsExpiredToken(t *testing.T) {
	token, err := Sign("user-1", "editor", -time.Minute)
	if err != nil {
		t.Fatalf("Sign failed: %v", err)
	}
	if _, err := Parse(token); err == nil {
		t.Fatal("expected an error for an expired token")
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	if _, err := Parse("not.a.token"); err == nil {
		t.Fatal("expected an error for a malformed token")
	}
}
