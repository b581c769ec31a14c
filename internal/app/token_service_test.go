package app

import (
	"errors"
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), 14*24*time.Hour)

	token, err := svc.Issue("abc-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	publicID, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if publicID != "abc-123" {
		t.Errorf("expected public id abc-123, got %q", publicID)
	}
}

func TestTokenMissing(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	_, err := svc.Verify("")
	if !errors.Is(err, ErrTokenMissing) {
		t.Errorf("expected ErrTokenMissing, got %v", err)
	}
}

func TestTokenExpired(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), -time.Minute)

	token, err := svc.Issue("abc-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = svc.Verify(token)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenWrongSecret(t *testing.T) {
	issuer := NewTokenService([]byte("secret-a"), time.Hour)
	verifier := NewTokenService([]byte("secret-b"), time.Hour)

	token, err := issuer.Issue("abc-123")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	_, err = verifier.Verify(token)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestTokenMalformed(t *testing.T) {
	svc := NewTokenService([]byte("test-secret"), time.Hour)

	for _, bad := range []string{"garbage", "a.b.c", "eyJhbGciOiJIUzI1NiJ9.."} {
		if _, err := svc.Verify(bad); !errors.Is(err, ErrTokenInvalid) {
			t.Errorf("Verify(%q): expected ErrTokenInvalid, got %v", bad, err)
		}
	}
}
