package token

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestIssueVerifyRoundTrip(t *testing.T) {
	s := NewSigner("test-secret")
	tok := s.Issue("alice@example.com")

	payload, err := s.Verify(tok, time.Hour)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if payload != "alice@example.com" {
		t.Errorf("payload = %q, want alice@example.com", payload)
	}
}

func TestVerifyExpired(t *testing.T) {
	s := NewSigner("test-secret")
	tok := s.issueAt("alice@example.com", time.Now().Add(-2*time.Hour))

	if _, err := s.Verify(tok, time.Hour); !errors.Is(err, ErrExpiredToken) {
		t.Fatalf("err = %v, want ErrExpiredToken", err)
	}

	// The payload is still recoverable for the resend path.
	payload, err := s.Payload(tok)
	if err != nil {
		t.Fatalf("Payload: %v", err)
	}
	if payload != "alice@example.com" {
		t.Errorf("payload = %q, want alice@example.com", payload)
	}
}

func TestVerifyTampered(t *testing.T) {
	s := NewSigner("test-secret")
	tok := s.Issue("alice@example.com")

	parts := strings.Split(tok, ".")
	parts[1] = "9999999999"
	tampered := strings.Join(parts, ".")

	if _, err := s.Verify(tampered, time.Hour); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("tampered timestamp: err = %v, want ErrInvalidToken", err)
	}

	other := NewSigner("other-secret")
	if _, err := other.Verify(tok, time.Hour); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("wrong secret: err = %v, want ErrInvalidToken", err)
	}
}

func TestVerifyGarbage(t *testing.T) {
	s := NewSigner("test-secret")
	for _, tok := range []string{"", "abc", "a.b", "a.b.c.d", "!!.12.sig"} {
		if _, err := s.Verify(tok, time.Hour); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("Verify(%q): err = %v, want ErrInvalidToken", tok, err)
		}
	}
}
