package domain

import (
	"errors"
	"testing"
)

func TestNewEmail_EmptyIsValid(t *testing.T) {
	for _, raw := range []string{""} {
		e, err := NewEmail(raw)
		if err != nil {
			t.Fatalf("empty email should be valid, got %v", err)
		}
		if !e.IsEmpty() {
			t.Fatalf("expected empty email")
		}
	}
}

func TestNewEmail_Valid(t *testing.T) {
	e, err := NewEmail("alice@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.IsEmpty() {
		t.Fatalf("expected non-empty email")
	}
	if e.String() != "alice@example.com" {
		t.Fatalf("unexpected value: %s", e.String())
	}
}

func TestNewEmail_Invalid(t *testing.T) {
	for _, raw := range []string{"not-an-email", "a b@c.com", "@missing-local"} {
		if _, err := NewEmail(raw); !errors.Is(err, ErrInvalidEmail) {
			t.Fatalf("expected ErrInvalidEmail for %q, got %v", raw, err)
		}
	}
}
