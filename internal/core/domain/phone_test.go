package domain

import (
	"errors"
	"testing"
)

func TestNewPhone_EmptyIsValid(t *testing.T) {
	p, err := NewPhone("")
	if err != nil {
		t.Fatalf("empty phone should be valid, got %v", err)
	}
	if !p.IsEmpty() {
		t.Fatalf("expected empty phone")
	}
}

func TestNewPhone_Valid(t *testing.T) {
	p, err := NewPhone("13812345678")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.String() != "13812345678" {
		t.Fatalf("unexpected value: %s", p.String())
	}
}

func TestNewPhone_Invalid(t *testing.T) {
	for _, raw := range []string{"12345", "138123456789", "1381234567a"} {
		if _, err := NewPhone(raw); !errors.Is(err, ErrInvalidPhone) {
			t.Fatalf("expected ErrInvalidPhone for %q, got %v", raw, err)
		}
	}
}
