package domain

import "regexp"

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9.-]+$`)

// Email is an optional, validated email address. The zero value is the valid
// "absent" email; a non-empty value always matched the format at construction.
type Email struct {
	value string
}

// NewEmail validates and wraps an email address. An empty input yields the
// valid empty Email — the field is optional, absence skips validation.
func NewEmail(value string) (Email, error) {
	if value == "" {
		return Email{}, nil
	}
	if !emailPattern.MatchString(value) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: value}, nil
}

// IsEmpty reports whether the email is absent.
func (e Email) IsEmpty() bool {
	return e.value == ""
}

func (e Email) String() string {
	return e.value
}
