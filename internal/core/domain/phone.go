package domain

import "regexp"

var phonePattern = regexp.MustCompile(`^\d{11}$`)

// Phone is an optional, validated phone number (exactly 11 digits). The zero
// value is the valid "absent" phone.
type Phone struct {
	value string
}

// NewPhone validates and wraps a phone number. An empty input yields the
// valid empty Phone.
func NewPhone(value string) (Phone, error) {
	if value == "" {
		return Phone{}, nil
	}
	if !phonePattern.MatchString(value) {
		return Phone{}, ErrInvalidPhone
	}
	return Phone{value: value}, nil
}

// IsEmpty reports whether the phone is absent.
func (p Phone) IsEmpty() bool {
	return p.value == ""
}

func (p Phone) String() string {
	return p.value
}
