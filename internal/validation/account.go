// Package validation provides input validation utilities
package validation

import (
	"fmt"
	"unicode/utf8"
)

const (
	minNameLen = 3
	maxNameLen = 64
)

// ValidateName checks if an account name meets requirements.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name is required")
	}
	if utf8.RuneCountInString(name) < minNameLen {
		return fmt.Errorf("name must be at least %d characters long", minNameLen)
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return fmt.Errorf("name must not exceed %d characters", maxNameLen)
	}
	return nil
}

// ValidateEmail checks that an email address is present. Format is
// deliberately not enforced; the address is never used for delivery.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is required")
	}
	if len(email) > 254 {
		return fmt.Errorf("email must not exceed 254 characters")
	}
	return nil
}

// ValidatePassword checks that a password is present.
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password is required")
	}
	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}
	return nil
}
