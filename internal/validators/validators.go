package validators

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidationError reports a rejected submission field. Handlers surface it
// as a 400 before any persistence attempt.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid field %s: %s", e.Field, e.Reason)
}

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Required checks that a field carries a non-blank value.
func Required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "required"}
	}
	return nil
}

// ValidateEmail checks basic address shape. Deliverability is not verified.
func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return &ValidationError{Field: "email", Reason: "required"}
	}
	if len(email) > 254 || !emailRegex.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "malformed address"}
	}
	return nil
}

// ValidateGroupSize checks the booking party size.
func ValidateGroupSize(size int) error {
	if size < 1 {
		return &ValidationError{Field: "size", Reason: "must be at least 1"}
	}
	return nil
}
