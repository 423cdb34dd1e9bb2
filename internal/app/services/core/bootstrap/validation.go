package bootstrap

import (
	"login-service/internal/pkg/constvars"
	"login-service/internal/pkg/utils"
	"strings"
)

// ValidateEmail returns the trimmed address or the reason it is not
// acceptable. It has no side effects.
func ValidateEmail(input string) (string, *ValidationError) {
	email := strings.TrimSpace(input)
	if email == "" {
		return "", &ValidationError{Field: constvars.FormFieldEmail, Kind: Required}
	}
	if err := utils.ValidateVar(email, "email"); err != nil {
		return "", &ValidationError{Field: constvars.FormFieldEmail, Kind: InvalidFormat}
	}
	return email, nil
}
