package bootstrap

import (
	"errors"
	"login-service/internal/pkg/i18n"
)

type ValidationKind int

const (
	Required ValidationKind = iota + 1
	InvalidFormat
)

func (k ValidationKind) String() string {
	switch k {
	case Required:
		return "required"
	case InvalidFormat:
		return "invalid_format"
	default:
		return "unknown"
	}
}

// MessageKey is the string table key shown next to the field.
func (k ValidationKind) MessageKey() string {
	if k == Required {
		return i18n.KeyRequired
	}
	return i18n.KeyEmailError
}

type ValidationError struct {
	Field string
	Kind  ValidationKind
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Kind.String()
}

// IssuanceError is returned by Submit when the token issuer rejected the
// request. Message is the issuer's human readable failure detail.
type IssuanceError struct {
	Message string
	Err     error
}

func (e *IssuanceError) Error() string {
	return "one-time token request failed: " + e.Message
}

func (e *IssuanceError) Unwrap() error {
	return e.Err
}

var (
	ErrSubmissionInFlight = errors.New("submission already in flight")
	ErrFlowRedirected     = errors.New("flow already redirected")
	ErrMissingDependency  = errors.New("missing flow dependency")
)
