package errors

import (
	"fmt"
	"strings"
)

// Kind classifies a failure for the surrounding application: validation
// failures are surfaced verbatim, business-rule violations are typed and
// non-retryable, integrity failures may be retried a bounded number of times.
type Kind int

const (
	KindValidation Kind = iota
	KindBusinessRule
	KindIntegrity
	KindInternal
)

// Failure is the structured failure payload attached to a settlement outcome
type Failure struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details []string  `json:"details,omitempty"`
}

// FailureOption is a functional option for configuring failures
type FailureOption func(*Failure)

// WithDetails adds detail messages to the failure
func WithDetails(details ...string) FailureOption {
	return func(f *Failure) {
		f.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) FailureOption {
	return func(f *Failure) {
		f.Message = message
	}
}

// NewFailure creates a failure with the registered default message for code.
// Optional details can be added using functional options.
func NewFailure(code ErrorCode, opts ...FailureOption) *Failure {
	f := &Failure{
		Code:    code,
		Message: GetErrorMessage(code),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewValidationFailure creates a validation failure with field-specific details.
// fieldErrors is a map of field names to their error messages.
func NewValidationFailure(fieldErrors map[string]string) *Failure {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	return &Failure{
		Code:    ValidationGeneral,
		Message: GetErrorMessage(ValidationGeneral),
		Details: details,
	}
}

// Error implements the error interface so failures can travel through
// error-returning call chains when needed.
func (f *Failure) Error() string {
	if len(f.Details) == 0 {
		return fmt.Sprintf("%s: %s", f.Code, f.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", f.Code, f.Message, strings.Join(f.Details, "; "))
}

// KindOf maps an error code to its failure kind
func KindOf(code ErrorCode) Kind {
	switch {
	case strings.HasPrefix(string(code), "VALIDATION_"):
		return KindValidation
	case code == SystemCommitConflict:
		return KindIntegrity
	case strings.HasPrefix(string(code), "SYSTEM_"):
		return KindInternal
	default:
		return KindBusinessRule
	}
}
