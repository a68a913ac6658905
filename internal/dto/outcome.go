package dto

import (
	"bancore/internal/errors"
)

// Outcome is the structured result of a settlement operation: either success
// with a human-readable message and an optional typed payload, or a typed
// failure. Expected business failures never surface as raw errors.
type Outcome struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Payload interface{}     `json:"payload,omitempty"`
	Failure *errors.Failure `json:"failure,omitempty"`
}

// Succeed builds a successful outcome carrying a payload
func Succeed(message string, payload interface{}) *Outcome {
	return &Outcome{
		Success: true,
		Message: message,
		Payload: payload,
	}
}

// Fail builds a failure outcome from an error code with optional details
func Fail(code errors.ErrorCode, opts ...errors.FailureOption) *Outcome {
	return &Outcome{
		Success: false,
		Failure: errors.NewFailure(code, opts...),
	}
}

// FailValidation builds a failure outcome from field-level validation errors
func FailValidation(fieldErrors map[string]string) *Outcome {
	return &Outcome{
		Success: false,
		Failure: errors.NewValidationFailure(fieldErrors),
	}
}
