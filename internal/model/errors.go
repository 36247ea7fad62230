package model

import (
	"encoding/json"
	"fmt"
)

// ValidationError rejects malformed client input before any outbound call.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation: %s: %s", e.Field, e.Message)
	}
	return "validation: " + e.Message
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// GatewayError is a non-success response from the payment provider. RawBody
// keeps the provider's payload verbatim for diagnostics.
type GatewayError struct {
	StatusCode int
	RawBody    json.RawMessage
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway error %d: %s", e.StatusCode, string(e.RawBody))
}

// NetworkError is a transport failure reaching the provider.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network: %s: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StateError is an operation attempted in a checkout state that does not
// allow it, e.g. submitting a payment with no active session.
type StateError struct {
	Op    string
	State string
}

func (e *StateError) Error() string {
	return fmt.Sprintf("state: cannot %s in state %s", e.Op, e.State)
}
