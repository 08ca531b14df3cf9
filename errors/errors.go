package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error classification.
type Kind string

const (
	// KindConfiguration indicates missing or invalid provider configuration.
	KindConfiguration Kind = "CONFIGURATION"
	// KindNotSupported indicates the active provider has no binding for the
	// requested operation.
	KindNotSupported Kind = "NOT_SUPPORTED"
	// KindUpstream indicates the backend rejected or failed the request.
	KindUpstream Kind = "UPSTREAM"
	// KindNetwork indicates a transport-level failure.
	KindNetwork Kind = "NETWORK"
)

// Error is the unified commercekit error type.
type Error struct {
	// Kind classifies the error.
	Kind Kind `json:"kind"`
	// Message is a human-readable description.
	Message string `json:"message"`
	// StatusCode is the backend HTTP status code for UPSTREAM errors,
	// zero otherwise.
	StatusCode int `json:"status_code,omitempty"`
	// Retryable indicates whether the failed operation may be retried.
	Retryable bool `json:"retryable"`
	// Details carries additional context (operation name, field, provider).
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error, if any.
	Cause error `json:"-"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.StatusCode > 0 && e.Cause != nil:
		return fmt.Sprintf("%s (HTTP %d): %s: %v", e.Kind, e.StatusCode, e.Message, e.Cause)
	case e.StatusCode > 0:
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.StatusCode, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error { return e.Cause }

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *Error) WithDetail(key string, value any) *Error {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Configuration creates an error for missing or invalid provider configuration.
func Configuration(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// MissingConfig creates a configuration error for a missing required field.
func MissingConfig(field string) *Error {
	return &Error{
		Kind:    KindConfiguration,
		Message: fmt.Sprintf("missing required configuration field: %s", field),
		Details: map[string]any{"field": field},
	}
}

// NotSupported creates an error for an operation the active provider cannot
// serve.
func NotSupported(operation, provider string) *Error {
	return &Error{
		Kind:    KindNotSupported,
		Message: fmt.Sprintf("operation %q is not supported by provider %q", operation, provider),
		Details: map[string]any{"operation": operation, "provider": provider},
	}
}

// Upstream creates an error for a backend-rejected request, preserving the
// backend's HTTP status code.
func Upstream(statusCode int, message string) *Error {
	return &Error{
		Kind:       KindUpstream,
		Message:    message,
		StatusCode: statusCode,
		Retryable:  statusCode == 429 || statusCode >= 500,
	}
}

// Network creates an error for a transport-level failure.
func Network(cause error) *Error {
	msg := "request failed"
	if cause != nil {
		msg = cause.Error()
	}
	return &Error{
		Kind:      KindNetwork,
		Message:   msg,
		Retryable: true,
		Cause:     cause,
	}
}

// Validation creates a configuration-kind error for invalid caller input.
func Validation(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message}
}

// IsConfiguration reports whether err is a configuration error.
func IsConfiguration(err error) bool { return isKind(err, KindConfiguration) }

// IsNotSupported reports whether err is an operation-not-supported error.
func IsNotSupported(err error) bool { return isKind(err, KindNotSupported) }

// IsUpstream reports whether err is a backend failure.
func IsUpstream(err error) bool { return isKind(err, KindUpstream) }

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) bool { return isKind(err, KindNetwork) }

// IsRetryable reports whether the failed operation may be retried.
func IsRetryable(err error) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Retryable
}

// StatusCode returns the backend HTTP status code carried by err, or zero if
// err is not an upstream error.
func StatusCode(err error) int {
	var e *Error
	if stderrors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

func isKind(err error, kind Kind) bool {
	var e *Error
	return stderrors.As(err, &e) && e.Kind == kind
}

// As is a convenience re-export of the standard library errors.As.
func As(err error, target any) bool { return stderrors.As(err, target) }

// Is is a convenience re-export of the standard library errors.Is.
func Is(err, target error) bool { return stderrors.Is(err, target) }
