// Package apperr defines the typed errors that handlers surface to the HTTP boundary.
//
// An *Error is created where the failure happens, returned unmodified through the
// service and handler layers, and converted to an error envelope exactly once by
// middleware.ErrorHandler.
package apperr

import (
	"errors"
	"maps"
)

// Kind classifies a typed error.
type Kind int

const (
	// KindExternalAPI marks an upstream/provider call that failed or returned unusable data.
	KindExternalAPI Kind = iota + 1
	// KindModelInference is reserved for model-backed endpoints. Nothing raises it yet.
	KindModelInference
	// KindValidation marks a business-rule violation, distinct from request schema validation.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindExternalAPI:
		return "external_api"
	case KindModelInference:
		return "model_inference"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Error is a typed application error carrying a human readable message and
// optional structured details.
type Error struct {
	Kind    Kind
	Message string
	Details map[string]string

	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

// Unwrap exposes the underlying cause for logging and errors.Is checks.
func (e *Error) Unwrap() error { return e.cause }

// DetailsCopy returns a copy of Details so callers cannot mutate the error.
func (e *Error) DetailsCopy() map[string]string {
	if len(e.Details) == 0 {
		return nil
	}
	return maps.Clone(e.Details)
}

// New builds a typed error of the given kind.
func New(kind Kind, message string, details map[string]string) *Error {
	return &Error{Kind: kind, Message: message, Details: details}
}

// Wrap builds a typed error that keeps cause for logs. The cause never reaches the client
// unless the caller copies it into details.
func Wrap(kind Kind, cause error, message string, details map[string]string) *Error {
	return &Error{Kind: kind, Message: message, Details: details, cause: cause}
}

// ExternalAPI reports an upstream provider failure.
func ExternalAPI(message string, details map[string]string) *Error {
	return New(KindExternalAPI, message, details)
}

// ModelInference reports a model inference failure.
func ModelInference(message string, details map[string]string) *Error {
	return New(KindModelInference, message, details)
}

// Validation reports a business-rule violation.
func Validation(message string, details map[string]string) *Error {
	return New(KindValidation, message, details)
}

// As finds the first *Error in err's chain.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}
