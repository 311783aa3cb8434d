package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
)

// Kind tags the pipeline stage or failure class an error belongs to. The tag
// is part of the wire contract: clients branch on it.
type Kind string

const (
	KindValidation Kind = "validation_error"

	// Setup pipeline stages.
	KindCustomer      Kind = "customer_error"
	KindEphemeralKey  Kind = "ephemeral_key_error"
	KindPaymentIntent Kind = "payment_intent_error"

	// Confirmation pipeline stages.
	KindPaymentMethodAttachment Kind = "payment_method_attachment_error"
	KindPaymentMethod           Kind = "payment_method_error"
	KindPaymentConfirmation     Kind = "payment_confirmation_error"
	KindConfirmation            Kind = "confirmation_error"

	// Business-level verdict: the provider call worked, the payment did not.
	KindPaymentFailed Kind = "payment_failed"

	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindDependency Kind = "dependency_error"
	KindInternal   Kind = "internal_error"
)

var statusByKind = map[Kind]int{
	KindValidation:              http.StatusBadRequest,
	KindCustomer:                http.StatusInternalServerError,
	KindEphemeralKey:            http.StatusInternalServerError,
	KindPaymentIntent:           http.StatusInternalServerError,
	KindPaymentMethodAttachment: http.StatusBadRequest,
	KindPaymentMethod:           http.StatusInternalServerError,
	KindPaymentConfirmation:     http.StatusBadRequest,
	KindConfirmation:            http.StatusInternalServerError,
	KindPaymentFailed:           http.StatusBadRequest,
	KindNotFound:                http.StatusNotFound,
	KindConflict:                http.StatusConflict,
	KindDependency:              http.StatusInternalServerError,
	KindInternal:                http.StatusInternalServerError,
}

// StatusFor returns the default HTTP status for a kind.
func StatusFor(kind Kind) int {
	if status, ok := statusByKind[kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// Error is the typed error carried across stage boundaries. A stage failure
// holds its kind, a caller-safe message, and optionally a provider-derived
// HTTP status overriding the kind default.
type Error struct {
	kind    Kind
	message string
	status  int
	details any
	cause   error
}

func New(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

func Wrap(kind Kind, err error, message string) *Error {
	if err == nil {
		return New(kind, message)
	}
	return &Error{kind: kind, message: message, cause: err}
}

// WithStatus pins an explicit HTTP status, e.g. the one the payment provider
// returned for a rejected attach.
func (e *Error) WithStatus(status int) *Error {
	if e == nil {
		return nil
	}
	if status > 0 {
		e.status = status
	}
	return e
}

// WithDetails attaches structured detail payload exposed to the caller.
func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Kind() Kind {
	if e == nil {
		return KindInternal
	}
	return e.kind
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Status returns the pinned HTTP status when set, else the kind default.
func (e *Error) Status() int {
	if e == nil {
		return http.StatusInternalServerError
	}
	if e.status > 0 {
		return e.status
	}
	return StatusFor(e.kind)
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.kind, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// As extracts a typed *Error from anywhere in the chain, or nil.
func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}
