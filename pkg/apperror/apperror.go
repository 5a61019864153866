package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies a business failure so the HTTP layer can map it to a status
// code without string matching.
type Kind string

const (
	KindNotFound              Kind = "not_found"
	KindInvalidInput          Kind = "invalid_input"
	KindInsufficientStock     Kind = "insufficient_stock"
	KindInvalidRefundQuantity Kind = "invalid_refund_quantity"
	KindInvalidRefundAmount   Kind = "invalid_refund_amount"
	KindNoDueAmount           Kind = "no_due_amount"
	KindUnauthenticated       Kind = "unauthenticated"
	KindUnauthorized          Kind = "unauthorized"
	KindConflict              Kind = "conflict"
	KindInternal              Kind = "internal"
)

// Error is the failure type returned by every service operation.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func NotFound(message string) *Error          { return New(KindNotFound, message) }
func InvalidInput(message string) *Error      { return New(KindInvalidInput, message) }
func InsufficientStock(message string) *Error { return New(KindInsufficientStock, message) }
func NoDueAmount(message string) *Error       { return New(KindNoDueAmount, message) }
func Unauthenticated(message string) *Error   { return New(KindUnauthenticated, message) }
func Unauthorized(message string) *Error      { return New(KindUnauthorized, message) }
func Conflict(message string) *Error          { return New(KindConflict, message) }

// KindOf extracts the Kind from any error in the chain, defaulting to
// KindInternal for unclassified failures (database errors and the like).
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps a failure kind to the response status code.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return 404
	case KindInvalidInput, KindInvalidRefundQuantity, KindInvalidRefundAmount, KindNoDueAmount:
		return 400
	case KindInsufficientStock, KindConflict:
		return 409
	case KindUnauthenticated:
		return 401
	case KindUnauthorized:
		return 403
	default:
		return 500
	}
}
