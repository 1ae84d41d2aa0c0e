package apperror

import (
	"errors"
	"net/http"
)

// Kind classifies an application error for the HTTP boundary.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindAlreadyExists
	KindUnauthorized
	KindUnauthenticated
	KindValidation
)

// Error is a domain error with a stable machine-readable code.
// Summary is the short envelope message, Details the static explanation
// placed in the error body.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Summary string
	Details string
}

func (e *Error) Error() string {
	return e.Message
}

// Status returns the HTTP status code for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindAlreadyExists:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func NotFound(code, message, summary, details string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message, Summary: summary, Details: details}
}

func AlreadyExists(code, message, summary, details string) *Error {
	return &Error{Kind: KindAlreadyExists, Code: code, Message: message, Summary: summary, Details: details}
}

func Unauthorized(code, message, summary, details string) *Error {
	return &Error{Kind: KindUnauthorized, Code: code, Message: message, Summary: summary, Details: details}
}

func Unauthenticated(code, message, summary, details string) *Error {
	return &Error{Kind: KindUnauthenticated, Code: code, Message: message, Summary: summary, Details: details}
}

func Validation(code, message, summary, details string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message, Summary: summary, Details: details}
}

func Internal(code, message, summary, details string) *Error {
	return &Error{Kind: KindInternal, Code: code, Message: message, Summary: summary, Details: details}
}

// ErrInvalidArgument is returned for malformed path or query parameters.
var ErrInvalidArgument = Validation("INVALID_ARGUMENT", "invalid argument", "Invalid request.", "Invalid argument provided")

// As extracts the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsKind reports whether err wraps an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	appErr, ok := As(err)
	return ok && appErr.Kind == kind
}
