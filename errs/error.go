package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error codes.
const (
	ECONFLICT       = "conflict"
	EINTERNAL       = "internal"
	EINVALID        = "invalid"
	ENOTFOUND       = "not_found"
	ENOTIMPLEMENTED = "not_implemented"
	EUNAUTHORIZED   = "unauthorized"
)

// Error is the single failure type surfaced to users. Status is the HTTP
// status to answer with; zero means it is derived from Code.
type Error struct {
	Code    string
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("application error: code=%s status=%d message=%s", e.Code, e.StatusCode(), e.Message)
}

// StatusCode returns the explicit status, or the one implied by Code.
func (e *Error) StatusCode() int {
	if e.Status != 0 {
		return e.Status
	}
	switch e.Code {
	case EINVALID:
		return http.StatusBadRequest
	case ENOTFOUND:
		return http.StatusNotFound
	case ECONFLICT:
		return http.StatusConflict
	case EUNAUTHORIZED:
		return http.StatusUnauthorized
	case ENOTIMPLEMENTED:
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}

// New returns an error answering with the given status and message.
// The status is not range checked.
func New(status int, message string) *Error {
	return &Error{
		Code:    codeFor(status),
		Status:  status,
		Message: message,
	}
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...interface{}) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// StatusCode unwraps an application error and returns its HTTP status.
// Non-application errors are 500.
func StatusCode(err error) int {
	var e *Error
	if err == nil {
		return http.StatusOK
	} else if errors.As(err, &e) {
		return e.StatusCode()
	}
	return http.StatusInternalServerError
}

func codeFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return EINVALID
	case http.StatusNotFound:
		return ENOTFOUND
	case http.StatusConflict:
		return ECONFLICT
	case http.StatusUnauthorized:
		return EUNAUTHORIZED
	case http.StatusNotImplemented:
		return ENOTIMPLEMENTED
	}
	return EINTERNAL
}
