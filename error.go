package tabtalk

import (
	"errors"
	"fmt"
)

// Application error codes. The CLI maps these to its two dispositions:
// setup failures terminate the process, everything else is reported and
// survived.
const (
	ECONFLICT    = "conflict"
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface. Not used by the application
// otherwise. Always use ErrorCode() and ErrorMessage() for displaying
// errors to the user.
func (e *Error) Error() string {
	return fmt.Sprintf("tabtalk error: code=%s message=%s", e.Code, e.Message)
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
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
