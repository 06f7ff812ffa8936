package utils

import (
	"errors"
	"fmt"
	"net/http"
)

// CustomError carries an HTTP status code alongside a message key that the
// API layer translates before rendering.
type CustomError struct {
	Code    int
	Message string
	Err     error
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Code: %d, Message: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("Code: %d, Message: %s", e.Code, e.Message)
}

func (e *CustomError) Unwrap() error { return e.Err }

// New returns a CustomError with the given status code and message.
func New(code int, message string) error {
	return &CustomError{
		Code:    code,
		Message: message,
	}
}

// Wrap attaches a status code and message to err.
func Wrap(code int, message string, err error) error {
	return &CustomError{Code: code, Message: message, Err: err}
}

// StatusCode returns the status carried by err, or 500.
func StatusCode(err error) int {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return http.StatusInternalServerError
}
