package ecode

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrCodeNotFound is returned when a code has no entry in the error table.
	ErrCodeNotFound = errors.New("the error code was not found in the error table")

	// ErrUnknownHTTPStatus is returned when a status code has no reason phrase.
	ErrUnknownHTTPStatus = errors.New("HTTP status code does not exist")

	// ErrInvalidCode is returned for codes that are neither integers nor strings.
	ErrInvalidCode = errors.New("invalid error code")
)

const (
	// ValidationFailed is the code used for field validation failures.
	ValidationFailed = "VALIDATION_FAILED"

	// ValidationFailedMessage is the message used for field validation failures.
	ValidationFailedMessage = "The validation check failed."
)

// StatusText returns the standard reason phrase for an HTTP status code.
func StatusText(status int) (string, error) {
	if text := http.StatusText(status); text != "" {
		return text, nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnknownHTTPStatus, status)
}
