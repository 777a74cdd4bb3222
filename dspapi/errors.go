package dspapi

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNoOntologies is returned when the project response lists no ontologies.
var ErrNoOntologies = errors.New("the response from the API does not contain any ontologies")

// Error types for classifying API errors.

// TransientError represents a temporary error that may succeed on retry.
type TransientError struct {
	err error
}

func (e *TransientError) Error() string {
	return e.err.Error()
}

func (e *TransientError) Unwrap() error {
	return e.err
}

// NewTransientError wraps an error as transient (retryable).
func NewTransientError(err error) error {
	return &TransientError{err: err}
}

// FatalError represents a permanent error that should not be retried.
type FatalError struct {
	err error
}

func (e *FatalError) Error() string {
	return e.err.Error()
}

func (e *FatalError) Unwrap() error {
	return e.err
}

// NewFatalError wraps an error as fatal (non-retryable).
func NewFatalError(err error) error {
	return &FatalError{err: err}
}

// IsTransient returns true if the error is transient and should be retried.
func IsTransient(err error) bool {
	var transient *TransientError
	return errors.As(err, &transient)
}

// IsFatal returns true if the error is fatal and should not be retried.
func IsFatal(err error) bool {
	var fatal *FatalError
	return errors.As(err, &fatal)
}

// ResponseError is a non-2xx answer of the API.
type ResponseError struct {
	Request    string
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("NON-OK RESPONSE | Request: %s | Code: %d | Message: %s", e.Request, e.StatusCode, e.Body)
}

// ResponseTooLargeError is a response body longer than the client reads.
type ResponseTooLargeError struct {
	Request string
	Limit   int64
}

func (e *ResponseTooLargeError) Error() string {
	return fmt.Sprintf("response too large | Request: %s | Limit: %d bytes", e.Request, e.Limit)
}

// classifyHTTPError determines if an HTTP error is transient or fatal.
func classifyHTTPError(request string, statusCode int, body []byte) error {
	err := &ResponseError{Request: request, StatusCode: statusCode, Body: string(body)}

	switch {
	case statusCode == http.StatusTooManyRequests:
		return NewTransientError(err)
	case statusCode >= 500:
		return NewTransientError(err)
	default:
		return NewFatalError(err)
	}
}
