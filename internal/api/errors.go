package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrRequestFailed matches every *RequestError via errors.Is
	ErrRequestFailed = errors.New("request failed")
	// ErrDecodeFailed matches every *DecodeError via errors.Is
	ErrDecodeFailed = errors.New("decode failed")
)

// RequestError is returned when the exchange with the backend could not be
// completed or the backend answered with a non-2xx status.
// StatusCode is 0 when no response was received.
type RequestError struct {
	Op         string
	Method     string
	Path       string
	StatusCode int
	Status     string // status text, e.g. "Not Found"
	Message    string // backend-provided message, if the body carried one
	Err        error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s %s: request failed: %v", e.Method, e.Path, e.Err)
	}
	msg := fmt.Sprintf("%s %s: HTTP error! status: %d %s", e.Method, e.Path, e.StatusCode, e.Status)
	if e.Message != "" {
		msg += ": " + e.Message
	}
	return msg
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool { return target == ErrRequestFailed }

// DecodeError is returned when a successful response body is not valid JSON or
// does not match the expected shape.
type DecodeError struct {
	Op     string
	Method string
	Path   string
	Err    error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s %s: failed to decode response: %v", e.Method, e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool { return target == ErrDecodeFailed }

// StatusCode returns the HTTP status carried by err, or 0 if err is not a
// RequestError with a response.
func StatusCode(err error) int {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the backend
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}
