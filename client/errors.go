package client

import "fmt"

// NetworkError is returned when a request cannot be delivered or its
// response cannot be read: DNS, TLS, refused connections, timeouts.
type NetworkError struct {
	// Op is the step that failed, e.g. "POST" or "read response".
	Op string
	// Endpoint is the request URL with credentials removed.
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error during %s to %s: %v", e.Op, e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// SerializationError is returned when a conversation cannot be encoded
// as a request body.
type SerializationError struct {
	Err error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("cannot encode request: %v", e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }

// MalformedResponseError is returned when a response body does not
// contain generated text where it should.  Providers answer quota and
// auth failures this way, so callers treat it as recoverable.
type MalformedResponseError struct {
	// Reason names the part of the response that was missing or wrong.
	Reason string
	// StatusCode is the HTTP status, set when it was not 2xx.
	StatusCode int
	// Code and Message are copied from a provider error object, if any.
	Code    int
	Message string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	msg := "malformed response: " + e.Reason
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (HTTP %d)", e.StatusCode)
	}
	if e.Message != "" {
		msg += fmt.Sprintf(": provider error %d: %s", e.Code, e.Message)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }
