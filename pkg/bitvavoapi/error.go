package bitvavoapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
)

var (
	ErrMissingAPIKey    = errors.New("empty api key")
	ErrMissingAPISecret = errors.New("empty api secret")

	// ErrClientClosed is returned for calls issued after Close.
	ErrClientClosed = errors.New("rest client is closed")
)

// ErrorResponse is the structured error payload the exchange returns,
// possibly with a 2xx status code.
type ErrorResponse struct {
	Code    int    `json:"errorCode"`
	Message string `json:"error"`
}

func (e *ErrorResponse) Error() string {
	return fmt.Sprintf("bitvavo error %d: %s", e.Code, e.Message)
}

// IsRateLimit returns true for the exchange's rate limit error codes.
func (e *ErrorResponse) IsRateLimit() bool {
	return e.Code == 105 || e.Code == 110
}

// IsAuthError returns true for key, signature and timestamp errors.
func (e *ErrorResponse) IsAuthError() bool {
	return e.Code >= 300 && e.Code < 320
}

// toErrorResponse inspects the response body for the exchange error shape.
// Only bodies carrying the errorCode field are mapped, other payloads pass
// through to the regular decoding path.
func toErrorResponse(response *Response) (*ErrorResponse, bool) {
	var probe struct {
		Code    *int   `json:"errorCode"`
		Message string `json:"error"`
	}

	if err := json.Unmarshal(response.Body, &probe); err != nil || probe.Code == nil {
		return nil, false
	}

	return &ErrorResponse{Code: *probe.Code, Message: probe.Message}, true
}

// StatusError is a non-2xx response without a structured error body.
type StatusError struct {
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected http status %d: %s", e.StatusCode, string(e.Body))
}

// TransportError wraps a network-layer failure. Timeout and connection
// failures are distinguished so callers can decide whether a retry is safe.
type TransportError struct {
	Err     error
	timeout bool
}

func (e *TransportError) Error() string {
	if e.timeout {
		return "request timeout: " + e.Err.Error()
	}
	return "connection error: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

func (e *TransportError) Timeout() bool { return e.timeout }

func toTransportError(err error) error {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Err: err, timeout: true}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Err: err, timeout: true}
	}

	return &TransportError{Err: err}
}

// IsTimeout reports whether the error is a transport timeout.
func IsTimeout(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Timeout()
}
