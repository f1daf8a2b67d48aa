package vehicleapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidResponse is returned when a 2xx response does not match the
// documented schema (unknown fields, missing fields, negative values).
var ErrInvalidResponse = errors.New("invalid response from ranking service")

// maxBodyInError caps how much of a response body is kept on a TransportError.
const maxBodyInError = 4096

// TransportError reports a failed round trip: either the service answered
// with a non-2xx status, or the request never completed (StatusCode 0).
type TransportError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
	// Detail is the service-supplied "detail" message, when the body has one.
	Detail string
	Err    error
}

func (e *TransportError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	default:
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}
}

func (e *TransportError) Unwrap() error { return e.Err }

// DetailOf returns the service-supplied detail carried by err, if any.
func DetailOf(err error) (string, bool) {
	var te *TransportError
	if errors.As(err, &te) && te.Detail != "" {
		return te.Detail, true
	}
	return "", false
}

// newStatusError builds a TransportError for a non-2xx response.
func newStatusError(method, path string, status int, body []byte) *TransportError {
	text := string(body)
	if len(text) > maxBodyInError {
		text = text[:maxBodyInError]
	}
	return &TransportError{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Body:       text,
		Detail:     extractDetail(body),
	}
}

// extractDetail pulls a string "detail" field out of an error body.
// Structured details (e.g. a list of validation issues) are not a display
// message and yield "".
func extractDetail(body []byte) string {
	var payload struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || len(payload.Detail) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(payload.Detail, &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}
