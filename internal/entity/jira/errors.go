package jira

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Kargones/jira-client/internal/pkg/apperrors"
)

// Error is the single failure type returned by every Jira operation.
// It covers three causes: the request did not complete, an error occurred
// while building or reading the exchange, or the server answered with a
// status other than the one the operation expects (including a structurally
// invalid success response). Callers distinguish the cause by the
// diagnostic text or by the populated fields.
type Error struct {
	// Op is the operation name, e.g. "get-issue".
	Op string `json:"op"`
	// Method is the HTTP method of the request.
	Method string `json:"method"`
	// Path is the resource path relative to the API root.
	Path string `json:"path"`
	// Reason is a short human-readable description of what went wrong.
	Reason string `json:"reason"`
	// StatusCode is the HTTP status code, zero when no response was received.
	StatusCode int `json:"statusCode,omitempty"`
	// Status is the HTTP status line description, e.g. "404 Not Found".
	Status string `json:"status,omitempty"`
	// Body is the raw response body when one was read.
	Body string `json:"body,omitempty"`
	// Cause is the underlying transport or decoding error, if any.
	Cause error `json:"-"`
}

// Error renders the diagnostic string.
func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "jira %s %s %s: %s", e.Op, e.Method, e.Path, e.Reason)
	if e.Status != "" {
		fmt.Fprintf(&b, " [status %s]", e.Status)
	} else if e.StatusCode != 0 {
		fmt.Fprintf(&b, " [status %d]", e.StatusCode)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	if e.Body != "" {
		fmt.Fprintf(&b, ": body: %s", e.Body)
	}
	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *Error) Unwrap() error {
	return e.Cause
}

// ErrorCode returns the machine-readable application error code.
func (e *Error) ErrorCode() string {
	return apperrors.ErrJiraRequest
}

// As converts the error into an apperrors.AppError via errors.As.
func (e *Error) As(target interface{}) bool {
	if t, ok := target.(**apperrors.AppError); ok {
		*t = &apperrors.AppError{
			Code:    apperrors.ErrJiraRequest,
			Message: fmt.Sprintf("%s %s: %s", e.Op, e.Path, e.Reason),
			Cause:   e.Cause,
		}
		return true
	}
	return false
}

// IsJiraError reports whether err or any error in its chain is an *Error.
func IsJiraError(err error) bool {
	var jiraErr *Error
	return errors.As(err, &jiraErr)
}

// newError builds an Error for the given endpoint.
func newError(ep Endpoint, reason string, cause error) *Error {
	return &Error{
		Op:     ep.Op,
		Method: ep.Method,
		Path:   ep.Path,
		Reason: reason,
		Cause:  cause,
	}
}
