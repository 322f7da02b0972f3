package statspanel

import (
	"errors"
	"fmt"
)

// ErrorPrefix starts every error presentation written to the target.
const ErrorPrefix = "Error loading stats: "

const networkErrorMessage = "network response was not ok"

// NetworkError reports a failed request: either a non-success status or a transport failure.
type NetworkError struct {
	StatusCode int
	Err        error
}

func (e *NetworkError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("NetworkError: request failed: %v", e.Err)
	case e.StatusCode > 0:
		return fmt.Sprintf("NetworkError: %s (status %d)", networkErrorMessage, e.StatusCode)
	default:
		return "NetworkError: " + networkErrorMessage
	}
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ParseError reports a response body that is not valid JSON of the expected types.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("ParseError: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// RenderFault reports a fault while building markup, such as a record missing a field.
// Index is the record position, or -1 when the fault is not tied to a record.
type RenderFault struct {
	Index int
	Field string
	Err   error
}

func (e *RenderFault) Error() string {
	switch {
	case e.Index >= 0 && e.Field != "":
		return fmt.Sprintf("RenderFault: player %d missing %q", e.Index, e.Field)
	case e.Index >= 0:
		return fmt.Sprintf("RenderFault: player %d: %v", e.Index, e.Err)
	default:
		return fmt.Sprintf("RenderFault: %v", e.Err)
	}
}

func (e *RenderFault) Unwrap() error { return e.Err }

// Outcome names the result of a cycle for logs and metrics.
func Outcome(err error) string {
	var netErr *NetworkError
	var parseErr *ParseError
	var faultErr *RenderFault
	switch {
	case err == nil:
		return "rendered"
	case errors.As(err, &netErr):
		return "network_error"
	case errors.As(err, &parseErr):
		return "parse_error"
	case errors.As(err, &faultErr):
		return "render_fault"
	default:
		return "error"
	}
}
