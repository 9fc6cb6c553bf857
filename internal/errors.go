package internal

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/tabula/pkg/source"
)

var (
	ErrMissingSource          = errors.New("tabula: table has no data source")
	ErrNoColumns              = errors.New("tabula: table has no columns")
	ErrMissingRegistry        = errors.New("tabula: routes require a route registry")
	ErrMissingIndexRoute      = errors.New("tabula: index route is required")
	ErrUnknownRoute           = errors.New("tabula: route is not registered")
	ErrUndefinedRoute         = errors.New("tabula: route is not defined for this table")
	ErrMultipleDefaultSort    = errors.New("tabula: only one column can be sorted by default")
	ErrColumnWithoutAttribute = errors.New("tabula: column has no attribute")
	ErrDuplicateColumn        = errors.New("tabula: column attribute is used more than once")
	ErrUnknownPart            = errors.New("tabula: unknown template part")
	ErrNotConfigured          = errors.New("tabula: view is not bound to a table")
)

// HTTPError is an error with the status code the table handler responds with.
type HTTPError struct {
	// Err is the underlying error (for logging, not exposed to users).
	Err error

	// Message is the user-facing error message.
	Message string

	// Code is the HTTP status code.
	Code int
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func (e *HTTPError) StatusCode() int {
	return e.Code
}

func (e *HTTPError) StatusText() string {
	return http.StatusText(e.Code)
}

// NewHTTPError creates a new HTTPError with the given status code and message.
func NewHTTPError(code int, message string, err error) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// AsHTTPError maps err to an HTTPError.
// Errors that already are an HTTPError are returned as is. A canceled request
// maps to 499, a timed out data source to 504 and everything else to 500,
// since a table that cannot configure itself is a programming error.
func AsHTTPError(err error) *HTTPError {
	if err == nil {
		return nil
	}

	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, context.Canceled):
		return NewHTTPError(StatusClientClosedRequest, "Request canceled", err)
	case errors.Is(err, context.DeadlineExceeded):
		return NewHTTPError(http.StatusGatewayTimeout, http.StatusText(http.StatusGatewayTimeout), err)
	case errors.Is(err, source.ErrQueryFailed):
		return NewHTTPError(http.StatusServiceUnavailable, http.StatusText(http.StatusServiceUnavailable), err)
	default:
		return NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), err)
	}
}

// StatusClientClosedRequest is the non-standard status logged when the client
// goes away before the response is written.
const StatusClientClosedRequest = 499
