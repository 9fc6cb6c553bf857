package source

import "errors"

var (
	ErrInvalidIdentifier = errors.New("source: invalid identifier")
	ErrInvalidDirection  = errors.New("source: invalid sort direction")
	ErrUnsupportedScope  = errors.New("source: scope is not supported by this source")
	ErrQueryFailed       = errors.New("source: query failed")
)
