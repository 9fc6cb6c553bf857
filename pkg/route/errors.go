package route

import "errors"

var (
	ErrEmptyName      = errors.New("route: empty route name")
	ErrInvalidPattern = errors.New("route: invalid route pattern")
	ErrDuplicateRoute = errors.New("route: route name already registered")
	ErrUnknownRoute   = errors.New("route: unknown route")
	ErrMissingParam   = errors.New("route: missing route parameter")
)
