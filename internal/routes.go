package internal

import (
	"errors"
	"fmt"
	"maps"

	"github.com/dmitrymomot/tabula/pkg/route"
)

// Route keys accepted by Table.Route.
const (
	RouteIndex   = "index"
	RouteCreate  = "create"
	RouteShow    = "show"
	RouteEdit    = "edit"
	RouteDestroy = "destroy"
)

// Route references a named route. Params fill the route placeholders
// before row values do; params the pattern does not use become the query string.
type Route struct {
	Name   string
	Params map[string]string
}

// Routes are the routes of the table actions. Index is required.
type Routes struct {
	Index   Route
	Create  Route
	Show    Route
	Edit    Route
	Destroy Route
}

func (r Routes) get(key string) (Route, bool) {
	switch key {
	case RouteIndex:
		return r.Index, true
	case RouteCreate:
		return r.Create, true
	case RouteShow:
		return r.Show, true
	case RouteEdit:
		return r.Edit, true
	case RouteDestroy:
		return r.Destroy, true
	default:
		return Route{}, false
	}
}

// IsRouteDefined reports whether a route is set for key.
func (t *Table) IsRouteDefined(key string) bool {
	r, ok := t.routes.get(key)
	return ok && r.Name != ""
}

// Route builds the URL of a table route. Placeholders missing from the
// static params are read from row; "{id}" falls back to the key field.
func (t *Table) Route(key string, row Row) (string, error) {
	r, ok := t.routes.get(key)
	if !ok || r.Name == "" {
		return "", fmt.Errorf("%w: %q", ErrUndefinedRoute, key)
	}
	if t.registry == nil {
		return "", ErrMissingRegistry
	}

	names, err := t.registry.Params(r.Name)
	if err != nil {
		return "", mapRouteError(err)
	}

	params := make(map[string]string, len(r.Params)+len(names))
	maps.Copy(params, r.Params)
	for _, name := range names {
		if params[name] != "" || row == nil {
			continue
		}
		v := row.String(name)
		if v == "" && name == "id" {
			v = row.String(t.keyField)
		}
		if v != "" {
			params[name] = v
		}
	}

	u, err := t.registry.URL(r.Name, params)
	if err != nil {
		return "", mapRouteError(err)
	}
	return u, nil
}

// validateRoutes checks the declared routes against the registry.
func (t *Table) validateRoutes() error {
	if t.routes.Index.Name == "" {
		return ErrMissingIndexRoute
	}
	if t.registry == nil {
		return ErrMissingRegistry
	}

	var errs []error
	for _, key := range []string{RouteIndex, RouteCreate, RouteShow, RouteEdit, RouteDestroy} {
		r, _ := t.routes.get(key)
		if r.Name != "" && !t.registry.Has(r.Name) {
			errs = append(errs, fmt.Errorf("%w: %s route %q", ErrUnknownRoute, key, r.Name))
		}
	}
	return errors.Join(errs...)
}

func mapRouteError(err error) error {
	if errors.Is(err, route.ErrUnknownRoute) {
		return errors.Join(ErrUnknownRoute, err)
	}
	return err
}
