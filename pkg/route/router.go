package route

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// Router registers chi routes and their names in one call.
type Router struct {
	router   chi.Router
	registry *Registry
	prefix   string
}

// NewRouter wraps router so every named route is recorded in registry.
//
// Example:
//
//	reg := route.New()
//	r := route.NewRouter(chi.NewRouter(), reg)
//	r.Route("/users", func(r *route.Router) {
//		r.Get("users.index", "/", listUsers)
//		r.Get("users.show", "/{id}", showUser)
//	})
func NewRouter(router chi.Router, registry *Registry) *Router {
	return &Router{router: router, registry: registry}
}

// Registry returns the registry routes are recorded in.
func (r *Router) Registry() *Registry {
	return r.registry
}

// Handle registers h for method and pattern under name.
// An empty name registers the route without naming it.
// It panics when the name is already taken, like chi does for invalid patterns.
func (r *Router) Handle(method, name, pattern string, h http.HandlerFunc) {
	if name != "" {
		r.registry.MustAdd(name, joinPattern(r.prefix, pattern))
	}
	r.router.Method(method, pattern, h)
}

// Get registers a GET route.
func (r *Router) Get(name, pattern string, h http.HandlerFunc) {
	r.Handle(http.MethodGet, name, pattern, h)
}

// Post registers a POST route.
func (r *Router) Post(name, pattern string, h http.HandlerFunc) {
	r.Handle(http.MethodPost, name, pattern, h)
}

// Put registers a PUT route.
func (r *Router) Put(name, pattern string, h http.HandlerFunc) {
	r.Handle(http.MethodPut, name, pattern, h)
}

// Patch registers a PATCH route.
func (r *Router) Patch(name, pattern string, h http.HandlerFunc) {
	r.Handle(http.MethodPatch, name, pattern, h)
}

// Delete registers a DELETE route.
func (r *Router) Delete(name, pattern string, h http.HandlerFunc) {
	r.Handle(http.MethodDelete, name, pattern, h)
}

// Route creates a sub-router mounted at pattern.
// Names registered inside fn include the prefix.
func (r *Router) Route(pattern string, fn func(r *Router)) {
	r.router.Route(pattern, func(cr chi.Router) {
		fn(&Router{router: cr, registry: r.registry, prefix: joinPattern(r.prefix, pattern)})
	})
}

// Group creates an inline group sharing the current prefix.
func (r *Router) Group(fn func(r *Router)) {
	r.router.Group(func(cr chi.Router) {
		fn(&Router{router: cr, registry: r.registry, prefix: r.prefix})
	})
}

// Use appends middleware to the underlying chi router.
func (r *Router) Use(mw ...func(http.Handler) http.Handler) {
	r.router.Use(mw...)
}

func joinPattern(prefix, pattern string) string {
	if prefix == "" {
		return pattern
	}
	prefix = strings.TrimSuffix(prefix, "/")
	if pattern == "/" || pattern == "" {
		if prefix == "" {
			return "/"
		}
		return prefix
	}
	return prefix + "/" + strings.TrimPrefix(pattern, "/")
}
