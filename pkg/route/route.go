package route

import (
	"fmt"
	"maps"
	"net/url"
	"slices"
	"strings"
	"sync"
)

// Registry maps route names to chi-style URL patterns.
type Registry struct {
	mu       sync.RWMutex
	patterns map[string]string
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{patterns: make(map[string]string)}
}

// Add registers pattern under name.
func (r *Registry) Add(name, pattern string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if !strings.HasPrefix(pattern, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patterns[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateRoute, name)
	}
	r.patterns[name] = pattern
	return nil
}

// MustAdd is like Add but panics on error.
func (r *Registry) MustAdd(name, pattern string) {
	if err := r.Add(name, pattern); err != nil {
		panic(err)
	}
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.patterns[name]
	return ok
}

// Pattern returns the pattern registered under name.
func (r *Registry) Pattern(name string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.patterns[name]
	return p, ok
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.patterns))
}

// URL builds the path for the named route.
// Params fill "{name}" and "{name:regexp}" placeholders; the rest become
// the query string, sorted by key.
//
// Example:
//
//	reg.URL("users.edit", map[string]string{"id": "42", "tab": "profile"})
//	// "/users/42/edit?tab=profile"
func (r *Registry) URL(name string, params map[string]string) (string, error) {
	pattern, ok := r.Pattern(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	path, used, err := expand(pattern, params)
	if err != nil {
		return "", fmt.Errorf("route %q: %w", name, err)
	}

	query := url.Values{}
	for k, v := range params {
		if _, ok := used[k]; !ok {
			query.Set(k, v)
		}
	}
	if len(query) > 0 {
		// Encode sorts by key.
		path += "?" + query.Encode()
	}
	return path, nil
}

// Params returns the placeholder names of a route in pattern order.
func (r *Registry) Params(name string) ([]string, error) {
	pattern, ok := r.Pattern(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}

	var names []string
	err := scan(pattern, func(string) {}, func(key string) error {
		names = append(names, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("route %q: %w", name, err)
	}
	return names, nil
}

// expand substitutes placeholders in pattern.
func expand(pattern string, params map[string]string) (string, map[string]struct{}, error) {
	var (
		b    strings.Builder
		used = make(map[string]struct{})
	)

	err := scan(pattern, func(lit string) { b.WriteString(lit) }, func(key string) error {
		value, ok := params[key]
		if !ok || value == "" {
			return fmt.Errorf("%w: %q", ErrMissingParam, key)
		}
		used[key] = struct{}{}
		b.WriteString(url.PathEscape(value))
		return nil
	})
	if err != nil {
		return "", nil, err
	}
	return b.String(), used, nil
}

// scan walks pattern, calling literal for text and placeholder for each
// placeholder name. Braces inside a placeholder's regexp ("{id:[0-9]{1,3}}")
// are balanced.
func scan(pattern string, literal func(string), placeholder func(string) error) error {
	for i := 0; i < len(pattern); {
		if pattern[i] != '{' {
			next := strings.IndexByte(pattern[i:], '{')
			if next < 0 {
				literal(pattern[i:])
				return nil
			}
			literal(pattern[i : i+next])
			i += next
			continue
		}

		depth, end := 0, -1
		for j := i; j < len(pattern) && end < 0; j++ {
			switch pattern[j] {
			case '{':
				depth++
			case '}':
				depth--
				if depth == 0 {
					end = j
				}
			}
		}
		if end < 0 {
			return fmt.Errorf("%w: unbalanced braces in %q", ErrInvalidPattern, pattern)
		}

		key := pattern[i+1 : end]
		if k, _, found := strings.Cut(key, ":"); found {
			key = k
		}
		if err := placeholder(key); err != nil {
			return err
		}
		i = end + 1
	}
	return nil
}
