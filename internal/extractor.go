package internal

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/tabula/pkg/i18n"
)

// ExtractorSource extracts a value from the request.
// Returns the value and true if found, or ("", false) if not present.
type ExtractorSource = func(*http.Request) (string, bool)

// Extractor tries multiple sources in order and returns the first match.
type Extractor struct {
	sources []ExtractorSource
}

// NewExtractor creates an Extractor that tries the given sources in order.
func NewExtractor(sources ...ExtractorSource) Extractor {
	return Extractor{sources: sources}
}

// Extract iterates sources in order and returns the first non-empty value.
// Returns ("", false) if all sources miss.
func (e Extractor) Extract(r *http.Request) (string, bool) {
	for _, src := range e.sources {
		if v, ok := src(r); ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// ExtractWith is Extract with a filter: a value rejected by accept lets the
// next source try. accept may also normalize the value it keeps.
func (e Extractor) ExtractWith(r *http.Request, accept func(string) (string, bool)) (string, bool) {
	for _, src := range e.sources {
		v, ok := src(r)
		if !ok || v == "" {
			continue
		}
		if v, ok = accept(v); ok {
			return v, true
		}
	}
	return "", false
}

// FromHeader returns a source that reads from a request header.
func FromHeader(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := r.Header.Get(name)
		return v, v != ""
	}
}

// FromQuery returns a source that reads from a query parameter.
func FromQuery(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		v := r.URL.Query().Get(name)
		return v, v != ""
	}
}

// FromCookie returns a source that reads from a plain cookie.
func FromCookie(name string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		c, err := r.Cookie(name)
		if err != nil || c.Value == "" {
			return "", false
		}
		return c.Value, true
	}
}

// FromContextLanguage returns a source that reads the language stored by
// the language middleware.
func FromContextLanguage() ExtractorSource {
	return func(r *http.Request) (string, bool) {
		lang := LanguageFromContext(r.Context())
		return lang, lang != ""
	}
}

// FromAcceptLanguage returns a source that matches the Accept-Language header
// against the available languages.
func FromAcceptLanguage(available []string) ExtractorSource {
	return func(r *http.Request) (string, bool) {
		header := r.Header.Get("Accept-Language")
		if header == "" || len(available) == 0 {
			return "", false
		}
		return i18n.Negotiate(header, available), true
	}
}

// LanguageKey is the context key of the resolved request language.
type LanguageKey struct{}

// ContextWithLanguage returns a copy of ctx carrying lang.
func ContextWithLanguage(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, LanguageKey{}, lang)
}

// LanguageFromContext returns the language stored in ctx, or an empty string.
func LanguageFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(LanguageKey{}).(string); ok {
		return v
	}
	return ""
}
