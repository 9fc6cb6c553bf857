package tabula

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/tabula/internal"
	"github.com/dmitrymomot/tabula/pkg/htmx"
	"github.com/dmitrymomot/tabula/pkg/i18n"
	"github.com/dmitrymomot/tabula/pkg/metrics"
	"github.com/dmitrymomot/tabula/pkg/route"
	"github.com/dmitrymomot/tabula/pkg/views"
)

// Table options

// WithConfig sets the table defaults. Zero fields keep DefaultConfig values.
func WithConfig(cfg Config) Option {
	return internal.WithConfig(cfg)
}

// WithRegistry sets the named routes used to build action and pagination URLs.
func WithRegistry(reg *route.Registry) Option {
	return internal.WithRegistry(reg)
}

// WithRenderer sets the template renderer, usually one with application overrides.
func WithRenderer(r *views.Renderer) Option {
	return internal.WithRenderer(r)
}

// WithLogger sets the table logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithI18n sets the translations used for table labels and column titles.
func WithI18n(svc *i18n.I18n) Option {
	return internal.WithI18n(svc)
}

// WithSanitizer sets the policy applied to HTML produced by column closures.
func WithSanitizer(p *bluemonday.Policy) Option {
	return internal.WithSanitizer(p)
}

// WithMetrics records query and render metrics.
func WithMetrics(m *metrics.Metrics) Option {
	return internal.WithMetrics(m)
}

// WithLanguageExtractor sets how the display language is read from requests.
func WithLanguageExtractor(ext Extractor) Option {
	return internal.WithLanguageExtractor(ext)
}

// Handler options

// WithLayout wraps full page renders.
func WithLayout(layout Layout) HandlerOption {
	return internal.WithLayout(layout)
}

// WithPartialHeaders sets htmx response headers on partial renders.
func WithPartialHeaders(opts ...htmx.RenderOption) HandlerOption {
	return internal.WithPartialHeaders(opts...)
}

// WithErrorHandler replaces the plain text error response.
func WithErrorHandler(h ErrorHandler) HandlerOption {
	return internal.WithErrorHandler(h)
}
