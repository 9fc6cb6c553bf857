package internal

import (
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/tabula/pkg/i18n"
	"github.com/dmitrymomot/tabula/pkg/metrics"
	"github.com/dmitrymomot/tabula/pkg/route"
	"github.com/dmitrymomot/tabula/pkg/views"
)

// Option configures a table.
type Option func(*Table)

// WithConfig replaces the default configuration.
// Zero template names and bounds fall back to DefaultConfig.
//
// Example:
//
//	cfg := tabula.DefaultConfig()
//	_ = config.Load("tabula.yaml", &cfg)
//	tabula.New(src, tabula.WithConfig(cfg))
func WithConfig(cfg Config) Option {
	return func(t *Table) {
		t.config = cfg.withDefaults()
	}
}

// WithRegistry sets the named routes used to build table URLs.
func WithRegistry(reg *route.Registry) Option {
	return func(t *Table) {
		t.registry = reg
	}
}

// WithRenderer sets the template renderer.
// The default renderer only knows the embedded templates.
func WithRenderer(r *views.Renderer) Option {
	return func(t *Table) {
		if r != nil {
			t.renderer = r
		}
	}
}

// WithLogger sets the logger. Tables log nothing by default.
func WithLogger(l *slog.Logger) Option {
	return func(t *Table) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithI18n sets the translations. They should include the table namespace,
// see i18n.WithDefaults.
func WithI18n(svc *i18n.I18n) Option {
	return func(t *Table) {
		if svc != nil {
			t.i18n = svc
		}
	}
}

// WithSanitizer sets the policy applied to HTML cells, prepended and
// appended HTML and result lines.
//
// Example:
//
//	policy := bluemonday.UGCPolicy()
//	tabula.New(src, tabula.WithSanitizer(policy))
func WithSanitizer(p *bluemonday.Policy) Option {
	return func(t *Table) {
		if p != nil {
			t.policy = p
		}
	}
}

// WithMetrics instruments the data source and counts renders.
func WithMetrics(m *metrics.Metrics) Option {
	return func(t *Table) {
		t.metrics = m
	}
}

// WithLanguageExtractor sets how the display language is read from requests.
// The default chain is the language stored by the language middleware, then
// the Accept-Language header.
func WithLanguageExtractor(ext Extractor) Option {
	return func(t *Table) {
		t.language = &ext
	}
}
