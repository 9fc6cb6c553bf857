package internal

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/tabula/pkg/htmx"
)

// Layout wraps the table of a full page render.
type Layout func(r *http.Request, table templ.Component) templ.Component

// ErrorHandler writes the response of a failed render.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// HandlerOption configures Handler.
type HandlerOption func(*handlerConfig)

type handlerConfig struct {
	layout       Layout
	errorHandler ErrorHandler
	partial      []htmx.RenderOption
}

// WithLayout renders full page requests inside layout.
// Htmx requests targeting the table always get the table alone.
func WithLayout(layout Layout) HandlerOption {
	return func(c *handlerConfig) {
		c.layout = layout
	}
}

// WithErrorHandler replaces the default error response, a plain text
// message with the status of AsHTTPError.
func WithErrorHandler(h ErrorHandler) HandlerOption {
	return func(c *handlerConfig) {
		if h != nil {
			c.errorHandler = h
		}
	}
}

// WithPartialHeaders sets htmx response headers on partial renders,
// e.g. htmx.WithTrigger("users-loaded").
func WithPartialHeaders(opts ...htmx.RenderOption) HandlerOption {
	return func(c *handlerConfig) {
		c.partial = append(c.partial, opts...)
	}
}

// Handler returns an http.Handler rendering the table of def.
// The table is built once; every request configures it again.
//
// Example:
//
//	r.Get("/users", tabula.Handler(UsersTable{db: pool, routes: reg},
//	    tabula.WithLayout(func(r *http.Request, table templ.Component) templ.Component {
//	        return views.Page("Users", table)
//	    }),
//	).ServeHTTP)
func Handler(def Definition, opts ...HandlerOption) http.Handler {
	cfg := &handlerConfig{errorHandler: defaultErrorHandler}
	for _, opt := range opts {
		opt(cfg)
	}

	t := Build(def)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		log := t.Logger()

		view, err := t.Configure(ctx, r)
		if err != nil {
			logRenderError(ctx, log, t.Name(), err)
			cfg.errorHandler(w, r, err)
			return
		}

		partial := htmx.TargetsElement(r, view.ID)
		component := view.Component()
		if !partial && cfg.layout != nil {
			component = cfg.layout(r, component)
		}

		var buf bytes.Buffer
		if err := component.Render(ctx, &buf); err != nil {
			logRenderError(ctx, log, t.Name(), err)
			cfg.errorHandler(w, r, err)
			return
		}

		t.Metrics().RecordRender(t.Name(), partial)

		h := w.Header()
		h.Set("Content-Type", "text/html; charset=utf-8")
		h.Add("Vary", htmx.HeaderHXRequest)
		if partial && len(cfg.partial) > 0 {
			htmx.NewConfig(cfg.partial...).ApplyHeaders(w)
		}
		w.WriteHeader(http.StatusOK)
		if _, err := io.Copy(w, &buf); err != nil {
			log.DebugContext(ctx, "write table response", slog.String("table", t.Name()), slog.Any("error", err))
		}
	})
}

func logRenderError(ctx context.Context, log *slog.Logger, table string, err error) {
	level := slog.LevelError
	if errors.Is(err, context.Canceled) {
		level = slog.LevelDebug
	}
	log.Log(ctx, level, "render table", slog.String("table", table), slog.Any("error", err))
}

func defaultErrorHandler(w http.ResponseWriter, _ *http.Request, err error) {
	httpErr := AsHTTPError(err)
	http.Error(w, httpErr.Message, httpErr.Code)
}
