package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/tabula"
	"github.com/dmitrymomot/tabula/middlewares"
	"github.com/dmitrymomot/tabula/pkg/cache"
	"github.com/dmitrymomot/tabula/pkg/db"
	"github.com/dmitrymomot/tabula/pkg/htmx"
	"github.com/dmitrymomot/tabula/pkg/i18n"
	"github.com/dmitrymomot/tabula/pkg/metrics"
	"github.com/dmitrymomot/tabula/pkg/redis"
	"github.com/dmitrymomot/tabula/pkg/route"
	"github.com/dmitrymomot/tabula/pkg/source"
)

const shutdownTimeout = 15 * time.Second

func serve(ctx context.Context, cfg Config, h *db.Handle, log *slog.Logger) error {
	counts, closeCounts, err := newCountCache(ctx, cfg.Redis, log)
	if err != nil {
		return err
	}
	defer closeCounts()

	handler, err := newHandler(cfg, h, counts, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.InfoContext(gctx, "server started", slog.String("addr", cfg.Addr), slog.String("database", h.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()

		log.InfoContext(shutdownCtx, "server shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// newHandler wires routes, middlewares and the users table.
func newHandler(cfg Config, h *db.Handle, counts cache.Cache[int], log *slog.Logger) (http.Handler, error) {
	translations, err := i18n.NewDefault()
	if err != nil {
		return nil, err
	}

	opts := []tabula.Option{
		tabula.WithConfig(cfg.Table),
		tabula.WithLogger(log),
		tabula.WithI18n(translations),
	}

	mux := chi.NewRouter()
	reg := route.New()
	r := route.NewRouter(mux, reg)
	// chi requires middlewares before any route.
	r.Use(
		middlewares.RequestID(),
		middlewares.Recover(middlewares.WithRecoverLogger(log)),
		middlewares.Timeout(cfg.RequestTimeout),
		middlewares.Language(translations.Languages()),
	)

	if cfg.Metrics {
		promReg := prometheus.NewRegistry()
		promReg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		opts = append(opts, tabula.WithMetrics(metrics.New(promReg)))
		mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
	}

	users := UsersTable{
		Source:   source.WithCountCache(newSource(h), counts, cfg.Redis.TTL),
		Registry: reg,
		Options:  opts,
	}

	r.Get("", "/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/users", http.StatusFound)
	})
	r.Route("/users", func(r *route.Router) {
		r.Get("users.index", "/", tabula.Handler(users, tabula.WithLayout(usersLayout)).ServeHTTP)
		r.Get("users.show", "/{id}", showUser(h.SQL, log))
		r.Post("users.destroy", "/{id}/delete", destroyUser(h.SQL, reg, log))
	})

	return mux, nil
}

func newSource(h *db.Handle) tabula.Source {
	if h.Pool != nil {
		return source.NewPgx(h.Pool, "users")
	}
	return source.NewSQL(h.SQL, "users", source.SQLite)
}

// newCountCache shares row counts through Redis when configured and keeps
// them in process memory otherwise.
func newCountCache(ctx context.Context, cfg redis.Config, log *slog.Logger) (cache.Cache[int], func(), error) {
	if !cfg.Enabled() {
		return cache.NewMemory[int](cache.WithMaxEntries(1024)), func() {}, nil
	}

	client, err := redis.Open(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("count cache: %w", err)
	}
	log.InfoContext(ctx, "count cache uses redis")

	return cache.NewRedis[int](client, nil, cache.WithPrefix(cfg.Prefix)), func() { _ = client.Close() }, nil
}

func findUser(ctx context.Context, sqldb *sqlx.DB, id string) (tabula.Row, error) {
	row := map[string]any{}
	err := sqldb.QueryRowxContext(ctx, sqldb.Rebind(`SELECT * FROM users WHERE id = ?`), id).MapScan(row)
	if err != nil {
		return nil, err
	}
	return tabula.Row(row), nil
}

func showUser(sqldb *sqlx.DB, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := findUser(r.Context(), sqldb, chi.URLParam(r, "id"))
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		if err != nil {
			log.ErrorContext(r.Context(), "failed to load user", slog.String("error", err.Error()))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		body := templ.Raw(userDetails(u) + `<a class="btn btn-link" href="/users">Back</a>`)
		if err := page(r, u.String("name"), body).Render(r.Context(), w); err != nil {
			log.ErrorContext(r.Context(), "failed to render user", slog.String("error", err.Error()))
		}
	}
}

func destroyUser(sqldb *sqlx.DB, reg *route.Registry, log *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if _, err := sqldb.ExecContext(r.Context(), sqldb.Rebind(`DELETE FROM users WHERE id = ?`), id); err != nil {
			log.ErrorContext(r.Context(), "failed to delete user", slog.String("id", id), slog.String("error", err.Error()))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
		log.InfoContext(r.Context(), "user deleted", slog.String("id", id))

		index, err := reg.URL("users.index", nil)
		if err != nil {
			index = "/users"
		}
		htmx.Redirect(w, r, index)
	}
}
