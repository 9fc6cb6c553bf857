package route_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabula/pkg/route"
)

func TestRegistry_Add(t *testing.T) {
	t.Parallel()

	t.Run("registers and looks up patterns", func(t *testing.T) {
		t.Parallel()

		reg := route.New()
		require.NoError(t, reg.Add("users.index", "/users"))
		require.True(t, reg.Has("users.index"))
		require.False(t, reg.Has("users.show"))

		p, ok := reg.Pattern("users.index")
		require.True(t, ok)
		require.Equal(t, "/users", p)
	})

	t.Run("rejects duplicates", func(t *testing.T) {
		t.Parallel()

		reg := route.New()
		require.NoError(t, reg.Add("users.index", "/users"))
		require.ErrorIs(t, reg.Add("users.index", "/people"), route.ErrDuplicateRoute)
	})

	t.Run("rejects empty names and relative patterns", func(t *testing.T) {
		t.Parallel()

		reg := route.New()
		require.ErrorIs(t, reg.Add(" ", "/users"), route.ErrEmptyName)
		require.ErrorIs(t, reg.Add("users", "users"), route.ErrInvalidPattern)
	})

	t.Run("MustAdd panics on error", func(t *testing.T) {
		t.Parallel()

		reg := route.New()
		reg.MustAdd("a", "/a")
		require.Panics(t, func() { reg.MustAdd("a", "/b") })
	})

	t.Run("lists names sorted", func(t *testing.T) {
		t.Parallel()

		reg := route.New()
		reg.MustAdd("users.show", "/users/{id}")
		reg.MustAdd("users.index", "/users")
		require.Equal(t, []string{"users.index", "users.show"}, reg.Names())
	})
}

func TestRegistry_URL(t *testing.T) {
	t.Parallel()

	reg := route.New()
	reg.MustAdd("users.index", "/users")
	reg.MustAdd("users.edit", "/users/{id}/edit")
	reg.MustAdd("users.regexp", "/users/{id:[0-9]{1,5}}")
	reg.MustAdd("posts.show", "/users/{user}/posts/{slug}")
	reg.MustAdd("broken", "/users/{id")

	tests := []struct {
		name    string
		route   string
		params  map[string]string
		want    string
		wantErr error
	}{
		{name: "static", route: "users.index", want: "/users"},
		{name: "placeholder", route: "users.edit", params: map[string]string{"id": "42"}, want: "/users/42/edit"},
		{name: "regexp placeholder", route: "users.regexp", params: map[string]string{"id": "7"}, want: "/users/7"},
		{name: "several placeholders", route: "posts.show", params: map[string]string{"user": "3", "slug": "hello"}, want: "/users/3/posts/hello"},
		{name: "escapes values", route: "users.edit", params: map[string]string{"id": "a b/c"}, want: "/users/a%20b%2Fc/edit"},
		{
			name:   "extra params become a sorted query",
			route:  "users.index",
			params: map[string]string{"users_page": "2", "users_rows": "10"},
			want:   "/users?users_page=2&users_rows=10",
		},
		{name: "missing param", route: "users.edit", wantErr: route.ErrMissingParam},
		{name: "empty param", route: "users.edit", params: map[string]string{"id": ""}, wantErr: route.ErrMissingParam},
		{name: "unknown route", route: "nope", wantErr: route.ErrUnknownRoute},
		{name: "unbalanced pattern", route: "broken", params: map[string]string{"id": "1"}, wantErr: route.ErrInvalidPattern},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := reg.URL(tt.route, tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRegistry_Params(t *testing.T) {
	t.Parallel()

	reg := route.New()
	reg.MustAdd("users.index", "/users")
	reg.MustAdd("posts.show", "/users/{user}/posts/{slug:[a-z-]{2,}}")
	reg.MustAdd("broken", "/users/{id")

	params, err := reg.Params("posts.show")
	require.NoError(t, err)
	require.Equal(t, []string{"user", "slug"}, params)

	params, err = reg.Params("users.index")
	require.NoError(t, err)
	require.Empty(t, params)

	_, err = reg.Params("broken")
	require.ErrorIs(t, err, route.ErrInvalidPattern)

	_, err = reg.Params("nope")
	require.ErrorIs(t, err, route.ErrUnknownRoute)
}

func TestRouter(t *testing.T) {
	t.Parallel()

	mux := chi.NewRouter()
	reg := route.New()
	r := route.NewRouter(mux, reg)

	ok := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}
	}

	r.Get("home", "/", ok("home"))
	r.Route("/users", func(r *route.Router) {
		r.Get("users.index", "/", ok("index"))
		r.Get("users.show", "/{id}", ok("show"))
		r.Group(func(r *route.Router) {
			r.Delete("users.destroy", "/{id}", ok("destroy"))
		})
		r.Post("", "/import", ok("import"))
	})

	require.Same(t, reg, r.Registry())

	patterns := map[string]string{
		"home":          "/",
		"users.index":   "/users",
		"users.show":    "/users/{id}",
		"users.destroy": "/users/{id}",
	}
	for name, want := range patterns {
		got, found := reg.Pattern(name)
		require.True(t, found, name)
		require.Equal(t, want, got, name)
	}
	require.Len(t, reg.Names(), 4)

	requests := []struct {
		method, path, body string
	}{
		{http.MethodGet, "/", "home"},
		{http.MethodGet, "/users", "index"},
		{http.MethodGet, "/users/5", "show"},
		{http.MethodDelete, "/users/5", "destroy"},
		{http.MethodPost, "/users/import", "import"},
	}
	for _, req := range requests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(req.method, req.path, nil))
		require.Equal(t, http.StatusOK, rec.Code, req.path)
		require.Equal(t, req.body, rec.Body.String(), req.path)
	}

	require.Panics(t, func() { r.Get("home", "/again", ok("x")) })
}
