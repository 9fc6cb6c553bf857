package internal_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabula/internal"
	"github.com/dmitrymomot/tabula/pkg/route"
	"github.com/dmitrymomot/tabula/pkg/source"
)

// newRegistry registers the users routes used across tests.
func newRegistry() *route.Registry {
	reg := route.New()
	reg.MustAdd("users.index", "/users")
	reg.MustAdd("users.create", "/users/create")
	reg.MustAdd("users.show", "/users/{id}")
	reg.MustAdd("users.edit", "/users/{id}/edit")
	reg.MustAdd("users.destroy", "/users/{id}/delete")
	return reg
}

func indexRoutes() internal.Routes {
	return internal.Routes{Index: internal.Route{Name: "users.index"}}
}

func allRoutes() internal.Routes {
	return internal.Routes{
		Index:   internal.Route{Name: "users.index"},
		Create:  internal.Route{Name: "users.create"},
		Show:    internal.Route{Name: "users.show"},
		Edit:    internal.Route{Name: "users.edit"},
		Destroy: internal.Route{Name: "users.destroy"},
	}
}

func sampleUsers() []source.Row {
	return []source.Row{
		{"id": 1, "name": "Ada", "email": "ada@example.com", "active": true},
		{"id": 2, "name": "Grace", "email": "grace@example.com", "active": false},
		{"id": 3, "name": "Linus", "email": "linus@example.com", "active": true},
	}
}

// newTable creates a users table over rows with the index route declared.
func newTable(rows []source.Row, opts ...internal.Option) *internal.Table {
	opts = append([]internal.Option{internal.WithRegistry(newRegistry())}, opts...)
	return internal.New(source.NewMemory("users", rows), opts...).Routes(indexRoutes())
}

// configure runs Configure for a GET request on target.
func configure(t *testing.T, tbl *internal.Table, target string) *internal.View {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	view, err := tbl.Configure(context.Background(), req)
	require.NoError(t, err)
	return view
}

// part renders a template part of view.
func part(t *testing.T, view *internal.View, name string) string {
	t.Helper()

	out, err := view.Part(name)
	require.NoError(t, err)
	return string(out)
}
