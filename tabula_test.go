package tabula_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabula"
	"github.com/dmitrymomot/tabula/pkg/route"
	"github.com/dmitrymomot/tabula/pkg/source"
)

type usersTable struct{}

func (usersTable) Table() *tabula.Table {
	reg := route.New()
	reg.MustAdd("users.index", "/users")
	reg.MustAdd("users.show", "/users/{id}")

	src := source.NewMemory("users", []tabula.Row{
		{"id": 1, "name": "Ada", "email": "ada@example.com"},
		{"id": 2, "name": "Grace", "email": ""},
	})

	return tabula.New(src, tabula.WithRegistry(reg)).
		Routes(tabula.Routes{
			Index: tabula.Route{Name: "users.index"},
			Show:  tabula.Route{Name: "users.show"},
		})
}

func (usersTable) Columns(t *tabula.Table) {
	t.Column("name").Sortable(true, tabula.Asc).Searchable()
	t.Column("email").Link("")
}

func TestFacade(t *testing.T) {
	t.Parallel()

	tbl := tabula.Build(usersTable{})
	require.Len(t, tbl.Columns(), 2)
	assert.Equal(t, tabula.LinkValue, tbl.Columns()[1].LinkKind())

	url, err := tbl.Route(tabula.RouteShow, tabula.Row{"id": 2})
	require.NoError(t, err)
	assert.Equal(t, "/users/2", url)

	_, err = tbl.Route(tabula.RouteEdit, nil)
	require.ErrorIs(t, err, tabula.ErrUndefinedRoute)

	view, err := tbl.Configure(context.Background(), httptest.NewRequest(http.MethodGet, "/users", nil))
	require.NoError(t, err)
	html, err := view.HTML(context.Background())
	require.NoError(t, err)
	assert.Contains(t, string(html), `<a href="ada@example.com" title="ada@example.com">ada@example.com</a>`)
}

func TestHandler(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	tabula.Handler(usersTable{}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users?search=gr", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Grace")
	assert.NotContains(t, rec.Body.String(), "Ada")
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := tabula.DefaultConfig()
	assert.Equal(t, 20, cfg.RowsNumber)
	assert.Equal(t, "bootstrap/table", cfg.Templates.Table)
}
