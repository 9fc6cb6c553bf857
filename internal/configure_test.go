package internal_test

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/microcosm-cc/bluemonday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/tabula/internal"
	"github.com/dmitrymomot/tabula/pkg/i18n"
	"github.com/dmitrymomot/tabula/pkg/route"
	"github.com/dmitrymomot/tabula/pkg/source"
)

func names(view *internal.View) []string {
	out := make([]string, 0, len(view.Rows))
	for _, r := range view.Rows {
		out = append(out, r.Row.String("name"))
	}
	return out
}

func TestTable_ConfigureValidation(t *testing.T) {
	t.Parallel()

	configureErr := func(tbl *internal.Table) error {
		_, err := tbl.Configure(context.Background(), httptest.NewRequest(http.MethodGet, "/users", nil))
		return err
	}

	t.Run("no source", func(t *testing.T) {
		t.Parallel()

		tbl := internal.New(nil, internal.WithRegistry(newRegistry())).Routes(indexRoutes())
		tbl.Column("name")
		require.ErrorIs(t, configureErr(tbl), internal.ErrMissingSource)
	})

	t.Run("no columns", func(t *testing.T) {
		t.Parallel()

		require.ErrorIs(t, configureErr(newTable(nil)), internal.ErrNoColumns)
	})

	t.Run("several default sorts", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(nil)
		tbl.Column("name").Sortable(true, internal.Asc)
		tbl.Column("email").Sortable(true, internal.Desc)
		require.ErrorIs(t, configureErr(tbl), internal.ErrMultipleDefaultSort)
	})

	t.Run("sortable column without attribute", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(nil)
		tbl.Column("").Sortable(false, internal.Asc).Value(func(internal.Row, *internal.Column) string { return "x" })
		require.ErrorIs(t, configureErr(tbl), internal.ErrColumnWithoutAttribute)
	})

	t.Run("column without attribute nor closure", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(nil)
		tbl.Column("")
		require.ErrorIs(t, configureErr(tbl), internal.ErrColumnWithoutAttribute)
	})

	t.Run("duplicate attributes", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(nil)
		tbl.Column("name")
		tbl.Column("name")
		require.ErrorIs(t, configureErr(tbl), internal.ErrDuplicateColumn)
	})

	t.Run("duplicate attribute with closure is allowed", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(sampleUsers())
		tbl.Column("name")
		tbl.Column("name").Value(func(r internal.Row, _ *internal.Column) string { return "@" + r.String("name") })
		require.NoError(t, configureErr(tbl))
	})

	t.Run("missing index route", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(nil).Routes(internal.Routes{})
		tbl.Column("name")
		require.ErrorIs(t, configureErr(tbl), internal.ErrMissingIndexRoute)
	})

	t.Run("missing registry", func(t *testing.T) {
		t.Parallel()

		tbl := internal.New(source.NewMemory("users", nil)).Routes(indexRoutes())
		tbl.Column("name")
		require.ErrorIs(t, configureErr(tbl), internal.ErrMissingRegistry)
	})

	t.Run("unknown route", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(nil).Routes(internal.Routes{
			Index: internal.Route{Name: "users.index"},
			Edit:  internal.Route{Name: "users.update"},
		})
		tbl.Column("name")
		require.ErrorIs(t, configureErr(tbl), internal.ErrUnknownRoute)
	})

	t.Run("errors are reported together", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(nil).Routes(internal.Routes{})
		tbl.Column("name").Sortable(true, internal.Asc)
		tbl.Column("email").Sortable(true, internal.Asc)
		err := configureErr(tbl)
		require.ErrorIs(t, err, internal.ErrMultipleDefaultSort)
		require.ErrorIs(t, err, internal.ErrMissingIndexRoute)
	})
}

func TestTable_ConfigureSorting(t *testing.T) {
	t.Parallel()

	newSorted := func() *internal.Table {
		tbl := newTable(sampleUsers())
		tbl.Column("name").Sortable(false, internal.Asc)
		tbl.Column("email").Sortable(true, internal.Desc)
		tbl.Column("active")
		return tbl
	}

	t.Run("default column and direction", func(t *testing.T) {
		t.Parallel()

		view := configure(t, newSorted(), "/users")
		assert.Equal(t, []string{"Linus", "Grace", "Ada"}, names(view))
		assert.True(t, view.Columns[1].Sorted)
		assert.Equal(t, internal.Desc, view.Columns[1].Dir)
		assert.Equal(t, "/users?sort_by=email&sort_dir=asc", view.Columns[1].SortURL)
		assert.Equal(t, "/users?sort_by=name&sort_dir=asc", view.Columns[0].SortURL)
		assert.False(t, view.Columns[2].Sortable)
	})

	t.Run("requested column", func(t *testing.T) {
		t.Parallel()

		view := configure(t, newSorted(), "/users?sort_by=name&sort_dir=desc")
		assert.Equal(t, []string{"Linus", "Grace", "Ada"}, names(view))
		assert.True(t, view.Columns[0].Sorted)
		assert.Equal(t, "/users?sort_by=name&sort_dir=asc", view.Columns[0].SortURL)
	})

	t.Run("requested column keeps its default direction", func(t *testing.T) {
		t.Parallel()

		view := configure(t, newSorted(), "/users?sort_by=name")
		assert.Equal(t, []string{"Ada", "Grace", "Linus"}, names(view))
	})

	t.Run("unsortable column falls back to the default", func(t *testing.T) {
		t.Parallel()

		view := configure(t, newSorted(), "/users?sort_by=active&sort_dir=asc")
		assert.True(t, view.Columns[1].Sorted)
		assert.Equal(t, internal.Desc, view.Columns[1].Dir)
	})

	t.Run("first sortable column without default", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(sampleUsers())
		tbl.Column("email")
		tbl.Column("name").Sortable(false, internal.Desc)
		view := configure(t, tbl, "/users")
		assert.Equal(t, []string{"Linus", "Grace", "Ada"}, names(view))
	})

	t.Run("sort link resets the page", func(t *testing.T) {
		t.Parallel()

		tbl := newSorted().RowsNumber(1)
		view := configure(t, tbl, "/users?page=2")
		assert.Equal(t, 2, view.Paginator.Page)
		assert.NotContains(t, view.Columns[0].SortURL, "page=")
	})
}

func TestTable_ConfigureSearch(t *testing.T) {
	t.Parallel()

	t.Run("matches searchable columns", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(sampleUsers())
		tbl.Column("name").Searchable()
		tbl.Column("email")

		view := configure(t, tbl, "/users?search=GRA")
		assert.Equal(t, []string{"Grace"}, names(view))
		assert.Equal(t, "GRA", view.Search.Value)
		assert.Equal(t, "/users", view.Search.CancelURL)
		assert.True(t, view.Search.Enabled)
	})

	t.Run("searches the listed fields", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(sampleUsers())
		tbl.Column("name").Searchable("email")

		view := configure(t, tbl, "/users?search=linus@")
		assert.Equal(t, []string{"Linus"}, names(view))
	})

	t.Run("ignored without searchable columns", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(sampleUsers())
		tbl.Column("name")

		view := configure(t, tbl, "/users?search=zzz")
		assert.Len(t, view.Rows, 3)
		assert.False(t, view.Search.Enabled)
		assert.Empty(t, view.Search.Value)
	})

	t.Run("no results", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(sampleUsers())
		tbl.Column("name").Searchable()

		view := configure(t, tbl, "/users?search=zzz")
		assert.Empty(t, view.Rows)
		assert.Equal(t, 0, view.Total)
		assert.Contains(t, part(t, view, internal.PartTbody), "No results were found.")
	})
}

func TestTable_ConfigurePagination(t *testing.T) {
	t.Parallel()

	rows := make([]source.Row, 0, 45)
	for i := 1; i <= 45; i++ {
		rows = append(rows, source.Row{"id": i, "name": "user"})
	}

	t.Run("pages rows", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(rows).RowsNumber(10)
		tbl.Column("id").Sortable(true, internal.Asc)

		view := configure(t, tbl, "/users?page=2")
		require.Len(t, view.Rows, 10)
		assert.Equal(t, "11", view.Rows[0].Key)
		assert.Equal(t, 45, view.Total)
		assert.Equal(t, "/users?sort_by=id&sort_dir=asc", view.Pagination.PrevURL)
		assert.Equal(t, "/users?page=3&sort_by=id&sort_dir=asc", view.Pagination.NextURL)
		assert.Len(t, view.Pagination.Links, 5)
		assert.True(t, view.Pagination.Links[1].Active)
	})

	t.Run("clamps the page", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(rows).RowsNumber(10)
		tbl.Column("id")

		view := configure(t, tbl, "/users?page=99")
		assert.Equal(t, 5, view.Paginator.Page)
		assert.Len(t, view.Rows, 5)
		assert.Empty(t, view.Pagination.NextURL)
	})

	t.Run("zero rows number shows everything", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(rows).RowsNumber(0).RowsNumberSelection(false)
		tbl.Column("id")

		view := configure(t, tbl, "/users?page=3")
		assert.Len(t, view.Rows, 45)
		assert.False(t, view.Pagination.HasPages)
	})

	t.Run("rows number selection", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(rows).RowsNumber(10)
		tbl.Column("id")

		view := configure(t, tbl, "/users?rows=25")
		assert.Len(t, view.Rows, 25)
		assert.Equal(t, 25, view.RowsNumber.Value)
		assert.Equal(t, "/users?page=2&rows=25", view.Pagination.NextURL)
	})

	t.Run("rows number above the maximum is ignored", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(rows).RowsNumber(10)
		tbl.Column("id")

		view := configure(t, tbl, "/users?rows=1000")
		assert.Len(t, view.Rows, 10)
		assert.Equal(t, "/users?page=2", view.Pagination.NextURL)
	})

	t.Run("rows number selection disabled", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(rows).RowsNumber(10).RowsNumberSelection(false)
		tbl.Column("id")

		view := configure(t, tbl, "/users?rows=25")
		assert.Len(t, view.Rows, 10)
		assert.False(t, view.RowsNumber.Enabled)
	})
}

func TestTable_ConfigureIdentifier(t *testing.T) {
	t.Parallel()

	tbl := newTable(sampleUsers()).Identifier("people").RowsNumber(1).
		AppendData(map[string]string{"tab": "team"})
	tbl.Column("name").Sortable(true, internal.Asc).Searchable()

	view := configure(t, tbl, "/users?search=zzz&people_search=a&page=3&people_page=2")
	assert.Equal(t, "tabula-people", view.ID)
	assert.Equal(t, "people_search", view.Keys.Search)
	assert.Equal(t, "a", view.Search.Value)
	assert.Equal(t, 2, view.Paginator.Page)
	assert.Equal(t, []string{"Grace"}, names(view))
	assert.Equal(t,
		"/users?people_search=a&people_sort_by=name&people_sort_dir=asc&tab=team",
		view.Pagination.PrevURL,
	)

	hidden := string(view.HiddenFields("search"))
	assert.Contains(t, hidden, `<input type="hidden" name="tab" value="team">`)
	assert.Contains(t, hidden, `<input type="hidden" name="people_sort_by" value="name">`)
	assert.NotContains(t, hidden, "people_search")
	assert.NotContains(t, hidden, "people_page")
}

func TestTable_ConfigureRows(t *testing.T) {
	t.Parallel()

	t.Run("classes and disabled rows", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(sampleUsers()).Routes(allRoutes()).
			TrClasses("row").
			RowsConditionalClasses(func(r internal.Row) bool { return r["active"] == true }, "active").
			DisableRows(func(r internal.Row) bool { return r["id"] == 2 })
		tbl.Column("name").Classes("fw-bold")

		view := configure(t, tbl, "/users")
		require.Len(t, view.Rows, 3)
		assert.Equal(t, "row active", view.Rows[0].Classes)
		assert.Equal(t, "row table-danger disabled", view.Rows[1].Classes)
		assert.True(t, view.Rows[1].Disabled)
		assert.Empty(t, view.Rows[1].EditURL)
		assert.Equal(t, "/users/1/edit", view.Rows[0].EditURL)
		assert.Equal(t, "/users/3", view.Rows[2].ShowURL)
		assert.Equal(t, "align-middle fw-bold", view.Rows[0].Cells[0].Classes)

		html := part(t, view, internal.PartTbody)
		assert.NotContains(t, html, "/users/2/edit")
	})

	t.Run("key field fills the id placeholder", func(t *testing.T) {
		t.Parallel()

		tbl := newTable([]source.Row{{"uuid": "u-1", "name": "Ada"}}).KeyField("uuid").Routes(allRoutes())
		tbl.Column("name")

		view := configure(t, tbl, "/users")
		assert.Equal(t, "u-1", view.Rows[0].Key)
		assert.Equal(t, "/users/u-1/delete", view.Rows[0].DestroyURL)
	})

	t.Run("custom destroy attributes", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(sampleUsers()[:1]).Routes(allRoutes()).
			DestroyConfirmationHTMLAttributes(func(r internal.Row) map[string]string {
				return map[string]string{"data-confirm": "Delete " + r.String("name") + "?"}
			})
		tbl.Column("name")

		html := part(t, configure(t, tbl, "/users"), internal.PartTbody)
		assert.Contains(t, html, `data-confirm="Delete Ada?"`)
		assert.Contains(t, html, `hx-confirm="Delete Ada?"`)
	})

	t.Run("query scope filters rows", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(sampleUsers()).Query(func(s *source.Scope) {
			s.Filter(func(r source.Row) bool { return r["active"] == true })
		})
		tbl.Column("name")

		view := configure(t, tbl, "/users")
		assert.Equal(t, 2, view.Total)
		assert.Equal(t, []string{"Ada", "Linus"}, names(view))
	})
}

func TestTable_ConfigureCells(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)
	rows := []source.Row{{
		"id":         1,
		"name":       "Ada",
		"bio":        "**bold** and _em_",
		"created_at": created,
		"updated_at": "2024-03-10T08:00:00Z",
		"note":       "<script>x</script>",
	}}

	tbl := newTable(rows)
	tbl.Column("name").Button("btn", "btn-sm")
	tbl.Column("bio").Markdown()
	tbl.Column("created_at").DateTimeFormat("02/01/2006 15:04")
	tbl.Column("updated_at").DateTimeFormat("2006-01-02")
	tbl.Column("note")
	tbl.Column("").HTML(func(r internal.Row, _ *internal.Column) string {
		return `<span class="badge">` + r.String("name") + `</span><img src=x onerror=alert(1)>`
	})

	view := configure(t, tbl, "/users")
	cells := view.Rows[0].Cells

	assert.Equal(t, "<strong>bold</strong> and <em>em</em>", string(cells[1].Content))
	assert.Equal(t, "09/03/2024 14:05", cells[2].Value)
	assert.Equal(t, "2024-03-10", cells[3].Value)
	assert.Equal(t, "&lt;script&gt;x&lt;/script&gt;", string(cells[4].Content))
	assert.True(t, cells[5].IsHTML)
	assert.Equal(t, `<span class="badge">Ada</span>`, string(cells[5].Content))

	html := part(t, view, internal.PartTbody)
	assert.Contains(t, html, `<button class="btn btn-sm">Ada</button>`)
}

func TestTable_ConfigureTitles(t *testing.T) {
	t.Parallel()

	svc, err := i18n.NewDefault(i18n.WithTranslations("en", i18n.TableNamespace, map[string]any{
		"attributes": map[string]any{"email": "E-mail address"},
	}))
	require.NoError(t, err)

	tbl := newTable(sampleUsers(), internal.WithI18n(svc))
	tbl.Column("name").Title("Full name")
	tbl.Column("email")
	tbl.Column("created_at")
	tbl.Column("companies.company_id")

	view := configure(t, tbl, "/users")
	titles := make([]string, 0, len(view.Columns))
	for _, c := range view.Columns {
		titles = append(titles, c.Title)
	}
	assert.Equal(t, []string{"Full name", "E-mail address", "Created at", "Company"}, titles)
}

func TestTable_ConfigureLanguage(t *testing.T) {
	t.Parallel()

	newEmpty := func() *internal.Table {
		tbl := newTable(nil)
		tbl.Column("name")
		return tbl
	}

	t.Run("accept language", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Accept-Language", "fr-CA,fr;q=0.9,en;q=0.5")
		view, err := newEmpty().Configure(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "fr", view.Lang)
		assert.Contains(t, part(t, view, internal.PartTbody), "Aucun résultat n&#39;a été trouvé.")
	})

	t.Run("context language wins", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Accept-Language", "fr")
		req = req.WithContext(internal.ContextWithLanguage(req.Context(), "en"))
		view, err := newEmpty().Configure(req.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, "en", view.Lang)
	})

	t.Run("unsupported language falls back to the configured one", func(t *testing.T) {
		t.Parallel()

		tbl := newTable(nil, internal.WithLanguageExtractor(internal.NewExtractor(internal.FromQuery("lang"))))
		tbl.Column("name")
		view := configure(t, tbl, "/users?lang=ja")
		assert.Equal(t, "en", view.Lang)
	})

	t.Run("unsupported context language falls through to accept language", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/users", nil)
		req.Header.Set("Accept-Language", "fr")
		req = req.WithContext(internal.ContextWithLanguage(req.Context(), "ja"))
		view, err := newEmpty().Configure(req.Context(), req)
		require.NoError(t, err)
		assert.Equal(t, "fr", view.Lang)
	})
}

type failingSource struct{ err error }

func (f failingSource) Count(context.Context, source.Query) (int, error)         { return 0, f.err }
func (f failingSource) Rows(context.Context, source.Query) ([]source.Row, error) { return nil, f.err }

func TestTable_ConfigureSourceError(t *testing.T) {
	t.Parallel()

	boom := errors.Join(source.ErrQueryFailed, errors.New("connection refused"))
	tbl := internal.New(failingSource{err: boom}, internal.WithRegistry(newRegistry())).Routes(indexRoutes())
	tbl.Column("name")

	_, err := tbl.Configure(context.Background(), httptest.NewRequest(http.MethodGet, "/users", nil))
	require.ErrorIs(t, err, source.ErrQueryFailed)
	assert.Equal(t, http.StatusServiceUnavailable, internal.AsHTTPError(err).Code)
}

func TestTable_Route(t *testing.T) {
	t.Parallel()

	reg := route.New()
	reg.MustAdd("users.index", "/teams/{team}/users")
	reg.MustAdd("users.edit", "/teams/{team}/users/{id}/edit")

	tbl := internal.New(source.NewMemory("users", nil), internal.WithRegistry(reg)).Routes(internal.Routes{
		Index: internal.Route{Name: "users.index", Params: map[string]string{"team": "7"}},
		Edit:  internal.Route{Name: "users.edit", Params: map[string]string{"team": "7", "ref": "table"}},
	})

	assert.True(t, tbl.IsRouteDefined(internal.RouteEdit))
	assert.False(t, tbl.IsRouteDefined(internal.RouteShow))
	assert.False(t, tbl.IsRouteDefined("nope"))

	u, err := tbl.Route(internal.RouteIndex, nil)
	require.NoError(t, err)
	assert.Equal(t, "/teams/7/users", u)

	u, err = tbl.Route(internal.RouteEdit, internal.Row{"id": 3, "team": "99"})
	require.NoError(t, err)
	assert.Equal(t, "/teams/7/users/3/edit?ref=table", u)

	_, err = tbl.Route(internal.RouteShow, internal.Row{"id": 3})
	require.ErrorIs(t, err, internal.ErrUndefinedRoute)

	_, err = tbl.Route(internal.RouteEdit, internal.Row{})
	require.ErrorIs(t, err, route.ErrMissingParam)
}

func TestTable_ConfigureDriverValues(t *testing.T) {
	t.Parallel()

	id := uuid.MustParse("0b6e4a8e-9b1c-4e0f-8c58-3f1f7e2a1d55")
	price := pgtype.Numeric{Int: big.NewInt(1250), Exp: -2, Valid: true}
	rows := []source.Row{{"id": [16]byte(id), "name": "Ada", "price": price}}

	tbl := newTable(rows).Routes(allRoutes())
	tbl.Column("name").Link("")
	tbl.Column("price")

	out, err := configure(t, tbl, "/users").HTML(context.Background())
	require.NoError(t, err)

	html := string(out)
	assert.Contains(t, html, `href="/users/0b6e4a8e-9b1c-4e0f-8c58-3f1f7e2a1d55/edit"`)
	assert.Contains(t, html, `action="/users/0b6e4a8e-9b1c-4e0f-8c58-3f1f7e2a1d55/delete"`)
	assert.Contains(t, html, `<td class="align-middle">12.50</td>`)

	u, err := tbl.Route(internal.RouteShow, rows[0])
	require.NoError(t, err)
	assert.Equal(t, "/users/0b6e4a8e-9b1c-4e0f-8c58-3f1f7e2a1d55", u)
}

type recordingSource struct {
	*source.Memory
	queries []source.Query
}

func (r *recordingSource) Rows(ctx context.Context, q source.Query) ([]source.Row, error) {
	r.queries = append(r.queries, q)
	return r.Memory.Rows(ctx, q)
}

func TestTable_ConfigureKeyField(t *testing.T) {
	t.Parallel()

	t.Run("defaults to id", func(t *testing.T) {
		t.Parallel()

		src := &recordingSource{Memory: source.NewMemory("users", sampleUsers())}
		tbl := internal.New(src, internal.WithRegistry(newRegistry())).Routes(indexRoutes())
		tbl.Column("active").Sortable(true, internal.Desc)

		configure(t, tbl, "/users")
		require.Len(t, src.queries, 1)
		assert.Equal(t, "active", src.queries[0].SortField)
		assert.Equal(t, "id", src.queries[0].KeyField)
	})

	t.Run("custom key", func(t *testing.T) {
		t.Parallel()

		src := &recordingSource{Memory: source.NewMemory("users", sampleUsers())}
		tbl := internal.New(src, internal.WithRegistry(newRegistry())).Routes(indexRoutes()).KeyField("email")
		tbl.Column("name")

		configure(t, tbl, "/users")
		require.Len(t, src.queries, 1)
		assert.Empty(t, src.queries[0].SortField)
		assert.Equal(t, "email", src.queries[0].KeyField)
	})
}

func TestTable_ConfigureMarkdown(t *testing.T) {
	t.Parallel()

	cell := func(t *testing.T, tbl *internal.Table) string {
		t.Helper()
		return string(configure(t, tbl, "/users").Rows[0].Cells[0].Content)
	}

	t.Run("uses the table policy", func(t *testing.T) {
		t.Parallel()

		policy := bluemonday.NewPolicy().AllowElements("em")
		tbl := newTable([]source.Row{{"id": 1, "bio": "**bold** and _em_"}}, internal.WithSanitizer(policy))
		tbl.Column("bio").Markdown()

		assert.Equal(t, "bold and <em>em</em>", cell(t, tbl))
	})

	t.Run("keeps links under the limit", func(t *testing.T) {
		t.Parallel()

		tbl := newTable([]source.Row{{"id": 1, "bio": "[docs](/docs) page"}})
		tbl.Column("bio").Markdown().StringLimit(40)

		assert.Equal(t, `<a href="/docs">docs</a> page`, cell(t, tbl))
	})

	t.Run("truncates the rendered text", func(t *testing.T) {
		t.Parallel()

		tbl := newTable([]source.Row{{"id": 1, "bio": "[documentation](/docs) page"}})
		tbl.Column("bio").Markdown().StringLimit(5)

		assert.Equal(t, "docum...", cell(t, tbl))
	})
}
