package internal

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"io"
	"maps"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/tabula/pkg/htmx"
	"github.com/dmitrymomot/tabula/pkg/i18n"
	"github.com/dmitrymomot/tabula/pkg/views"
)

// View is the template context produced by Table.Configure.
type View struct {
	ID         string
	Identifier string
	Lang       string
	Keys       RequestKeys

	Classes ClassesView
	Icons   IconsView

	Columns      []HeaderView
	Rows         []RowView
	Results      []ResultView
	ColumnsCount int
	HasActions   bool

	Search     SearchView
	RowsNumber RowsNumberView
	Pagination PaginationView
	Paginator  Paginator
	Total      int
	Navigation template.HTML

	IndexURL  string
	CreateURL string
	HTMX      bool

	table      *Table
	translator *i18n.Translator
	urls       urlBuilder
	state      tableState
}

// ClassesView holds the joined classes of the table elements.
type ClassesView struct {
	Container string
	Table     string
	Tr        string
	Th        string
	Td        string
	Results   string
}

// IconsView holds the configured icons.
type IconsView struct {
	RowsNumber template.HTML
	Search     template.HTML
	Validate   template.HTML
	Info       template.HTML
	Cancel     template.HTML
	Create     template.HTML
	Show       template.HTML
	Edit       template.HTML
	Destroy    template.HTML
}

func newIconsView(i Icons) IconsView {
	// Icons come from trusted configuration.
	return IconsView{
		RowsNumber: template.HTML(i.RowsNumber), //nolint:gosec
		Search:     template.HTML(i.Search),     //nolint:gosec
		Validate:   template.HTML(i.Validate),   //nolint:gosec
		Info:       template.HTML(i.Info),       //nolint:gosec
		Cancel:     template.HTML(i.Cancel),     //nolint:gosec
		Create:     template.HTML(i.Create),     //nolint:gosec
		Show:       template.HTML(i.Show),       //nolint:gosec
		Edit:       template.HTML(i.Edit),       //nolint:gosec
		Destroy:    template.HTML(i.Destroy),    //nolint:gosec
	}
}

// HeaderView is the template context of a header cell.
type HeaderView struct {
	Attribute string
	Title     string
	Classes   string
	Sortable  bool
	Sorted    bool
	Dir       Direction
	SortURL   string
	SortTitle string
	Icon      template.HTML
}

// RowView is the template context of a body row.
type RowView struct {
	Key        string
	Row        Row
	Classes    string
	Disabled   bool
	Cells      []CellView
	ShowURL    string
	EditURL    string
	DestroyURL string
}

// SearchView is the template context of the search form.
type SearchView struct {
	Enabled     bool
	Value       string
	Placeholder string
	CancelURL   string
}

// RowsNumberView is the template context of the rows per page form.
type RowsNumberView struct {
	Enabled bool
	Value   int
	Max     int
}

// PaginationView is the template context of the pagination links.
type PaginationView struct {
	HasPages bool
	PrevURL  string
	NextURL  string
	Links    []PageLink
}

// PageLink is a pagination link. Gap links stand for skipped pages.
type PageLink struct {
	Page   int
	URL    string
	Active bool
	Gap    bool
}

// ActionView is the template context of a show, edit or destroy action.
type ActionView struct {
	Kind    string
	URL     string
	Title   string
	Icon    template.HTML
	Attrs   template.HTMLAttr
	Row     RowView
	TableID string
}

// Table returns the table the view was configured from.
func (v *View) Table() *Table {
	return v.table
}

// T translates a key of the table namespace in the view language.
func (v *View) T(key string, placeholders ...i18n.M) string {
	if v.translator == nil {
		return key
	}
	return v.translator.T(key, placeholders...)
}

// URL returns the table URL for page, keeping the current state.
func (v *View) URL(page int) string {
	s := v.state
	s.page = page
	return v.urls.url(s)
}

// HiddenFields renders the current table state as hidden inputs, except the
// page and the named state keys ("rows", "search", "sort").
func (v *View) HiddenFields(except ...string) template.HTML {
	if v.urls.base == nil {
		return ""
	}
	var keys []string
	for _, name := range except {
		switch name {
		case "rows":
			keys = append(keys, v.Keys.Rows)
		case "search":
			keys = append(keys, v.Keys.Search)
		case "sort":
			keys = append(keys, v.Keys.SortBy, v.Keys.SortDir)
		}
	}
	return v.urls.hiddenFields(v.state, keys...)
}

// HX returns the htmx attributes swapping the table with the response of url.
// It is empty when htmx is disabled.
func (v *View) HX(url string) template.HTMLAttr {
	if !v.HTMX || url == "" {
		return ""
	}
	attrs := htmx.Attrs{URL: url, Target: "#" + v.ID, Swap: htmx.SwapOuterHTML, PushURL: true}
	// Attrs escapes its values.
	return template.HTMLAttr(attrs.String()) //nolint:gosec
}

// Part renders the table, thead, tbody, results or tfoot template.
func (v *View) Part(name string) (template.HTML, error) {
	if v.table == nil {
		return "", ErrNotConfigured
	}
	switch name {
	case PartShow, PartEdit, PartDestroy:
		return "", fmt.Errorf("%w: %q is rendered per row, use Action", ErrUnknownPart, name)
	}
	tmpl, ok := v.table.templates.Template(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPart, name)
	}
	return v.table.renderer.RenderHTML(tmpl, v)
}

// Action renders the show, edit or destroy template of row. It is empty
// when the route is not defined or the row is disabled.
func (v *View) Action(kind string, row RowView) (template.HTML, error) {
	if v.table == nil {
		return "", ErrNotConfigured
	}

	a := ActionView{Kind: kind, Title: v.T(kind), Row: row, TableID: v.ID}
	switch kind {
	case PartShow:
		a.URL, a.Icon = row.ShowURL, v.Icons.Show
	case PartEdit:
		a.URL, a.Icon = row.EditURL, v.Icons.Edit
	case PartDestroy:
		a.URL, a.Icon = row.DestroyURL, v.Icons.Destroy
		a.Attrs = v.destroyAttrs(row)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPart, kind)
	}
	if a.URL == "" || row.Disabled {
		return "", nil
	}

	tmpl, _ := v.table.templates.Template(kind)
	return v.table.renderer.RenderHTML(tmpl, a)
}

func (v *View) destroyAttrs(row RowView) template.HTMLAttr {
	var attrs map[string]string
	if v.table.destroyAttrs != nil {
		attrs = v.table.destroyAttrs(row.Row)
	}
	if attrs == nil {
		attrs = map[string]string{"data-confirm": v.T("destroy_confirm")}
	}
	if v.HTMX && row.DestroyURL != "" {
		confirm := attrs["data-confirm"]
		attrs = mergeAttrs(attrs, map[string]string{"hx-post": row.DestroyURL})
		if confirm != "" {
			attrs["hx-confirm"] = confirm
		}
	}
	return views.Attrs(attrs)
}

func mergeAttrs(base, extra map[string]string) map[string]string {
	out := maps.Clone(base)
	maps.Copy(out, extra)
	return out
}

// Render writes the table template to w.
func (v *View) Render(ctx context.Context, w io.Writer) error {
	if v.table == nil {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return v.table.renderer.Render(w, v.table.templates.Table, v)
}

// HTML renders the table template to a string.
func (v *View) HTML(ctx context.Context) (template.HTML, error) {
	var buf bytes.Buffer
	if err := v.Render(ctx, &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil //nolint:gosec
}

// Component returns the table as a templ component, so it can be embedded
// in templ layouts.
func (v *View) Component() templ.Component {
	return templ.ComponentFunc(v.Render)
}
