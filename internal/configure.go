package internal

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/tabula/pkg/i18n"
	"github.com/dmitrymomot/tabula/pkg/sanitizer"
	"github.com/dmitrymomot/tabula/pkg/source"
)

// Configure validates the table, reads the table state from the request,
// queries the data source and returns the template context.
func (t *Table) Configure(ctx context.Context, r *http.Request) (*View, error) {
	if err := t.validate(); err != nil {
		return nil, err
	}

	tr := i18n.NewTranslator(t.i18n, t.resolveLanguage(r), i18n.TableNamespace)
	keys := NewRequestKeys(t.identifier)
	state := parseState(r, keys)

	indexURL, err := t.Route(RouteIndex, nil)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(indexURL)
	if err != nil {
		return nil, fmt.Errorf("tabula: parse index url %q: %w", indexURL, err)
	}

	perPage := t.rowsNumber
	if t.rowsNumberSelection && state.rows > 0 && state.rows <= t.config.MaxRowsNumber {
		perPage = state.rows
	} else {
		state.rows = 0
	}

	sortCol := t.sortColumn(state.sortBy)
	switch {
	case sortCol == nil:
		state.sortBy, state.sortDir = "", ""
	case sortCol.attribute != state.sortBy || state.sortDir == "":
		state.sortBy, state.sortDir = sortCol.attribute, sortCol.sortDir
	}

	var searchFields, searchTitles []string
	for _, c := range t.columns {
		if c.searchable {
			searchFields = append(searchFields, c.searchTargets()...)
			searchTitles = append(searchTitles, t.columnTitle(c, tr))
		}
	}
	if len(searchFields) == 0 {
		state.search = ""
	}

	q := source.Query{
		Scope:        t.scope(),
		Search:       state.search,
		SearchFields: searchFields,
		SortField:    state.sortBy,
		SortDir:      state.sortDir,
		KeyField:     t.keyField,
	}

	total, err := t.src.Count(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("tabula: count %s: %w", t.Name(), err)
	}

	pager := NewPaginator(total, perPage, state.page)
	state.page = pager.Page
	if perPage > 0 {
		q.Limit = perPage
		q.Offset = pager.Offset()
	}

	var rows []Row
	if total > 0 {
		rows, err = t.src.Rows(ctx, q)
		if err != nil {
			return nil, fmt.Errorf("tabula: rows %s: %w", t.Name(), err)
		}
	}

	urls := urlBuilder{base: base, keys: keys, appends: t.appends, keepRows: state.rows > 0}
	v := &View{
		ID:         t.ID(),
		Identifier: t.identifier,
		Lang:       tr.Language(),
		Keys:       keys,
		IndexURL:   indexURL,
		HTMX:       t.config.HTMX,
		Total:      total,
		Paginator:  pager,
		HasActions: t.IsRouteDefined(RouteShow) || t.IsRouteDefined(RouteEdit) || t.IsRouteDefined(RouteDestroy),
		Classes: ClassesView{
			Container: joinClasses(t.containerClasses),
			Table:     joinClasses(t.tableClasses),
			Tr:        joinClasses(t.trClasses),
			Th:        joinClasses(t.thClasses),
			Td:        joinClasses(t.tdClasses),
			Results:   joinClasses(t.config.Classes.Results),
		},
		Icons:      newIconsView(t.config.Icons),
		table:      t,
		translator: tr,
		urls:       urls,
		state:      state,
	}
	v.ColumnsCount = len(t.columns)
	if v.HasActions {
		v.ColumnsCount++
	}

	if t.IsRouteDefined(RouteCreate) {
		if v.CreateURL, err = t.Route(RouteCreate, nil); err != nil {
			return nil, err
		}
	}

	v.Search = SearchView{
		Enabled: len(searchFields) > 0,
		Value:   state.search,
		Placeholder: tr.T("search", i18n.M{
			"fields": strings.Join(searchTitles, ", "),
		}),
	}
	if state.search != "" {
		cancel := state
		cancel.search, cancel.page = "", 1
		v.Search.CancelURL = urls.url(cancel)
	}

	v.RowsNumber = RowsNumberView{
		Enabled: t.rowsNumberSelection,
		Value:   perPage,
		Max:     t.config.MaxRowsNumber,
	}

	v.Columns = t.headers(sortCol, state, urls, tr)
	v.Pagination = paginationView(pager, state, urls)
	v.Navigation = template.HTML(sanitizer.SanitizeCell(tr.T("navigation", i18n.M{ //nolint:gosec
		"start": tr.FormatNumber(pager.From()),
		"stop":  tr.FormatNumber(pager.To()),
		"total": tr.FormatNumber(total),
	})))

	sanitize := t.sanitizeFunc()
	for _, row := range rows {
		rv, err := t.rowView(row, sanitize)
		if err != nil {
			return nil, err
		}
		v.Rows = append(v.Rows, rv)
	}
	for _, res := range t.results {
		v.Results = append(v.Results, res.view(rows, sanitize))
	}

	t.logger.DebugContext(ctx, "table configured",
		slog.String("table", t.Name()),
		slog.Int("total", total),
		slog.Int("page", pager.Page),
		slog.Int("rows", len(rows)),
		slog.String("sort_by", state.sortBy),
	)
	return v, nil
}

// validate reports every configuration error at once.
func (t *Table) validate() error {
	if t.src == nil {
		return ErrMissingSource
	}
	if len(t.columns) == 0 {
		return ErrNoColumns
	}

	var (
		errs     []error
		defaults int
		seen     = make(map[string]struct{}, len(t.columns))
	)
	for i, c := range t.columns {
		if c.sortByDefault {
			defaults++
		}
		if c.attribute == "" {
			if c.sortable || (c.searchable && len(c.searchFields) == 0) || !c.hasClosure() {
				errs = append(errs, fmt.Errorf("%w: column #%d", ErrColumnWithoutAttribute, i+1))
			}
			continue
		}
		if c.hasClosure() {
			continue
		}
		if _, ok := seen[c.attribute]; ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.attribute))
		}
		seen[c.attribute] = struct{}{}
	}
	if defaults > 1 {
		errs = append(errs, ErrMultipleDefaultSort)
	}
	if err := t.validateRoutes(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// sortColumn returns the requested sortable column, else the default one,
// else the first sortable column.
func (t *Table) sortColumn(requested string) *Column {
	var first, byDefault *Column
	for _, c := range t.columns {
		if !c.sortable || c.attribute == "" {
			continue
		}
		if requested != "" && c.attribute == requested {
			return c
		}
		if first == nil {
			first = c
		}
		if c.sortByDefault && byDefault == nil {
			byDefault = c
		}
	}
	if byDefault != nil {
		return byDefault
	}
	return first
}

func (t *Table) scope() *source.Scope {
	if len(t.scopes) == 0 {
		return nil
	}
	s := source.NewScope()
	for _, fn := range t.scopes {
		fn(s)
	}
	return s
}

func (t *Table) resolveLanguage(r *http.Request) string {
	if lang, ok := t.language.ExtractWith(r, supportedIn(t.i18n.Languages())); ok {
		return lang
	}
	return t.config.Language
}

// supportedIn accepts languages matching one of available.
func supportedIn(available []string) func(string) (string, bool) {
	return func(lang string) (string, bool) {
		v := i18n.Supported(lang, available)
		return v, v != ""
	}
}

func (t *Table) columnTitle(c *Column, tr *i18n.Translator) string {
	if c.title != "" {
		return c.title
	}
	if c.attribute == "" {
		return ""
	}
	if key := "attributes." + c.attribute; tr.Has(key) {
		return tr.T(key)
	}
	return humanize(c.attribute)
}

func (t *Table) sanitizeFunc() func(string) string {
	if !t.config.SanitizeHTML {
		return func(s string) string { return s }
	}
	return func(s string) string {
		return sanitizer.SanitizeHTMLCustom(s, t.policy)
	}
}

func (t *Table) headers(sortCol *Column, state tableState, urls urlBuilder, tr *i18n.Translator) []HeaderView {
	icons := t.config.Icons
	out := make([]HeaderView, 0, len(t.columns))
	for _, c := range t.columns {
		h := HeaderView{
			Attribute: c.attribute,
			Title:     t.columnTitle(c, tr),
			Classes:   joinClasses(t.thClasses, c.classes),
			Sortable:  c.sortable && c.attribute != "",
		}
		if h.Sortable {
			next := state
			next.page = 1
			next.sortBy = c.attribute
			next.sortDir = c.sortDir
			h.Icon = template.HTML(icons.Sort) //nolint:gosec
			if c == sortCol {
				h.Sorted = true
				h.Dir = state.sortDir
				next.sortDir = state.sortDir.Toggle()
				if state.sortDir == Desc {
					h.Icon = template.HTML(icons.SortDesc) //nolint:gosec
				} else {
					h.Icon = template.HTML(icons.SortAsc) //nolint:gosec
				}
			}
			h.SortURL = urls.url(next)
			h.SortTitle = tr.T("sort") + " " + h.Title
		}
		out = append(out, h)
	}
	return out
}

func (t *Table) rowView(row Row, sanitize func(string) string) (RowView, error) {
	rv := RowView{Key: row.String(t.keyField), Row: row}

	classes := [][]string{t.trClasses}
	for _, cc := range t.conditional {
		if cc.match(row) {
			classes = append(classes, cc.classes)
		}
	}
	for _, d := range t.disabled {
		if d.match(row) {
			rv.Disabled = true
			classes = append(classes, d.classes)
		}
	}
	rv.Classes = joinClasses(classes...)

	for _, c := range t.columns {
		cell, err := c.cell(row, sanitize)
		if err != nil {
			return rv, err
		}
		rv.Cells = append(rv.Cells, cell)
	}

	if rv.Disabled {
		return rv, nil
	}
	for _, a := range []struct {
		key string
		dst *string
	}{
		{RouteShow, &rv.ShowURL},
		{RouteEdit, &rv.EditURL},
		{RouteDestroy, &rv.DestroyURL},
	} {
		if !t.IsRouteDefined(a.key) {
			continue
		}
		u, err := t.Route(a.key, row)
		if err != nil {
			return rv, err
		}
		*a.dst = u
	}
	return rv, nil
}

func paginationView(p Paginator, state tableState, urls urlBuilder) PaginationView {
	pv := PaginationView{HasPages: p.HasPages()}
	if !pv.HasPages {
		return pv
	}

	at := func(page int) string {
		s := state
		s.page = page
		return urls.url(s)
	}
	if p.Page > 1 {
		pv.PrevURL = at(p.Page - 1)
	}
	if p.Page < p.LastPage() {
		pv.NextURL = at(p.Page + 1)
	}
	for _, page := range p.Window() {
		if page == 0 {
			pv.Links = append(pv.Links, PageLink{Gap: true})
			continue
		}
		pv.Links = append(pv.Links, PageLink{Page: page, URL: at(page), Active: page == p.Page})
	}
	return pv
}
