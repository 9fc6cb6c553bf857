package internal

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"

	"github.com/dmitrymomot/tabula/pkg/i18n"
	"github.com/dmitrymomot/tabula/pkg/logger"
	"github.com/dmitrymomot/tabula/pkg/metrics"
	"github.com/dmitrymomot/tabula/pkg/route"
	"github.com/dmitrymomot/tabula/pkg/sanitizer"
	"github.com/dmitrymomot/tabula/pkg/source"
	"github.com/dmitrymomot/tabula/pkg/views"
)

// Row is a single record keyed by column name.
type Row = source.Row

// Direction is a sort direction.
type Direction = source.Direction

const (
	Asc  = source.Asc
	Desc = source.Desc
)

type conditionalClasses struct {
	match   func(Row) bool
	classes []string
}

// Table declares how a data source is displayed.
// A Table is configured once and can serve many requests: Configure never
// mutates it, but the setters are not safe for concurrent use.
type Table struct {
	src      source.Source
	config   Config
	registry *route.Registry
	renderer *views.Renderer
	logger   *slog.Logger
	i18n     *i18n.I18n
	policy   *bluemonday.Policy
	metrics  *metrics.Metrics
	language *Extractor

	identifier          string
	routes              Routes
	keyField            string
	rowsNumber          int
	rowsNumberSelection bool
	scopes              []func(*source.Scope)
	appends             map[string]string

	containerClasses []string
	tableClasses     []string
	trClasses        []string
	thClasses        []string
	tdClasses        []string
	conditional      []conditionalClasses
	disabled         []conditionalClasses
	destroyAttrs     func(Row) map[string]string

	templates Templates
	columns   []*Column
	results   []*Result
}

var defaultI18n = sync.OnceValue(func() *i18n.I18n {
	svc, err := i18n.NewDefault()
	if err != nil {
		panic(fmt.Sprintf("tabula: load built-in translations: %v", err))
	}
	return svc
})

// New creates a table reading from src.
//
// Example:
//
//	t := tabula.New(source.NewPgx(pool, "users"), tabula.WithRegistry(routes))
//	t.Routes(tabula.Routes{Index: tabula.Route{Name: "users.index"}})
//	t.Column("name").Sortable(true, tabula.Asc).Searchable()
func New(src source.Source, opts ...Option) *Table {
	t := &Table{
		config:   DefaultConfig(),
		renderer: views.Default(),
		logger:   logger.NewNope(),
		policy:   sanitizer.CellPolicy(),
		keyField: "id",
		appends:  make(map[string]string),
	}
	for _, opt := range opts {
		opt(t)
	}

	if t.i18n == nil {
		t.i18n = defaultI18n()
	}
	if t.language == nil {
		ext := NewExtractor(FromContextLanguage(), FromAcceptLanguage(t.i18n.Languages()))
		t.language = &ext
	}

	t.src = src
	if t.metrics != nil && src != nil {
		t.src = t.metrics.Instrument(src)
	}

	t.rowsNumber = t.config.RowsNumber
	t.rowsNumberSelection = t.config.RowsNumberSelection
	t.templates = t.config.Templates
	t.containerClasses = t.config.Classes.Container
	t.tableClasses = t.config.Classes.Table
	t.trClasses = t.config.Classes.Tr
	t.thClasses = t.config.Classes.Th
	t.tdClasses = t.config.Classes.Td
	return t
}

// Identifier prefixes the request keys and the container id so several
// tables can share a page.
func (t *Table) Identifier(id string) *Table {
	t.identifier = strings.TrimSpace(id)
	return t
}

// Routes sets the named routes of the table actions. The index route is required.
func (t *Table) Routes(routes Routes) *Table {
	t.routes = routes
	return t
}

// KeyField sets the row field identifying a record. It defaults to "id".
func (t *Table) KeyField(name string) *Table {
	if name = strings.TrimSpace(name); name != "" {
		t.keyField = name
	}
	return t
}

// RowsNumber sets the rows per page. Zero disables pagination.
func (t *Table) RowsNumber(n int) *Table {
	t.rowsNumber = max(n, 0)
	return t
}

// RowsNumberSelection lets users choose the rows per page.
func (t *Table) RowsNumberSelection(enabled bool) *Table {
	t.rowsNumberSelection = enabled
	return t
}

// Query adds constraints applied to every query of the table.
//
// Example:
//
//	t.Query(func(s *source.Scope) {
//	    s.Select("users.*", "companies.name AS company").
//	        Join("LEFT JOIN companies ON companies.id = users.company_id").
//	        Where("users.active = ?", true)
//	})
func (t *Table) Query(fn func(*source.Scope)) *Table {
	if fn != nil {
		t.scopes = append(t.scopes, fn)
	}
	return t
}

// AppendData adds query values to every generated table URL and hidden
// form field, so the table keeps the surrounding page state.
func (t *Table) AppendData(data map[string]string) *Table {
	maps.Copy(t.appends, data)
	return t
}

// ContainerClasses replaces the classes of the container element.
func (t *Table) ContainerClasses(classes ...string) *Table {
	t.containerClasses = classes
	return t
}

// TableClasses replaces the classes of the table element.
func (t *Table) TableClasses(classes ...string) *Table {
	t.tableClasses = classes
	return t
}

// TrClasses replaces the classes of the body rows.
func (t *Table) TrClasses(classes ...string) *Table {
	t.trClasses = classes
	return t
}

// ThClasses replaces the classes of the header cells.
func (t *Table) ThClasses(classes ...string) *Table {
	t.thClasses = classes
	return t
}

// TdClasses replaces the classes of the body cells.
func (t *Table) TdClasses(classes ...string) *Table {
	t.tdClasses = classes
	return t
}

// RowsConditionalClasses adds classes to the rows matching fn. It can be
// called several times.
func (t *Table) RowsConditionalClasses(fn func(Row) bool, classes ...string) *Table {
	if fn != nil {
		t.conditional = append(t.conditional, conditionalClasses{match: fn, classes: classes})
	}
	return t
}

// DisableRows marks the rows matching fn as disabled: they get the given
// classes (the configured disabled classes when none are given) and no
// action buttons.
func (t *Table) DisableRows(fn func(Row) bool, classes ...string) *Table {
	if fn == nil {
		return t
	}
	if len(classes) == 0 {
		classes = t.config.Classes.Disabled
	}
	t.disabled = append(t.disabled, conditionalClasses{match: fn, classes: classes})
	return t
}

// DestroyConfirmationHTMLAttributes sets the attributes of the destroy form,
// typically a confirmation hook for the page scripts.
func (t *Table) DestroyConfirmationHTMLAttributes(fn func(Row) map[string]string) *Table {
	t.destroyAttrs = fn
	return t
}

// Column adds a column displaying attribute.
// An empty attribute is allowed for columns with a Value or HTML closure.
func (t *Table) Column(attribute string) *Column {
	c := &Column{table: t, attribute: strings.TrimSpace(attribute)}
	t.columns = append(t.columns, c)
	return c
}

// Result adds a result line rendered after the rows.
func (t *Table) Result() *Result {
	r := &Result{}
	t.results = append(t.results, r)
	return r
}

// Columns returns the declared columns.
func (t *Table) Columns() []*Column {
	return t.columns
}

// Source returns the data source, instrumented when metrics are enabled.
func (t *Table) Source() source.Source {
	return t.src
}

// Config returns the table configuration.
func (t *Table) Config() Config {
	return t.config
}

// Logger returns the table logger.
func (t *Table) Logger() *slog.Logger {
	return t.logger
}

// Metrics returns the metrics passed with WithMetrics, or nil.
func (t *Table) Metrics() *metrics.Metrics {
	return t.metrics
}

// ID returns the container element id.
func (t *Table) ID() string {
	if t.identifier == "" {
		return "tabula"
	}
	return "tabula-" + t.identifier
}

// Name returns the table name used in logs and metrics.
func (t *Table) Name() string {
	if t.identifier != "" {
		return t.identifier
	}
	if t.src == nil {
		return "unknown"
	}
	return source.NameOf(t.src)
}
