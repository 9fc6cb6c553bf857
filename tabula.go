package tabula

import (
	"net/http"

	"github.com/dmitrymomot/tabula/internal"
	"github.com/dmitrymomot/tabula/pkg/source"
)

// Type aliases - public API
type (
	// Table is a server-side HTML table bound to a data source.
	// Configure it once and render it for any number of requests.
	Table = internal.Table

	// Column is a table column bound to a row attribute.
	Column = internal.Column

	// Result is a summary line rendered below the rows.
	Result = internal.Result

	// View is the render-ready state of a table for one request.
	View = internal.View

	// Config holds application-wide table defaults.
	Config = internal.Config

	// Classes, Templates and Icons are the sections of Config.
	Classes   = internal.Classes
	Templates = internal.Templates
	Icons     = internal.Icons

	// Routes names the index, create, show, edit and destroy routes of a table.
	Routes = internal.Routes

	// Route is a named route with static parameters.
	Route = internal.Route

	// Row is one record of a data source.
	Row = internal.Row

	// Direction is a sort direction.
	Direction = internal.Direction

	// LinkKind tells how a column links its cells.
	LinkKind = internal.LinkKind

	// Definition declares a table and its columns.
	Definition = internal.Definition

	// ResultLiner is implemented by definitions with result lines.
	ResultLiner = internal.ResultLiner

	// Option configures a table.
	Option = internal.Option

	// HandlerOption configures Handler.
	HandlerOption = internal.HandlerOption

	// Layout wraps a full page render of a table.
	Layout = internal.Layout

	// ErrorHandler answers requests whose table failed to render.
	ErrorHandler = internal.ErrorHandler

	// HTTPError carries the status code of a failed render.
	HTTPError = internal.HTTPError

	// Extractor reads a value from a request through a chain of sources.
	Extractor = internal.Extractor

	// Source provides the rows of a table.
	Source = source.Source

	// Scope restricts the rows of a table.
	Scope = source.Scope
)

// Sort directions.
const (
	Asc  = internal.Asc
	Desc = internal.Desc
)

// Link kinds.
const (
	LinkNone     = internal.LinkNone
	LinkValue    = internal.LinkValue
	LinkLiteral  = internal.LinkLiteral
	LinkCallback = internal.LinkCallback
)

// Route keys accepted by Table.Route.
const (
	RouteIndex   = internal.RouteIndex
	RouteCreate  = internal.RouteCreate
	RouteShow    = internal.RouteShow
	RouteEdit    = internal.RouteEdit
	RouteDestroy = internal.RouteDestroy
)

// Errors
var (
	ErrMissingSource          = internal.ErrMissingSource
	ErrNoColumns              = internal.ErrNoColumns
	ErrMissingRegistry        = internal.ErrMissingRegistry
	ErrMissingIndexRoute      = internal.ErrMissingIndexRoute
	ErrUnknownRoute           = internal.ErrUnknownRoute
	ErrUndefinedRoute         = internal.ErrUndefinedRoute
	ErrMultipleDefaultSort    = internal.ErrMultipleDefaultSort
	ErrColumnWithoutAttribute = internal.ErrColumnWithoutAttribute
	ErrDuplicateColumn        = internal.ErrDuplicateColumn
	ErrUnknownPart            = internal.ErrUnknownPart
)

// New creates a table reading rows from src.
//
// Example:
//
//	t := tabula.New(source.NewPgx(pool, "users"), tabula.WithRegistry(routes)).
//		Routes(tabula.Routes{Index: tabula.Route{Name: "users.index"}})
//	t.Column("name").Sortable(true, tabula.Asc).Searchable()
//	t.Column("email").Link("")
func New(src Source, opts ...Option) *Table {
	return internal.New(src, opts...)
}

// Build creates the table declared by def.
func Build(def Definition) *Table {
	return internal.Build(def)
}

// Handler serves the table declared by def. Requests targeting the table
// through htmx receive the table alone; others get it wrapped in the layout.
//
// Example:
//
//	r.Get("/users", tabula.Handler(UsersTable{db: db}, tabula.WithLayout(pages.Layout)))
func Handler(def Definition, opts ...HandlerOption) http.Handler {
	return internal.Handler(def, opts...)
}

// DefaultConfig returns the default table configuration.
func DefaultConfig() Config {
	return internal.DefaultConfig()
}

// AsHTTPError maps a render error to the status code Handler responds with.
func AsHTTPError(err error) *HTTPError {
	return internal.AsHTTPError(err)
}

// NewExtractor creates an extractor trying sources in order.
func NewExtractor(sources ...internal.ExtractorSource) Extractor {
	return internal.NewExtractor(sources...)
}
