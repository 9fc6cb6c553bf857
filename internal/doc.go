// Package internal provides the core types and implementation of tabula.
//
// This package is internal and should not be used directly. Import
// "github.com/dmitrymomot/tabula" instead, which re-exports the public API.
//
// # Core Types
//
//   - Table: declares columns, routes, classes, templates and result lines
//   - Column: display settings of one attribute (title, sorting, search, links)
//   - Result: a line rendered after the rows
//   - View: the template context returned by Table.Configure
//   - Definition: declares a table in the table, columns, result lines steps
//   - Paginator: page bounds and the pagination window
//
// # Request Cycle
//
// Configure validates the declaration, reads the table state from the query
// string (rows, search, sort_by, sort_dir, page, each prefixed with the table
// identifier), counts and fetches the rows from the source and builds the
// View. The View renders the table template, which includes the other parts:
//
//	view, err := t.Configure(r.Context(), r)
//	if err != nil {
//	    return err
//	}
//	return view.Render(r.Context(), w)
//
// # Links
//
// Column.Link("") links each cell to its displayed value, Column.Link(url)
// to a fixed URL and Column.LinkFunc to a URL computed per row. Cells without
// a displayed value are never linked, even when they show prepended or
// appended HTML.
//
// # Templates
//
// Template names resolve through views.Renderer: "bootstrap/tbody" is the file
// bootstrap/tbody.html of the first file system containing it. Each table can
// override any part with TableTemplate, TheadTemplate and the other setters.
package internal
