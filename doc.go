// Package tabula generates server-side HTML tables from a data source.
//
// A table is declared once: its data source, routes, columns and result
// lines. On each request it reads sorting, searching, rows per page and page
// number from the query string, queries the source, and renders Bootstrap
// flavored markup through overridable html/template files. Tables work
// without JavaScript and, when htmx is loaded, swap themselves in place.
//
// # Quick Start
//
//	type UsersTable struct{ db *pgxpool.Pool }
//
//	func (u UsersTable) Table() *tabula.Table {
//		return tabula.New(source.NewPgx(u.db, "users"), tabula.WithRegistry(routes)).
//			Routes(tabula.Routes{
//				Index:   tabula.Route{Name: "users.index"},
//				Edit:    tabula.Route{Name: "users.edit"},
//				Destroy: tabula.Route{Name: "users.destroy"},
//			})
//	}
//
//	func (UsersTable) Columns(t *tabula.Table) {
//		t.Column("name").Sortable(true, tabula.Asc).Searchable()
//		t.Column("email").Link("")
//		t.Column("created_at").DateTimeFormat("02/01/2006 15:04")
//	}
//
//	r.Get("/users", tabula.Handler(UsersTable{db: pool}).ServeHTTP)
//
// # Links
//
// Column.Link("") links each cell to its own displayed value. A non-empty
// argument links every cell to that URL, and Column.LinkFunc computes the
// URL per row. Cells without a value are never linked.
//
// # Templates
//
// Every part of the table (table, thead, tbody, tfoot, results) and every
// row action (show, edit, destroy) is rendered by a named template. Names
// default to the "bootstrap/<part>" set embedded in pkg/views and can be
// changed per application through Config.Templates or per table with
// TableTemplate, TheadTemplate and the other setters.
//
// # Data Sources
//
// pkg/source provides an in-memory source, a database/sql source through
// sqlx (SQLite and PostgreSQL dialects) and a pgx source. Any type
// implementing Source can back a table.
package tabula
