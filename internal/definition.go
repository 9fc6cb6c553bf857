package internal

// Definition declares a table in three steps, so table declarations can live
// in their own types.
//
// Example:
//
//	type UsersTable struct{ db *pgxpool.Pool; routes *route.Registry }
//
//	func (u UsersTable) Table() *tabula.Table {
//	    return tabula.New(source.NewPgx(u.db, "users"), tabula.WithRegistry(u.routes)).
//	        Routes(tabula.Routes{Index: tabula.Route{Name: "users.index"}})
//	}
//
//	func (UsersTable) Columns(t *tabula.Table) {
//	    t.Column("name").Sortable(true, tabula.Asc).Searchable()
//	}
type Definition interface {
	// Table creates the table and sets its options.
	Table() *Table

	// Columns declares the columns.
	Columns(t *Table)
}

// ResultLiner is implemented by definitions declaring result lines.
type ResultLiner interface {
	ResultLines(t *Table)
}

// Build runs the steps of a definition and returns the table.
func Build(def Definition) *Table {
	t := def.Table()
	def.Columns(t)
	if rl, ok := def.(ResultLiner); ok {
		rl.ResultLines(t)
	}
	return t
}
