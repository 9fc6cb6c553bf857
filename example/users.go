package main

import (
	"fmt"
	"html"
	"strings"

	"github.com/dmitrymomot/tabula"
	"github.com/dmitrymomot/tabula/pkg/route"
)

// UsersTable lists users with search, sorting, pagination and row actions.
type UsersTable struct {
	Source   tabula.Source
	Registry *route.Registry
	Options  []tabula.Option
}

func (u UsersTable) Table() *tabula.Table {
	opts := append([]tabula.Option{tabula.WithRegistry(u.Registry)}, u.Options...)
	return tabula.New(u.Source, opts...).
		Identifier("users").
		Routes(tabula.Routes{
			Index:   tabula.Route{Name: "users.index"},
			Show:    tabula.Route{Name: "users.show"},
			Destroy: tabula.Route{Name: "users.destroy"},
		}).
		DisableRows(func(r tabula.Row) bool { return !isActive(r["active"]) }).
		DestroyConfirmationHTMLAttributes(func(r tabula.Row) map[string]string {
			return map[string]string{"data-confirm": fmt.Sprintf("Delete %s?", r.String("name"))}
		})
}

func (UsersTable) Columns(t *tabula.Table) {
	t.Column("name").Sortable(true, tabula.Asc).Searchable()
	t.Column("email").Searchable().LinkFunc(func(r tabula.Row, _ *tabula.Column) string {
		return "mailto:" + r.String("email")
	})
	t.Column("website").Link("").StringLimit(30)
	t.Column("bio").Markdown().StringLimit(60)
	t.Column("active").Sortable(false, tabula.Desc).Value(func(r tabula.Row, _ *tabula.Column) string {
		if isActive(r["active"]) {
			return "yes"
		}
		return "no"
	})
	t.Column("created_at").Title("Joined").Sortable(false, tabula.Desc).DateTimeFormat("02 Jan 2006")
}

func (UsersTable) ResultLines(t *tabula.Table) {
	t.Result().Title("Active on this page").HTML(func(rows []tabula.Row) string {
		n := 0
		for _, r := range rows {
			if isActive(r["active"]) {
				n++
			}
		}
		return fmt.Sprintf("<strong>%d</strong> / %d", n, len(rows))
	})
}

// isActive accepts PostgreSQL booleans and SQLite integers.
func isActive(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case int:
		return b != 0
	case string:
		return b == "1" || strings.EqualFold(b, "true")
	default:
		return false
	}
}

func userDetails(row tabula.Row) string {
	var b strings.Builder
	b.WriteString("<dl>")
	for _, key := range []string{"name", "email", "website", "bio", "created_at"} {
		fmt.Fprintf(&b, "<dt>%s</dt><dd>%s</dd>", key, html.EscapeString(row.String(key)))
	}
	b.WriteString("</dl>")
	return b.String()
}
