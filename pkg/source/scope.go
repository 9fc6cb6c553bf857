package source

import (
	"fmt"
	"strings"
)

type condition struct {
	sql  string
	args []any
}

// Scope narrows the rows a source exposes.
// Where clauses use "?" placeholders regardless of the database dialect.
type Scope struct {
	selects []string
	joins   []string
	wheres  []condition
	filters []func(Row) bool
}

// NewScope returns an empty scope.
func NewScope() *Scope {
	return &Scope{}
}

// Select replaces the default "<table>.*" projection.
func (s *Scope) Select(columns ...string) *Scope {
	s.selects = append(s.selects, columns...)
	return s
}

// Join adds a raw join clause.
func (s *Scope) Join(clause string) *Scope {
	if clause = strings.TrimSpace(clause); clause != "" {
		s.joins = append(s.joins, clause)
	}
	return s
}

// Where adds a condition combined with AND.
func (s *Scope) Where(sql string, args ...any) *Scope {
	if sql = strings.TrimSpace(sql); sql != "" {
		s.wheres = append(s.wheres, condition{sql: sql, args: args})
	}
	return s
}

// Filter adds an in-memory predicate. Only the memory source supports it.
func (s *Scope) Filter(fn func(Row) bool) *Scope {
	if fn != nil {
		s.filters = append(s.filters, fn)
	}
	return s
}

// HasSQL reports whether the scope carries SQL fragments.
func (s *Scope) HasSQL() bool {
	return s != nil && (len(s.selects) > 0 || len(s.joins) > 0 || len(s.wheres) > 0)
}

// HasFilters reports whether the scope carries in-memory predicates.
func (s *Scope) HasFilters() bool {
	return s != nil && len(s.filters) > 0
}

// Key returns a stable description of the SQL part of the scope.
// Predicates cannot be described, so callers must not cache on the key of a
// scope for which HasFilters is true.
func (s *Scope) Key() string {
	if s == nil {
		return ""
	}
	var b strings.Builder
	for _, sel := range s.selects {
		b.WriteString("s:" + sel + ";")
	}
	for _, j := range s.joins {
		b.WriteString("j:" + j + ";")
	}
	for _, w := range s.wheres {
		fmt.Fprintf(&b, "w:%s%v;", w.sql, w.args)
	}
	return b.String()
}
