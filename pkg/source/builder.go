package source

import (
	"fmt"
	"strings"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// statement builds SELECT and COUNT queries for a single table.
type statement struct {
	dialect Dialect
	table   string
}

// selectQuery returns the paginated row query.
func (s statement) selectQuery(q Query) (string, []any, error) {
	from, args, err := s.from(q)
	if err != nil {
		return "", nil, err
	}

	projection := s.table + ".*"
	if q.Scope != nil && len(q.Scope.selects) > 0 {
		projection = strings.Join(q.Scope.selects, ", ")
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(projection)
	b.WriteString(from)

	order, err := s.orderBy(q)
	if err != nil {
		return "", nil, err
	}
	b.WriteString(order)

	if q.Limit > 0 {
		b.WriteString(" LIMIT ? OFFSET ?")
		args = append(args, q.Limit, max(q.Offset, 0))
	}

	return s.dialect.rebind(b.String()), args, nil
}

// orderBy renders the ORDER BY clause: the sort field, then the key field
// as a tiebreaker. An unqualified key is prefixed with the table when the
// scope joins other tables.
func (s statement) orderBy(q Query) (string, error) {
	var terms []string

	if q.SortField != "" {
		if err := ValidateIdentifier(q.SortField); err != nil {
			return "", err
		}
		dir := q.SortDir
		if dir == "" {
			dir = Asc
		}
		if dir != Asc && dir != Desc {
			return "", fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
		}
		terms = append(terms, q.SortField+" "+strings.ToUpper(string(dir)))
	}

	if key := q.KeyField; key != "" {
		if err := ValidateIdentifier(key); err != nil {
			return "", err
		}
		if !strings.Contains(key, ".") && q.Scope != nil && len(q.Scope.joins) > 0 {
			key = s.table + "." + key
		}
		if key != q.SortField {
			terms = append(terms, key+" ASC")
		}
	}

	if len(terms) == 0 {
		return "", nil
	}
	return " ORDER BY " + strings.Join(terms, ", "), nil
}

// countQuery returns the query counting every row matching q.
func (s statement) countQuery(q Query) (string, []any, error) {
	from, args, err := s.from(q)
	if err != nil {
		return "", nil, err
	}
	return s.dialect.rebind("SELECT COUNT(*)" + from), args, nil
}

// from renders the FROM, JOIN and WHERE clauses shared by both queries.
func (s statement) from(q Query) (string, []any, error) {
	if err := ValidateIdentifier(s.table); err != nil {
		return "", nil, err
	}
	if q.Scope.HasFilters() {
		return "", nil, fmt.Errorf("%w: in-memory filters on table %q", ErrUnsupportedScope, s.table)
	}

	var (
		b     strings.Builder
		args  []any
		conds []string
	)

	b.WriteString(" FROM ")
	b.WriteString(s.table)

	if q.Scope != nil {
		for _, j := range q.Scope.joins {
			b.WriteString(" ")
			b.WriteString(j)
		}
		for _, w := range q.Scope.wheres {
			conds = append(conds, "("+w.sql+")")
			args = append(args, w.args...)
		}
	}

	if term := strings.TrimSpace(q.Search); term != "" && len(q.SearchFields) > 0 {
		pattern := "%" + likeEscaper.Replace(term) + "%"
		parts := make([]string, 0, len(q.SearchFields))
		for _, field := range q.SearchFields {
			if err := ValidateIdentifier(field); err != nil {
				return "", nil, err
			}
			parts = append(parts, fmt.Sprintf(`CAST(%s AS TEXT) %s ? ESCAPE '\'`, field, s.dialect.like))
			args = append(args, pattern)
		}
		conds = append(conds, "("+strings.Join(parts, " OR ")+")")
	}

	if len(conds) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(conds, " AND "))
	}

	return b.String(), args, nil
}
