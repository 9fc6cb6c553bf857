package source

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Memory serves rows held in memory.
// The slice is never modified; sorting works on a copy.
type Memory struct {
	name string
	rows []Row
}

// NewMemory creates a source over rows.
func NewMemory(name string, rows []Row) *Memory {
	return &Memory{name: name, rows: rows}
}

// Name returns the name given at construction.
func (m *Memory) Name() string {
	return m.name
}

// Count returns the number of rows matching q.
func (m *Memory) Count(_ context.Context, q Query) (int, error) {
	rows, err := m.filter(q)
	if err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Rows returns the page of rows matching q.
func (m *Memory) Rows(_ context.Context, q Query) ([]Row, error) {
	rows, err := m.filter(q)
	if err != nil {
		return nil, err
	}

	if q.SortField != "" {
		dir := q.SortDir
		if dir == "" {
			dir = Asc
		}
		if dir != Asc && dir != Desc {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDirection, dir)
		}
		slices.SortStableFunc(rows, func(a, b Row) int {
			av, _ := a.Value(q.SortField)
			bv, _ := b.Value(q.SortField)
			c := compareValues(av, bv)
			if dir == Desc {
				return -c
			}
			return c
		})
	}

	offset := min(max(q.Offset, 0), len(rows))
	rows = rows[offset:]
	if q.Limit > 0 && q.Limit < len(rows) {
		rows = rows[:q.Limit]
	}
	return rows, nil
}

func (m *Memory) filter(q Query) ([]Row, error) {
	if q.Scope.HasSQL() {
		return nil, fmt.Errorf("%w: SQL fragments on in-memory source %q", ErrUnsupportedScope, m.name)
	}

	term := strings.ToLower(strings.TrimSpace(q.Search))
	result := make([]Row, 0, len(m.rows))

rows:
	for _, row := range m.rows {
		if q.Scope != nil {
			for _, fn := range q.Scope.filters {
				if !fn(row) {
					continue rows
				}
			}
		}
		if term != "" && len(q.SearchFields) > 0 && !matches(row, q.SearchFields, term) {
			continue
		}
		result = append(result, row)
	}
	return result, nil
}

func matches(row Row, fields []string, term string) bool {
	for _, field := range fields {
		if strings.Contains(strings.ToLower(row.String(field)), term) {
			return true
		}
	}
	return false
}

// compareValues orders nil first, then numbers, times and strings.
// Values of different kinds are compared by their display form.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	if af, ok := toFloat(a); ok {
		if bf, ok := toFloat(b); ok {
			return cmp.Compare(af, bf)
		}
	}
	if at, ok := a.(time.Time); ok {
		if bt, ok := b.(time.Time); ok {
			return at.Compare(bt)
		}
	}
	if ab, ok := a.(bool); ok {
		if bb, ok := b.(bool); ok {
			switch {
			case ab == bb:
				return 0
			case !ab:
				return -1
			default:
				return 1
			}
		}
	}
	return strings.Compare(strings.ToLower(FormatValue(a)), strings.ToLower(FormatValue(b)))
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

var _ Source = (*Memory)(nil)
