package source

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Direction is a sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection parses a user supplied direction.
// It is case-insensitive and reports false for anything but asc or desc.
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Asc):
		return Asc, true
	case string(Desc):
		return Desc, true
	default:
		return "", false
	}
}

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Desc {
		return Asc
	}
	return Desc
}

// Row is a single record keyed by column name.
type Row map[string]any

// Value returns the value stored under key.
// Qualified keys ("users.name") fall back to their last segment ("name")
// because drivers report column names without the table prefix.
func (r Row) Value(key string) (any, bool) {
	if v, ok := r[key]; ok {
		return v, true
	}
	if i := strings.LastIndexByte(key, '.'); i >= 0 {
		v, ok := r[key[i+1:]]
		return v, ok
	}
	return nil, false
}

// String returns the value stored under key formatted for display.
// Missing and nil values return an empty string.
func (r Row) String(key string) string {
	v, _ := r.Value(key)
	return FormatValue(v)
}

// FormatValue converts a driver value to its display form.
// Raw uuid bytes print in canonical form; other driver.Valuer types
// (pgtype.Numeric, sql.NullString...) print their driver value.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case time.Time:
		if val.IsZero() {
			return ""
		}
		return val.Format(time.RFC3339)
	case *time.Time:
		if val == nil || val.IsZero() {
			return ""
		}
		return val.Format(time.RFC3339)
	case [16]byte:
		return uuid.UUID(val).String()
	case fmt.Stringer:
		return val.String()
	case driver.Valuer:
		dv, err := val.Value()
		if err != nil {
			return fmt.Sprint(val)
		}
		if _, nested := dv.(driver.Valuer); nested {
			return fmt.Sprint(dv)
		}
		return FormatValue(dv)
	default:
		return fmt.Sprint(val)
	}
}

// Query describes the slice of data a table wants to display.
type Query struct {
	Scope *Scope

	// Search is matched against every field in SearchFields.
	Search       string
	SearchFields []string

	SortField string
	SortDir   Direction

	// KeyField breaks ties after SortField, ascending. SQL sources order by
	// it alone when SortField is empty so pages never overlap.
	KeyField string

	// Limit of zero means no limit.
	Limit  int
	Offset int
}

// Source provides rows for a table.
type Source interface {
	// Count returns the number of rows matching the query, ignoring Limit and Offset.
	Count(ctx context.Context, q Query) (int, error)

	// Rows returns the rows matching the query, sorted and paginated.
	Rows(ctx context.Context, q Query) ([]Row, error)
}

// Namer is implemented by sources that can describe what they read from.
// The name is used for cache keys, metrics labels and logs.
type Namer interface {
	Name() string
}

// NameOf returns the source name, or "unknown" when the source does not implement Namer.
func NameOf(src Source) string {
	if n, ok := src.(Namer); ok {
		return n.Name()
	}
	return "unknown"
}
