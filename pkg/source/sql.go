package source

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
)

// SQL reads rows from a single table through database/sql.
type SQL struct {
	db   *sqlx.DB
	stmt statement
}

// NewSQL creates a source reading from table.
// The dialect selects placeholder style and LIKE operator; it must match the driver behind db.
//
// Example:
//
//	db := sqlx.MustOpen("sqlite", "file:app.db")
//	users := source.NewSQL(db, "users", source.SQLite)
func NewSQL(db *sqlx.DB, table string, dialect Dialect) *SQL {
	return &SQL{
		db:   db,
		stmt: statement{dialect: dialect, table: table},
	}
}

// Name returns the table name.
func (s *SQL) Name() string {
	return s.stmt.table
}

// Count returns the number of rows matching q.
func (s *SQL) Count(ctx context.Context, q Query) (int, error) {
	query, args, err := s.stmt.countQuery(q)
	if err != nil {
		return 0, err
	}

	var n int
	if err := s.db.GetContext(ctx, &n, query, args...); err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}
	return n, nil
}

// Rows returns the page of rows matching q.
func (s *SQL) Rows(ctx context.Context, q Query) ([]Row, error) {
	query, args, err := s.stmt.selectQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}
	defer rows.Close()

	result := make([]Row, 0, max(q.Limit, 0))
	for rows.Next() {
		m := make(map[string]any)
		if err := rows.MapScan(m); err != nil {
			return nil, errors.Join(ErrQueryFailed, err)
		}
		result = append(result, normalizeRow(m))
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	return result, nil
}

// normalizeRow converts driver byte slices to strings so templates print text.
func normalizeRow(m map[string]any) Row {
	for k, v := range m {
		if b, ok := v.([]byte); ok {
			m[k] = string(b)
		}
	}
	return Row(m)
}

var _ Source = (*SQL)(nil)
