package source

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// Querier is the subset of pgxpool.Pool, pgx.Conn and pgx.Tx used by Pgx.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Pgx reads rows from a single PostgreSQL table through pgx.
type Pgx struct {
	db   Querier
	stmt statement
}

// NewPgx creates a source reading from table.
//
// Example:
//
//	pool, err := db.Connect(ctx, cfg)
//	users := source.NewPgx(pool, "users")
func NewPgx(db Querier, table string) *Pgx {
	return &Pgx{
		db:   db,
		stmt: statement{dialect: Postgres, table: table},
	}
}

// Name returns the table name.
func (p *Pgx) Name() string {
	return p.stmt.table
}

// Count returns the number of rows matching q.
func (p *Pgx) Count(ctx context.Context, q Query) (int, error) {
	query, args, err := p.stmt.countQuery(q)
	if err != nil {
		return 0, err
	}

	var n int64
	if err := p.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, errors.Join(ErrQueryFailed, err)
	}
	return int(n), nil
}

// Rows returns the page of rows matching q.
func (p *Pgx) Rows(ctx context.Context, q Query) ([]Row, error) {
	query, args, err := p.stmt.selectQuery(q)
	if err != nil {
		return nil, err
	}

	rows, err := p.db.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	maps, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, errors.Join(ErrQueryFailed, err)
	}

	result := make([]Row, len(maps))
	for i, m := range maps {
		result[i] = Row(m)
	}
	return result, nil
}

var _ Source = (*Pgx)(nil)
