package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

// Handle is an open database. Pool is set for postgres only; SQL is always
// set and is what migrations and seeding run on.
type Handle struct {
	Driver string
	SQL    *sqlx.DB
	Pool   *pgxpool.Pool
}

// Open connects to the database selected by cfg.Driver.
func Open(ctx context.Context, cfg Config) (*Handle, error) {
	switch cfg.Driver {
	case DriverPostgres:
		pool, err := Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &Handle{Driver: DriverPostgres, SQL: FromPool(pool), Pool: pool}, nil
	case DriverSQLite, "":
		var db *sqlx.DB
		err := retry(ctx, cfg, func() error {
			var err error
			db, err = OpenSQLite(ctx, cfg.URL)
			return err
		})
		if err != nil {
			return nil, err
		}
		return &Handle{Driver: DriverSQLite, SQL: db}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// Close releases the handle's connections.
func (h *Handle) Close() error {
	if h.Pool != nil {
		h.Pool.Close()
		return nil
	}
	return h.SQL.Close()
}
