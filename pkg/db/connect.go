package db

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// Connect establishes a PostgreSQL connection pool, retrying while the
// database is unreachable.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	connConfig, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}
	if cfg.MaxConns > 0 {
		connConfig.MaxConns = cfg.MaxConns
	}
	connConfig.MinConns = cfg.MinConns
	if cfg.HealthCheckPeriod > 0 {
		connConfig.HealthCheckPeriod = cfg.HealthCheckPeriod
	}
	if cfg.MaxConnIdleTime > 0 {
		connConfig.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.MaxConnLifetime > 0 {
		connConfig.MaxConnLifetime = cfg.MaxConnLifetime
	}

	var pool *pgxpool.Pool
	err = retry(ctx, cfg, func() error {
		p, err := pgxpool.NewWithConfig(ctx, connConfig)
		if err != nil {
			return err
		}
		if err := p.Ping(ctx); err != nil {
			p.Close()
			return err
		}
		pool = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// OpenSQLite opens a SQLite database with the pure Go modernc driver.
// In-memory databases are limited to one connection so every query sees
// the same data.
func OpenSQLite(ctx context.Context, dsn string) (*sqlx.DB, error) {
	raw, err := sql.Open(DriverSQLite, dsn)
	if err != nil {
		return nil, errors.Join(ErrFailedToOpenDBConnection, err)
	}
	if isMemory(dsn) {
		raw.SetMaxOpenConns(1)
	}
	if err := raw.PingContext(ctx); err != nil {
		_ = raw.Close()
		return nil, errors.Join(ErrFailedToOpenDBConnection, err)
	}
	return sqlx.NewDb(raw, DriverSQLite), nil
}

// FromPool exposes a pgx pool through sqlx. The returned handle shares the
// pool's connections; closing the pool closes it.
func FromPool(pool *pgxpool.Pool) *sqlx.DB {
	return sqlx.NewDb(stdlib.OpenDBFromPool(pool), "pgx")
}

func retry(ctx context.Context, cfg Config, fn func() error) error {
	attempts := max(cfg.RetryAttempts, 1)

	var lastErr error
	for i := range attempts {
		if lastErr = fn(); lastErr == nil {
			return nil
		}
		if i == attempts-1 {
			break
		}

		t := time.NewTimer(time.Duration(i+1) * cfg.RetryInterval)
		select {
		case <-ctx.Done():
			t.Stop()
			return errors.Join(ErrFailedToOpenDBConnection, ctx.Err())
		case <-t.C:
		}
	}
	return errors.Join(ErrFailedToOpenDBConnection, lastErr)
}

func isMemory(dsn string) bool {
	return dsn == ":memory:" || strings.HasPrefix(dsn, "file::memory:") || strings.Contains(dsn, "mode=memory")
}
