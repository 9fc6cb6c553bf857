// Package db opens the databases behind SQL table sources and applies their
// migrations.
//
// Two drivers are supported. "postgres" connects a pgx pool, usable directly
// by source.NewPgx and through sqlx via FromPool. "sqlite" opens a file or
// in-memory database with the pure Go modernc driver:
//
//	h, err := db.Open(ctx, cfg.Database)
//	if err != nil {
//		return err
//	}
//	defer h.Close()
//
//	//go:embed migrations/*.sql
//	var migrations embed.FS
//
//	sub, _ := fs.Sub(migrations, "migrations")
//	err = db.Migrate(ctx, h.SQL, sub, cfg.Database.MigrationsTable, log)
//
// Connection attempts are retried RetryAttempts times with a growing delay.
// Errors wrap the package sentinels with errors.Join.
package db
