// Command example serves a users table backed by SQLite or PostgreSQL.
//
//	go run ./example migrate
//	go run ./example seed --count 200
//	go run ./example serve --config example/tabula.yaml
package main

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/tabula/middlewares"
	"github.com/dmitrymomot/tabula/pkg/db"
	"github.com/dmitrymomot/tabula/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "example",
		Short:         "Demo server for tabula tables",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")

	// Each command loads config and opens the database the same way.
	withEnv := func(run func(ctx context.Context, cfg Config, h *db.Handle, log *slog.Logger, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				slog.Error("failed to load config", slog.String("error", err.Error()))
				return err
			}
			log := logger.NewWithConfig(cfg.Log, os.Stdout, middlewares.RequestIDExtractor())

			h, err := db.Open(cmd.Context(), cfg.Database)
			if err != nil {
				log.Error("failed to open database", slog.String("error", err.Error()))
				return err
			}
			defer func() { _ = h.Close() }()

			if err := run(cmd.Context(), cfg, h, log, args); err != nil {
				log.Error("command failed", slog.String("command", cmd.Name()), slog.String("error", err.Error()))
				return err
			}
			return nil
		}
	}

	var seedCount int
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert random users",
		RunE: withEnv(func(ctx context.Context, cfg Config, h *db.Handle, log *slog.Logger, _ []string) error {
			if err := migrate(ctx, cfg, h, log); err != nil {
				return err
			}
			n, err := seedUsers(ctx, h.SQL, seedCount)
			if err != nil {
				return err
			}
			log.InfoContext(ctx, "users seeded", slog.Int("count", n))
			return nil
		}),
	}
	seedCmd.Flags().IntVarP(&seedCount, "count", "n", 120, "number of users to insert")

	root.AddCommand(
		&cobra.Command{
			Use:   "migrate",
			Short: "Apply database migrations",
			RunE: withEnv(func(ctx context.Context, cfg Config, h *db.Handle, log *slog.Logger, _ []string) error {
				return migrate(ctx, cfg, h, log)
			}),
		},
		seedCmd,
		&cobra.Command{
			Use:   "serve",
			Short: "Start the HTTP server",
			RunE: withEnv(func(ctx context.Context, cfg Config, h *db.Handle, log *slog.Logger, _ []string) error {
				if err := migrate(ctx, cfg, h, log); err != nil {
					return err
				}
				return serve(ctx, cfg, h, log)
			}),
		},
	)

	return root
}

func migrate(ctx context.Context, cfg Config, h *db.Handle, log *slog.Logger) error {
	sub, err := fs.Sub(migrationFiles, "migrations")
	if err != nil {
		return err
	}
	return db.Migrate(ctx, h.SQL, sub, cfg.Database.MigrationsTable, log)
}
