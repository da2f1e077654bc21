package main

import (
	"context"
	"database/sql"
	root "exposure"
	"exposure/pkg/logger"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// schemaProvider returns a goose provider over the embedded SQL migrations.
func schemaProvider(db *sql.DB) (*goose.Provider, error) {
	migrations, err := fs.Sub(root.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations)
	if err != nil {
		return nil, fmt.Errorf("could not create goose provider: %w", err)
	}

	return provider, nil
}

func migrateSchema(ctx context.Context, db *sql.DB) error {
	provider, err := schemaProvider(db)
	if err != nil {
		return err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("could not apply schema migrations: %w", err)
	}
	for _, res := range results {
		logger.Info(ctx, "applied schema migration",
			zap.Int64("version", res.Source.Version),
			zap.String("path", res.Source.Path),
			zap.Duration("duration", res.Duration))
	}

	return nil
}

func migrateQueue(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return fmt.Errorf("could not create river queue migrator: %w", err)
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return fmt.Errorf("could not migrate river queue tables: %w", err)
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "applied river queue migration",
			zap.Int("version", v.Version),
			zap.Duration("duration", v.Duration))
	}

	return nil
}

func printStatus(ctx context.Context, cmd *cobra.Command, db *sql.DB) error {
	provider, err := schemaProvider(db)
	if err != nil {
		return err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return fmt.Errorf("could not read schema migration status: %w", err)
	}
	for _, s := range statuses {
		applied := "-"
		if !s.AppliedAt.IsZero() {
			applied = s.AppliedAt.UTC().Format("2006-01-02 15:04:05")
		}
		cmd.Printf("%-8d %-10s %-20s %s\n", s.Source.Version, s.State, applied, s.Source.Path)
	}

	return nil
}

// migrateCommand constructs the 'migrate' subcommand that applies the schema
// and River queue migrations, or prints the schema status with --status.
func migrateCommand(a *app) *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, a.cfg)
			defer closeStrg()

			db, ok := strg.DB.(*sql.DB)
			if !ok {
				return fmt.Errorf("unexpected database handle %T", strg.DB)
			}

			if status {
				return printStatus(ctx, cmd, db)
			}

			if err := migrateSchema(ctx, db); err != nil {
				logger.Error(ctx, "schema migration failed", zap.Error(err))

				return err
			}
			if err := migrateQueue(ctx, db); err != nil {
				logger.Error(ctx, "river queue migration failed", zap.Error(err))

				return err
			}
			logger.Info(ctx, "database is up to date")

			return nil
		},
	}
	cmd.Flags().BoolVar(&status, "status", false, "print applied and pending schema migrations")

	return cmd
}
