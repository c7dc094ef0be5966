package main

import (
	"context"
	"database/sql"
	root "discovery"
	"discovery/internal/config"
	"discovery/pkg/logger"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateApp applies the catalog, engagement and suggestion schema.
func migrateApp(ctx context.Context, db *sql.DB, down bool) error {
	goose.SetBaseFS(root.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err //nolint: wrapcheck
	}

	if down {
		return goose.DownContext(ctx, db, "migrations") //nolint: wrapcheck
	}

	return goose.UpContext(ctx, db, "migrations") //nolint: wrapcheck
}

// migrateRiver brings the job queue tables to the latest version. It is a
// no-op when they are already current.
func migrateRiver(ctx context.Context, db *sql.DB) error {
	migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
	if err != nil {
		return err //nolint: wrapcheck
	}

	res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
	if err != nil {
		return err //nolint: wrapcheck
	}
	for _, v := range res.Versions {
		logger.Info(ctx, "applied river migration", zap.Int("version", v.Version), zap.String("name", v.Name))
	}

	return nil
}

// migrateCommand constructs the 'migrate' subcommand. With --down it rolls
// back the most recent application migration and leaves the job queue alone.
func migrateCommand(cfg *config.Config) *cobra.Command {
	var down bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB)

			if err := migrateApp(ctx, db, down); err != nil {
				logger.Fatal(ctx, "could not migrate application tables", zap.Error(err))
			}
			if down {
				return
			}

			if err := migrateRiver(ctx, db); err != nil {
				logger.Fatal(ctx, "could not migrate river queue tables", zap.Error(err))
			}
		},
	}
	cmd.Flags().BoolVar(&down, "down", false, "Roll back the latest application migration")

	return cmd
}
