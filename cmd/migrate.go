package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
	"github.com/riverqueue/river/riverdriver/riverdatabasesql"
	"github.com/riverqueue/river/rivermigrate"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wcagrep"
	"wcagrep/internal/config"
	"wcagrep/pkg/logger"
)

func schemaProvider(db *sql.DB) (*goose.Provider, error) {
	fsys, err := fs.Sub(wcagrep.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded migrations: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		return nil, fmt.Errorf("could not create goose provider: %w", err)
	}

	return provider, nil
}

// migrateCommand brings the application schema and then river's tables up to
// date. With --status it only lists the application migrations.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			statusOnly, _ := cmd.Flags().GetBool("status")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()
			db := strg.DB.(*sql.DB) //nolint: forcetypeassert

			provider, err := schemaProvider(db)
			if err != nil {
				logger.Fatal(ctx, "could not load migrations", zap.Error(err))
			}

			if statusOnly {
				statuses, err := provider.Status(ctx)
				if err != nil {
					logger.Fatal(ctx, "could not read migration status", zap.Error(err))
				}
				for _, s := range statuses {
					logger.Info(ctx, "migration",
						zap.Int64("version", s.Source.Version),
						zap.String("file", s.Source.Path),
						zap.String("state", string(s.State)),
						zap.Time("appliedAt", s.AppliedAt))
				}

				return
			}

			results, err := provider.Up(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not migrate schema", zap.Error(err))
			}
			for _, r := range results {
				logger.Info(ctx, "applied migration",
					zap.String("file", r.Source.Path),
					zap.Duration("took", r.Duration))
			}

			migrator, err := rivermigrate.New(riverdatabasesql.New(db), nil)
			if err != nil {
				logger.Fatal(ctx, "could not create river migrator", zap.Error(err))
			}
			res, err := migrator.Migrate(ctx, rivermigrate.DirectionUp, nil)
			if err != nil {
				logger.Fatal(ctx, "could not migrate river tables", zap.Error(err))
			}

			logger.Info(ctx, "database migrated",
				zap.Int("schemaMigrations", len(results)),
				zap.Int("riverMigrations", len(res.Versions)))
		},
	}

	cmd.Flags().Bool("status", false, "list schema migrations instead of applying them")

	return cmd
}
