// Package main is the wcagrep binary: the API server with its workers and the
// maintenance commands around it.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wcagrep/internal/config"
	"wcagrep/pkg/logger"
	"wcagrep/pkg/storage/postgres"
)

const defaultConfigPath = "config.yml"

func getPostgres(ctx context.Context, cfg *config.Config) (*postgres.PgSQL, func()) {
	db := cfg.Database
	pgsql, err := postgres.New(ctx, postgres.Options{
		URL:                db.URL,
		Username:           db.Username,
		Password:           db.Password,
		Host:               db.Host,
		Port:               db.Port,
		Database:           db.DatabaseName,
		SslMode:            db.SslMode,
		ConnMaxLifetime:    db.ConnMaxLifetime,
		ConnMaxIdleTime:    db.ConnMaxIdleTime,
		MaxOpenConnections: db.MaxOpenConnections,
		MaxIdleConnections: db.MaxIdleConnections,
		StatementTimeout:   db.StatementTimeout,
		Tracing:            db.Tracing,
	})
	if err != nil {
		logger.Fatal(ctx, "could not connect to postgres", zap.Error(err))
	}

	return pgsql, func() {
		if err := pgsql.Close(); err != nil {
			logger.Warn(ctx, "could not close postgres", zap.Error(err))
		}
	}
}

// loadConfig reads path. The default path may be absent, in which case the
// environment alone configures the service.
func loadConfig(path string, explicit bool) (*config.Config, error) {
	if !explicit {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			path = ""
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func main() {
	// filled before any subcommand runs
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:           "wcagrep",
		Short:         "WCAG prospecting, auditing and outreach service",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			flag := cmd.Flags().Lookup("config")
			loaded, err := loadConfig(flag.Value.String(), flag.Changed)
			if err != nil {
				return err
			}
			*cfg = *loaded
			logger.Setup(cfg.Environment, cfg.LogLevel)

			return nil
		},
	}
	rootCmd.PersistentFlags().StringP("config", "c", defaultConfigPath, "config file path")

	rootCmd.AddCommand(
		serveCommand(cfg),
		migrateCommand(cfg),
		seedCommand(cfg),
		JWTCommand(cfg),
	)

	ctx := context.Background()
	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := rootCmd.Execute()
	_ = logger.Get(ctx).Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err) //nolint: forbidigo
		os.Exit(1)                             //nolint: gocritic
	}
}
