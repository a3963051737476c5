package main

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wcagrep/internal/config"
	"wcagrep/internal/crm"
	"wcagrep/pkg/logger"
)

// seedCommand inserts the sample prospects into an empty database.
func seedCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Inserts sample prospects when the database is empty",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			n, err := crm.New(strg).Seed(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not seed database", zap.Error(err))
			}
			logger.Info(ctx, "seed finished", zap.Int("inserted", n))
		},
	}
}
