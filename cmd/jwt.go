package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"wcagrep/internal/api/handler/v1handler"
	"wcagrep/internal/config"
	"wcagrep/pkg/domain"
	"wcagrep/pkg/logger"
)

// JWTCommand prints a bearer token for the dashboard operator. The token goes
// to stdout and the operator ID to stderr so the output can be piped.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Mints an operator bearer token",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()
			if cfg.JWT.PrivateKey == "" {
				logger.Fatal(ctx, "JWT_PRIVATE_KEY is not configured")
			}

			subject, _ := cmd.Flags().GetString("subject")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			operator := uuid.New()
			if subject != "" {
				id, err := uuid.Parse(subject)
				if err != nil {
					logger.Fatal(ctx, "subject must be a UUID", zap.String("subject", subject))
				}
				operator = id
			}

			token, err := v1handler.MintToken(cfg.JWT.PrivateKey, domain.OperatorID(operator), ttl, time.Now())
			if err != nil {
				logger.Fatal(ctx, "could not mint token", zap.Error(err))
			}

			fmt.Fprintln(os.Stderr, "operator:", operator) //nolint: forbidigo
			fmt.Println(token)                              //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "operator UUID; a new one is generated when empty")
	cmd.Flags().Duration("ttl", 24*time.Hour, "how long the token stays valid")

	return cmd
}
