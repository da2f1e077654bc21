package main

import (
	"context"
	"exposure/internal/breach"
	"exposure/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func breachCheckCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breach-check <userID>",
		Short: "Runs a breach check for a stored user and prints the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			userID, err := breach.ParseUserID(args[0])
			if err != nil {
				return err
			}

			pgsql, closeStrg := getPostgres(ctx, a.cfg)
			defer closeStrg()

			report, err := newBreachService(a.cfg, pgsql).RunBreachCheck(ctx, userID)
			if err != nil {
				logger.Error(ctx, "breach check failed", zap.Error(err))

				return err
			}

			return printJSON(cmd, report)
		},
	}

	return cmd
}
