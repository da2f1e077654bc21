package main

import (
	"context"
	"encoding/json"
	"exposure/pkg/logger"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

// scanCommand runs a single discovery without touching the database.
func scanCommand(a *app) *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "scan <domain>",
		Short: "Scans a domain once and prints the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			scanner := newScanner(ctx, a.cfg, nil)
			if detailed {
				report, err := scanner.Discover(ctx, args[0])
				if err != nil {
					logger.Error(ctx, "discovery failed", zap.Error(err))

					return err
				}

				return printJSON(cmd, report)
			}

			report, err := scanner.QuickScan(ctx, args[0])
			if err != nil {
				logger.Error(ctx, "scan failed", zap.Error(err))

				return err
			}

			return printJSON(cmd, report)
		},
	}
	cmd.SetOut(os.Stdout)
	cmd.Flags().BoolVar(&detailed, "detailed", false, "print every subdomain, endpoint and finding")

	return cmd
}
