package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordanlanch/repcoach/pkg/database"
)

func newDBCheckCmd(opts *rootOptions) *cobra.Command {
	var timeout time.Duration
	cmd := &cobra.Command{
		Use:   "dbcheck",
		Short: "Check that the database is reachable",
		Long: `Connect to the configured database and ping it once, without retrying.
Exits 0 when the database answers and 1 otherwise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := opts.load()
			db, err := database.Open(cfg.DatabaseURL, database.Options{Logger: log})
			if err != nil {
				return fmt.Errorf("database check failed: %w", err)
			}
			defer db.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()
			if err := db.Ping(ctx); err != nil {
				return fmt.Errorf("database check failed: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "database OK (%s)\n", db.Driver())
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Second, "ping timeout")
	return cmd
}
