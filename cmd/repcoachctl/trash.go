package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/jobs"
)

func newTrashCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "trash",
		Short: "Maintain the customer trash",
	}

	var days int
	purge := &cobra.Command{
		Use:   "purge",
		Short: "Permanently delete customers trashed longer than the retention period",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			db, cfg, log, err := opts.connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			if !cmd.Flags().Changed("days") {
				days = cfg.TrashRetentionDays
			}
			if days < 0 {
				return fmt.Errorf("--days must not be negative")
			}

			runner := &jobs.Runner{
				Customers:     customers.NewService(db, nil, log),
				Log:           log,
				RetentionDays: days,
			}
			n, err := runner.PurgeTrash(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %d customers trashed more than %d days ago\n", n, days)
			return nil
		},
	}
	purge.Flags().IntVar(&days, "days", 30, "retention in days (defaults to TRASH_RETENTION_DAYS)")
	cmd.AddCommand(purge)
	return cmd
}
