package main

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/spf13/cobra"

	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/testdata"
	"github.com/jordanlanch/repcoach/pkg/users"
)

func newSeedCmd(opts *rootOptions) *cobra.Command {
	var (
		email           string
		password        string
		count           int
		maxInteractions int
		seed            int64
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Fill an account with fake customers, interactions and schedules",
		Long: `Generate realistic development data for one account. The account is
created with --password when it does not exist yet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 0 || maxInteractions < 0 {
				return fmt.Errorf("--customers and --interactions must not be negative")
			}

			ctx := cmd.Context()
			db, cfg, _, err := opts.connect(ctx)
			if err != nil {
				return err
			}
			defer db.Close()

			userSvc := users.NewService(db)
			u, err := userSvc.GetByEmail(ctx, email)
			if domain.IsNotFound(err) {
				if password == "" {
					password = gofakeit.Password(true, true, true, false, false, 14)
					fmt.Fprintf(cmd.OutOrStdout(), "generated password: %s\n", password)
				}
				u, err = userSvc.Register(ctx, models.RegisterRequest{
					Email:    email,
					Password: password,
					Name:     gofakeit.Name(),
				})
			}
			if err != nil {
				return fmt.Errorf("failed to resolve user %s: %w", email, err)
			}

			ds := testdata.Generate(testdata.GeneratorConfig{
				OwnerID:         u.ID,
				Customers:       count,
				MaxInteractions: maxInteractions,
				UnlinkedChance:  0.1,
				Today:           time.Now().In(cfg.Location()),
				Seed:            seed,
			})
			if err := testdata.Insert(ctx, db, ds); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "seeded %s: %d customers, %d interactions, %d schedules\n",
				u.Email, len(ds.Customers), len(ds.Interactions), len(ds.Schedules))
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account to seed (required)")
	cmd.Flags().StringVar(&password, "password", "", "password when the account is created")
	cmd.Flags().IntVar(&count, "customers", 20, "number of customers")
	cmd.Flags().IntVar(&maxInteractions, "interactions", 4, "maximum interactions per customer")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed, 0 for a random one")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}
