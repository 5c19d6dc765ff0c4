package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordanlanch/repcoach/config"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/logger"
)

type rootOptions struct {
	databaseURL string
	logLevel    string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "repcoachctl",
		Short:         "Operational tasks for the RepCoach API",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.databaseURL, "database-url", "", "database URL (defaults to DATABASE_URL)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level")

	cmd.AddCommand(newDBCheckCmd(opts), newSeedCmd(opts), newTrashCmd(opts))
	return cmd
}

// load reads the environment configuration and applies flag overrides
func (o *rootOptions) load() (*config.Config, logger.Logger) {
	cfg := config.Load()
	if o.databaseURL != "" {
		cfg.DatabaseURL = o.databaseURL
	}
	return cfg, logger.New(o.logLevel, "text")
}

// connect opens the database and makes sure the schema exists
func (o *rootOptions) connect(ctx context.Context) (*database.Client, *config.Config, logger.Logger, error) {
	cfg, log := o.load()
	db, err := database.NewClient(ctx, cfg.DatabaseURL, database.Options{
		ConnectTimeout: time.Duration(cfg.DBConnectRetrySeconds) * time.Second,
		Bootstrap:      true,
		Logger:         log,
	})
	if err != nil {
		return nil, nil, nil, err
	}
	return db, cfg, log, nil
}
