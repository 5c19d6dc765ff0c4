package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jordanlanch/repcoach/pkg/logger"
)

// Specs are the cron expressions of the scheduled jobs
type Specs struct {
	TrashPurge string
	Digest     string
}

// CronManager manages scheduled jobs
type CronManager struct {
	cron   *cron.Cron
	runner *Runner
	specs  Specs
	logger logger.Logger
}

// NewCronManager creates a new cron manager. Expressions are evaluated in
// the runner's location.
func NewCronManager(runner *Runner, specs Specs, log logger.Logger) *CronManager {
	if log == nil {
		log = logger.Default()
	}
	loc := runner.Location
	if loc == nil {
		loc = time.UTC
	}

	return &CronManager{
		cron:   cron.New(cron.WithLocation(loc)),
		runner: runner,
		specs:  specs,
		logger: log,
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs() error {
	_, err := cm.cron.AddFunc(cm.specs.TrashPurge, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if _, err := cm.runner.PurgeTrash(ctx); err != nil {
			cm.logger.Error("trash purge job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	_, err = cm.cron.AddFunc(cm.specs.Digest, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()

		if _, err := cm.runner.SendDigests(ctx); err != nil {
			cm.logger.Error("digest job failed", "error", err)
		}
	})
	if err != nil {
		return err
	}

	cm.logger.Info("cron jobs configured", "trash_purge", cm.specs.TrashPurge, "digest", cm.specs.Digest)
	return nil
}

// Entries returns the number of registered jobs
func (cm *CronManager) Entries() int {
	return len(cm.cron.Entries())
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.logger.Info("starting cron scheduler")
	cm.cron.Start()
}

// Stop stops the scheduler and returns a context that is done once running
// jobs finish.
func (cm *CronManager) Stop() context.Context {
	cm.logger.Info("stopping cron scheduler")
	return cm.cron.Stop()
}
