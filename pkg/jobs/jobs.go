package jobs

import (
	"context"
	"sort"
	"time"

	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/email"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/metrics"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/schedules"
	"github.com/jordanlanch/repcoach/pkg/slack"
	"github.com/jordanlanch/repcoach/pkg/users"
)

// Runner holds the work behind each scheduled job so it can also be
// triggered by hand.
type Runner struct {
	Customers     *customers.Service
	Schedules     *schedules.Service
	Users         *users.Service
	Email         *email.Service
	Slack         *slack.Service
	Metrics       *metrics.Metrics
	Log           logger.Logger
	Location      *time.Location
	RetentionDays int

	now func() time.Time
}

func (r *Runner) clock() time.Time {
	if r.now != nil {
		return r.now()
	}
	return time.Now()
}

func (r *Runner) logger() logger.Logger {
	if r.Log == nil {
		return logger.Default()
	}
	return r.Log
}

// PurgeTrash permanently deletes customers that have been in the trash for
// longer than RetentionDays.
func (r *Runner) PurgeTrash(ctx context.Context) (int, error) {
	cutoff := r.clock().UTC().AddDate(0, 0, -r.RetentionDays)
	n, err := r.Customers.PurgeTrash(ctx, cutoff)
	if err != nil {
		return n, err
	}
	r.Metrics.RecordTrashPurged(n)
	r.logger().Info("trash purged", "customers", n, "cutoff", cutoff.Format(time.RFC3339))
	return n, nil
}

// SendDigests reminds every user with pending schedules today. A failure for
// one user is logged and does not stop the others. It returns how many users
// were notified.
func (r *Runner) SendDigests(ctx context.Context) (int, error) {
	loc := r.Location
	if loc == nil {
		loc = time.UTC
	}
	today := r.clock().In(loc)
	date := today.Format("2006-01-02")

	pending, err := r.Schedules.PendingOn(ctx, today)
	if err != nil {
		return 0, err
	}

	byOwner := make(map[string][]models.Schedule)
	for _, s := range pending {
		byOwner[s.OwnerID] = append(byOwner[s.OwnerID], s)
	}
	owners := make([]string, 0, len(byOwner))
	for owner := range byOwner {
		owners = append(owners, owner)
	}
	sort.Strings(owners)

	log := r.logger()
	sent := 0
	for _, owner := range owners {
		user, err := r.Users.Get(ctx, owner)
		if err != nil {
			log.Warn("digest skipped, user not found", "user_id", owner, "error", err)
			continue
		}
		lines := r.digestLines(ctx, owner, byOwner[owner])

		if err := r.Email.SendFollowUpDigest(user.Email, user.Name, date, lines); err != nil {
			log.Error("digest email failed", "user_id", owner, "error", err)
			continue
		}
		if err := r.Slack.NotifyFollowUps(ctx, user.Name, date, lines); err != nil {
			log.Warn("digest slack message failed", "user_id", owner, "error", err)
		}
		sent++
	}

	log.Info("follow-up digests sent", "date", date, "users", sent)
	return sent, nil
}

func (r *Runner) digestLines(ctx context.Context, owner string, items []models.Schedule) []string {
	sort.SliceStable(items, func(i, j int) bool { return items[i].Time < items[j].Time })

	names := make(map[string]string)
	lines := make([]string, 0, len(items))
	for _, s := range items {
		var name string
		if s.CustomerID != nil {
			var ok bool
			if name, ok = names[*s.CustomerID]; !ok {
				if c, err := r.Customers.Get(ctx, owner, *s.CustomerID); err == nil {
					name = c.Name
				}
				names[*s.CustomerID] = name
			}
		}
		lines = append(lines, FollowUpLine(s, name))
	}
	return lines
}

// FollowUpLine renders one schedule as "[HH:MM ]title[ (customer)]".
func FollowUpLine(s models.Schedule, customerName string) string {
	line := s.Title
	if s.Time != "" {
		line = s.Time + " " + line
	}
	if customerName != "" {
		line += " (" + customerName + ")"
	}
	return line
}
