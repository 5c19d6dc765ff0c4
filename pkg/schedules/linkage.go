package schedules

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// FindLinked returns the index of the schedule created from step, or -1.
//
// Precedence:
//  1. a schedule whose PlanID equals step.ID;
//  2. legacy: a schedule with no PlanID, the same customer and
//     Title == step.Action.
//
// Tier 2 exists for schedules promoted before next steps carried ids.
// TODO: drop the legacy tier once every stored schedule has a plan_id
// (backfilled by Promote and MigrateCustomer on touch).
func FindLinked(schedules []models.Schedule, customerID *string, step models.NextStep) int {
	if step.ID != "" {
		for i := range schedules {
			if schedules[i].PlanID == step.ID {
				return i
			}
		}
	}
	for i := range schedules {
		s := &schedules[i]
		if s.PlanID == "" && sameCustomer(s.CustomerID, customerID) && s.Title == step.Action {
			return i
		}
	}
	return -1
}

// Promote creates the schedule for a next step unless one is already
// linked. An existing link is returned unchanged, except that a legacy
// match gets its PlanID backfilled. created reports whether a new
// schedule was inserted.
func Promote(ctx context.Context, q database.Querier, ownerID string, customerID *string, step models.NextStep, now time.Time) (s *models.Schedule, created bool, err error) {
	existing, err := LoadAll(ctx, q, ownerID)
	if err != nil {
		return nil, false, err
	}

	if i := FindLinked(existing, customerID, step); i >= 0 {
		s := existing[i]
		if s.PlanID == "" && step.ID != "" {
			s.PlanID = step.ID
			s.UpdatedAt = now
			if err := Save(ctx, q, &s); err != nil {
				return nil, false, err
			}
		}
		return &s, false, nil
	}

	date := step.DueDate
	if _, err := time.Parse("2006-01-02", date); err != nil {
		date = now.Format("2006-01-02")
	}

	s = &models.Schedule{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Title:      step.Action,
		Date:       date,
		CustomerID: copyRef(customerID),
		PlanID:     step.ID,
		Status:     models.ScheduleStatusPending,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := Insert(ctx, q, s); err != nil {
		return nil, false, err
	}
	return s, true, nil
}

// MigrateCustomer moves every schedule linked to one of steps from the
// old customer to the new one (nil unlinks). Legacy matches are resolved
// against the old customer and backfilled with the step id. It returns
// the number of schedules changed.
func MigrateCustomer(ctx context.Context, q database.Querier, ownerID string, steps []models.NextStep, from, to *string, now time.Time) (int, error) {
	if sameCustomer(from, to) || len(steps) == 0 {
		return 0, nil
	}

	existing, err := LoadAll(ctx, q, ownerID)
	if err != nil {
		return 0, err
	}

	migrated := 0
	for _, step := range steps {
		i := FindLinked(existing, from, step)
		if i < 0 {
			continue
		}
		s := &existing[i]
		s.CustomerID = copyRef(to)
		if s.PlanID == "" {
			s.PlanID = step.ID
		}
		s.UpdatedAt = now
		if err := Save(ctx, q, s); err != nil {
			return migrated, err
		}
		migrated++
	}
	return migrated, nil
}

func sameCustomer(a, b *string) bool {
	av, bv := "", ""
	if a != nil {
		av = *a
	}
	if b != nil {
		bv = *b
	}
	return av == bv
}

func copyRef(p *string) *string {
	if p == nil || *p == "" {
		return nil
	}
	v := *p
	return &v
}
