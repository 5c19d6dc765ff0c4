package schedules

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"

	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// Insert stores a new schedule document.
func Insert(ctx context.Context, q database.Querier, s *models.Schedule) error {
	data, err := database.MarshalDoc(s)
	if err != nil {
		return domain.NewInternalError(err)
	}
	_, err = q.Exec(ctx,
		`INSERT INTO schedules (id, owner_id, customer_id, plan_id, date, status, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.OwnerID, database.NullString(s.CustomerID), s.PlanID, s.Date, s.Status, data, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to create schedule: %w", err))
	}
	return nil
}

// Save overwrites an existing schedule document.
func Save(ctx context.Context, q database.Querier, s *models.Schedule) error {
	data, err := database.MarshalDoc(s)
	if err != nil {
		return domain.NewInternalError(err)
	}
	_, err = q.Exec(ctx,
		`UPDATE schedules SET customer_id = ?, plan_id = ?, date = ?, status = ?, data = ?, updated_at = ? WHERE id = ?`,
		database.NullString(s.CustomerID), s.PlanID, s.Date, s.Status, data, s.UpdatedAt, s.ID)
	if err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to update schedule: %w", err))
	}
	return nil
}

// Load returns one schedule of ownerID.
func Load(ctx context.Context, q database.Querier, ownerID, id string) (*models.Schedule, error) {
	var data string
	err := q.QueryRow(ctx, `SELECT data FROM schedules WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("schedule")
		}
		return nil, domain.NewInternalError(fmt.Errorf("failed to load schedule: %w", err))
	}

	var s models.Schedule
	if err := database.UnmarshalDoc(data, &s); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if s.OwnerID != ownerID {
		return nil, domain.NewForbiddenError("schedule belongs to another user")
	}
	return &s, nil
}

// LoadAll returns every schedule of ownerID ordered by date and time.
func LoadAll(ctx context.Context, q database.Querier, ownerID string) ([]models.Schedule, error) {
	return loadWhere(ctx, q, `owner_id = ?`, ownerID)
}

// LoadPendingOn returns pending schedules of every owner on date (YYYY-MM-DD).
func LoadPendingOn(ctx context.Context, q database.Querier, date string) ([]models.Schedule, error) {
	return loadWhere(ctx, q, `date = ? AND status = ?`, date, models.ScheduleStatusPending)
}

func loadWhere(ctx context.Context, q database.Querier, where string, args ...any) ([]models.Schedule, error) {
	rows, err := q.Query(ctx, `SELECT data FROM schedules WHERE `+where, args...)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to list schedules: %w", err))
	}
	defer rows.Close()

	out := []models.Schedule{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, domain.NewInternalError(err)
		}
		var s models.Schedule
		if err := database.UnmarshalDoc(data, &s); err != nil {
			return nil, domain.NewInternalError(err)
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError(err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Date != out[j].Date {
			return out[i].Date < out[j].Date
		}
		// untimed entries first within a day
		return out[i].Time < out[j].Time
	})
	return out, nil
}

// Remove deletes a schedule.
func Remove(ctx context.Context, q database.Querier, id string) error {
	if _, err := q.Exec(ctx, `DELETE FROM schedules WHERE id = ?`, id); err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to delete schedule: %w", err))
	}
	return nil
}
