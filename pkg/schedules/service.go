package schedules

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// Service handles follow-up schedules.
type Service struct {
	db  *database.Client
	now func() time.Time
}

// NewService creates a new schedule service.
func NewService(db *database.Client) *Service {
	return &Service{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

// Create adds a schedule. A referenced customer must be an active customer
// of the same owner.
func (s *Service) Create(ctx context.Context, ownerID string, req models.CreateScheduleRequest) (*models.Schedule, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.NewValidationError("title is required")
	}
	customerID, err := s.checkCustomer(ctx, ownerID, req.CustomerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sched := &models.Schedule{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		Title:      title,
		Date:       req.Date,
		Time:       req.Time,
		CustomerID: customerID,
		Status:     models.ScheduleStatusPending,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := Insert(ctx, s.db, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// Get returns one schedule.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*models.Schedule, error) {
	return Load(ctx, s.db, ownerID, id)
}

// List returns the owner's schedules matching filter, by date then time.
func (s *Service) List(ctx context.Context, ownerID string, filter models.ScheduleFilter) ([]models.Schedule, error) {
	all, err := LoadAll(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}

	out := []models.Schedule{}
	for _, sched := range all {
		if filter.CustomerID != "" && (sched.CustomerID == nil || *sched.CustomerID != filter.CustomerID) {
			continue
		}
		if filter.Status != "" && sched.Status != filter.Status {
			continue
		}
		if filter.Date != "" && sched.Date != filter.Date {
			continue
		}
		out = append(out, sched)
	}
	return out, nil
}

// Update applies a partial update. An empty CustomerID unlinks the customer.
func (s *Service) Update(ctx context.Context, ownerID, id string, req models.UpdateScheduleRequest) (*models.Schedule, error) {
	sched, err := Load(ctx, s.db, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, domain.NewValidationError("title cannot be empty")
		}
		sched.Title = title
	}
	if req.Date != nil {
		sched.Date = *req.Date
	}
	if req.Time != nil {
		sched.Time = *req.Time
	}
	if req.Status != nil {
		sched.Status = *req.Status
	}
	if req.Notes != nil {
		sched.Notes = *req.Notes
	}
	if req.CustomerID != nil {
		customerID, err := s.checkCustomer(ctx, ownerID, req.CustomerID)
		if err != nil {
			return nil, err
		}
		sched.CustomerID = customerID
	}
	sched.UpdatedAt = s.now()

	if err := Save(ctx, s.db, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// Toggle flips a schedule between pending and completed.
func (s *Service) Toggle(ctx context.Context, ownerID, id string) (*models.Schedule, error) {
	sched, err := Load(ctx, s.db, ownerID, id)
	if err != nil {
		return nil, err
	}

	if sched.Status == models.ScheduleStatusCompleted {
		sched.Status = models.ScheduleStatusPending
	} else {
		sched.Status = models.ScheduleStatusCompleted
	}
	sched.UpdatedAt = s.now()

	if err := Save(ctx, s.db, sched); err != nil {
		return nil, err
	}
	return sched, nil
}

// Delete removes a schedule.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := Load(ctx, s.db, ownerID, id); err != nil {
		return err
	}
	return Remove(ctx, s.db, id)
}

// PendingOn returns pending schedules of all owners on day, for reminders.
func (s *Service) PendingOn(ctx context.Context, day time.Time) ([]models.Schedule, error) {
	return LoadPendingOn(ctx, s.db, day.Format("2006-01-02"))
}

func (s *Service) checkCustomer(ctx context.Context, ownerID string, id *string) (*string, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	c, err := customers.Load(ctx, s.db, ownerID, *id)
	if err != nil {
		return nil, err
	}
	if c.InTrash() {
		return nil, domain.NewValidationError("customer is in the trash")
	}
	return &c.ID, nil
}
