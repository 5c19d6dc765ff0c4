package courseplans

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/intelligence"
	"github.com/jordanlanch/repcoach/pkg/interactions"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// Service handles course plans. Each customer has at most one plan.
type Service struct {
	db    *database.Client
	coach *intelligence.Coach
	now   func() time.Time
}

// NewService creates a new course plan service.
func NewService(db *database.Client, coach *intelligence.Coach) *Service {
	return &Service{
		db:    db,
		coach: coach,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create stores a plan for a customer, replacing the previous plan in the
// same transaction.
func (s *Service) Create(ctx context.Context, ownerID string, req models.CreateCoursePlanRequest) (*models.CoursePlan, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, domain.NewValidationError("title is required")
	}

	now := s.now()
	plan := &models.CoursePlan{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		CustomerID: req.CustomerID,
		Title:      title,
		Objective:  req.Objective,
		Modules:    nonNilModules(req.Modules),
		Resources:  nonNilStrings(req.Resources),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.db.WithTx(ctx, func(q database.Querier) error {
		c, err := customers.Load(ctx, q, ownerID, req.CustomerID)
		if err != nil {
			return err
		}
		if c.InTrash() {
			return domain.NewValidationError("customer is in the trash")
		}

		if _, err := q.Exec(ctx, `DELETE FROM course_plans WHERE owner_id = ? AND customer_id = ?`, ownerID, req.CustomerID); err != nil {
			return domain.NewInternalError(fmt.Errorf("failed to supersede course plan: %w", err))
		}

		data, err := database.MarshalDoc(plan)
		if err != nil {
			return domain.NewInternalError(err)
		}
		_, err = q.Exec(ctx,
			`INSERT INTO course_plans (id, owner_id, customer_id, data, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
			plan.ID, plan.OwnerID, plan.CustomerID, data, plan.CreatedAt, plan.UpdatedAt)
		if err != nil {
			return domain.NewInternalError(fmt.Errorf("failed to create course plan: %w", err))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return plan, nil
}

// Generate drafts a plan with the AI from the customer and its
// conversations, then stores it like Create.
func (s *Service) Generate(ctx context.Context, ownerID, customerID, lang string) (*models.CoursePlan, error) {
	c, err := customers.Load(ctx, s.db, ownerID, customerID)
	if err != nil {
		return nil, err
	}
	if c.InTrash() {
		return nil, domain.NewValidationError("customer is in the trash")
	}

	all, err := interactions.LoadAll(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	var history []models.Interaction
	for _, it := range all {
		if it.LinkedTo(customerID) {
			history = append(history, it)
		}
	}

	draft, err := s.coach.GenerateCoursePlan(ctx, c, history, lang)
	if err != nil {
		return nil, err
	}

	return s.Create(ctx, ownerID, models.CreateCoursePlanRequest{
		CustomerID: customerID,
		Title:      draft.Title,
		Objective:  draft.Objective,
		Modules:    draft.Modules,
		Resources:  draft.Resources,
	})
}

// Get returns one plan.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*models.CoursePlan, error) {
	var data string
	err := s.db.QueryRow(ctx, `SELECT data FROM course_plans WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("course plan")
		}
		return nil, domain.NewInternalError(fmt.Errorf("failed to load course plan: %w", err))
	}

	var plan models.CoursePlan
	if err := database.UnmarshalDoc(data, &plan); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if plan.OwnerID != ownerID {
		return nil, domain.NewForbiddenError("course plan belongs to another user")
	}
	return &plan, nil
}

// List returns the owner's plans, optionally for one customer.
func (s *Service) List(ctx context.Context, ownerID, customerID string) ([]models.CoursePlan, error) {
	query := `SELECT data FROM course_plans WHERE owner_id = ? ORDER BY created_at DESC`
	args := []any{ownerID}
	if customerID != "" {
		query = `SELECT data FROM course_plans WHERE owner_id = ? AND customer_id = ? ORDER BY created_at DESC`
		args = append(args, customerID)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to list course plans: %w", err))
	}
	defer rows.Close()

	out := []models.CoursePlan{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, domain.NewInternalError(err)
		}
		var plan models.CoursePlan
		if err := database.UnmarshalDoc(data, &plan); err != nil {
			return nil, domain.NewInternalError(err)
		}
		out = append(out, plan)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return out, nil
}

// Update applies a partial update.
func (s *Service) Update(ctx context.Context, ownerID, id string, req models.UpdateCoursePlanRequest) (*models.CoursePlan, error) {
	plan, err := s.Get(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, domain.NewValidationError("title cannot be empty")
		}
		plan.Title = title
	}
	if req.Objective != nil {
		plan.Objective = *req.Objective
	}
	if req.Modules != nil {
		plan.Modules = nonNilModules(*req.Modules)
	}
	if req.Resources != nil {
		plan.Resources = nonNilStrings(*req.Resources)
	}
	plan.UpdatedAt = s.now()

	data, err := database.MarshalDoc(plan)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	if _, err := s.db.Exec(ctx, `UPDATE course_plans SET data = ?, updated_at = ? WHERE id = ?`, data, plan.UpdatedAt, plan.ID); err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to update course plan: %w", err))
	}
	return plan, nil
}

// Delete removes a plan.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := s.Get(ctx, ownerID, id); err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, `DELETE FROM course_plans WHERE id = ?`, id); err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to delete course plan: %w", err))
	}
	return nil
}

func nonNilModules(m []models.CourseModule) []models.CourseModule {
	if m == nil {
		return []models.CourseModule{}
	}
	for i := range m {
		if m[i].Topics == nil {
			m[i].Topics = []string{}
		}
	}
	return m
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
