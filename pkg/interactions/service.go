package interactions

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlanch/repcoach/pkg/customers"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/intelligence"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/schedules"
)

// Service handles recorded conversations and their next steps.
type Service struct {
	db    *database.Client
	coach *intelligence.Coach
	log   logger.Logger
	now   func() time.Time
}

// NewService creates a new interaction service.
func NewService(db *database.Client, coach *intelligence.Coach, log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		db:    db,
		coach: coach,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create analyzes a conversation (typed or recorded) and stores the result.
func (s *Service) Create(ctx context.Context, ownerID string, req models.CreateInteractionRequest, lang string) (*models.Interaction, error) {
	var customer *models.Customer
	if req.CustomerID != nil && *req.CustomerID != "" {
		c, err := s.activeCustomer(ctx, ownerID, *req.CustomerID)
		if err != nil {
			return nil, err
		}
		customer = c
	}

	input, err := s.coach.ResolveInput(ctx, req.Input, req.AudioBase64, req.AudioFormat)
	if err != nil {
		return nil, err
	}

	date := strings.TrimSpace(req.Date)
	if date == "" {
		date = s.now().Format("2006-01-02")
	}

	analysis, err := s.coach.AnalyzeInteraction(ctx, input, date, customer, lang)
	if err != nil {
		return nil, err
	}

	now := s.now()
	it := &models.Interaction{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		Date:            date,
		RawInput:        input,
		CustomerProfile: analysis.CustomerProfile,
		Intelligence:    analysis.Intelligence,
		Metrics:         analysis.Metrics,
		Suggestions:     analysis.Suggestions,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if customer != nil {
		it.CustomerID = &customer.ID
	}

	if err := Insert(ctx, s.db, it); err != nil {
		return nil, err
	}
	s.log.Info("interaction analyzed", "interaction_id", it.ID, "next_steps", len(it.Intelligence.NextSteps))
	return it, nil
}

// Get returns one interaction.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*models.Interaction, error) {
	return Load(ctx, s.db, ownerID, id)
}

// List returns the owner's interactions matching filter, newest first.
func (s *Service) List(ctx context.Context, ownerID string, filter models.InteractionFilter) ([]models.Interaction, error) {
	all, err := LoadAll(ctx, s.db, ownerID)
	if err != nil {
		return nil, err
	}
	if filter.CustomerID == "" && !filter.Unlinked {
		return all, nil
	}

	out := []models.Interaction{}
	for _, it := range all {
		switch {
		case filter.Unlinked && it.CustomerID != nil:
			continue
		case filter.CustomerID != "" && !it.LinkedTo(filter.CustomerID):
			continue
		}
		out = append(out, it)
	}
	return out, nil
}

// Update edits an interaction. Changing the customer link moves every
// schedule promoted from its next steps to the new customer.
func (s *Service) Update(ctx context.Context, ownerID, id string, req models.UpdateInteractionRequest) (*models.Interaction, error) {
	var out *models.Interaction
	err := s.db.WithTx(ctx, func(q database.Querier) error {
		it, err := Load(ctx, q, ownerID, id)
		if err != nil {
			return err
		}
		now := s.now()

		if req.Date != nil {
			it.Date = strings.TrimSpace(*req.Date)
		}
		if req.CustomerProfile != nil {
			it.CustomerProfile = *req.CustomerProfile
		}
		if req.Suggestions != nil {
			it.Suggestions = *req.Suggestions
		}
		if req.CurrentStage != nil {
			it.Intelligence.CurrentStage = strings.TrimSpace(*req.CurrentStage)
		}
		if req.CustomerID != nil {
			var to *string
			if *req.CustomerID != "" {
				c, err := customers.Load(ctx, q, ownerID, *req.CustomerID)
				if err != nil {
					return err
				}
				if c.InTrash() {
					return domain.NewValidationError("customer is in the trash")
				}
				to = &c.ID
			}
			if _, err := schedules.MigrateCustomer(ctx, q, ownerID, it.Intelligence.NextSteps, it.CustomerID, to, now); err != nil {
				return err
			}
			it.CustomerID = to
		}

		it.UpdatedAt = now
		if err := Save(ctx, q, it); err != nil {
			return err
		}
		out = it
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReplaceNextSteps swaps the next-step list. A step keeps its id only if
// the id belongs to a current step of this interaction and appears once,
// so schedules promoted from it stay linked. Any other step gets a fresh id.
func (s *Service) ReplaceNextSteps(ctx context.Context, ownerID, id string, steps []models.NextStep) (*models.Interaction, error) {
	it, err := Load(ctx, s.db, ownerID, id)
	if err != nil {
		return nil, err
	}

	current := make(map[string]bool, len(it.Intelligence.NextSteps))
	for _, step := range it.Intelligence.NextSteps {
		current[step.ID] = true
	}
	it.Intelligence.NextSteps = intelligence.AssignStepIDs(steps, current)
	it.UpdatedAt = s.now()
	if err := Save(ctx, s.db, it); err != nil {
		return nil, err
	}
	return it, nil
}

// PromoteStep turns one next step into a schedule, at most once.
// created is false when a linked schedule already existed.
func (s *Service) PromoteStep(ctx context.Context, ownerID, id, stepID string) (sched *models.Schedule, created bool, err error) {
	err = s.db.WithTx(ctx, func(q database.Querier) error {
		it, err := Load(ctx, q, ownerID, id)
		if err != nil {
			return err
		}

		var step *models.NextStep
		for i := range it.Intelligence.NextSteps {
			if it.Intelligence.NextSteps[i].ID == stepID {
				step = &it.Intelligence.NextSteps[i]
				break
			}
		}
		if step == nil {
			return domain.NewNotFoundError("next step")
		}

		sched, created, err = schedules.Promote(ctx, q, ownerID, it.CustomerID, *step, s.now())
		return err
	})
	if err != nil {
		return nil, false, err
	}
	return sched, created, nil
}

// Promote creates a customer from an unlinked interaction's profile, links
// the interaction to it and moves its schedules along.
func (s *Service) Promote(ctx context.Context, ownerID, id string) (*models.PromoteInteractionResponse, error) {
	var resp models.PromoteInteractionResponse
	err := s.db.WithTx(ctx, func(q database.Querier) error {
		it, err := Load(ctx, q, ownerID, id)
		if err != nil {
			return err
		}
		if it.CustomerID != nil {
			return domain.NewConflictError("interaction is already linked to a customer")
		}

		profile := it.CustomerProfile
		name := strings.TrimSpace(profile.Name)
		if name == "" {
			return domain.NewValidationError("interaction profile has no customer name")
		}

		now := s.now()
		c := &models.Customer{
			ID:        uuid.New().String(),
			OwnerID:   ownerID,
			Name:      name,
			Company:   strings.TrimSpace(profile.Company),
			Role:      strings.TrimSpace(profile.Role),
			Industry:  strings.TrimSpace(profile.Industry),
			Notes:     profile.Summary,
			Tags:      []string{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := customers.Insert(ctx, q, c); err != nil {
			return err
		}

		migrated, err := schedules.MigrateCustomer(ctx, q, ownerID, it.Intelligence.NextSteps, nil, &c.ID, now)
		if err != nil {
			return err
		}

		it.CustomerID = &c.ID
		it.UpdatedAt = now
		if err := Save(ctx, q, it); err != nil {
			return err
		}

		resp = models.PromoteInteractionResponse{Customer: c, Interaction: it, Migrated: migrated}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// Delete removes an interaction. Schedules promoted from it are kept.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := Load(ctx, s.db, ownerID, id); err != nil {
		return err
	}
	return Remove(ctx, s.db, id)
}

func (s *Service) activeCustomer(ctx context.Context, ownerID, id string) (*models.Customer, error) {
	c, err := customers.Load(ctx, s.db, ownerID, id)
	if err != nil {
		return nil, err
	}
	if c.InTrash() {
		return nil, domain.NewValidationError("customer is in the trash")
	}
	return c, nil
}
