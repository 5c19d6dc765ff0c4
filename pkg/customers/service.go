package customers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/logger"
	"github.com/jordanlanch/repcoach/pkg/models"
	"github.com/jordanlanch/repcoach/pkg/phone"
)

// Service handles customer records and the trash.
type Service struct {
	db    *database.Client
	phone *phone.Normalizer
	log   logger.Logger
	now   func() time.Time
}

// NewService creates a new customer service.
func NewService(db *database.Client, phones *phone.Normalizer, log logger.Logger) *Service {
	if phones == nil {
		phones = phone.NewNormalizer(phone.DefaultRegion)
	}
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		db:    db,
		phone: phones,
		log:   log,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// Create adds a customer for ownerID.
func (s *Service) Create(ctx context.Context, ownerID string, req models.CreateCustomerRequest) (*models.Customer, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.NewValidationError("name is required")
	}

	now := s.now()
	c := &models.Customer{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      name,
		Company:   strings.TrimSpace(req.Company),
		Role:      strings.TrimSpace(req.Role),
		Industry:  strings.TrimSpace(req.Industry),
		Email:     strings.TrimSpace(req.Email),
		Wechat:    strings.TrimSpace(req.Wechat),
		Address:   strings.TrimSpace(req.Address),
		Notes:     req.Notes,
		Tags:      cleanTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.Phone, _ = s.phone.Normalize(req.Phone)

	if err := Insert(ctx, s.db, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get returns one customer, including trashed ones.
func (s *Service) Get(ctx context.Context, ownerID, id string) (*models.Customer, error) {
	return Load(ctx, s.db, ownerID, id)
}

// GetActive returns a customer that is not in the trash.
func (s *Service) GetActive(ctx context.Context, ownerID, id string) (*models.Customer, error) {
	c, err := Load(ctx, s.db, ownerID, id)
	if err != nil {
		return nil, err
	}
	if c.InTrash() {
		return nil, domain.NewNotFoundError("customer")
	}
	return c, nil
}

// List returns active customers, or the trash when filter.Deleted is set.
// filter.Query matches name or company, ignoring case and width.
func (s *Service) List(ctx context.Context, ownerID string, filter models.CustomerFilter) ([]models.Customer, error) {
	all, err := LoadAll(ctx, s.db, ownerID, filter.Deleted)
	if err != nil {
		return nil, err
	}

	q := fold(filter.Query)
	if q == "" {
		return all, nil
	}
	out := []models.Customer{}
	for _, c := range all {
		if strings.Contains(fold(c.Name), q) || strings.Contains(fold(c.Company), q) {
			out = append(out, c)
		}
	}
	return out, nil
}

// FindByName resolves a spoken name among active customers. An exact match
// wins over a partial one; ambiguous partial matches resolve to nothing.
func (s *Service) FindByName(ctx context.Context, ownerID, name string) (*models.Customer, error) {
	target := fold(name)
	if target == "" {
		return nil, domain.NewNotFoundError("customer")
	}

	all, err := LoadAll(ctx, s.db, ownerID, false)
	if err != nil {
		return nil, err
	}

	var partial []models.Customer
	for i := range all {
		n := fold(all[i].Name)
		if n == target {
			return &all[i], nil
		}
		if strings.Contains(n, target) || strings.Contains(target, n) {
			partial = append(partial, all[i])
		}
	}
	if len(partial) == 1 {
		return &partial[0], nil
	}
	return nil, domain.NewNotFoundError("customer")
}

// Update applies a partial update. Trashed customers cannot be edited.
func (s *Service) Update(ctx context.Context, ownerID, id string, req models.UpdateCustomerRequest) (*models.Customer, error) {
	c, err := s.GetActive(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewValidationError("name cannot be empty")
		}
		c.Name = name
	}
	setTrimmed(&c.Company, req.Company)
	setTrimmed(&c.Role, req.Role)
	setTrimmed(&c.Industry, req.Industry)
	setTrimmed(&c.Email, req.Email)
	setTrimmed(&c.Wechat, req.Wechat)
	setTrimmed(&c.Address, req.Address)
	if req.Notes != nil {
		c.Notes = *req.Notes
	}
	if req.Phone != nil {
		c.Phone, _ = s.phone.Normalize(*req.Phone)
	}
	if req.Tags != nil {
		c.Tags = cleanTags(*req.Tags)
	}
	c.UpdatedAt = s.now()

	if err := Save(ctx, s.db, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Delete moves a customer to the trash. Deleting a trashed customer is a no-op.
func (s *Service) Delete(ctx context.Context, ownerID, id string) (*models.Customer, error) {
	c, err := Load(ctx, s.db, ownerID, id)
	if err != nil {
		return nil, err
	}
	if c.InTrash() {
		return c, nil
	}

	now := s.now()
	c.DeletedAt = &now
	c.UpdatedAt = now
	if err := Save(ctx, s.db, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Restore takes a customer out of the trash.
func (s *Service) Restore(ctx context.Context, ownerID, id string) (*models.Customer, error) {
	c, err := Load(ctx, s.db, ownerID, id)
	if err != nil {
		return nil, err
	}
	if !c.InTrash() {
		return nil, domain.NewConflictError("customer is not in the trash")
	}

	c.DeletedAt = nil
	c.UpdatedAt = s.now()
	if err := Save(ctx, s.db, c); err != nil {
		return nil, err
	}
	return c, nil
}

// DeletePermanently removes a trashed customer for good. Its interactions
// and schedules are kept but unlinked; its course plan is deleted.
func (s *Service) DeletePermanently(ctx context.Context, ownerID, id string) error {
	return s.db.WithTx(ctx, func(q database.Querier) error {
		c, err := Load(ctx, q, ownerID, id)
		if err != nil {
			return err
		}
		if !c.InTrash() {
			return domain.NewConflictError("only customers in the trash can be deleted permanently")
		}
		return removeForever(ctx, q, c)
	})
}

// PurgeTrash permanently deletes every customer, of any owner, that was
// trashed before cutoff. It returns how many were removed.
func (s *Service) PurgeTrash(ctx context.Context, cutoff time.Time) (int, error) {
	var purged int
	err := s.db.WithTx(ctx, func(q database.Querier) error {
		trashed, err := queryDocs(ctx, q, `SELECT data FROM customers WHERE deleted_at IS NOT NULL`)
		if err != nil {
			return err
		}
		for i := range trashed {
			c := &trashed[i]
			if c.DeletedAt == nil || !c.DeletedAt.Before(cutoff) {
				continue
			}
			if err := removeForever(ctx, q, c); err != nil {
				return err
			}
			purged++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if purged > 0 {
		s.log.Info("purged trash", "customers", purged, "cutoff", cutoff.Format(time.RFC3339))
	}
	return purged, nil
}

// fold normalizes text for matching: NFKC folds full-width forms, then
// case is folded.
func fold(s string) string {
	return strings.ToLower(norm.NFKC.String(strings.TrimSpace(s)))
}

func setTrimmed(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}

func cleanTags(tags []string) []string {
	out := []string{}
	seen := map[string]bool{}
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
