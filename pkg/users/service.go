package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jordanlanch/repcoach/pkg/auth"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// Service handles user accounts and their settings.
type Service struct {
	db  *database.Client
	now func() time.Time
}

// NewService creates a new user service.
func NewService(db *database.Client) *Service {
	return &Service{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

const userColumns = `id, email, name, password_hash, provider, provider_subject, settings, created_at, updated_at`

// Register creates a password account. Emails are unique, case-insensitively.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	email := normalizeEmail(req.Email)

	if _, err := s.GetByEmail(ctx, email); err == nil {
		return nil, domain.NewConflictError("email already registered")
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to hash password: %w", err))
	}

	now := s.now()
	u := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Provider:     models.ProviderPassword,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Authenticate checks email and password. Unknown emails and wrong
// passwords produce the same error.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	u, err := s.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewUnauthorizedError("invalid email or password")
		}
		return nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, domain.NewUnauthorizedError("invalid email or password")
	}
	return u, nil
}

// LoginWithIdentity finds the user for a verified third-party identity,
// creating one on first sign-in. An existing password account with the
// same verified email is linked to the identity.
func (s *Service) LoginWithIdentity(ctx context.Context, id *auth.Identity) (*models.User, error) {
	if !id.EmailVerified {
		return nil, domain.NewUnauthorizedError("email address is not verified")
	}

	u, err := s.GetByEmail(ctx, normalizeEmail(id.Email))
	switch {
	case err == nil:
		if u.ProviderSubject == "" {
			u.ProviderSubject = id.Subject
			u.UpdatedAt = s.now()
			_, err := s.db.Exec(ctx,
				`UPDATE users SET provider_subject = ?, updated_at = ? WHERE id = ?`,
				u.ProviderSubject, u.UpdatedAt, u.ID)
			if err != nil {
				return nil, domain.NewInternalError(fmt.Errorf("failed to link identity: %w", err))
			}
		} else if u.ProviderSubject != id.Subject {
			return nil, domain.NewUnauthorizedError("account is linked to a different identity")
		}
		return u, nil
	case !domain.IsNotFound(err):
		return nil, err
	}

	name := strings.TrimSpace(id.Name)
	if name == "" {
		name = strings.Split(id.Email, "@")[0]
	}
	now := s.now()
	u = &models.User{
		ID:              uuid.New().String(),
		Email:           normalizeEmail(id.Email),
		Name:            name,
		Provider:        id.Provider,
		ProviderSubject: id.Subject,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.insert(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Get returns a user by id.
func (s *Service) Get(ctx context.Context, id string) (*models.User, error) {
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return scanUser(row)
}

// GetByEmail returns a user by email.
func (s *Service) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := s.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, normalizeEmail(email))
	return scanUser(row)
}

// List returns all users ordered by creation.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	rows, err := s.db.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to list users: %w", err))
	}
	defer rows.Close()

	var out []models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *u)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return out, nil
}

// UpdateProfile changes the name and settings. Nil fields are left untouched.
func (s *Service) UpdateProfile(ctx context.Context, id string, req models.UpdateProfileRequest) (*models.User, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = strings.TrimSpace(*req.Name)
	}
	if req.Language != nil {
		u.Settings.Language = *req.Language
	}
	if req.Theme != nil {
		u.Settings.Theme = *req.Theme
	}
	u.UpdatedAt = s.now()

	settings, err := database.MarshalDoc(u.Settings)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	_, err = s.db.Exec(ctx,
		`UPDATE users SET name = ?, settings = ?, updated_at = ? WHERE id = ?`,
		u.Name, settings, u.UpdatedAt, u.ID)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to update user: %w", err))
	}
	return u, nil
}

func (s *Service) insert(ctx context.Context, u *models.User) error {
	settings, err := database.MarshalDoc(u.Settings)
	if err != nil {
		return domain.NewInternalError(err)
	}
	_, err = s.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Name, u.PasswordHash, u.Provider, u.ProviderSubject, settings, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to create user: %w", err))
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanUser(row scanner) (*models.User, error) {
	var (
		u        models.User
		settings string
	)
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.Provider, &u.ProviderSubject,
		&settings, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("user")
		}
		return nil, domain.NewInternalError(fmt.Errorf("failed to load user: %w", err))
	}
	if err := database.UnmarshalDoc(settings, &u.Settings); err != nil {
		return nil, domain.NewInternalError(err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	u.UpdatedAt = u.UpdatedAt.UTC()
	return &u, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
