package customers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// Insert stores a new customer document.
func Insert(ctx context.Context, q database.Querier, c *models.Customer) error {
	data, err := database.MarshalDoc(c)
	if err != nil {
		return domain.NewInternalError(err)
	}
	_, err = q.Exec(ctx,
		`INSERT INTO customers (id, owner_id, name, company, data, created_at, updated_at, deleted_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		c.ID, c.OwnerID, c.Name, c.Company, data, c.CreatedAt, c.UpdatedAt, nullTime(c))
	if err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to create customer: %w", err))
	}
	return nil
}

// Save overwrites an existing customer document.
func Save(ctx context.Context, q database.Querier, c *models.Customer) error {
	data, err := database.MarshalDoc(c)
	if err != nil {
		return domain.NewInternalError(err)
	}
	_, err = q.Exec(ctx,
		`UPDATE customers SET name = ?, company = ?, data = ?, updated_at = ?, deleted_at = ? WHERE id = ?`,
		c.Name, c.Company, data, c.UpdatedAt, nullTime(c), c.ID)
	if err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to update customer: %w", err))
	}
	return nil
}

// Load returns a customer of ownerID, trashed or not. Another owner's
// customer is forbidden.
func Load(ctx context.Context, q database.Querier, ownerID, id string) (*models.Customer, error) {
	var data string
	err := q.QueryRow(ctx, `SELECT data FROM customers WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("customer")
		}
		return nil, domain.NewInternalError(fmt.Errorf("failed to load customer: %w", err))
	}

	var c models.Customer
	if err := database.UnmarshalDoc(data, &c); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if c.OwnerID != ownerID {
		return nil, domain.NewForbiddenError("customer belongs to another user")
	}
	return &c, nil
}

// LoadAll returns the customers of ownerID, either active or in the trash,
// newest first.
func LoadAll(ctx context.Context, q database.Querier, ownerID string, trashed bool) ([]models.Customer, error) {
	query := `SELECT data FROM customers WHERE owner_id = ? AND deleted_at IS NULL ORDER BY created_at DESC`
	if trashed {
		query = `SELECT data FROM customers WHERE owner_id = ? AND deleted_at IS NOT NULL ORDER BY deleted_at DESC`
	}
	return queryDocs(ctx, q, query, ownerID)
}

func queryDocs(ctx context.Context, q database.Querier, query string, args ...any) ([]models.Customer, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to list customers: %w", err))
	}
	defer rows.Close()

	out := []models.Customer{}
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, domain.NewInternalError(err)
		}
		var c models.Customer
		if err := database.UnmarshalDoc(data, &c); err != nil {
			return nil, domain.NewInternalError(err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError(err)
	}
	return out, nil
}

// removeForever deletes the customer and detaches everything that pointed
// at it: interactions and schedules become unlinked, the course plan goes.
func removeForever(ctx context.Context, q database.Querier, c *models.Customer) error {
	if err := unlinkInteractions(ctx, q, c.ID); err != nil {
		return err
	}
	if err := unlinkSchedules(ctx, q, c.ID); err != nil {
		return err
	}
	if _, err := q.Exec(ctx, `DELETE FROM course_plans WHERE customer_id = ?`, c.ID); err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to delete course plan: %w", err))
	}
	if _, err := q.Exec(ctx, `DELETE FROM customers WHERE id = ?`, c.ID); err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to delete customer: %w", err))
	}
	return nil
}

type docRow struct {
	id   string
	data string
}

func loadRows(ctx context.Context, q database.Querier, query string, args ...any) ([]docRow, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, domain.NewInternalError(err)
	}
	defer rows.Close()

	var out []docRow
	for rows.Next() {
		var r docRow
		if err := rows.Scan(&r.id, &r.data); err != nil {
			return nil, domain.NewInternalError(err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func unlinkInteractions(ctx context.Context, q database.Querier, customerID string) error {
	rows, err := loadRows(ctx, q, `SELECT id, data FROM interactions WHERE customer_id = ?`, customerID)
	if err != nil {
		return err
	}
	for _, r := range rows {
		var it models.Interaction
		if err := database.UnmarshalDoc(r.data, &it); err != nil {
			return domain.NewInternalError(err)
		}
		it.CustomerID = nil
		data, err := database.MarshalDoc(it)
		if err != nil {
			return domain.NewInternalError(err)
		}
		if _, err := q.Exec(ctx, `UPDATE interactions SET customer_id = NULL, data = ? WHERE id = ?`, data, r.id); err != nil {
			return domain.NewInternalError(fmt.Errorf("failed to unlink interaction: %w", err))
		}
	}
	return nil
}

func unlinkSchedules(ctx context.Context, q database.Querier, customerID string) error {
	rows, err := loadRows(ctx, q, `SELECT id, data FROM schedules WHERE customer_id = ?`, customerID)
	if err != nil {
		return err
	}
	for _, r := range rows {
		var s models.Schedule
		if err := database.UnmarshalDoc(r.data, &s); err != nil {
			return domain.NewInternalError(err)
		}
		s.CustomerID = nil
		data, err := database.MarshalDoc(s)
		if err != nil {
			return domain.NewInternalError(err)
		}
		if _, err := q.Exec(ctx, `UPDATE schedules SET customer_id = NULL, data = ? WHERE id = ?`, data, r.id); err != nil {
			return domain.NewInternalError(fmt.Errorf("failed to unlink schedule: %w", err))
		}
	}
	return nil
}

func nullTime(c *models.Customer) any {
	if c.DeletedAt == nil {
		return nil
	}
	return *c.DeletedAt
}
