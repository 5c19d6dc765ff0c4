package interactions

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jordanlanch/repcoach/pkg/analytics"
	"github.com/jordanlanch/repcoach/pkg/database"
	"github.com/jordanlanch/repcoach/pkg/domain"
	"github.com/jordanlanch/repcoach/pkg/models"
)

// Insert stores a new interaction document.
func Insert(ctx context.Context, q database.Querier, it *models.Interaction) error {
	data, err := database.MarshalDoc(it)
	if err != nil {
		return domain.NewInternalError(err)
	}
	_, err = q.Exec(ctx,
		`INSERT INTO interactions (id, owner_id, customer_id, date, data, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.OwnerID, database.NullString(it.CustomerID), it.Date, data, it.CreatedAt, it.UpdatedAt)
	if err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to create interaction: %w", err))
	}
	return nil
}

// Save overwrites an existing interaction document.
func Save(ctx context.Context, q database.Querier, it *models.Interaction) error {
	data, err := database.MarshalDoc(it)
	if err != nil {
		return domain.NewInternalError(err)
	}
	_, err = q.Exec(ctx,
		`UPDATE interactions SET customer_id = ?, date = ?, data = ?, updated_at = ? WHERE id = ?`,
		database.NullString(it.CustomerID), it.Date, data, it.UpdatedAt, it.ID)
	if err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to update interaction: %w", err))
	}
	return nil
}

// Load returns one interaction of ownerID.
func Load(ctx context.Context, q database.Querier, ownerID, id string) (*models.Interaction, error) {
	var data string
	err := q.QueryRow(ctx, `SELECT data FROM interactions WHERE id = ?`, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFoundError("interaction")
		}
		return nil, domain.NewInternalError(fmt.Errorf("failed to load interaction: %w", err))
	}

	var it models.Interaction
	if err := database.UnmarshalDoc(data, &it); err != nil {
		return nil, domain.NewInternalError(err)
	}
	if it.OwnerID != ownerID {
		return nil, domain.NewForbiddenError("interaction belongs to another user")
	}
	return &it, nil
}

// LoadAll returns every interaction of ownerID, newest date first.
// Interactions with unparsable dates come last.
func LoadAll(ctx context.Context, q database.Querier, ownerID string) ([]models.Interaction, error) {
	rows, err := q.Query(ctx, `SELECT data FROM interactions WHERE owner_id = ? ORDER BY created_at`, ownerID)
	if err != nil {
		return nil, domain.NewInternalError(fmt.Errorf("failed to list interactions: %w", err))
	}
	defer rows.Close()

	var docs []models.Interaction
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, domain.NewInternalError(err)
		}
		var it models.Interaction
		if err := database.UnmarshalDoc(data, &it); err != nil {
			return nil, domain.NewInternalError(err)
		}
		docs = append(docs, it)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewInternalError(err)
	}

	out := make([]models.Interaction, 0, len(docs))
	for _, i := range analytics.SortByDateDesc(docs) {
		out = append(out, docs[i])
	}
	return out, nil
}

// Remove deletes an interaction.
func Remove(ctx context.Context, q database.Querier, id string) error {
	if _, err := q.Exec(ctx, `DELETE FROM interactions WHERE id = ?`, id); err != nil {
		return domain.NewInternalError(fmt.Errorf("failed to delete interaction: %w", err))
	}
	return nil
}
