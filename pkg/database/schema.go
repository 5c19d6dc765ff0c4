package database

import (
	"context"
	"encoding/json"
	"fmt"
)

// Documents are stored as JSON in a data column; the other columns are
// copies of the fields used for ownership checks, filtering and ordering.
// The statements below are valid for both PostgreSQL and SQLite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id TEXT PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		password_hash TEXT NOT NULL DEFAULT '',
		provider TEXT NOT NULL DEFAULT 'password',
		provider_subject TEXT NOT NULL DEFAULT '',
		settings TEXT NOT NULL DEFAULT '{}',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		name TEXT NOT NULL,
		company TEXT NOT NULL DEFAULT '',
		data TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		deleted_at TIMESTAMP NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_owner ON customers (owner_id, deleted_at)`,
	`CREATE TABLE IF NOT EXISTS interactions (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		customer_id TEXT NULL,
		date TEXT NOT NULL DEFAULT '',
		data TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_interactions_owner ON interactions (owner_id, customer_id)`,
	`CREATE TABLE IF NOT EXISTS schedules (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		customer_id TEXT NULL,
		plan_id TEXT NOT NULL DEFAULT '',
		date TEXT NOT NULL,
		status TEXT NOT NULL,
		data TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_owner ON schedules (owner_id, date)`,
	`CREATE INDEX IF NOT EXISTS idx_schedules_plan ON schedules (owner_id, plan_id)`,
	`CREATE TABLE IF NOT EXISTS course_plans (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		customer_id TEXT NOT NULL,
		data TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_course_plans_customer ON course_plans (owner_id, customer_id)`,
}

// Bootstrap creates missing tables and indexes. It is idempotent.
func (c *Client) Bootstrap(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := c.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed creating schema resources: %w", err)
		}
	}
	return nil
}

// MarshalDoc encodes a document for the data column
func MarshalDoc(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to encode document: %w", err)
	}
	return string(data), nil
}

// UnmarshalDoc decodes a data column into v
func UnmarshalDoc(data string, v any) error {
	if err := json.Unmarshal([]byte(data), v); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// NullString maps an optional reference onto a nullable column value
func NullString(s *string) any {
	if s == nil || *s == "" {
		return nil
	}
	return *s
}
