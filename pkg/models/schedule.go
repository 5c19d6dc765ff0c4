package models

import "time"

// Schedule statuses
const (
	ScheduleStatusPending   = "pending"
	ScheduleStatusCompleted = "completed"
)

// Schedule is a follow-up task, optionally linked to a next-step item via PlanID
type Schedule struct {
	ID         string    `json:"id"`
	OwnerID    string    `json:"owner_id"`
	Title      string    `json:"title"`
	Date       string    `json:"date"`
	Time       string    `json:"time,omitempty"`
	CustomerID *string   `json:"customer_id,omitempty"`
	PlanID     string    `json:"plan_id,omitempty"`
	Status     string    `json:"status"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateScheduleRequest represents a request to add a follow-up
type CreateScheduleRequest struct {
	Title      string  `json:"title" validate:"required,max=500"`
	Date       string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time       string  `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	CustomerID *string `json:"customer_id,omitempty"`
	Notes      string  `json:"notes,omitempty" validate:"max=5000"`
}

// UpdateScheduleRequest is a partial update of a schedule
type UpdateScheduleRequest struct {
	Title      *string `json:"title,omitempty" validate:"omitempty,min=1,max=500"`
	Date       *string `json:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Time       *string `json:"time,omitempty" validate:"omitempty,datetime=15:04"`
	CustomerID *string `json:"customer_id,omitempty"`
	Status     *string `json:"status,omitempty" validate:"omitempty,oneof=pending completed"`
	Notes      *string `json:"notes,omitempty" validate:"omitempty,max=5000"`
}

// ScheduleFilter narrows a schedule listing
type ScheduleFilter struct {
	CustomerID string
	Status     string
	Date       string
}

// ScheduleDraft is a schedule parsed from free text or voice, not yet saved
type ScheduleDraft struct {
	Title        string  `json:"title"`
	Date         string  `json:"date"`
	Time         string  `json:"time,omitempty"`
	CustomerName string  `json:"customer_name,omitempty"`
	CustomerID   *string `json:"customer_id,omitempty"`
	Notes        string  `json:"notes,omitempty"`
}

// ParseRequest carries free text or an audio clip for voice parsing
type ParseRequest struct {
	Text        string `json:"text" validate:"required_without=AudioBase64,max=10000"`
	AudioBase64 string `json:"audio_base64,omitempty" validate:"omitempty,base64"`
	AudioFormat string `json:"audio_format,omitempty" validate:"omitempty,oneof=webm mp3 mp4 m4a wav ogg"`
}
