package models

import "time"

// ReportRequest asks for a natural-language report over a date range
type ReportRequest struct {
	Range      string `json:"range" validate:"required,oneof=today yesterday this_week last_7_days last_week last_30_days this_month last_month this_quarter last_quarter this_year last_year custom"`
	StartDate  string `json:"start_date,omitempty"`
	EndDate    string `json:"end_date,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
}

// ReportResponse is a generated report plus the range it covers
type ReportResponse struct {
	Range            string    `json:"range"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	InteractionCount int       `json:"interaction_count"`
	Language         string    `json:"language"`
	Report           string    `json:"report"`
	Cached           bool      `json:"cached"`
}
