package models

import "time"

// CoursePlan is a coaching plan for working one customer.
// At most one plan exists per customer.
type CoursePlan struct {
	ID         string         `json:"id"`
	OwnerID    string         `json:"owner_id"`
	CustomerID string         `json:"customer_id"`
	Title      string         `json:"title"`
	Objective  string         `json:"objective"`
	Modules    []CourseModule `json:"modules"`
	Resources  []string       `json:"resources"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// CourseModule is one ordered unit of a course plan
type CourseModule struct {
	Name     string   `json:"name" validate:"required,max=200"`
	Topics   []string `json:"topics"`
	Duration string   `json:"duration,omitempty" validate:"max=100"`
}

// CreateCoursePlanRequest stores a plan, superseding any existing one
type CreateCoursePlanRequest struct {
	CustomerID string         `json:"customer_id" validate:"required"`
	Title      string         `json:"title" validate:"required,max=300"`
	Objective  string         `json:"objective,omitempty" validate:"max=2000"`
	Modules    []CourseModule `json:"modules" validate:"max=30,dive"`
	Resources  []string       `json:"resources,omitempty" validate:"max=50"`
}

// UpdateCoursePlanRequest is a partial update of a course plan
type UpdateCoursePlanRequest struct {
	Title     *string         `json:"title,omitempty" validate:"omitempty,min=1,max=300"`
	Objective *string         `json:"objective,omitempty" validate:"omitempty,max=2000"`
	Modules   *[]CourseModule `json:"modules,omitempty" validate:"omitempty,max=30,dive"`
	Resources *[]string       `json:"resources,omitempty" validate:"omitempty,max=50"`
}

// GenerateCoursePlanRequest asks the AI to draft a plan for a customer
type GenerateCoursePlanRequest struct {
	CustomerID string `json:"customer_id" validate:"required"`
}
