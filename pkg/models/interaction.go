package models

import "time"

// Next-step priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Interaction is one recorded, AI-analyzed sales conversation
type Interaction struct {
	ID              string              `json:"id"`
	OwnerID         string              `json:"owner_id"`
	CustomerID      *string             `json:"customer_id,omitempty"`
	Date            string              `json:"date"`
	RawInput        string              `json:"raw_input"`
	CustomerProfile CustomerProfile     `json:"customer_profile"`
	Intelligence    Intelligence        `json:"intelligence"`
	Metrics         ConversationMetrics `json:"metrics"`
	Suggestions     []string            `json:"suggestions"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// LinkedTo reports whether the interaction references customerID
func (i *Interaction) LinkedTo(customerID string) bool {
	return i.CustomerID != nil && *i.CustomerID == customerID
}

// CustomerProfile is the AI-derived, user-editable view of the counterpart
type CustomerProfile struct {
	Name     string `json:"name"`
	Company  string `json:"company,omitempty"`
	Role     string `json:"role,omitempty"`
	Industry string `json:"industry,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// Intelligence is the structured sales insight extracted from a conversation.
// CurrentStage is free text and must be normalized before aggregation.
type Intelligence struct {
	PainPoints   []string   `json:"pain_points"`
	KeyInterests []string   `json:"key_interests"`
	CurrentStage string     `json:"current_stage"`
	Probability  float64    `json:"probability"`
	NextSteps    []NextStep `json:"next_steps"`
}

// NextStep is an action item that can be promoted into a Schedule.
// Items created before stable ids existed have an empty ID.
type NextStep struct {
	ID       string `json:"id,omitempty"`
	Action   string `json:"action" validate:"required,max=500"`
	Priority string `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	DueDate  string `json:"due_date,omitempty"`
}

// ConversationMetrics describe how the conversation went
type ConversationMetrics struct {
	TalkRatio       float64 `json:"talk_ratio"`
	QuestionRate    float64 `json:"question_rate"`
	Sentiment       string  `json:"sentiment"`
	ConfidenceScore float64 `json:"confidence_score"`
}

// CreateInteractionRequest submits raw text or audio for analysis
type CreateInteractionRequest struct {
	Input       string  `json:"input" validate:"required_without=AudioBase64,max=50000"`
	AudioBase64 string  `json:"audio_base64,omitempty" validate:"omitempty,base64"`
	AudioFormat string  `json:"audio_format,omitempty" validate:"omitempty,oneof=webm mp3 mp4 m4a wav ogg"`
	CustomerID  *string `json:"customer_id,omitempty"`
	Date        string  `json:"date,omitempty"`
}

// UpdateInteractionRequest is a partial update of an interaction.
// CustomerID set to an empty string unlinks the interaction.
type UpdateInteractionRequest struct {
	Date            *string          `json:"date,omitempty"`
	CustomerID      *string          `json:"customer_id,omitempty"`
	CustomerProfile *CustomerProfile `json:"customer_profile,omitempty"`
	Suggestions     *[]string        `json:"suggestions,omitempty"`
	CurrentStage    *string          `json:"current_stage,omitempty" validate:"omitempty,max=200"`
}

// UpdateNextStepsRequest replaces the next steps of an interaction
type UpdateNextStepsRequest struct {
	NextSteps []NextStep `json:"next_steps" validate:"max=50,dive"`
}

// InteractionFilter narrows an interaction listing
type InteractionFilter struct {
	CustomerID string
	Unlinked   bool
}

// InteractionListResponse represents a list of interactions
type InteractionListResponse struct {
	Interactions []Interaction `json:"interactions"`
	Total        int           `json:"total"`
}

// PromoteInteractionResponse is returned after an interaction becomes a customer
type PromoteInteractionResponse struct {
	Customer    *Customer    `json:"customer"`
	Interaction *Interaction `json:"interaction"`
	Migrated    int          `json:"migrated_schedules"`
}
