package models

// Role-play speakers
const (
	RolePlayRep      = "rep"
	RolePlayCustomer = "customer"
)

// RolePlayMessage is one utterance in a rehearsal
type RolePlayMessage struct {
	Role    string `json:"role" validate:"required,oneof=rep customer"`
	Content string `json:"content" validate:"required,max=5000"`
}

// RolePlayTurnRequest asks the simulated customer for its next reply
type RolePlayTurnRequest struct {
	Scenario   string            `json:"scenario" validate:"required,max=2000"`
	CustomerID string            `json:"customer_id,omitempty"`
	Persona    CustomerProfile   `json:"persona"`
	History    []RolePlayMessage `json:"history" validate:"max=100,dive"`
}

// RolePlayTurnResponse is the simulated customer's reply
type RolePlayTurnResponse struct {
	Reply string `json:"reply"`
}

// RolePlayScoreRequest asks for an evaluation of a finished rehearsal
type RolePlayScoreRequest struct {
	Scenario string            `json:"scenario" validate:"required,max=2000"`
	History  []RolePlayMessage `json:"history" validate:"required,min=1,max=100,dive"`
}

// RolePlayScore is the evaluation of a rehearsal
type RolePlayScore struct {
	Overall      int              `json:"overall"`
	Dimensions   []ScoreDimension `json:"dimensions"`
	Strengths    []string         `json:"strengths"`
	Improvements []string         `json:"improvements"`
	Summary      string           `json:"summary"`
}

// ScoreDimension scores one aspect of technique, 0-100
type ScoreDimension struct {
	Name    string `json:"name"`
	Score   int    `json:"score"`
	Comment string `json:"comment,omitempty"`
}

// KeywordsRequest asks for keyword extraction over free text
type KeywordsRequest struct {
	Text string `json:"text" validate:"required,max=50000"`
}

// KeywordsResponse lists extracted keywords
type KeywordsResponse struct {
	Keywords []string `json:"keywords"`
}
