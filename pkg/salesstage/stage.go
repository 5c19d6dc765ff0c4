// Package salesstage maps free-text pipeline stages onto the fixed
// SalesStage taxonomy.
package salesstage

import "strings"

// SalesStage is a customer's position in the sales pipeline.
type SalesStage string

const (
	Prospecting   SalesStage = "PROSPECTING"
	Qualification SalesStage = "QUALIFICATION"
	Proposal      SalesStage = "PROPOSAL"
	Negotiation   SalesStage = "NEGOTIATION"
	ClosedWon     SalesStage = "CLOSED_WON"
	ClosedLost    SalesStage = "CLOSED_LOST"
)

// Default is the stage assigned when nothing better is known.
const Default = Prospecting

// All returns every stage in pipeline order.
func All() []SalesStage {
	return []SalesStage{
		Prospecting,
		Qualification,
		Proposal,
		Negotiation,
		ClosedWon,
		ClosedLost,
	}
}

// IsValid reports whether s is one of the six stage literals.
func IsValid(s SalesStage) bool {
	switch s {
	case Prospecting, Qualification, Proposal, Negotiation, ClosedWon, ClosedLost:
		return true
	}
	return false
}

// Parse returns the stage for an exact literal and false otherwise.
// Matching is case-sensitive.
func Parse(s string) (SalesStage, bool) {
	stage := SalesStage(strings.TrimSpace(s))
	if IsValid(stage) {
		return stage, true
	}
	return "", false
}

// Index returns the position of s in pipeline order, or -1.
func Index(s SalesStage) int {
	for i, stage := range All() {
		if stage == s {
			return i
		}
	}
	return -1
}

// Normalize maps raw AI output onto a SalesStage using the embedded
// keyword table. A nil input yields Default. It never fails.
func Normalize(raw *string) SalesStage {
	if raw == nil {
		return defaultTable.fallback
	}
	return defaultTable.Normalize(*raw)
}

// NormalizeString is Normalize for callers holding a plain string.
func NormalizeString(raw string) SalesStage {
	return defaultTable.Normalize(raw)
}
