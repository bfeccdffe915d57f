package domain

import (
	"fmt"
	"time"
)

// MatchFactor is one named, weighted sub-score of a comparison. Ephemeral
// unless the caller persists the parent MatchResult.
type MatchFactor struct {
	Category    string
	Description string
	Score       int
	Importance  Importance
}

type Importance string

const (
	ImportanceHigh   Importance = "high"
	ImportanceMedium Importance = "medium"
	ImportanceLow    Importance = "low"
)

// Weight maps importance onto the factor weighting used by the overall score.
func (i Importance) Weight() int {
	switch i {
	case ImportanceHigh:
		return 3
	case ImportanceMedium:
		return 2
	default:
		return 1
	}
}

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "high"
	ConfidenceMedium ConfidenceLevel = "medium"
	ConfidenceLow    ConfidenceLevel = "low"
)

// ConfidenceForScore bands an overall score for display purposes.
func ConfidenceForScore(score int) ConfidenceLevel {
	switch {
	case score >= 85:
		return ConfidenceHigh
	case score >= 70:
		return ConfidenceMedium
	default:
		return ConfidenceLow
	}
}

type MatchStatus string

const (
	MatchPending        MatchStatus = "pending"
	MatchBothInterested MatchStatus = "both-interested"
	MatchOneInterested  MatchStatus = "one-interested"
	MatchDeclined       MatchStatus = "declined"
)

func NewMatchStatus(value string) (MatchStatus, error) {
	switch MatchStatus(value) {
	case MatchPending, MatchBothInterested, MatchOneInterested, MatchDeclined:
		return MatchStatus(value), nil
	}
	return "", fmt.Errorf("invalid match status: %s", value)
}

// MatchResult is the engine-produced pairing artifact. The orchestrator is
// its sole writer at creation time and always leaves Status at pending;
// later transitions are driven by member actions.
type MatchResult struct {
	ID                 string
	User1ID            string
	User2ID            string
	RoomID             string
	CompatibilityScore int
	MatchFactors       []MatchFactor
	RoomCompatibility  *int
	ExplanationText    string
	ConfidenceLevel    ConfidenceLevel
	Status             MatchStatus
	CreatedAt          time.Time
}

// Involves reports whether the given user is one side of the pairing.
func (m MatchResult) Involves(userID string) bool {
	return m.User1ID == userID || m.User2ID == userID
}
