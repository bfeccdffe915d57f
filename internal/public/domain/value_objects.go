package domain

import (
	"fmt"
	"strings"
)

var (
	allowedRelationshipStatuses = []string{"single", "married", "prefer-not-to-say"}
	allowedOccupations          = []string{"student", "working", "freelancer", "between-jobs"}
	allowedBedPreferences       = []string{"twin", "single", "no-preference"}
	allowedRoomBedTypes         = []string{"twin", "single"}
	allowedFloorPreferences     = []string{"ground", "high", "no-preference"}
	allowedLeaseDurations       = []string{"3-months", "6-months", "1-year", "flexible"}
)

type RelationshipStatus string

func NewRelationshipStatus(value string) (RelationshipStatus, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("relationship status is required")
	}
	for _, allowed := range allowedRelationshipStatuses {
		if allowed == trimmed {
			return RelationshipStatus(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid relationship status: %s", trimmed)
}

func (s RelationshipStatus) String() string {
	return string(s)
}

type Occupation string

func NewOccupation(value string) (Occupation, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("occupation is required")
	}
	for _, allowed := range allowedOccupations {
		if allowed == trimmed {
			return Occupation(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid occupation: %s", trimmed)
}

func (o Occupation) String() string {
	return string(o)
}

// BedPreference is what a member asks for; "no-preference" is valid here
// but never on an actual listing.
type BedPreference string

func NewBedPreference(value string) (BedPreference, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return BedPreference("no-preference"), nil
	}
	for _, allowed := range allowedBedPreferences {
		if allowed == trimmed {
			return BedPreference(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid bed preference: %s", trimmed)
}

func (b BedPreference) String() string {
	return string(b)
}

// AcceptsTwin reports whether the preference is compatible with a
// twin-sharing arrangement.
func (b BedPreference) AcceptsTwin() bool {
	return b == "twin" || b == "no-preference"
}

// RoomBedType is the concrete bed configuration of a listing.
type RoomBedType string

func NewRoomBedType(value string) (RoomBedType, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("bed type is required")
	}
	for _, allowed := range allowedRoomBedTypes {
		if allowed == trimmed {
			return RoomBedType(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid bed type: %s", trimmed)
}

func (b RoomBedType) String() string {
	return string(b)
}

type FloorPreference string

func NewFloorPreference(value string) (FloorPreference, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return FloorPreference("no-preference"), nil
	}
	for _, allowed := range allowedFloorPreferences {
		if allowed == trimmed {
			return FloorPreference(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid floor preference: %s", trimmed)
}

func (f FloorPreference) String() string {
	return string(f)
}

type LeaseDuration string

func NewLeaseDuration(value string) (LeaseDuration, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return LeaseDuration("flexible"), nil
	}
	for _, allowed := range allowedLeaseDurations {
		if allowed == trimmed {
			return LeaseDuration(trimmed), nil
		}
	}
	return "", fmt.Errorf("invalid lease duration: %s", trimmed)
}

func (d LeaseDuration) String() string {
	return string(d)
}

// BudgetRange is a monthly rent band in whole currency units.
type BudgetRange struct {
	Min int
	Max int
}

func NewBudgetRange(min, max int) (BudgetRange, error) {
	if min < 0 || max < 0 {
		return BudgetRange{}, fmt.Errorf("budget must be >= 0")
	}
	if min > max {
		return BudgetRange{}, fmt.Errorf("budget min must be <= max")
	}
	return BudgetRange{Min: min, Max: max}, nil
}

type Rent int

func NewRent(value int) (Rent, error) {
	if value < 0 {
		return 0, fmt.Errorf("rent must be >= 0")
	}
	return Rent(value), nil
}

func (r Rent) Int() int {
	return int(r)
}

// LanguageList must carry at least one spoken language.
type LanguageList []string

func NewLanguageList(values []string) (LanguageList, error) {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{})
	for _, raw := range values {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; ok {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("at least one spoken language is required")
	}
	return LanguageList(result), nil
}

func (l LanguageList) Strings() []string {
	return append([]string(nil), l...)
}

type CommunityScore int

func NewCommunityScore(value int) (CommunityScore, error) {
	if value < 0 || value > 100 {
		return 0, fmt.Errorf("community score must be between 0 and 100")
	}
	return CommunityScore(value), nil
}

func (s CommunityScore) Int() int {
	return int(s)
}
