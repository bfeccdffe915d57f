// Package matching implements the compatibility scoring and room-matching
// engine. It is computationally pure: every entry point operates over
// in-memory collections supplied by the caller and holds no state between
// invocations.
package matching

import "github.com/roomee/roomee-services/api/internal/public/domain"

// AnswerPair keys one curated entry of the compatibility table.
type AnswerPair struct {
	A string
	B string
}

// CompatibilityTable maps known adjacent answer pairs to a partial similarity
// score in [1,5]. Curators supply one direction; the table is symmetrized at
// construction so lookups never depend on argument order.
type CompatibilityTable map[AnswerPair]int

// NewCompatibilityTable copies the curated entries and populates the reverse
// direction of every pair.
func NewCompatibilityTable(entries map[AnswerPair]int) CompatibilityTable {
	table := make(CompatibilityTable, 2*len(entries))
	for pair, score := range entries {
		table[pair] = score
		reversed := AnswerPair{A: pair.B, B: pair.A}
		if _, ok := entries[reversed]; !ok {
			table[reversed] = score
		}
	}
	return table
}

// FactorDefinition binds a factor category to the survey questions it covers
// and the importance it carries in the overall score.
type FactorDefinition struct {
	Category    string
	Importance  domain.Importance
	QuestionIDs []string
}

// Config carries the static configuration of the engine.
type Config struct {
	Catalog       domain.SurveyCatalog
	Table         CompatibilityTable
	SurveyFactors []FactorDefinition
}

// DefaultConfig returns the production engine configuration: the shipped
// survey catalog, the curated compatibility table, and the fixed factor
// category table.
func DefaultConfig() Config {
	return Config{
		Catalog: domain.DefaultSurveyCatalog(),
		Table: NewCompatibilityTable(map[AnswerPair]int{
			{"early_bird", "flexible_schedule"}:            3,
			{"night_owl", "flexible_schedule"}:             3,
			{"flexible_schedule", "depends_on_work"}:       4,
			{"very_organized", "tidy_most_time"}:           4,
			{"tidy_most_time", "clean_when_needed"}:        3,
			{"love_friends_over", "occasional_gatherings"}: 3,
			{"occasional_gatherings", "prefer_quiet"}:      2,
		}),
		SurveyFactors: []FactorDefinition{
			{
				Category:    "Lifestyle",
				Importance:  domain.ImportanceHigh,
				QuestionIDs: []string{"sleep_schedule", "social_frequency", "noise_tolerance", "guest_policy"},
			},
			{
				Category:    "Schedule",
				Importance:  domain.ImportanceHigh,
				QuestionIDs: []string{"sleep_schedule", "work_hours", "study_hours"},
			},
			{
				Category:    "Social",
				Importance:  domain.ImportanceMedium,
				QuestionIDs: []string{"social_frequency", "guest_policy", "shared_activities"},
			},
			{
				Category:    "Cleanliness",
				Importance:  domain.ImportanceHigh,
				QuestionIDs: []string{"cleanliness_level", "organization_style", "shared_spaces"},
			},
		},
	}
}
