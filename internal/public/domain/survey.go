package domain

import "fmt"

// SurveyQuestion is immutable reference data created at configuration time.
type SurveyQuestion struct {
	ID         string
	Prompt     string
	Category   QuestionCategory
	Weight     int
	IsRequired bool
	Options    []SurveyOption
}

// SurveyOption is one selectable answer. Value is the token used for
// compatibility comparisons; the tags describe traits the option implies.
type SurveyOption struct {
	ID                string
	Text              string
	Value             string
	CompatibilityTags []string
}

type QuestionCategory string

const (
	CategoryLifestyle   QuestionCategory = "lifestyle"
	CategorySocial      QuestionCategory = "social"
	CategoryCleanliness QuestionCategory = "cleanliness"
	CategorySchedule    QuestionCategory = "schedule"
	CategoryBoundaries  QuestionCategory = "boundaries"
)

func NewQuestionCategory(value string) (QuestionCategory, error) {
	switch QuestionCategory(value) {
	case CategoryLifestyle, CategorySocial, CategoryCleanliness, CategorySchedule, CategoryBoundaries:
		return QuestionCategory(value), nil
	}
	return "", fmt.Errorf("invalid question category: %s", value)
}

// SurveyCatalog is the configured question set consumed by the engine.
type SurveyCatalog struct {
	questions []SurveyQuestion
	byID      map[string]SurveyQuestion
}

func NewSurveyCatalog(questions []SurveyQuestion) SurveyCatalog {
	byID := make(map[string]SurveyQuestion, len(questions))
	for _, q := range questions {
		byID[q.ID] = q
	}
	return SurveyCatalog{
		questions: append([]SurveyQuestion(nil), questions...),
		byID:      byID,
	}
}

func (c SurveyCatalog) Questions() []SurveyQuestion {
	return append([]SurveyQuestion(nil), c.questions...)
}

func (c SurveyCatalog) QuestionByID(id string) (SurveyQuestion, bool) {
	q, ok := c.byID[id]
	return q, ok
}

// MandatoryQuestionIDs lists question ids a completed survey must answer.
func (c SurveyCatalog) MandatoryQuestionIDs() []string {
	ids := make([]string, 0, len(c.questions))
	for _, q := range c.questions {
		if q.IsRequired {
			ids = append(ids, q.ID)
		}
	}
	return ids
}

// AnswerValues returns every answer token appearing in the catalog.
func (c SurveyCatalog) AnswerValues() []string {
	values := make([]string, 0)
	for _, q := range c.questions {
		for _, opt := range q.Options {
			values = append(values, opt.Value)
		}
	}
	return values
}

// ValidateResponse checks that a response references a known question and one
// of its options.
func (c SurveyCatalog) ValidateResponse(r SurveyResponse) error {
	q, ok := c.byID[r.QuestionID]
	if !ok {
		return fmt.Errorf("unknown question id: %s", r.QuestionID)
	}
	if r.Weight < 1 || r.Weight > 5 {
		return fmt.Errorf("response weight must be between 1 and 5")
	}
	for _, opt := range q.Options {
		if opt.Value == r.Answer {
			return nil
		}
	}
	return fmt.Errorf("answer %q is not an option of question %s", r.Answer, r.QuestionID)
}

// DefaultSurveyCatalog is the lifestyle survey shipped with the product.
func DefaultSurveyCatalog() SurveyCatalog {
	return NewSurveyCatalog([]SurveyQuestion{
		{
			ID:         "sleep_schedule",
			Prompt:     "What's your ideal sleeping schedule?",
			Category:   CategorySchedule,
			Weight:     5,
			IsRequired: true,
			Options: []SurveyOption{
				{ID: "early_bird", Text: "Early bird (sleep by 10 PM, wake up by 6 AM)", Value: "early_bird", CompatibilityTags: []string{"morning-person", "quiet-evenings"}},
				{ID: "night_owl", Text: "Night owl (sleep after midnight, wake up late)", Value: "night_owl", CompatibilityTags: []string{"late-night", "quiet-mornings"}},
				{ID: "flexible_schedule", Text: "Flexible schedule - I adapt easily", Value: "flexible_schedule", CompatibilityTags: []string{"adaptable", "understanding"}},
				{ID: "depends_on_work", Text: "Varies with work/study commitments", Value: "depends_on_work", CompatibilityTags: []string{"professional", "adaptable"}},
			},
		},
		{
			ID:         "social_frequency",
			Prompt:     "How do you prefer to socialize at home?",
			Category:   CategorySocial,
			Weight:     4,
			IsRequired: true,
			Options: []SurveyOption{
				{ID: "love_friends_over", Text: "Love having friends over frequently", Value: "love_friends_over", CompatibilityTags: []string{"social", "hosting", "outgoing"}},
				{ID: "occasional_gatherings", Text: "Occasional small gatherings (2-4 people)", Value: "occasional_gatherings", CompatibilityTags: []string{"balanced-social", "selective"}},
				{ID: "prefer_quiet", Text: "Prefer quiet, minimal visitors", Value: "prefer_quiet", CompatibilityTags: []string{"introverted", "peaceful", "study-focused"}},
				{ID: "roommate_space", Text: "Want to connect with roommate, but respect boundaries", Value: "roommate_space", CompatibilityTags: []string{"balanced", "respectful", "friendship-open"}},
			},
		},
		{
			ID:         "cleanliness_level",
			Prompt:     "What's your approach to cleanliness and organization?",
			Category:   CategoryCleanliness,
			Weight:     5,
			IsRequired: true,
			Options: []SurveyOption{
				{ID: "very_organized", Text: "Very organized - clean daily, everything has a place", Value: "very_organized", CompatibilityTags: []string{"neat", "organized", "detailed"}},
				{ID: "tidy_most_time", Text: "Generally tidy - clean regularly, occasional mess is ok", Value: "tidy_most_time", CompatibilityTags: []string{"clean", "realistic", "balanced"}},
				{ID: "clean_when_needed", Text: "Clean when needed - practical approach", Value: "clean_when_needed", CompatibilityTags: []string{"practical", "low-maintenance"}},
				{ID: "shared_responsibility", Text: "Prefer shared cleaning schedule and responsibilities", Value: "shared_responsibility", CompatibilityTags: []string{"collaborative", "fair", "structured"}},
			},
		},
		{
			ID:         "personal_space",
			Prompt:     "How important is personal space and alone time?",
			Category:   CategoryBoundaries,
			Weight:     4,
			IsRequired: true,
			Options: []SurveyOption{
				{ID: "need_lots_space", Text: "Need significant alone time to recharge", Value: "need_lots_space", CompatibilityTags: []string{"introverted", "independent", "respectful-distance"}},
				{ID: "moderate_space", Text: "Moderate personal space - balance of together/apart time", Value: "moderate_space", CompatibilityTags: []string{"balanced", "flexible", "understanding"}},
				{ID: "love_together_time", Text: "Enjoy spending time together - potential friendship", Value: "love_together_time", CompatibilityTags: []string{"social", "friendship-focused", "outgoing"}},
				{ID: "communicate_needs", Text: "Prefer open communication about space needs", Value: "communicate_needs", CompatibilityTags: []string{"communicative", "mature", "understanding"}},
			},
		},
		{
			ID:         "lifestyle_priorities",
			Prompt:     "What are your top lifestyle priorities in a living situation?",
			Category:   CategoryLifestyle,
			Weight:     4,
			IsRequired: true,
			Options: []SurveyOption{
				{ID: "study_focused", Text: "Study/work-focused environment with minimal distractions", Value: "study_focused", CompatibilityTags: []string{"academic", "quiet", "goal-oriented"}},
				{ID: "health_wellness", Text: "Health & wellness - fitness, healthy eating, self-care", Value: "health_wellness", CompatibilityTags: []string{"healthy", "active", "mindful"}},
				{ID: "creative_space", Text: "Creative and inspiring environment", Value: "creative_space", CompatibilityTags: []string{"artistic", "innovative", "expressive"}},
				{ID: "safety_security", Text: "Safety, security, and peaceful environment", Value: "safety_security", CompatibilityTags: []string{"security-conscious", "peaceful", "responsible"}},
				{ID: "budget_friendly", Text: "Budget-conscious with smart spending", Value: "budget_friendly", CompatibilityTags: []string{"practical", "economical", "resourceful"}},
			},
		},
	})
}
