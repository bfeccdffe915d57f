package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

func TestEvaluateFactor(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name        string
		questionIDs []string
		a, b        []profileOption
		expected    int
	}{
		{
			name:        "exact match with top weight scores 100",
			questionIDs: []string{"sleep_schedule"},
			a:           []profileOption{withResponses(response("sleep_schedule", "early_bird", 5))},
			b:           []profileOption{withResponses(response("sleep_schedule", "early_bird", 5))},
			expected:    100,
		},
		{
			name:        "partial table match scores below 100",
			questionIDs: []string{"cleanliness_level"},
			a:           []profileOption{withResponses(response("cleanliness_level", "very_organized", 5))},
			b:           []profileOption{withResponses(response("cleanliness_level", "tidy_most_time", 4))},
			expected:    80,
		},
		{
			name:        "unmodeled pair scores the floor",
			questionIDs: []string{"sleep_schedule"},
			a:           []profileOption{withResponses(response("sleep_schedule", "early_bird", 3))},
			b:           []profileOption{withResponses(response("sleep_schedule", "night_owl", 3))},
			expected:    20,
		},
		{
			name:        "no comparable questions returns the neutral default",
			questionIDs: []string{"sleep_schedule"},
			a:           []profileOption{withResponses(response("cleanliness_level", "very_organized", 5))},
			b:           []profileOption{withResponses(response("sleep_schedule", "early_bird", 5))},
			expected:    50,
		},
		{
			name:        "higher declared weight dominates mixed answers",
			questionIDs: []string{"sleep_schedule", "cleanliness_level"},
			a: []profileOption{withResponses(
				response("sleep_schedule", "early_bird", 5),
				response("cleanliness_level", "very_organized", 2),
			)},
			b: []profileOption{withResponses(
				response("sleep_schedule", "early_bird", 1),
				response("cleanliness_level", "tidy_most_time", 4),
			)},
			// (5*5 + 4*4) / (5+4) * 20 = 91.1 -> 91
			expected: 91,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newProfile("a", tt.a...)
			b := newProfile("b", tt.b...)
			got := engine.EvaluateFactor(tt.questionIDs, a, b)
			assert.Equal(t, tt.expected, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestCulturalScore(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name     string
		a, b     profileOption
		expected int
		included bool
	}{
		{
			name:     "single shared language",
			a:        withAccessibility([]string{"English"}, nil, nil),
			b:        withAccessibility([]string{"English", "Hindi"}, nil, nil),
			expected: 20,
			included: true,
		},
		{
			name:     "all three axes overlap",
			a:        withAccessibility([]string{"English", "Mandarin"}, []string{"Mindfulness practices"}, []string{"vegetarian"}),
			b:        withAccessibility([]string{"English"}, []string{"Mindfulness practices"}, []string{"vegetarian"}),
			// average of 20, 30, 25
			expected: 25,
			included: true,
		},
		{
			name:     "heavy overlap caps at 100",
			a:        withAccessibility([]string{"English", "Hindi", "Punjabi", "Tamil", "Marathi", "Bengali"}, nil, nil),
			b:        withAccessibility([]string{"English", "Hindi", "Punjabi", "Tamil", "Marathi", "Bengali"}, nil, nil),
			expected: 100,
			included: true,
		},
		{
			name:     "no overlap omits the factor entirely",
			a:        withAccessibility([]string{"English"}, []string{"Art galleries"}, nil),
			b:        withAccessibility([]string{"Hindi"}, []string{"Meditation"}, nil),
			included: false,
		},
		{
			name:     "one side without cultural data only counts languages",
			a:        withAccessibility([]string{"Spanish"}, []string{"Latin cuisine"}, nil),
			b:        withAccessibility([]string{"Spanish"}, nil, nil),
			expected: 20,
			included: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := engine.CulturalScore(newProfile("a", tt.a), newProfile("b", tt.b))
			assert.Equal(t, tt.included, ok)
			if tt.included {
				assert.Equal(t, tt.expected, score)
			}
		})
	}
}

func TestProfessionalScore(t *testing.T) {
	engine := testEngine(t)

	tests := []struct {
		name                     string
		occupationA, occupationB string
		ageA, ageB               int
		expected                 int
	}{
		{"same occupation close age", "working", "working", 24, 25, 100},
		{"student working complement", "student", "working", 22, 24, 85},
		{"unrelated occupations moderate age gap", "freelancer", "between-jobs", 24, 29, 60},
		{"large age gap only keeps the baseline bonus", "working", "working", 22, 35, 80},
		{"nothing aligns beyond the baseline", "student", "freelancer", 20, 30, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newProfile("a", withOccupation(tt.occupationA), withAge(tt.ageA))
			b := newProfile("b", withOccupation(tt.occupationB), withAge(tt.ageB))
			assert.Equal(t, tt.expected, engine.ProfessionalScore(a, b))
			assert.Equal(t, tt.expected, engine.ProfessionalScore(b, a))
		})
	}
}

func TestMatchFactors_CulturalOnlyWhenSignalExists(t *testing.T) {
	engine := testEngine(t)

	a := newProfile("a",
		withResponses(completeResponses("early_bird", "occasional_gatherings", "very_organized", "moderate_space", "health_wellness")...),
		withAccessibility([]string{"English"}, nil, nil),
	)
	b := newProfile("b",
		withResponses(completeResponses("early_bird", "occasional_gatherings", "very_organized", "moderate_space", "health_wellness")...),
		withAccessibility([]string{"Hindi"}, nil, nil),
	)

	factors := engine.MatchFactors(a, b)
	categories := make([]string, 0, len(factors))
	for _, f := range factors {
		categories = append(categories, f.Category)
		assert.GreaterOrEqual(t, f.Score, 0)
		assert.LessOrEqual(t, f.Score, 100)
		assert.NotEmpty(t, f.Description)
	}
	assert.Equal(t, []string{"Lifestyle", "Schedule", "Social", "Cleanliness", "Professional"}, categories)

	// Shared languages bring the cultural factor back.
	b.Accessibility.LanguagesSpoken = domain.LanguageList{"English"}
	factors = engine.MatchFactors(a, b)
	categories = categories[:0]
	for _, f := range factors {
		categories = append(categories, f.Category)
	}
	assert.Equal(t, []string{"Lifestyle", "Schedule", "Social", "Cleanliness", "Cultural", "Professional"}, categories)
}
