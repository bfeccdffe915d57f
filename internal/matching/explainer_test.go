package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

func factor(category string, score int) domain.MatchFactor {
	return domain.MatchFactor{Category: category, Score: score, Description: category}
}

func TestExplain_StrongFactorPhrasing(t *testing.T) {
	room := newRoom("r1")

	tests := []struct {
		name    string
		factors []domain.MatchFactor
		want    string
	}{
		{
			name:    "single strong factor",
			factors: []domain.MatchFactor{factor("Lifestyle", 90), factor("Social", 60)},
			want:    "You're a great match because you align well on lifestyle. We've also found a twin-sharing room that meets both your preferences for location, budget, and amenities.",
		},
		{
			name:    "two strong factors joined with and",
			factors: []domain.MatchFactor{factor("Lifestyle", 90), factor("Schedule", 85)},
			want:    "You're a great match because you align well on lifestyle and schedule. We've also found a twin-sharing room that meets both your preferences for location, budget, and amenities.",
		},
		{
			name: "three strong factors get a serial comma",
			factors: []domain.MatchFactor{
				factor("Lifestyle", 90),
				factor("Schedule", 85),
				factor("Cleanliness", 100),
			},
			want: "You're a great match because you align well on lifestyle, schedule, and cleanliness. We've also found a twin-sharing room that meets both your preferences for location, budget, and amenities.",
		},
		{
			name:    "no strong factors fall back to the generic clause",
			factors: []domain.MatchFactor{factor("Lifestyle", 80), factor("Social", 55)},
			want:    "You're a great match because you align well on key compatibility factors. We've also found a twin-sharing room that meets both your preferences for location, budget, and amenities.",
		},
		{
			name:    "score of exactly 80 is not strong",
			factors: []domain.MatchFactor{factor("Schedule", 80), factor("Cleanliness", 81)},
			want:    "You're a great match because you align well on cleanliness. We've also found a twin-sharing room that meets both your preferences for location, budget, and amenities.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Explain(tt.factors, &room))
		})
	}
}

func TestExplain_RoomClause(t *testing.T) {
	factors := []domain.MatchFactor{factor("Lifestyle", 90)}

	t.Run("with a matched room", func(t *testing.T) {
		room := newRoom("r1")
		assert.Contains(t, Explain(factors, &room), "We've also found a twin-sharing room")
	})

	t.Run("without a matched room", func(t *testing.T) {
		assert.Contains(t, Explain(factors, nil), "We recommend you both search for rooms together")
	})
}

func TestExplain_Deterministic(t *testing.T) {
	factors := []domain.MatchFactor{factor("Lifestyle", 90), factor("Cultural", 95)}
	first := Explain(factors, nil)
	second := Explain(factors, nil)
	assert.Equal(t, first, second)
}
