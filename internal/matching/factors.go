package matching

import (
	"math"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// EvaluateFactor scores one factor's question set for two respondents on a
// 0-100 scale. Questions either side left unanswered do not contribute. Each
// compared pair weighs its similarity by the higher of the two declared
// response weights; the result is the weighted mean similarity scaled by 20,
// so a uniform similarity of 5 maps to 100. With no comparable questions the
// factor stays at the neutral default of 50 instead of biasing an incomplete
// profile toward zero or full compatibility.
func (e *Engine) EvaluateFactor(questionIDs []string, a, b domain.UserProfile) int {
	var sum, weights float64

	for _, questionID := range questionIDs {
		responseA, okA := a.ResponseByQuestion(questionID)
		responseB, okB := b.ResponseByQuestion(questionID)
		if !okA || !okB {
			continue
		}

		similarity := e.CompareAnswers(responseA.Answer, responseB.Answer)
		weight := float64(max(responseA.Weight, responseB.Weight))
		sum += float64(similarity) * weight
		weights += weight
	}

	if weights == 0 {
		return 50
	}
	return int(math.Round(sum / weights * 20))
}

// CulturalScore measures overlap on languages, cultural preferences and
// dietary restrictions. Each axis with overlap contributes 20, 30 or 25
// points per shared item respectively; the score is the average of the
// contributing axes capped at 100. The second return value is false when no
// axis overlaps: cultural compatibility is a bonus signal only and the factor
// is then omitted from the overall score rather than counted as zero.
func (e *Engine) CulturalScore(a, b domain.UserProfile) (int, bool) {
	var contributions []int

	if shared := countShared(a.Accessibility.LanguagesSpoken, b.Accessibility.LanguagesSpoken); shared > 0 {
		contributions = append(contributions, 20*shared)
	}
	if len(a.Accessibility.CulturalPreferences) > 0 && len(b.Accessibility.CulturalPreferences) > 0 {
		if shared := countShared(a.Accessibility.CulturalPreferences, b.Accessibility.CulturalPreferences); shared > 0 {
			contributions = append(contributions, 30*shared)
		}
	}
	if len(a.Accessibility.DietaryRestrictions) > 0 && len(b.Accessibility.DietaryRestrictions) > 0 {
		if shared := countShared(a.Accessibility.DietaryRestrictions, b.Accessibility.DietaryRestrictions); shared > 0 {
			contributions = append(contributions, 25*shared)
		}
	}

	if len(contributions) == 0 {
		return 0, false
	}

	total := 0
	for _, c := range contributions {
		total += c
	}
	score := int(math.Round(float64(total) / float64(len(contributions))))
	if score > 100 {
		score = 100
	}
	return score, true
}

// ProfessionalScore rates occupation and age alignment from a baseline of 50.
// Identical occupations add 30; the complementary student/working pair adds
// 15. Age gaps of at most three years add 20, at most six add 10.
func (e *Engine) ProfessionalScore(a, b domain.UserProfile) int {
	score := 50

	if a.Occupation == b.Occupation {
		score += 30
	} else if isStudentWorkingPair(a.Occupation, b.Occupation) {
		score += 15
	}

	ageDiff := a.Age - b.Age
	if ageDiff < 0 {
		ageDiff = -ageDiff
	}
	switch {
	case ageDiff <= 3:
		score += 20
	case ageDiff <= 6:
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

// MatchFactors produces the full categorized breakdown of a comparison:
// the survey-backed factors, the professional/age factor, and the cultural
// factor when it has signal.
func (e *Engine) MatchFactors(a, b domain.UserProfile) []domain.MatchFactor {
	factors := make([]domain.MatchFactor, 0, len(e.cfg.SurveyFactors)+2)

	for _, def := range e.cfg.SurveyFactors {
		score := e.EvaluateFactor(def.QuestionIDs, a, b)
		factors = append(factors, domain.MatchFactor{
			Category:    def.Category,
			Description: factorDescription(def.Category, score),
			Score:       score,
			Importance:  def.Importance,
		})
	}

	if cultural, ok := e.CulturalScore(a, b); ok {
		factors = append(factors, domain.MatchFactor{
			Category:    "Cultural",
			Description: "You share cultural interests and language compatibility",
			Score:       cultural,
			Importance:  domain.ImportanceMedium,
		})
	}

	professional := e.ProfessionalScore(a, b)
	factors = append(factors, domain.MatchFactor{
		Category:    "Professional",
		Description: factorDescription("Professional", professional),
		Score:       professional,
		Importance:  domain.ImportanceMedium,
	})

	return factors
}

func factorDescription(category string, score int) string {
	switch category {
	case "Lifestyle":
		return "Your living habits and daily routines align " + band(score, "perfectly", "well", "moderately")
	case "Schedule":
		return "Your sleep and work schedules " + band(score, "match excellently", "complement each other", "have some overlap")
	case "Social":
		return "Your social preferences " + band(score, "align perfectly", "work well together", "are compatible")
	case "Cleanliness":
		return "Your cleanliness standards " + band(score, "match perfectly", "are very compatible", "align reasonably well")
	case "Professional":
		return "Your work/study schedules " + band(score, "align well", "are compatible", "can work together")
	}
	return category + " compatibility"
}

func band(score int, high, mid, low string) string {
	switch {
	case score > 80:
		return high
	case score > 60:
		return mid
	default:
		return low
	}
}

func countShared(a, b []string) int {
	set := make(map[string]struct{}, len(b))
	for _, item := range b {
		set[item] = struct{}{}
	}
	shared := 0
	seen := make(map[string]struct{}, len(a))
	for _, item := range a {
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		if _, ok := set[item]; ok {
			shared++
		}
	}
	return shared
}

func isStudentWorkingPair(a, b domain.Occupation) bool {
	return (a == "student" && b == "working") || (a == "working" && b == "student")
}
