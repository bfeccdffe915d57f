package matching

import (
	"math"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// CompatibilityScore aggregates the factor breakdown into a single 0-100
// score. It is the weighted mean of the factor scores with high-importance
// factors counting three times and medium twice, so lifestyle, schedule and
// cleanliness dominate. Symmetric: score(a,b) == score(b,a) because the
// comparator's table is populated symmetrically.
func (e *Engine) CompatibilityScore(a, b domain.UserProfile) int {
	return overallScore(e.MatchFactors(a, b))
}

func overallScore(factors []domain.MatchFactor) int {
	var weighted, totalWeight int
	for _, factor := range factors {
		w := factor.Importance.Weight()
		weighted += factor.Score * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 0
	}
	return int(math.Round(float64(weighted) / float64(totalWeight)))
}
