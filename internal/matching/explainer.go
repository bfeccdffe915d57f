package matching

import (
	"strings"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// Explain renders a short match rationale. Factors scoring above 80 are named
// as the strong points; with none, a generic clause stands in. A second
// sentence covers the room situation. Fully deterministic given its inputs.
func Explain(factors []domain.MatchFactor, room *domain.Room) string {
	strong := make([]string, 0, len(factors))
	for _, factor := range factors {
		if factor.Score > 80 {
			strong = append(strong, strings.ToLower(factor.Category))
		}
	}

	points := joinClause(strong)
	if points == "" {
		points = "key compatibility factors"
	}

	var sb strings.Builder
	sb.WriteString("You're a great match because you align well on ")
	sb.WriteString(points)
	sb.WriteString(". ")
	if room != nil {
		sb.WriteString("We've also found a twin-sharing room that meets both your preferences for location, budget, and amenities.")
	} else {
		sb.WriteString("We recommend you both search for rooms together to find the perfect twin-sharing space.")
	}
	return sb.String()
}

func joinClause(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}
