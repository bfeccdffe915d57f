package application

import (
	"context"
	"fmt"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// SurveyService exposes the question catalog and accepts response sets.
type SurveyService struct {
	catalog  domain.SurveyCatalog
	profiles ProfileRepository
}

func NewSurveyService(catalog domain.SurveyCatalog, profiles ProfileRepository) *SurveyService {
	return &SurveyService{catalog: catalog, profiles: profiles}
}

func (s *SurveyService) Questions() []domain.SurveyQuestion {
	return s.catalog.Questions()
}

func (s *SurveyService) MandatoryQuestionIDs() []string {
	return s.catalog.MandatoryQuestionIDs()
}

// SubmitResponses replaces the member's response set. Every response must
// reference a catalog question and one of its options; duplicates of the
// same question are rejected rather than silently collapsed.
func (s *SurveyService) SubmitResponses(ctx context.Context, userID string, responses []domain.SurveyResponse) error {
	seen := make(map[string]struct{}, len(responses))
	for _, r := range responses {
		if err := s.catalog.ValidateResponse(r); err != nil {
			return err
		}
		if _, dup := seen[r.QuestionID]; dup {
			return fmt.Errorf("duplicate response for question %s", r.QuestionID)
		}
		seen[r.QuestionID] = struct{}{}
	}
	return s.profiles.ReplaceSurveyResponses(ctx, userID, responses)
}
