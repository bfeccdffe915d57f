package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

func TestSurveyServiceQuestions(t *testing.T) {
	service := NewSurveyService(domain.DefaultSurveyCatalog(), newFakeProfileRepo())
	questions := service.Questions()
	require.Len(t, questions, 5)
	assert.Equal(t, "sleep_schedule", questions[0].ID)
}

func TestSurveyServiceSubmitResponses(t *testing.T) {
	valid := []domain.SurveyResponse{
		{QuestionID: "sleep_schedule", Answer: "night_owl", Weight: 5},
		{QuestionID: "cleanliness_level", Answer: "tidy_most_time", Weight: 3},
	}

	t.Run("stores valid responses", func(t *testing.T) {
		repo := newFakeProfileRepo(eligibleProfile("alice"))
		service := NewSurveyService(domain.DefaultSurveyCatalog(), repo)

		require.NoError(t, service.SubmitResponses(context.Background(), "alice", valid))
		stored, err := repo.FindByUserID(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, valid, stored.SurveyResponses)
	})

	t.Run("rejects unknown question", func(t *testing.T) {
		service := NewSurveyService(domain.DefaultSurveyCatalog(), newFakeProfileRepo(eligibleProfile("alice")))
		responses := []domain.SurveyResponse{{QuestionID: "favorite_color", Answer: "blue", Weight: 3}}
		assert.Error(t, service.SubmitResponses(context.Background(), "alice", responses))
	})

	t.Run("rejects answer outside the question's options", func(t *testing.T) {
		service := NewSurveyService(domain.DefaultSurveyCatalog(), newFakeProfileRepo(eligibleProfile("alice")))
		responses := []domain.SurveyResponse{{QuestionID: "sleep_schedule", Answer: "never_sleeps", Weight: 3}}
		assert.Error(t, service.SubmitResponses(context.Background(), "alice", responses))
	})

	t.Run("rejects out-of-range weight", func(t *testing.T) {
		service := NewSurveyService(domain.DefaultSurveyCatalog(), newFakeProfileRepo(eligibleProfile("alice")))
		responses := []domain.SurveyResponse{{QuestionID: "sleep_schedule", Answer: "night_owl", Weight: 9}}
		assert.Error(t, service.SubmitResponses(context.Background(), "alice", responses))
	})

	t.Run("rejects duplicate question responses", func(t *testing.T) {
		service := NewSurveyService(domain.DefaultSurveyCatalog(), newFakeProfileRepo(eligibleProfile("alice")))
		responses := []domain.SurveyResponse{
			{QuestionID: "sleep_schedule", Answer: "night_owl", Weight: 5},
			{QuestionID: "sleep_schedule", Answer: "early_bird", Weight: 2},
		}
		assert.Error(t, service.SubmitResponses(context.Background(), "alice", responses))
	})
}
