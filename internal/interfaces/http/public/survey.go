package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/roomee/roomee-services/api/internal/interfaces/http/common"
	publicapp "github.com/roomee/roomee-services/api/internal/public/application"
	publicdomain "github.com/roomee/roomee-services/api/internal/public/domain"
)

func (h *Handler) surveyQuestionsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		questions := h.surveys.Questions()
		items := make([]surveyQuestionResponse, 0, len(questions))
		for _, q := range questions {
			items = append(items, buildSurveyQuestionResponse(q))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"questions": items})
	}
}

func (h *Handler) surveyResponsesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req surveyResponsesRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.Responses) == 0 {
			common.WriteError(h.logger, w, http.StatusBadRequest, "at least one response is required")
			return
		}

		responses := make([]publicdomain.SurveyResponse, 0, len(req.Responses))
		for _, input := range req.Responses {
			responses = append(responses, publicdomain.SurveyResponse{
				QuestionID: input.QuestionID,
				Answer:     input.Answer,
				Weight:     input.Weight,
			})
		}

		if err := h.surveys.SubmitResponses(ctx, user.ID, responses); err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "profile not found")
				return
			}
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
