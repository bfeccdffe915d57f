package public

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/roomee/roomee-services/api/internal/interfaces/http/common"
	publicapp "github.com/roomee/roomee-services/api/internal/public/application"
)

func (h *Handler) documentSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req documentSubmitRequest
		r.Body = http.MaxBytesReader(w, r.Body, common.MaxRequestBody)
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		doc, err := h.identity.Submit(ctx, user.ID, publicapp.SubmitDocumentCommand{
			Type:          req.Type,
			Number:        req.Number,
			HolderName:    req.HolderName,
			DateOfBirth:   req.DateOfBirth,
			OCRConfidence: req.OCRConfidence,
		})
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusCreated, buildDocumentResponse(*doc))
	}
}
