package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/roomee/roomee-services/api/internal/admin/application"
	"github.com/roomee/roomee-services/api/internal/interfaces/http/common"
	publicapp "github.com/roomee/roomee-services/api/internal/public/application"
)

func (h *Handler) verificationListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := r.URL.Query()
		page, _ := common.ParsePositiveInt(query.Get("page"), 1)
		limit, _ := common.ParsePositiveInt(query.Get("limit"), 50)

		docs, err := h.verifications.ListPending(ctx, adminapp.Paging{Page: page, Limit: limit})
		if err != nil {
			h.logger.Printf("verification list failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load verifications")
			return
		}

		items := make([]verificationResponse, 0, len(docs))
		for _, doc := range docs {
			items = append(items, buildVerificationResponse(doc))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{
			"items": items,
			"page":  page,
			"limit": limit,
		})
	}
}

func (h *Handler) verificationReviewHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		documentID := strings.TrimSpace(chi.URLParam(r, "id"))
		if documentID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "document id is required")
			return
		}

		var req reviewRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}

		doc, err := h.verifications.Review(ctx, documentID, req.Approve, req.Reason)
		if err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "document not found")
				return
			}
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildVerificationResponse(*doc))
	}
}
