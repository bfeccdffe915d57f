package public

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/roomee/roomee-services/api/internal/interfaces/http/common"
	"github.com/roomee/roomee-services/api/internal/matching"
	publicapp "github.com/roomee/roomee-services/api/internal/public/application"
	publicdomain "github.com/roomee/roomee-services/api/internal/public/domain"
)

func (h *Handler) matchFindHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Match runs scan the whole candidate pool, so allow more headroom
		// than the single-document endpoints.
		ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req matchFindRequest
		if r.ContentLength > 0 {
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
				return
			}
		}

		result, err := h.matches.Find(ctx, user.ID, req.Refresh)
		if err != nil {
			if errors.Is(err, matching.ErrNoMatch) {
				common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{
					"status":  "no_match",
					"message": "No compatible roommate is available right now. Complete your survey and verification, then try again later.",
				})
				return
			}
			h.logger.Printf("match run failed user=%s err=%v", user.ID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "match run failed")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildMatchResponse(*result))
	}
}

func (h *Handler) matchHistoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		matches, err := h.matches.History(ctx, user.ID)
		if err != nil {
			h.logger.Printf("match history fetch failed user=%s err=%v", user.ID, err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load match history")
			return
		}

		items := make([]matchResponse, 0, len(matches))
		for _, match := range matches {
			items = append(items, buildMatchResponse(match))
		}
		common.WriteJSON(h.logger, w, http.StatusOK, map[string]any{"matches": items})
	}
}

func (h *Handler) matchStatusHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		user, ok := common.UserFromContext(ctx)
		if !ok {
			common.WriteError(h.logger, w, http.StatusUnauthorized, "authentication required")
			return
		}

		matchID := strings.TrimSpace(chi.URLParam(r, "id"))
		if matchID == "" {
			common.WriteError(h.logger, w, http.StatusBadRequest, "match id is required")
			return
		}

		var req matchStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, "invalid request body")
			return
		}
		status, err := publicdomain.NewMatchStatus(req.Status)
		if err != nil {
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		if err := h.matches.UpdateStatus(ctx, matchID, user.ID, status); err != nil {
			if errors.Is(err, publicapp.ErrNotFound) {
				common.WriteError(h.logger, w, http.StatusNotFound, "match not found")
				return
			}
			common.WriteError(h.logger, w, http.StatusBadRequest, err.Error())
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
