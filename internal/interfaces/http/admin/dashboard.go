package admin

import (
	"context"
	"net/http"
	"time"

	"github.com/roomee/roomee-services/api/internal/interfaces/http/common"
)

func (h *Handler) dashboardHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		stats, err := h.dashboard.Overview(ctx)
		if err != nil {
			h.logger.Printf("dashboard stats failed: %v", err)
			common.WriteError(h.logger, w, http.StatusInternalServerError, "failed to load dashboard")
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, buildDashboardResponse(stats))
	}
}
