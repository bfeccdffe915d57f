package admin

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	adminapp "github.com/roomee/roomee-services/api/internal/admin/application"
)

// Handler wires admin HTTP endpoints to application services.
type Handler struct {
	logger        *log.Logger
	dashboard     *adminapp.DashboardService
	verifications *adminapp.VerificationService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger        *log.Logger
	Dashboard     *adminapp.DashboardService
	Verifications *adminapp.VerificationService
}

// NewHandler constructs the admin HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:        cfg.Logger,
		dashboard:     cfg.Dashboard,
		verifications: cfg.Verifications,
	}
}

// Register mounts all admin routes onto the router. The caller wraps the
// router with the admin auth middleware.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Get("/dashboard", h.dashboardHandler())
		r.Get("/verifications", h.verificationListHandler())
		r.Patch("/verifications/{id}", h.verificationReviewHandler())
	})
}
