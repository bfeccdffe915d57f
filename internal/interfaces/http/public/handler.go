package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	publicapp "github.com/roomee/roomee-services/api/internal/public/application"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger   *log.Logger
	profiles *publicapp.ProfileService
	surveys  *publicapp.SurveyService
	rooms    *publicapp.RoomService
	matches  *publicapp.MatchService
	identity *publicapp.IdentityService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger   *log.Logger
	Profiles *publicapp.ProfileService
	Surveys  *publicapp.SurveyService
	Rooms    *publicapp.RoomService
	Matches  *publicapp.MatchService
	Identity *publicapp.IdentityService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:   cfg.Logger,
		profiles: cfg.Profiles,
		surveys:  cfg.Surveys,
		rooms:    cfg.Rooms,
		matches:  cfg.Matches,
		identity: cfg.Identity,
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router, authMiddleware func(http.Handler) http.Handler) {
	r.Get("/survey/questions", h.surveyQuestionsHandler())
	r.Get("/rooms", h.roomListHandler())

	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Put("/survey/responses", h.surveyResponsesHandler())
		r.Get("/profiles/me", h.profileGetHandler())
		r.Put("/profiles/me", h.profileUpdateHandler())
		r.Post("/rooms", h.roomCreateHandler())
		r.Patch("/rooms/{id}/active", h.roomSetActiveHandler())
		r.Post("/matches/find", h.matchFindHandler())
		r.Get("/matches/me", h.matchHistoryHandler())
		r.Patch("/matches/{id}/status", h.matchStatusHandler())
		r.Post("/identity/documents", h.documentSubmitHandler())
		r.Get("/auth/verify", h.authVerifyHandler())
	})
}
