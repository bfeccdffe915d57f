package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	adminapp "github.com/roomee/roomee-services/api/internal/admin/application"
	"github.com/roomee/roomee-services/api/internal/config"
	"github.com/roomee/roomee-services/api/internal/infrastructure/cache"
	mongodoc "github.com/roomee/roomee-services/api/internal/infrastructure/mongo"
	adminhttp "github.com/roomee/roomee-services/api/internal/interfaces/http/admin"
	commonhttp "github.com/roomee/roomee-services/api/internal/interfaces/http/common"
	publichttp "github.com/roomee/roomee-services/api/internal/interfaces/http/public"
	"github.com/roomee/roomee-services/api/internal/matching"
	"github.com/roomee/roomee-services/api/internal/metrics"
	publicapp "github.com/roomee/roomee-services/api/internal/public/application"
	publicdomain "github.com/roomee/roomee-services/api/internal/public/domain"
)

// Server is the composition root. It owns the HTTP lifecycle and wires the
// application services into the public and admin handler sets.
type Server struct {
	logger              *log.Logger
	client              *mongo.Client
	database            *mongo.Database
	redisClose          func() error
	profileService      *publicapp.ProfileService
	surveyService       *publicapp.SurveyService
	roomService         *publicapp.RoomService
	matchService        *publicapp.MatchService
	identityService     *publicapp.IdentityService
	dashboardService    *adminapp.DashboardService
	verificationService *adminapp.VerificationService
	jwtConfigs          []config.JWTConfig
	jwtAudience         string
	allowedEmailDomains map[string]struct{}
	blockedEmailDomains map[string]struct{}
	adminEmails         map[string]struct{}
	addr                string
	allowedOrigins      []string
}

type authenticatedUser = commonhttp.AuthenticatedUser

// Run starts the HTTP server and assembles routing and middleware for the
// public and admin surfaces. Infrastructure setup only, no domain logic here.
func (s *Server) Run() error {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(withCORS(s.allowedOrigins))

	router.Get("/healthz", s.healthHandler())
	router.Get("/metrics", metrics.Handler().ServeHTTP)

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:   s.logger,
		Profiles: s.profileService,
		Surveys:  s.surveyService,
		Rooms:    s.roomService,
		Matches:  s.matchService,
		Identity: s.identityService,
	})
	publicHandler.Register(router, s.authMiddleware)

	adminHandler := adminhttp.NewHandler(adminhttp.Config{
		Logger:        s.logger,
		Dashboard:     s.dashboardService,
		Verifications: s.verificationService,
	})
	router.Route("/admin", func(r chi.Router) {
		adminHandler.Register(r, s.adminAuthMiddleware)
	})

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening on %s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// withCORS returns middleware that applies CORS headers for allowed origins.
func withCORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{})
	allowAll := false
	for _, origin := range origins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			allowAll = true
			continue
		}
		allowed[origin] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := strings.TrimSpace(r.Header.Get("Origin"))
			if origin == "" || (!allowAll && len(allowed) > 0 && !originAllowed(origin, allowed)) {
				if r.Method == http.MethodOptions {
					w.WriteHeader(http.StatusNoContent)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Add("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,PATCH,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization,Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func originAllowed(origin string, allowed map[string]struct{}) bool {
	if len(allowed) == 0 {
		return true
	}
	_, ok := allowed[origin]
	return ok
}

// healthHandler pings MongoDB so monitoring sees infrastructure state, not
// domain state.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
			s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		s.writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}

// authMiddleware validates the Authorization bearer token and stores the
// authenticated user on the request context. Shared by all protected routes.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := s.authenticate(w, r)
		if !ok {
			return
		}

		user := authenticatedUser{
			ID:      claims.Subject,
			Name:    claims.Name,
			Email:   strings.ToLower(strings.TrimSpace(claims.Email)),
			Picture: claims.Picture,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminAuthMiddleware additionally requires the token email to be on the
// admin list.
func (s *Server) adminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := s.authenticate(w, r)
		if !ok {
			return
		}

		email := strings.ToLower(strings.TrimSpace(claims.Email))
		if _, ok := s.adminEmails[email]; !ok {
			s.writeJSON(w, http.StatusForbidden, map[string]string{"error": "admin access required"})
			return
		}

		user := authenticatedUser{
			ID:      claims.Subject,
			Name:    claims.Name,
			Email:   email,
			Picture: claims.Picture,
		}

		ctx := commonhttp.ContextWithUser(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// authenticate extracts and verifies the bearer token, writing the error
// response itself on failure.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (*authClaims, bool) {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if authHeader == "" {
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing Authorization header"})
		return nil, false
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "a bearer token is required"})
		return nil, false
	}

	tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))
	if tokenString == "" {
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "access token is empty"})
		return nil, false
	}

	claims, err := s.parseAuthToken(tokenString)
	if err != nil {
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": err.Error()})
		return nil, false
	}

	if !s.emailAllowed(claims.Email) {
		s.writeJSON(w, http.StatusForbidden, map[string]string{"error": "email address is not permitted"})
		return nil, false
	}

	return claims, true
}

// emailAllowed applies the domain allow list and the disposable provider
// block list to the token's email claim.
func (s *Server) emailAllowed(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return len(s.allowedEmailDomains) == 0
	}

	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}
	domain := email[at+1:]

	if _, blocked := s.blockedEmailDomains[domain]; blocked {
		return false
	}
	if len(s.allowedEmailDomains) > 0 {
		_, ok := s.allowedEmailDomains[domain]
		return ok
	}
	return true
}

// parseAuthToken tries each configured issuer in turn, verifying the
// signature and the issuer/audience pairing. Returns an auth error when no
// configuration matches.
func (s *Server) parseAuthToken(tokenString string) (*authClaims, error) {
	if len(s.jwtConfigs) == 0 {
		return nil, fmt.Errorf("authentication is not configured")
	}

	for _, cfg := range s.jwtConfigs {
		claims := &authClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
			if token.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("unexpected signing method: %s", token.Method.Alg())
			}
			return cfg.Secret, nil
		}, jwt.WithLeeway(30*time.Second))

		if err != nil || !token.Valid {
			continue
		}

		if cfg.Issuer != "" && claims.Issuer != cfg.Issuer {
			continue
		}

		now := time.Now()
		if claims.ExpiresAt != nil && now.After(claims.ExpiresAt.Time) {
			continue
		}
		if claims.NotBefore != nil && now.Before(claims.NotBefore.Time) {
			continue
		}
		if claims.Subject == "" {
			continue
		}
		if s.jwtAudience != "" && !contains(claims.Audience, s.jwtAudience) {
			continue
		}

		return claims, nil
	}

	return nil, fmt.Errorf("access token is invalid")
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

type authClaims struct {
	jwt.RegisteredClaims
	Name    string `json:"name,omitempty"`
	Email   string `json:"email,omitempty"`
	Picture string `json:"picture,omitempty"`
}

// writeJSON centralises Content-Type handling and encode error logging for
// responses written by the server itself.
func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Printf("failed to encode JSON response: %v", err)
	}
}

// shutdown disconnects MongoDB and Redis with a bounded timeout so process
// exit does not leak connections.
func (s *Server) shutdown(ctx context.Context) {
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(shutdownCtx); err != nil {
		s.logger.Printf("error disconnecting MongoDB: %v", err)
	}
	if s.redisClose != nil {
		if err := s.redisClose(); err != nil {
			s.logger.Printf("error closing Redis connection: %v", err)
		}
	}
}

// waitForShutdown watches ListenAndServe and OS signals to drive graceful
// shutdown. OS level concerns stay outside the application services.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server exited abnormally: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received signal %s, starting shutdown", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("error during server shutdown: %v", err)
		}
	}

	srv.shutdown(context.Background())
}

// New builds a Server from the Config and a connected Mongo client, resolving
// repositories, application services, and handlers.
func New(cfg config.Config, client *mongo.Client) *Server {
	srv := &Server{
		logger:              cfg.ServerLog,
		client:              client,
		database:            client.Database(cfg.MongoDatabase),
		jwtConfigs:          append([]config.JWTConfig(nil), cfg.JWTConfigs...),
		jwtAudience:         cfg.JWTAudience,
		allowedEmailDomains: domainSet(cfg.AllowedEmailDomains),
		blockedEmailDomains: domainSet(cfg.BlockedEmailDomains),
		adminEmails:         domainSet(cfg.AdminEmails),
		addr:                cfg.Addr,
		allowedOrigins:      append([]string(nil), cfg.AllowedOrigins...),
	}

	profileRepo := mongodoc.NewProfileRepository(srv.database, cfg.ProfileCollection)
	roomRepo := mongodoc.NewRoomRepository(srv.database, cfg.RoomCollection)
	matchRepo := mongodoc.NewMatchRepository(srv.database, cfg.MatchCollection)
	identityRepo := mongodoc.NewIdentityRepository(srv.database, cfg.DocumentCollection)
	statsRepo := mongodoc.NewStatsRepository(srv.database,
		cfg.ProfileCollection, cfg.RoomCollection, cfg.MatchCollection, cfg.DocumentCollection)

	srv.profileService = publicapp.NewProfileService(profileRepo)
	srv.surveyService = publicapp.NewSurveyService(publicdomain.DefaultSurveyCatalog(), profileRepo)
	srv.roomService = publicapp.NewRoomService(roomRepo)
	srv.identityService = publicapp.NewIdentityService(identityRepo)

	var matchCache publicapp.MatchCache
	if cfg.RedisAddr != "" {
		redisClient := cache.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		srv.redisClose = redisClient.Close
		matchCache = cache.NewMatchCache(redisClient)
	}

	engine := matching.NewEngine(matching.DefaultConfig(), cfg.ServerLog)
	srv.matchService = publicapp.NewMatchService(publicapp.MatchServiceConfig{
		Orchestrator: matching.NewOrchestrator(engine, cfg.ServerLog),
		Profiles:     profileRepo,
		Rooms:        roomRepo,
		Matches:      matchRepo,
		Verifier:     srv.identityService,
		Cache:        matchCache,
		CacheTTL:     cfg.MatchCacheTTL,
		Logger:       cfg.ServerLog,
	})

	srv.dashboardService = adminapp.NewDashboardService(statsRepo)
	srv.verificationService = adminapp.NewVerificationService(identityRepo)

	return srv
}

func domainSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}
