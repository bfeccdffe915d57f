package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/roomee/roomee-services/api/internal/matching"
	"github.com/roomee/roomee-services/api/internal/metrics"
	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// MatchService runs the engine over the stored pools and persists the
// outcome. A nil cache disables the read-through path.
type MatchService struct {
	orchestrator *matching.Orchestrator
	profiles     ProfileRepository
	rooms        RoomRepository
	matches      MatchRepository
	verifier     Verifier
	cache        MatchCache
	cacheTTL     time.Duration
	logger       *log.Logger
	now          func() time.Time
}

type MatchServiceConfig struct {
	Orchestrator *matching.Orchestrator
	Profiles     ProfileRepository
	Rooms        RoomRepository
	Matches      MatchRepository
	Verifier     Verifier
	Cache        MatchCache
	CacheTTL     time.Duration
	Logger       *log.Logger
}

func NewMatchService(cfg MatchServiceConfig) *MatchService {
	ttl := cfg.CacheTTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &MatchService{
		orchestrator: cfg.Orchestrator,
		profiles:     cfg.Profiles,
		rooms:        cfg.Rooms,
		matches:      cfg.Matches,
		verifier:     cfg.Verifier,
		cache:        cfg.Cache,
		cacheTTL:     ttl,
		logger:       cfg.Logger,
		now:          time.Now,
	}
}

func (s *MatchService) logf(format string, args ...any) {
	if s.logger != nil {
		s.logger.Printf(format, args...)
	}
}

// Find produces the best current match for the requester. With refresh
// false, a cached result from a recent run is returned as-is. Business
// no-match surfaces as matching.ErrNoMatch; everything else is a fault.
func (s *MatchService) Find(ctx context.Context, userID string, refresh bool) (*domain.MatchResult, error) {
	if !refresh && s.cache != nil {
		cached, err := s.cache.Latest(ctx, userID)
		if err != nil {
			s.logf("match cache read failed for %s: %v", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	requester, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			metrics.MatchRequests.WithLabelValues("no_match").Inc()
			return nil, matching.ErrNoMatch
		}
		metrics.MatchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load requester profile: %w", err)
	}

	verified, err := s.verifier.IsVerified(ctx, userID)
	if err != nil {
		metrics.MatchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("check verification: %w", err)
	}
	verified = verified && requester.BackgroundCheckComplete

	candidates, err := s.profiles.FindCandidates(ctx, userID)
	if err != nil {
		metrics.MatchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load candidate pool: %w", err)
	}
	candidates, err = s.verifiedCandidates(ctx, candidates)
	if err != nil {
		metrics.MatchRequests.WithLabelValues("error").Inc()
		return nil, err
	}

	rooms, err := s.rooms.FindActive(ctx, RoomFilter{Now: s.now().UTC()})
	if err != nil {
		metrics.MatchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load room pool: %w", err)
	}
	metrics.RoomPoolSize.Set(float64(len(rooms)))

	result, err := s.orchestrator.FindBestMatch(*requester, verified, candidates, rooms)
	if err != nil {
		if errors.Is(err, matching.ErrNoMatch) {
			metrics.MatchRequests.WithLabelValues("no_match").Inc()
		} else {
			metrics.MatchRequests.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	if err := s.matches.Create(ctx, result); err != nil {
		metrics.MatchRequests.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("persist match: %w", err)
	}
	if s.cache != nil {
		if err := s.cache.StoreLatest(ctx, userID, result, s.cacheTTL); err != nil {
			s.logf("match cache write failed for %s: %v", userID, err)
		}
	}

	metrics.MatchRequests.WithLabelValues("matched").Inc()
	metrics.CompatibilityScores.Observe(float64(result.CompatibilityScore))
	return result, nil
}

// verifiedCandidates narrows the pool to members allowed to be matched:
// background check complete and a valid identity document on file. The
// requester gate alone is not enough, an unverified member must never be
// handed out as somebody's roommate.
func (s *MatchService) verifiedCandidates(ctx context.Context, candidates []domain.UserProfile) ([]domain.UserProfile, error) {
	pool := make([]domain.UserProfile, 0, len(candidates))
	for _, candidate := range candidates {
		if !candidate.BackgroundCheckComplete {
			continue
		}
		ok, err := s.verifier.IsVerified(ctx, candidate.UserID)
		if err != nil {
			return nil, fmt.Errorf("check candidate verification: %w", err)
		}
		if ok {
			pool = append(pool, candidate)
		}
	}
	return pool, nil
}

// History returns the member's persisted matches, newest first.
func (s *MatchService) History(ctx context.Context, userID string) ([]domain.MatchResult, error) {
	return s.matches.FindByUser(ctx, userID)
}

// UpdateStatus applies a member-driven status transition. Only a
// participant of the match may transition it, and pending can never be
// re-entered.
func (s *MatchService) UpdateStatus(ctx context.Context, matchID, userID string, status domain.MatchStatus) error {
	if status == domain.MatchPending {
		return fmt.Errorf("matches cannot be reset to pending")
	}
	match, err := s.matches.FindByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.Involves(userID) {
		return ErrNotFound
	}
	if err := s.matches.UpdateStatus(ctx, matchID, status); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, match.User1ID); err != nil {
			s.logf("match cache invalidate failed for %s: %v", match.User1ID, err)
		}
	}
	return nil
}
