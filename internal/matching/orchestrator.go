package matching

import (
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// ErrNoMatch signals the ordinary business outcome "no eligible match today".
// It covers ineligible requesters and empty pools alike and is never a system
// fault; infrastructure failures are returned as distinct errors by callers.
var ErrNoMatch = errors.New("no eligible match")

// Orchestrator is the engine's top-level entry point. Stateless across
// calls; each invocation works over the pools handed to it.
type Orchestrator struct {
	engine *Engine
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

func NewOrchestrator(engine *Engine, logger *log.Logger) *Orchestrator {
	return &Orchestrator{
		engine: engine,
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
}

func (o *Orchestrator) logf(format string, args ...any) {
	if o.logger != nil {
		o.logger.Printf(format, args...)
	}
}

// FindBestMatch selects the single best roommate for the requester from the
// candidate pool and pairs the winner with a room. The requester must be
// verified and have a completed survey. A pairing is only ever proposed with
// a room path: an empty active room pool means no match regardless of
// candidate scores. Candidates are evaluated in pool order and a later
// candidate must strictly beat the running best, so ties go to the earliest.
func (o *Orchestrator) FindBestMatch(requester domain.UserProfile, requesterVerified bool, candidates []domain.UserProfile, rooms []domain.Room) (*domain.MatchResult, error) {
	mandatory := o.engine.cfg.Catalog.MandatoryQuestionIDs()

	if !requesterVerified || !requester.HasCompletedSurvey(mandatory) {
		return nil, ErrNoMatch
	}
	o.reportUnknownResponses(requester)

	now := o.now()
	activeRooms := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if !room.HasValidAvailability() {
			o.logf("skipping room %s: availableFrom after availableUntil", room.ID)
			continue
		}
		if !room.AvailableAt(now) {
			continue
		}
		activeRooms = append(activeRooms, room)
	}
	if len(activeRooms) == 0 {
		return nil, ErrNoMatch
	}

	var best *domain.UserProfile
	bestScore := -1
	for i := range candidates {
		candidate := candidates[i]
		if candidate.ID == requester.ID || candidate.UserID == requester.UserID {
			continue
		}
		if !candidate.HasCompletedSurvey(mandatory) {
			continue
		}
		o.reportUnknownResponses(candidate)

		score := o.engine.CompatibilityScore(requester, candidate)
		if score > bestScore {
			bestScore = score
			best = &candidates[i]
		}
	}
	if best == nil {
		return nil, ErrNoMatch
	}

	factors := o.engine.MatchFactors(requester, *best)

	room, roomScore := o.selectRoom(requester, *best, activeRooms)

	// The explanation only claims a fitting room when the matcher found one;
	// a fallback suggestion did not meet location/budget/amenities.
	var explainedRoom *domain.Room
	if roomScore != nil {
		explainedRoom = &room
	}

	result := &domain.MatchResult{
		ID:                 o.newID(),
		User1ID:            requester.UserID,
		User2ID:            best.UserID,
		RoomID:             room.ID,
		CompatibilityScore: bestScore,
		MatchFactors:       factors,
		RoomCompatibility:  roomScore,
		ExplanationText:    Explain(factors, explainedRoom),
		ConfidenceLevel:    domain.ConfidenceForScore(bestScore),
		Status:             domain.MatchPending,
		CreatedAt:          now,
	}
	return result, nil
}

// selectRoom prefers the matcher's ranking. When nothing survives the filter
// the pair still gets a deterministic suggestion: the first active room
// honoring the requester's floor preference, else the first in pool order.
func (o *Orchestrator) selectRoom(requester, best domain.UserProfile, activeRooms []domain.Room) (domain.Room, *int) {
	compatible := o.engine.FindCompatibleRooms(requester, best, activeRooms)
	if len(compatible) > 0 {
		top := compatible[0]
		score := o.engine.RoomScore(top, requester, best)
		return top, &score
	}

	switch requester.RoomPreferences.FloorLevel {
	case "ground":
		for _, room := range activeRooms {
			if room.FloorLevel <= 1 {
				return room, nil
			}
		}
	case "high":
		for _, room := range activeRooms {
			if room.FloorLevel >= 2 {
				return room, nil
			}
		}
	}
	return activeRooms[0], nil
}

// reportUnknownResponses logs responses referencing questions outside the
// catalog. They are ignored for scoring, never fatal.
func (o *Orchestrator) reportUnknownResponses(profile domain.UserProfile) {
	for _, response := range profile.SurveyResponses {
		if _, ok := o.engine.cfg.Catalog.QuestionByID(response.QuestionID); !ok {
			o.logf("profile %s: response references unknown question %s", profile.ID, response.QuestionID)
		}
	}
}
