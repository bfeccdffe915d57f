package application

import (
	"context"
	"errors"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomee/roomee-services/api/internal/matching"
	"github.com/roomee/roomee-services/api/internal/public/domain"
)

func testLogger() *log.Logger {
	return log.New(os.Stderr, "[application-test] ", log.LstdFlags)
}

func eligibleProfile(userID string) domain.UserProfile {
	return domain.UserProfile{
		ID:                      userID,
		UserID:                  userID,
		FullName:                "Member " + userID,
		Age:                     25,
		Occupation:              "working",
		BackgroundCheckComplete: true,
		Accessibility: domain.Accessibility{
			LanguagesSpoken: domain.LanguageList{"English"},
		},
		SurveyResponses: []domain.SurveyResponse{
			{QuestionID: "sleep_schedule", Answer: "early_bird", Weight: 5},
			{QuestionID: "social_frequency", Answer: "occasional_gatherings", Weight: 4},
			{QuestionID: "cleanliness_level", Answer: "very_organized", Weight: 5},
			{QuestionID: "personal_space", Answer: "moderate_space", Weight: 4},
			{QuestionID: "lifestyle_priorities", Answer: "health_wellness", Weight: 4},
		},
		RoomPreferences: domain.RoomPreferences{
			BedType:     "twin",
			FloorLevel:  "no-preference",
			BudgetRange: domain.BudgetRange{Min: 500, Max: 1200},
			MoveInDate:  time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		},
	}
}

func activeRoom(id string) domain.Room {
	return domain.Room{
		ID:            id,
		OwnerID:       "owner",
		Title:         "Room " + id,
		Location:      "Downtown District",
		BedType:       "twin",
		Rent:          900,
		FloorLevel:    2,
		AvailableFrom: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
	}
}

type matchServiceFixture struct {
	service  *MatchService
	profiles *fakeProfileRepo
	rooms    *fakeRoomRepo
	matches  *fakeMatchRepo
	verifier *fakeVerifier
	cache    *fakeMatchCache
}

func newMatchServiceFixture(t *testing.T) *matchServiceFixture {
	t.Helper()
	logger := testLogger()
	f := &matchServiceFixture{
		profiles: newFakeProfileRepo(eligibleProfile("alice"), eligibleProfile("bob")),
		rooms:    &fakeRoomRepo{rooms: []domain.Room{activeRoom("r1")}},
		matches:  newFakeMatchRepo(),
		verifier: &fakeVerifier{verified: map[string]bool{"alice": true, "bob": true}},
		cache:    newFakeMatchCache(),
	}
	f.service = NewMatchService(MatchServiceConfig{
		Orchestrator: matching.NewOrchestrator(matching.NewEngine(matching.DefaultConfig(), logger), logger),
		Profiles:     f.profiles,
		Rooms:        f.rooms,
		Matches:      f.matches,
		Verifier:     f.verifier,
		Cache:        f.cache,
		CacheTTL:     5 * time.Minute,
		Logger:       logger,
	})
	f.service.now = func() time.Time { return time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC) }
	return f
}

func TestMatchServiceFind_MatchesAndPersists(t *testing.T) {
	f := newMatchServiceFixture(t)

	result, err := f.service.Find(context.Background(), "alice", false)
	require.NoError(t, err)
	assert.Equal(t, "alice", result.User1ID)
	assert.Equal(t, "bob", result.User2ID)
	assert.Equal(t, domain.MatchPending, result.Status)

	stored, err := f.matches.FindByID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.User2ID, stored.User2ID)

	cached, err := f.cache.Latest(context.Background(), "alice")
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, result.ID, cached.ID)
	assert.Equal(t, 5*time.Minute, f.cache.lastTTL)
}

func TestMatchServiceFind_CacheBehavior(t *testing.T) {
	t.Run("returns cached result without rerunning", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		cached := domain.MatchResult{ID: "cached-match", User1ID: "alice", User2ID: "bob"}
		f.cache.entries["alice"] = cached

		result, err := f.service.Find(context.Background(), "alice", false)
		require.NoError(t, err)
		assert.Equal(t, "cached-match", result.ID)
		assert.Empty(t, f.matches.matches)
	})

	t.Run("refresh bypasses the cache", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		f.cache.entries["alice"] = domain.MatchResult{ID: "cached-match"}

		result, err := f.service.Find(context.Background(), "alice", true)
		require.NoError(t, err)
		assert.NotEqual(t, "cached-match", result.ID)
	})

	t.Run("cache read failure degrades to a full run", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		f.cache.readErr = errors.New("redis down")

		result, err := f.service.Find(context.Background(), "alice", false)
		require.NoError(t, err)
		assert.NotNil(t, result)
	})

	t.Run("cache write failure does not fail the match", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		f.cache.writeErr = errors.New("redis down")

		_, err := f.service.Find(context.Background(), "alice", false)
		require.NoError(t, err)
	})
}

func TestMatchServiceFind_NoMatchOutcomes(t *testing.T) {
	t.Run("unknown requester", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		_, err := f.service.Find(context.Background(), "nobody", true)
		assert.ErrorIs(t, err, matching.ErrNoMatch)
	})

	t.Run("unverified requester", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		f.verifier.verified["alice"] = false
		_, err := f.service.Find(context.Background(), "alice", true)
		assert.ErrorIs(t, err, matching.ErrNoMatch)
	})

	t.Run("incomplete background check", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		profile := eligibleProfile("alice")
		profile.BackgroundCheckComplete = false
		f.profiles.profiles["alice"] = profile
		_, err := f.service.Find(context.Background(), "alice", true)
		assert.ErrorIs(t, err, matching.ErrNoMatch)
	})

	t.Run("empty room pool", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		f.rooms.rooms = nil
		_, err := f.service.Find(context.Background(), "alice", true)
		assert.ErrorIs(t, err, matching.ErrNoMatch)
	})
}

func TestMatchServiceFind_CandidatePoolRequiresVerification(t *testing.T) {
	t.Run("unverified candidate is never the match", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		// Mallory answers identically to alice and would outscore bob, but
		// has no entry in the verifier. Bob is made a weaker match.
		bob := eligibleProfile("bob")
		bob.SurveyResponses[0].Answer = "night_owl"
		f.profiles.profiles["bob"] = bob
		f.profiles.profiles["mallory"] = eligibleProfile("mallory")

		result, err := f.service.Find(context.Background(), "alice", true)
		require.NoError(t, err)
		assert.Equal(t, "bob", result.User2ID)
	})

	t.Run("pool of only unverified candidates yields no match", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		f.verifier.verified["bob"] = false

		_, err := f.service.Find(context.Background(), "alice", true)
		assert.ErrorIs(t, err, matching.ErrNoMatch)
	})

	t.Run("candidate without a background check is excluded", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		bob := eligibleProfile("bob")
		bob.BackgroundCheckComplete = false
		f.profiles.profiles["bob"] = bob

		_, err := f.service.Find(context.Background(), "alice", true)
		assert.ErrorIs(t, err, matching.ErrNoMatch)
	})

	t.Run("candidate verification fault is not a no-match", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		f.verifier.errFor = map[string]error{"bob": errors.New("document store down")}

		_, err := f.service.Find(context.Background(), "alice", true)
		require.Error(t, err)
		assert.NotErrorIs(t, err, matching.ErrNoMatch)
	})
}

func TestMatchServiceFind_InfrastructureFaultIsNotNoMatch(t *testing.T) {
	f := newMatchServiceFixture(t)
	f.rooms.err = errors.New("connection reset")

	_, err := f.service.Find(context.Background(), "alice", true)
	require.Error(t, err)
	assert.NotErrorIs(t, err, matching.ErrNoMatch)
}

func TestMatchServiceUpdateStatus(t *testing.T) {
	seed := func(f *matchServiceFixture) domain.MatchResult {
		match := domain.MatchResult{
			ID:      "m1",
			User1ID: "alice",
			User2ID: "bob",
			Status:  domain.MatchPending,
		}
		f.matches.matches[match.ID] = match
		return match
	}

	t.Run("participant can transition", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		seed(f)

		require.NoError(t, f.service.UpdateStatus(context.Background(), "m1", "bob", domain.MatchOneInterested))
		stored, err := f.matches.FindByID(context.Background(), "m1")
		require.NoError(t, err)
		assert.Equal(t, domain.MatchOneInterested, stored.Status)
	})

	t.Run("outsider cannot transition", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		seed(f)

		err := f.service.UpdateStatus(context.Background(), "m1", "mallory", domain.MatchDeclined)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("pending cannot be re-entered", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		seed(f)

		err := f.service.UpdateStatus(context.Background(), "m1", "alice", domain.MatchPending)
		assert.Error(t, err)
	})

	t.Run("transition invalidates the requester's cache", func(t *testing.T) {
		f := newMatchServiceFixture(t)
		seed(f)
		f.cache.entries["alice"] = domain.MatchResult{ID: "m1"}

		require.NoError(t, f.service.UpdateStatus(context.Background(), "m1", "alice", domain.MatchBothInterested))
		cached, err := f.cache.Latest(context.Background(), "alice")
		require.NoError(t, err)
		assert.Nil(t, cached)
	})
}
