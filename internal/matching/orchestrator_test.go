package matching

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

func eligibleRequester() domain.UserProfile {
	return newProfile("req",
		withResponses(completeResponses("early_bird", "occasional_gatherings", "very_organized", "moderate_space", "health_wellness")...),
	)
}

func eligibleCandidate(id, sleep string) domain.UserProfile {
	return newProfile(id,
		withResponses(completeResponses(sleep, "occasional_gatherings", "very_organized", "moderate_space", "health_wellness")...),
	)
}

func TestFindBestMatch_IneligibleRequester(t *testing.T) {
	o := testOrchestrator(t)
	rooms := []domain.Room{newRoom("r1", withRent(800))}
	candidates := []domain.UserProfile{eligibleCandidate("cand", "early_bird")}

	t.Run("unverified requester", func(t *testing.T) {
		_, err := o.FindBestMatch(eligibleRequester(), false, candidates, rooms)
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("incomplete survey", func(t *testing.T) {
		requester := newProfile("req", withResponses(response("sleep_schedule", "early_bird", 5)))
		_, err := o.FindBestMatch(requester, true, candidates, rooms)
		assert.ErrorIs(t, err, ErrNoMatch)
	})
}

func TestFindBestMatch_EmptyRoomPoolNeverMatches(t *testing.T) {
	o := testOrchestrator(t)
	candidates := []domain.UserProfile{eligibleCandidate("cand", "early_bird")}

	tests := []struct {
		name  string
		rooms []domain.Room
	}{
		{"no rooms at all", nil},
		{"only inactive rooms", []domain.Room{newRoom("r1", inactive())}},
		{"only expired rooms", []domain.Room{newRoom("r1", withAvailableUntil(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))}},
		{"only malformed rooms", []domain.Room{newRoom("r1", withAvailableFrom(time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)), withAvailableUntil(time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := o.FindBestMatch(eligibleRequester(), true, candidates, tt.rooms)
			assert.ErrorIs(t, err, ErrNoMatch)
		})
	}
}

func TestFindBestMatch_NoCandidates(t *testing.T) {
	o := testOrchestrator(t)
	rooms := []domain.Room{newRoom("r1", withRent(800))}
	requester := eligibleRequester()

	t.Run("empty pool", func(t *testing.T) {
		_, err := o.FindBestMatch(requester, true, nil, rooms)
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("pool containing only the requester", func(t *testing.T) {
		_, err := o.FindBestMatch(requester, true, []domain.UserProfile{requester}, rooms)
		assert.ErrorIs(t, err, ErrNoMatch)
	})

	t.Run("no candidate with a completed survey", func(t *testing.T) {
		incomplete := newProfile("cand", withResponses(response("sleep_schedule", "early_bird", 5)))
		_, err := o.FindBestMatch(requester, true, []domain.UserProfile{incomplete}, rooms)
		assert.ErrorIs(t, err, ErrNoMatch)
	})
}

func TestFindBestMatch_PicksHighestScoreAndFirstOnTies(t *testing.T) {
	o := testOrchestrator(t)
	rooms := []domain.Room{newRoom("r1", withRent(800))}
	requester := eligibleRequester()

	t.Run("highest score wins", func(t *testing.T) {
		weak := eligibleCandidate("weak", "night_owl")
		strong := eligibleCandidate("strong", "early_bird")

		result, err := o.FindBestMatch(requester, true, []domain.UserProfile{weak, strong}, rooms)
		require.NoError(t, err)
		assert.Equal(t, "user-strong", result.User2ID)
	})

	t.Run("first candidate wins ties", func(t *testing.T) {
		first := eligibleCandidate("first", "early_bird")
		second := eligibleCandidate("second", "early_bird")

		result, err := o.FindBestMatch(requester, true, []domain.UserProfile{first, second}, rooms)
		require.NoError(t, err)
		assert.Equal(t, "user-first", result.User2ID)
	})
}

func TestFindBestMatch_ResultShape(t *testing.T) {
	o := testOrchestrator(t)
	rooms := []domain.Room{newRoom("r1", withRent(800), withLocation("Downtown District"))}
	requester := eligibleRequester()
	candidate := eligibleCandidate("cand", "early_bird")

	result, err := o.FindBestMatch(requester, true, []domain.UserProfile{candidate}, rooms)
	require.NoError(t, err)

	assert.Equal(t, domain.MatchPending, result.Status)
	assert.Equal(t, "user-req", result.User1ID)
	assert.Equal(t, "user-cand", result.User2ID)
	assert.Equal(t, "r1", result.RoomID)
	assert.NotEmpty(t, result.ExplanationText)
	assert.NotEmpty(t, result.MatchFactors)
	assert.GreaterOrEqual(t, result.CompatibilityScore, 0)
	assert.LessOrEqual(t, result.CompatibilityScore, 100)
	assert.Equal(t, domain.ConfidenceForScore(result.CompatibilityScore), result.ConfidenceLevel)
	require.NotNil(t, result.RoomCompatibility)
	assert.GreaterOrEqual(t, *result.RoomCompatibility, 0)
	assert.LessOrEqual(t, *result.RoomCompatibility, 100)
}

func TestFindBestMatch_Deterministic(t *testing.T) {
	o := testOrchestrator(t)
	rooms := []domain.Room{newRoom("r1", withRent(800)), newRoom("r2", withRent(700))}
	requester := eligibleRequester()
	candidates := []domain.UserProfile{
		eligibleCandidate("c1", "night_owl"),
		eligibleCandidate("c2", "early_bird"),
		eligibleCandidate("c3", "flexible_schedule"),
	}

	first, err := o.FindBestMatch(requester, true, candidates, rooms)
	require.NoError(t, err)
	second, err := o.FindBestMatch(requester, true, candidates, rooms)
	require.NoError(t, err)

	assert.Equal(t, first.User2ID, second.User2ID)
	assert.Equal(t, first.RoomID, second.RoomID)
	assert.Equal(t, first.CompatibilityScore, second.CompatibilityScore)
	assert.Equal(t, first.MatchFactors, second.MatchFactors)
	assert.Equal(t, first.ExplanationText, second.ExplanationText)
}

func TestFindBestMatch_FallbackRoomSelection(t *testing.T) {
	rooms := []domain.Room{
		// Both rooms are priced above the pair's averaged budget so the
		// matcher returns nothing and the fallback applies.
		newRoom("upper", withRent(5000), withFloorLevel(4)),
		newRoom("ground", withRent(5000), withFloorLevel(1)),
	}
	candidate := eligibleCandidate("cand", "early_bird")

	tests := []struct {
		name     string
		pref     string
		expected string
	}{
		{"ground preference picks the low floor", "ground", "ground"},
		{"high preference picks the upper floor", "high", "upper"},
		{"no preference takes pool order", "no-preference", "upper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := testOrchestrator(t)
			requester := eligibleRequester()
			requester.RoomPreferences.FloorLevel = domain.FloorPreference(tt.pref)

			result, err := o.FindBestMatch(requester, true, []domain.UserProfile{candidate}, rooms)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result.RoomID)
			// A fallback suggestion carries no room-compatibility score and
			// the explanation recommends searching together.
			assert.Nil(t, result.RoomCompatibility)
			assert.Contains(t, result.ExplanationText, "search for rooms together")
		})
	}
}
