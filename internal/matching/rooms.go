package matching

import (
	"math"
	"sort"
	"time"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// FindCompatibleRooms filters the candidate listings against the pair's
// combined preferences and returns the survivors ranked best first. Only
// twin-sharing placement is supported: both members must accept a twin
// arrangement and the room itself must be a twin listing, so single-occupancy
// inventory is never suggested for a pair. Ties keep input order.
func (e *Engine) FindCompatibleRooms(a, b domain.UserProfile, rooms []domain.Room) []domain.Room {
	avgMaxBudget := averageMaxBudget(a, b)
	latestMoveIn := laterMoveIn(a, b)

	matched := make([]domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if !room.HasValidAvailability() {
			e.logf("skipping room %s: availableFrom after availableUntil", room.ID)
			continue
		}
		if float64(room.Rent.Int()) > avgMaxBudget {
			continue
		}
		if !a.RoomPreferences.BedType.AcceptsTwin() || !b.RoomPreferences.BedType.AcceptsTwin() || room.BedType != "twin" {
			continue
		}
		if !locationAcceptable(room.Location, a.PreferredAreas, b.PreferredAreas) {
			continue
		}
		if room.AvailableFrom.After(latestMoveIn) {
			continue
		}
		matched = append(matched, room)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return e.RoomScore(matched[i], a, b) > e.RoomScore(matched[j], a, b)
	})
	return matched
}

// RoomScore ranks one listing for a pair on a 0-100 scale: budget fit at 30%,
// amenity fit at 20%, 10 points per safety feature, and up to 20 points of
// presentation credit for photos.
func (e *Engine) RoomScore(room domain.Room, a, b domain.UserProfile) int {
	var score float64

	avgMaxBudget := averageMaxBudget(a, b)
	if avgMaxBudget > 0 {
		rent := float64(room.Rent.Int())
		budgetFit := math.Max(0, 100-math.Abs(rent-avgMaxBudget)/avgMaxBudget*100)
		score += budgetFit * 0.3
	}

	if len(room.Amenities) > 0 {
		desired := make(map[string]struct{}, len(a.RoomPreferences.Amenities)+len(b.RoomPreferences.Amenities))
		for _, amenity := range a.RoomPreferences.Amenities {
			desired[amenity] = struct{}{}
		}
		for _, amenity := range b.RoomPreferences.Amenities {
			desired[amenity] = struct{}{}
		}
		matches := 0
		for _, amenity := range room.Amenities {
			if _, ok := desired[amenity]; ok {
				matches++
			}
		}
		score += float64(matches) / float64(len(room.Amenities)) * 100 * 0.2
	}

	score += float64(len(room.SafetyFeatures)) * 10
	score += math.Min(float64(len(room.Photos))*5, 20)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return int(math.Round(score))
}

func averageMaxBudget(a, b domain.UserProfile) float64 {
	return float64(a.RoomPreferences.BudgetRange.Max+b.RoomPreferences.BudgetRange.Max) / 2
}

func laterMoveIn(a, b domain.UserProfile) time.Time {
	if a.RoomPreferences.MoveInDate.After(b.RoomPreferences.MoveInDate) {
		return a.RoomPreferences.MoveInDate
	}
	return b.RoomPreferences.MoveInDate
}

// locationAcceptable skips the location check entirely when either member has
// no preferred areas; an empty list means no preference, not "match nothing".
func locationAcceptable(location string, areasA, areasB []string) bool {
	if len(areasA) == 0 || len(areasB) == 0 {
		return true
	}
	for _, area := range areasA {
		if area == location {
			return true
		}
	}
	for _, area := range areasB {
		if area == location {
			return true
		}
	}
	return false
}
