package matching

import (
	"log"
	"os"
	"testing"
	"time"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(DefaultConfig(), log.New(os.Stderr, "[matching-test] ", log.LstdFlags))
}

func testOrchestrator(t *testing.T) *Orchestrator {
	t.Helper()
	o := NewOrchestrator(testEngine(t), log.New(os.Stderr, "[matching-test] ", log.LstdFlags))
	o.now = func() time.Time { return time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC) }
	counter := 0
	o.newID = func() string {
		counter++
		return "match-" + string(rune('a'+counter-1))
	}
	return o
}

type profileOption func(*domain.UserProfile)

func withResponses(responses ...domain.SurveyResponse) profileOption {
	return func(p *domain.UserProfile) {
		p.SurveyResponses = responses
	}
}

func withOccupation(occupation string) profileOption {
	return func(p *domain.UserProfile) {
		p.Occupation = domain.Occupation(occupation)
	}
}

func withAge(age int) profileOption {
	return func(p *domain.UserProfile) {
		p.Age = age
	}
}

func withAccessibility(languages, cultural, dietary []string) profileOption {
	return func(p *domain.UserProfile) {
		p.Accessibility = domain.Accessibility{
			LanguagesSpoken:     domain.LanguageList(languages),
			CulturalPreferences: cultural,
			DietaryRestrictions: dietary,
		}
	}
}

func withRoomPreferences(maxBudget int, bedType string, areas []string, moveIn time.Time, amenities ...string) profileOption {
	return func(p *domain.UserProfile) {
		p.PreferredAreas = areas
		p.RoomPreferences = domain.RoomPreferences{
			BedType:     domain.BedPreference(bedType),
			FloorLevel:  "no-preference",
			BudgetRange: domain.BudgetRange{Min: 0, Max: maxBudget},
			MoveInDate:  moveIn,
			Amenities:   amenities,
		}
	}
}

func withFloorPreference(pref string) profileOption {
	return func(p *domain.UserProfile) {
		p.RoomPreferences.FloorLevel = domain.FloorPreference(pref)
	}
}

func newProfile(id string, opts ...profileOption) domain.UserProfile {
	profile := domain.UserProfile{
		ID:         id,
		UserID:     "user-" + id,
		FullName:   "Member " + id,
		Age:        24,
		Occupation: "working",
		Accessibility: domain.Accessibility{
			LanguagesSpoken: domain.LanguageList{"English"},
		},
		RoomPreferences: domain.RoomPreferences{
			BedType:     "twin",
			FloorLevel:  "no-preference",
			BudgetRange: domain.BudgetRange{Min: 500, Max: 1200},
			MoveInDate:  time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
		},
	}
	for _, opt := range opts {
		opt(&profile)
	}
	return profile
}

func response(questionID, answer string, weight int) domain.SurveyResponse {
	return domain.SurveyResponse{QuestionID: questionID, Answer: answer, Weight: weight}
}

// completeResponses answers every mandatory catalog question.
func completeResponses(sleep, social, clean, space, lifestyle string) []domain.SurveyResponse {
	return []domain.SurveyResponse{
		response("sleep_schedule", sleep, 5),
		response("social_frequency", social, 4),
		response("cleanliness_level", clean, 5),
		response("personal_space", space, 4),
		response("lifestyle_priorities", lifestyle, 4),
	}
}

type roomOption func(*domain.Room)

func withRent(rent int) roomOption {
	return func(r *domain.Room) { r.Rent = domain.Rent(rent) }
}

func withBedType(bedType string) roomOption {
	return func(r *domain.Room) { r.BedType = domain.RoomBedType(bedType) }
}

func withLocation(location string) roomOption {
	return func(r *domain.Room) { r.Location = location }
}

func withAvailableFrom(t time.Time) roomOption {
	return func(r *domain.Room) { r.AvailableFrom = t }
}

func withAvailableUntil(t time.Time) roomOption {
	return func(r *domain.Room) { r.AvailableUntil = &t }
}

func withFloorLevel(level int) roomOption {
	return func(r *domain.Room) { r.FloorLevel = level }
}

func withAmenities(amenities ...string) roomOption {
	return func(r *domain.Room) { r.Amenities = amenities }
}

func withSafetyFeatures(features ...string) roomOption {
	return func(r *domain.Room) { r.SafetyFeatures = features }
}

func withPhotos(count int) roomOption {
	return func(r *domain.Room) {
		r.Photos = make([]string, count)
		for i := range r.Photos {
			r.Photos[i] = "photo"
		}
	}
}

func inactive() roomOption {
	return func(r *domain.Room) { r.IsActive = false }
}

func newRoom(id string, opts ...roomOption) domain.Room {
	room := domain.Room{
		ID:            id,
		OwnerID:       "owner-" + id,
		Title:         "Room " + id,
		Location:      "Downtown District",
		BedType:       "twin",
		Rent:          900,
		FloorLevel:    3,
		AvailableFrom: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		IsActive:      true,
		CreatedAt:     time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, opt := range opts {
		opt(&room)
	}
	return room
}
