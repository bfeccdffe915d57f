package application

import (
	"context"
	"fmt"
	"time"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// UpdateProfileCommand carries the writable profile fields. Enumerated
// fields are validated through the domain constructors before anything is
// persisted.
type UpdateProfileCommand struct {
	FullName            string
	Age                 int
	Pronouns            string
	RelationshipStatus  string
	Occupation          string
	Location            string
	PreferredAreas      []string
	Bio                 string
	LanguagesSpoken     []string
	CulturalPreferences []string
	DietaryRestrictions []string
	MobilityNeeds       []string
	EmergencyContact    domain.EmergencyContact
	SafetyPreferences   domain.SafetyPreferences
	Privacy             domain.PrivacySettings

	BedType         string
	FloorLevel      string
	Furnished       bool
	PrivateBathroom bool
	BudgetMin       int
	BudgetMax       int
	MoveInDate      time.Time
	LeaseDuration   string
	Amenities       []string
}

// ProfileService reads and updates the caller's own profile.
type ProfileService struct {
	profiles ProfileRepository
	now      func() time.Time
}

func NewProfileService(profiles ProfileRepository) *ProfileService {
	return &ProfileService{profiles: profiles, now: time.Now}
}

func (s *ProfileService) Get(ctx context.Context, userID string) (*domain.UserProfile, error) {
	return s.profiles.FindByUserID(ctx, userID)
}

// Update validates the command, merges it over the stored profile (creating
// one on first write) and persists the result.
func (s *ProfileService) Update(ctx context.Context, userID string, cmd UpdateProfileCommand) (*domain.UserProfile, error) {
	if cmd.FullName == "" {
		return nil, fmt.Errorf("full name is required")
	}
	if cmd.Age < 18 {
		return nil, fmt.Errorf("members must be at least 18")
	}

	relationship, err := domain.NewRelationshipStatus(cmd.RelationshipStatus)
	if err != nil {
		return nil, err
	}
	occupation, err := domain.NewOccupation(cmd.Occupation)
	if err != nil {
		return nil, err
	}
	languages, err := domain.NewLanguageList(cmd.LanguagesSpoken)
	if err != nil {
		return nil, err
	}
	bedType, err := domain.NewBedPreference(cmd.BedType)
	if err != nil {
		return nil, err
	}
	floorLevel, err := domain.NewFloorPreference(cmd.FloorLevel)
	if err != nil {
		return nil, err
	}
	budget, err := domain.NewBudgetRange(cmd.BudgetMin, cmd.BudgetMax)
	if err != nil {
		return nil, err
	}
	lease, err := domain.NewLeaseDuration(cmd.LeaseDuration)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	profile, err := s.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if err != ErrNotFound {
			return nil, err
		}
		profile = &domain.UserProfile{UserID: userID, CreatedAt: now}
	}

	profile.FullName = cmd.FullName
	profile.Age = cmd.Age
	profile.Pronouns = cmd.Pronouns
	profile.RelationshipStatus = relationship
	profile.Occupation = occupation
	profile.Location = cmd.Location
	profile.PreferredAreas = append([]string{}, cmd.PreferredAreas...)
	profile.Bio = cmd.Bio
	profile.EmergencyContact = cmd.EmergencyContact
	profile.SafetyPreferences = cmd.SafetyPreferences
	profile.Privacy = cmd.Privacy
	profile.Accessibility = domain.Accessibility{
		MobilityNeeds:       append([]string{}, cmd.MobilityNeeds...),
		DietaryRestrictions: append([]string{}, cmd.DietaryRestrictions...),
		LanguagesSpoken:     languages,
		CulturalPreferences: append([]string{}, cmd.CulturalPreferences...),
	}
	profile.RoomPreferences = domain.RoomPreferences{
		BedType:         bedType,
		FloorLevel:      floorLevel,
		Furnished:       cmd.Furnished,
		PrivateBathroom: cmd.PrivateBathroom,
		BudgetRange:     budget,
		MoveInDate:      cmd.MoveInDate,
		LeaseDuration:   lease,
		Amenities:       append([]string{}, cmd.Amenities...),
	}
	profile.UpdatedAt = now

	if err := s.profiles.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
