package public

import (
	"time"

	"github.com/roomee/roomee-services/api/internal/identity"
	publicdomain "github.com/roomee/roomee-services/api/internal/public/domain"
)

type surveyOptionResponse struct {
	ID                string   `json:"id"`
	Text              string   `json:"text"`
	Value             string   `json:"value"`
	CompatibilityTags []string `json:"compatibilityTags,omitempty"`
}

type surveyQuestionResponse struct {
	ID         string                 `json:"id"`
	Prompt     string                 `json:"prompt"`
	Category   string                 `json:"category"`
	Weight     int                    `json:"weight"`
	IsRequired bool                   `json:"isRequired"`
	Options    []surveyOptionResponse `json:"options"`
}

type surveyResponsesRequest struct {
	Responses []surveyResponseInput `json:"responses"`
}

type surveyResponseInput struct {
	QuestionID string `json:"questionId"`
	Answer     string `json:"answer"`
	Weight     int    `json:"weight"`
}

type profileRequest struct {
	FullName            string                  `json:"fullName"`
	Age                 int                     `json:"age"`
	Pronouns            string                  `json:"pronouns"`
	RelationshipStatus  string                  `json:"relationshipStatus"`
	Occupation          string                  `json:"occupation"`
	Location            string                  `json:"location"`
	PreferredAreas      []string                `json:"preferredAreas"`
	Bio                 string                  `json:"bio"`
	LanguagesSpoken     []string                `json:"languagesSpoken"`
	CulturalPreferences []string                `json:"culturalPreferences"`
	DietaryRestrictions []string                `json:"dietaryRestrictions"`
	MobilityNeeds       []string                `json:"mobilityNeeds"`
	EmergencyContact    emergencyContactPayload `json:"emergencyContact"`
	SafetyPreferences   safetyPrefsPayload      `json:"safetyPreferences"`
	Privacy             privacyPayload          `json:"privacy"`
	RoomPreferences     roomPrefsPayload        `json:"roomPreferences"`
}

type emergencyContactPayload struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type safetyPrefsPayload struct {
	ShareLocationWithMatches   bool `json:"shareLocationWithMatches"`
	AllowVideoCallVerification bool `json:"allowVideoCallVerification"`
	PreferVerifiedUsersOnly    bool `json:"preferVerifiedUsersOnly"`
}

type privacyPayload struct {
	HideAge                bool `json:"hideAge"`
	HideLocation           bool `json:"hideLocation"`
	OnlyMatchVerifiedUsers bool `json:"onlyMatchVerifiedUsers"`
}

type roomPrefsPayload struct {
	BedType         string    `json:"bedType"`
	FloorLevel      string    `json:"floorLevel"`
	Furnished       bool      `json:"furnished"`
	PrivateBathroom bool      `json:"privateBathroom"`
	BudgetMin       int       `json:"budgetMin"`
	BudgetMax       int       `json:"budgetMax"`
	MoveInDate      time.Time `json:"moveInDate"`
	LeaseDuration   string    `json:"leaseDuration"`
	Amenities       []string  `json:"amenities"`
}

type profileResponse struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"userId"`
	FullName           string             `json:"fullName"`
	Age                int                `json:"age"`
	Pronouns           string             `json:"pronouns,omitempty"`
	RelationshipStatus string             `json:"relationshipStatus,omitempty"`
	Occupation         string             `json:"occupation,omitempty"`
	Location           string             `json:"location,omitempty"`
	PreferredAreas     []string           `json:"preferredAreas,omitempty"`
	Bio                string             `json:"bio,omitempty"`
	LanguagesSpoken    []string           `json:"languagesSpoken,omitempty"`
	SurveyComplete     bool               `json:"surveyComplete"`
	RoomPreferences    roomPrefsPayload   `json:"roomPreferences"`
	Badges             []string           `json:"badges,omitempty"`
	CommunityScore     int                `json:"communityScore"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

type roomCreateRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Location        string     `json:"location"`
	Lat             *float64   `json:"lat"`
	Lng             *float64   `json:"lng"`
	Photos          []string   `json:"photos"`
	BedType         string     `json:"bedType"`
	Furnished       bool       `json:"furnished"`
	PrivateBathroom bool       `json:"privateBathroom"`
	Rent            int        `json:"rent"`
	UtilitiesIncl   []string   `json:"utilitiesIncluded"`
	UtilitiesAdd    []string   `json:"utilitiesAdditional"`
	Amenities       []string   `json:"amenities"`
	HouseRules      []string   `json:"houseRules"`
	FloorLevel      int        `json:"floorLevel"`
	SafetyFeatures  []string   `json:"safetyFeatures"`
	AvailableFrom   time.Time  `json:"availableFrom"`
	AvailableUntil  *time.Time `json:"availableUntil"`
}

type roomSetActiveRequest struct {
	Active bool `json:"active"`
}

type roomResponse struct {
	ID             string     `json:"id"`
	OwnerID        string     `json:"ownerId"`
	Title          string     `json:"title"`
	Description    string     `json:"description,omitempty"`
	Location       string     `json:"location"`
	Photos         []string   `json:"photos,omitempty"`
	BedType        string     `json:"bedType"`
	Furnished      bool       `json:"furnished"`
	Rent           int        `json:"rent"`
	Amenities      []string   `json:"amenities,omitempty"`
	HouseRules     []string   `json:"houseRules,omitempty"`
	FloorLevel     int        `json:"floorLevel"`
	SafetyFeatures []string   `json:"safetyFeatures,omitempty"`
	AvailableFrom  time.Time  `json:"availableFrom"`
	AvailableUntil *time.Time `json:"availableUntil,omitempty"`
	IsActive       bool       `json:"isActive"`
}

type matchFindRequest struct {
	Refresh bool `json:"refresh"`
}

type matchFactorResponse struct {
	Category    string `json:"category"`
	Description string `json:"description"`
	Score       int    `json:"score"`
	Importance  string `json:"importance"`
}

type matchResponse struct {
	ID                 string                `json:"id"`
	User1ID            string                `json:"user1Id"`
	User2ID            string                `json:"user2Id"`
	RoomID             string                `json:"roomId,omitempty"`
	CompatibilityScore int                   `json:"compatibilityScore"`
	MatchFactors       []matchFactorResponse `json:"matchFactors"`
	RoomCompatibility  *int                  `json:"roomCompatibility,omitempty"`
	ExplanationText    string                `json:"explanationText"`
	ConfidenceLevel    string                `json:"confidenceLevel"`
	Status             string                `json:"status"`
	CreatedAt          time.Time             `json:"createdAt"`
}

type matchStatusRequest struct {
	Status string `json:"status"`
}

type documentSubmitRequest struct {
	Type          string     `json:"type"`
	Number        string     `json:"number"`
	HolderName    string     `json:"holderName"`
	DateOfBirth   *time.Time `json:"dateOfBirth"`
	OCRConfidence float64    `json:"ocrConfidence"`
}

type documentResponse struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Verified    bool      `json:"verified"`
	SubmittedAt time.Time `json:"submittedAt"`
}

func buildSurveyQuestionResponse(q publicdomain.SurveyQuestion) surveyQuestionResponse {
	options := make([]surveyOptionResponse, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, surveyOptionResponse{
			ID:                opt.ID,
			Text:              opt.Text,
			Value:             opt.Value,
			CompatibilityTags: opt.CompatibilityTags,
		})
	}
	return surveyQuestionResponse{
		ID:         q.ID,
		Prompt:     q.Prompt,
		Category:   string(q.Category),
		Weight:     q.Weight,
		IsRequired: q.IsRequired,
		Options:    options,
	}
}

func buildProfileResponse(p publicdomain.UserProfile, mandatoryQuestionIDs []string) profileResponse {
	return profileResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		FullName:           p.FullName,
		Age:                p.Age,
		Pronouns:           p.Pronouns,
		RelationshipStatus: p.RelationshipStatus.String(),
		Occupation:         p.Occupation.String(),
		Location:           p.Location,
		PreferredAreas:     p.PreferredAreas,
		Bio:                p.Bio,
		LanguagesSpoken:    p.Accessibility.LanguagesSpoken.Strings(),
		SurveyComplete:     p.HasCompletedSurvey(mandatoryQuestionIDs),
		RoomPreferences: roomPrefsPayload{
			BedType:         p.RoomPreferences.BedType.String(),
			FloorLevel:      p.RoomPreferences.FloorLevel.String(),
			Furnished:       p.RoomPreferences.Furnished,
			PrivateBathroom: p.RoomPreferences.PrivateBathroom,
			BudgetMin:       p.RoomPreferences.BudgetRange.Min,
			BudgetMax:       p.RoomPreferences.BudgetRange.Max,
			MoveInDate:      p.RoomPreferences.MoveInDate,
			LeaseDuration:   p.RoomPreferences.LeaseDuration.String(),
			Amenities:       p.RoomPreferences.Amenities,
		},
		Badges:         p.Badges,
		CommunityScore: p.CommunityScore.Int(),
		UpdatedAt:      p.UpdatedAt,
	}
}

func buildRoomResponse(room publicdomain.Room) roomResponse {
	return roomResponse{
		ID:             room.ID,
		OwnerID:        room.OwnerID,
		Title:          room.Title,
		Description:    room.Description,
		Location:       room.Location,
		Photos:         room.Photos,
		BedType:        room.BedType.String(),
		Furnished:      room.Furnished,
		Rent:           room.Rent.Int(),
		Amenities:      room.Amenities,
		HouseRules:     room.HouseRules,
		FloorLevel:     room.FloorLevel,
		SafetyFeatures: room.SafetyFeatures,
		AvailableFrom:  room.AvailableFrom,
		AvailableUntil: room.AvailableUntil,
		IsActive:       room.IsActive,
	}
}

func buildMatchResponse(match publicdomain.MatchResult) matchResponse {
	factors := make([]matchFactorResponse, 0, len(match.MatchFactors))
	for _, f := range match.MatchFactors {
		factors = append(factors, matchFactorResponse{
			Category:    f.Category,
			Description: f.Description,
			Score:       f.Score,
			Importance:  string(f.Importance),
		})
	}
	return matchResponse{
		ID:                 match.ID,
		User1ID:            match.User1ID,
		User2ID:            match.User2ID,
		RoomID:             match.RoomID,
		CompatibilityScore: match.CompatibilityScore,
		MatchFactors:       factors,
		RoomCompatibility:  match.RoomCompatibility,
		ExplanationText:    match.ExplanationText,
		ConfidenceLevel:    string(match.ConfidenceLevel),
		Status:             string(match.Status),
		CreatedAt:          match.CreatedAt,
	}
}

func buildDocumentResponse(doc identity.Document) documentResponse {
	return documentResponse{
		ID:          doc.ID,
		Type:        doc.Type.String(),
		Verified:    doc.Verified,
		SubmittedAt: doc.SubmittedAt,
	}
}
