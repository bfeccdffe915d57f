package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileDocument is the MongoDB schema of a member profile.
type ProfileDocument struct {
	ID                 primitive.ObjectID `bson:"_id"`
	UserID             string             `bson:"userId"`
	FullName           string             `bson:"fullName"`
	Age                int                `bson:"age"`
	Pronouns           string             `bson:"pronouns,omitempty"`
	RelationshipStatus string             `bson:"relationshipStatus,omitempty"`
	Occupation         string             `bson:"occupation,omitempty"`
	Location           string             `bson:"location,omitempty"`
	PreferredAreas     []string           `bson:"preferredAreas,omitempty"`
	ProfilePhoto       string             `bson:"profilePhoto,omitempty"`
	Bio                string             `bson:"bio,omitempty"`

	BackgroundCheckComplete bool                      `bson:"backgroundCheckComplete"`
	EmergencyContact        EmergencyContactDocument  `bson:"emergencyContact,omitempty"`
	SafetyPreferences       SafetyPreferencesDocument `bson:"safetyPreferences,omitempty"`
	Accessibility           AccessibilityDocument     `bson:"accessibility,omitempty"`
	Privacy                 PrivacyDocument           `bson:"privacy,omitempty"`

	SurveyResponses []SurveyResponseDocument `bson:"surveyResponses,omitempty"`
	RoomPreferences RoomPreferencesDocument  `bson:"roomPreferences,omitempty"`

	Badges         []string  `bson:"badges,omitempty"`
	CommunityScore int       `bson:"communityScore,omitempty"`
	CreatedAt      time.Time `bson:"createdAt"`
	UpdatedAt      time.Time `bson:"updatedAt"`
}

type EmergencyContactDocument struct {
	Name         string `bson:"name,omitempty"`
	Phone        string `bson:"phone,omitempty"`
	Relationship string `bson:"relationship,omitempty"`
}

type SafetyPreferencesDocument struct {
	ShareLocationWithMatches   bool `bson:"shareLocationWithMatches"`
	AllowVideoCallVerification bool `bson:"allowVideoCallVerification"`
	PreferVerifiedUsersOnly    bool `bson:"preferVerifiedUsersOnly"`
}

type AccessibilityDocument struct {
	MobilityNeeds       []string `bson:"mobilityNeeds,omitempty"`
	DietaryRestrictions []string `bson:"dietaryRestrictions,omitempty"`
	LanguagesSpoken     []string `bson:"languagesSpoken,omitempty"`
	CulturalPreferences []string `bson:"culturalPreferences,omitempty"`
}

type PrivacyDocument struct {
	HideAge                bool `bson:"hideAge"`
	HideLocation           bool `bson:"hideLocation"`
	OnlyMatchVerifiedUsers bool `bson:"onlyMatchVerifiedUsers"`
}

type SurveyResponseDocument struct {
	QuestionID string `bson:"questionId"`
	Answer     string `bson:"answer"`
	Weight     int    `bson:"weight"`
}

type RoomPreferencesDocument struct {
	BedType         string    `bson:"bedType,omitempty"`
	FloorLevel      string    `bson:"floorLevel,omitempty"`
	Furnished       bool      `bson:"furnished"`
	PrivateBathroom bool      `bson:"privateBathroom"`
	BudgetMin       int       `bson:"budgetMin"`
	BudgetMax       int       `bson:"budgetMax"`
	MoveInDate      time.Time `bson:"moveInDate,omitempty"`
	LeaseDuration   string    `bson:"leaseDuration,omitempty"`
	Amenities       []string  `bson:"amenities,omitempty"`
}

// RoomDocument is the MongoDB schema of a room listing.
type RoomDocument struct {
	ID              primitive.ObjectID   `bson:"_id"`
	OwnerID         string               `bson:"ownerId"`
	Title           string               `bson:"title"`
	Description     string               `bson:"description,omitempty"`
	Location        string               `bson:"location"`
	Coordinates     *CoordinatesDocument `bson:"coordinates,omitempty"`
	Photos          []string             `bson:"photos,omitempty"`
	BedType         string               `bson:"bedType"`
	Furnished       bool                 `bson:"furnished"`
	PrivateBathroom bool                 `bson:"privateBathroom"`
	Rent            int                  `bson:"rent"`
	Utilities       UtilitiesDocument    `bson:"utilities,omitempty"`
	Amenities       []string             `bson:"amenities,omitempty"`
	HouseRules      []string             `bson:"houseRules,omitempty"`
	FloorLevel      int                  `bson:"floorLevel"`
	SafetyFeatures  []string             `bson:"safetyFeatures,omitempty"`
	AvailableFrom   time.Time            `bson:"availableFrom"`
	AvailableUntil  *time.Time           `bson:"availableUntil,omitempty"`
	IsActive        bool                 `bson:"isActive"`
	CreatedAt       time.Time            `bson:"createdAt"`
}

type CoordinatesDocument struct {
	Lat float64 `bson:"lat"`
	Lng float64 `bson:"lng"`
}

type UtilitiesDocument struct {
	Included   []string `bson:"included,omitempty"`
	Additional []string `bson:"additional,omitempty"`
}

// MatchDocument is the MongoDB schema of a persisted match result. The
// engine mints its own UUID, so _id is kept as a plain string.
type MatchDocument struct {
	ID                 string                `bson:"_id"`
	User1ID            string                `bson:"user1Id"`
	User2ID            string                `bson:"user2Id"`
	RoomID             string                `bson:"roomId,omitempty"`
	CompatibilityScore int                   `bson:"compatibilityScore"`
	MatchFactors       []MatchFactorDocument `bson:"matchFactors,omitempty"`
	RoomCompatibility  *int                  `bson:"roomCompatibility,omitempty"`
	ExplanationText    string                `bson:"explanationText,omitempty"`
	ConfidenceLevel    string                `bson:"confidenceLevel,omitempty"`
	Status             string                `bson:"status"`
	CreatedAt          time.Time             `bson:"createdAt"`
}

type MatchFactorDocument struct {
	Category    string `bson:"category"`
	Description string `bson:"description,omitempty"`
	Score       int    `bson:"score"`
	Importance  string `bson:"importance,omitempty"`
}

// IdentityDocumentRecord is the MongoDB schema of a submitted ID document.
type IdentityDocumentRecord struct {
	ID             primitive.ObjectID `bson:"_id"`
	UserID         string             `bson:"userId"`
	Type           string             `bson:"type"`
	Number         string             `bson:"number"`
	HolderName     string             `bson:"holderName"`
	DateOfBirth    *time.Time         `bson:"dateOfBirth,omitempty"`
	OCRConfidence  float64            `bson:"ocrConfidence"`
	Verified       bool               `bson:"verified"`
	VerifiedAt     *time.Time         `bson:"verifiedAt,omitempty"`
	RejectedReason string             `bson:"rejectedReason,omitempty"`
	SubmittedAt    time.Time          `bson:"submittedAt"`
}
