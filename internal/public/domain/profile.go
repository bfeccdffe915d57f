package domain

import "time"

// UserProfile aggregates everything the matching engine reads about a member.
type UserProfile struct {
	ID                 string
	UserID             string
	FullName           string
	Age                int
	Pronouns           string
	RelationshipStatus RelationshipStatus
	Occupation         Occupation
	Location           string
	PreferredAreas     []string
	ProfilePhoto       string
	Bio                string

	BackgroundCheckComplete bool
	EmergencyContact        EmergencyContact
	SafetyPreferences       SafetyPreferences

	Accessibility Accessibility

	SurveyResponses []SurveyResponse

	RoomPreferences RoomPreferences

	Privacy PrivacySettings

	Badges         []string
	CommunityScore CommunityScore

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmergencyContact is required before a profile can be matched.
type EmergencyContact struct {
	Name         string
	Phone        string
	Relationship string
}

type SafetyPreferences struct {
	ShareLocationWithMatches   bool
	AllowVideoCallVerification bool
	PreferVerifiedUsersOnly    bool
}

// Accessibility carries the inclusive-matching signals. LanguagesSpoken is
// mandatory; the remaining lists are optional bonus axes.
type Accessibility struct {
	MobilityNeeds       []string
	DietaryRestrictions []string
	LanguagesSpoken     LanguageList
	CulturalPreferences []string
}

type PrivacySettings struct {
	HideAge                bool
	HideLocation           bool
	OnlyMatchVerifiedUsers bool
}

// RoomPreferences describes what kind of listing the member wants.
type RoomPreferences struct {
	BedType         BedPreference
	FloorLevel      FloorPreference
	Furnished       bool
	PrivateBathroom bool
	BudgetRange     BudgetRange
	MoveInDate      time.Time
	LeaseDuration   LeaseDuration
	Amenities       []string
}

// SurveyResponse is one answered question. Weight is the importance the
// respondent declared at submission time and may differ from the catalog
// weight of the question.
type SurveyResponse struct {
	QuestionID string
	Answer     string
	Weight     int
}

// ResponseByQuestion returns the profile's response for a question id.
func (p UserProfile) ResponseByQuestion(questionID string) (SurveyResponse, bool) {
	for _, r := range p.SurveyResponses {
		if r.QuestionID == questionID {
			return r, true
		}
	}
	return SurveyResponse{}, false
}

// HasCompletedSurvey reports whether every mandatory question has a response.
func (p UserProfile) HasCompletedSurvey(mandatoryQuestionIDs []string) bool {
	for _, id := range mandatoryQuestionIDs {
		if _, ok := p.ResponseByQuestion(id); !ok {
			return false
		}
	}
	return true
}
