package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roomee/roomee-services/api/internal/public/application"
	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// ProfileRepository implements application.ProfileRepository using MongoDB.
type ProfileRepository struct {
	collection *mongo.Collection
}

func NewProfileRepository(db *mongo.Database, collectionName string) *ProfileRepository {
	return &ProfileRepository{collection: db.Collection(collectionName)}
}

func (r *ProfileRepository) FindByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	var doc ProfileDocument
	if err := r.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	profile := mapProfileDocument(doc)
	return &profile, nil
}

// FindCandidates returns every profile except the excluded member's own.
func (r *ProfileRepository) FindCandidates(ctx context.Context, excludeUserID string) ([]domain.UserProfile, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"userId": bson.M{"$ne": excludeUserID}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	profiles := make([]domain.UserProfile, 0)
	for cursor.Next(ctx) {
		var doc ProfileDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		profiles = append(profiles, mapProfileDocument(doc))
	}
	return profiles, cursor.Err()
}

func (r *ProfileRepository) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	doc := toProfileDocument(*profile)
	if profile.ID == "" {
		doc.ID = primitive.NewObjectID()
	} else {
		id, err := primitive.ObjectIDFromHex(profile.ID)
		if err != nil {
			return err
		}
		doc.ID = id
	}

	opts := options.Replace().SetUpsert(true)
	if _, err := r.collection.ReplaceOne(ctx, bson.M{"userId": profile.UserID}, doc, opts); err != nil {
		return err
	}
	profile.ID = doc.ID.Hex()
	return nil
}

func (r *ProfileRepository) ReplaceSurveyResponses(ctx context.Context, userID string, responses []domain.SurveyResponse) error {
	docs := make([]SurveyResponseDocument, 0, len(responses))
	for _, response := range responses {
		docs = append(docs, SurveyResponseDocument(response))
	}
	update := bson.M{"$set": bson.M{
		"surveyResponses": docs,
		"updatedAt":       time.Now().UTC(),
	}}
	result, err := r.collection.UpdateOne(ctx, bson.M{"userId": userID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}

func mapProfileDocument(doc ProfileDocument) domain.UserProfile {
	responses := make([]domain.SurveyResponse, 0, len(doc.SurveyResponses))
	for _, r := range doc.SurveyResponses {
		responses = append(responses, domain.SurveyResponse(r))
	}

	return domain.UserProfile{
		ID:                 doc.ID.Hex(),
		UserID:             doc.UserID,
		FullName:           doc.FullName,
		Age:                doc.Age,
		Pronouns:           doc.Pronouns,
		RelationshipStatus: domain.RelationshipStatus(doc.RelationshipStatus),
		Occupation:         domain.Occupation(doc.Occupation),
		Location:           doc.Location,
		PreferredAreas:     append([]string{}, doc.PreferredAreas...),
		ProfilePhoto:       doc.ProfilePhoto,
		Bio:                doc.Bio,

		BackgroundCheckComplete: doc.BackgroundCheckComplete,
		EmergencyContact:        domain.EmergencyContact(doc.EmergencyContact),
		SafetyPreferences:       domain.SafetyPreferences(doc.SafetyPreferences),
		Accessibility: domain.Accessibility{
			MobilityNeeds:       append([]string{}, doc.Accessibility.MobilityNeeds...),
			DietaryRestrictions: append([]string{}, doc.Accessibility.DietaryRestrictions...),
			LanguagesSpoken:     domain.LanguageList(doc.Accessibility.LanguagesSpoken),
			CulturalPreferences: append([]string{}, doc.Accessibility.CulturalPreferences...),
		},
		Privacy: domain.PrivacySettings(doc.Privacy),

		SurveyResponses: responses,
		RoomPreferences: domain.RoomPreferences{
			BedType:         domain.BedPreference(doc.RoomPreferences.BedType),
			FloorLevel:      domain.FloorPreference(doc.RoomPreferences.FloorLevel),
			Furnished:       doc.RoomPreferences.Furnished,
			PrivateBathroom: doc.RoomPreferences.PrivateBathroom,
			BudgetRange:     domain.BudgetRange{Min: doc.RoomPreferences.BudgetMin, Max: doc.RoomPreferences.BudgetMax},
			MoveInDate:      doc.RoomPreferences.MoveInDate,
			LeaseDuration:   domain.LeaseDuration(doc.RoomPreferences.LeaseDuration),
			Amenities:       append([]string{}, doc.RoomPreferences.Amenities...),
		},

		Badges:         append([]string{}, doc.Badges...),
		CommunityScore: domain.CommunityScore(doc.CommunityScore),
		CreatedAt:      doc.CreatedAt,
		UpdatedAt:      doc.UpdatedAt,
	}
}

func toProfileDocument(profile domain.UserProfile) ProfileDocument {
	responses := make([]SurveyResponseDocument, 0, len(profile.SurveyResponses))
	for _, r := range profile.SurveyResponses {
		responses = append(responses, SurveyResponseDocument(r))
	}

	return ProfileDocument{
		UserID:             profile.UserID,
		FullName:           profile.FullName,
		Age:                profile.Age,
		Pronouns:           profile.Pronouns,
		RelationshipStatus: profile.RelationshipStatus.String(),
		Occupation:         profile.Occupation.String(),
		Location:           profile.Location,
		PreferredAreas:     profile.PreferredAreas,
		ProfilePhoto:       profile.ProfilePhoto,
		Bio:                profile.Bio,

		BackgroundCheckComplete: profile.BackgroundCheckComplete,
		EmergencyContact:        EmergencyContactDocument(profile.EmergencyContact),
		SafetyPreferences:       SafetyPreferencesDocument(profile.SafetyPreferences),
		Accessibility: AccessibilityDocument{
			MobilityNeeds:       profile.Accessibility.MobilityNeeds,
			DietaryRestrictions: profile.Accessibility.DietaryRestrictions,
			LanguagesSpoken:     profile.Accessibility.LanguagesSpoken.Strings(),
			CulturalPreferences: profile.Accessibility.CulturalPreferences,
		},
		Privacy: PrivacyDocument(profile.Privacy),

		SurveyResponses: responses,
		RoomPreferences: RoomPreferencesDocument{
			BedType:         profile.RoomPreferences.BedType.String(),
			FloorLevel:      profile.RoomPreferences.FloorLevel.String(),
			Furnished:       profile.RoomPreferences.Furnished,
			PrivateBathroom: profile.RoomPreferences.PrivateBathroom,
			BudgetMin:       profile.RoomPreferences.BudgetRange.Min,
			BudgetMax:       profile.RoomPreferences.BudgetRange.Max,
			MoveInDate:      profile.RoomPreferences.MoveInDate,
			LeaseDuration:   profile.RoomPreferences.LeaseDuration.String(),
			Amenities:       profile.RoomPreferences.Amenities,
		},

		Badges:         profile.Badges,
		CommunityScore: profile.CommunityScore.Int(),
		CreatedAt:      profile.CreatedAt,
		UpdatedAt:      profile.UpdatedAt,
	}
}
