package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/roomee/roomee-services/api/internal/public/application"
	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// MatchRepository implements application.MatchRepository using MongoDB.
type MatchRepository struct {
	collection *mongo.Collection
}

func NewMatchRepository(db *mongo.Database, collectionName string) *MatchRepository {
	return &MatchRepository{collection: db.Collection(collectionName)}
}

func (r *MatchRepository) Create(ctx context.Context, match *domain.MatchResult) error {
	_, err := r.collection.InsertOne(ctx, toMatchDocument(*match))
	return err
}

func (r *MatchRepository) FindByID(ctx context.Context, id string) (*domain.MatchResult, error) {
	var doc MatchDocument
	if err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	match := mapMatchDocument(doc)
	return &match, nil
}

// FindByUser returns the member's matches, newest first.
func (r *MatchRepository) FindByUser(ctx context.Context, userID string) ([]domain.MatchResult, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"user1Id": userID},
		bson.M{"user2Id": userID},
	}}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	matches := make([]domain.MatchResult, 0)
	for cursor.Next(ctx) {
		var doc MatchDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		matches = append(matches, mapMatchDocument(doc))
	}
	return matches, cursor.Err()
}

func (r *MatchRepository) UpdateStatus(ctx context.Context, id string, status domain.MatchStatus) error {
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"status": string(status)}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}

func mapMatchDocument(doc MatchDocument) domain.MatchResult {
	factors := make([]domain.MatchFactor, 0, len(doc.MatchFactors))
	for _, f := range doc.MatchFactors {
		factors = append(factors, domain.MatchFactor{
			Category:    f.Category,
			Description: f.Description,
			Score:       f.Score,
			Importance:  domain.Importance(f.Importance),
		})
	}

	return domain.MatchResult{
		ID:                 doc.ID,
		User1ID:            doc.User1ID,
		User2ID:            doc.User2ID,
		RoomID:             doc.RoomID,
		CompatibilityScore: doc.CompatibilityScore,
		MatchFactors:       factors,
		RoomCompatibility:  doc.RoomCompatibility,
		ExplanationText:    doc.ExplanationText,
		ConfidenceLevel:    domain.ConfidenceLevel(doc.ConfidenceLevel),
		Status:             domain.MatchStatus(doc.Status),
		CreatedAt:          doc.CreatedAt,
	}
}

func toMatchDocument(match domain.MatchResult) MatchDocument {
	factors := make([]MatchFactorDocument, 0, len(match.MatchFactors))
	for _, f := range match.MatchFactors {
		factors = append(factors, MatchFactorDocument{
			Category:    f.Category,
			Description: f.Description,
			Score:       f.Score,
			Importance:  string(f.Importance),
		})
	}

	return MatchDocument{
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
