package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	adminapp "github.com/roomee/roomee-services/api/internal/admin/application"
	"github.com/roomee/roomee-services/api/internal/identity"
	"github.com/roomee/roomee-services/api/internal/public/application"
)

// IdentityRepository stores submitted ID documents. It serves both the
// public submission path and the admin review queue.
type IdentityRepository struct {
	collection *mongo.Collection
}

func NewIdentityRepository(db *mongo.Database, collectionName string) *IdentityRepository {
	return &IdentityRepository{collection: db.Collection(collectionName)}
}

func (r *IdentityRepository) Create(ctx context.Context, doc *identity.Document) error {
	record := toIdentityRecord(*doc)
	record.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, record); err != nil {
		return err
	}
	doc.ID = record.ID.Hex()
	return nil
}

func (r *IdentityRepository) LatestByUser(ctx context.Context, userID string) (*identity.Document, error) {
	opts := options.FindOne().SetSort(bson.D{{Key: "submittedAt", Value: -1}})
	var record IdentityDocumentRecord
	if err := r.collection.FindOne(ctx, bson.M{"userId": userID}, opts).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	doc := mapIdentityRecord(record)
	return &doc, nil
}

// FindPending lists unreviewed documents oldest first so the review queue
// is worked in submission order.
func (r *IdentityRepository) FindPending(ctx context.Context, paging adminapp.Paging) ([]identity.Document, error) {
	filter := bson.M{"verified": false, "rejectedReason": bson.M{"$in": bson.A{nil, ""}}}
	opts := options.Find().
		SetSort(bson.D{{Key: "submittedAt", Value: 1}}).
		SetSkip(int64((paging.Page - 1) * paging.Limit)).
		SetLimit(int64(paging.Limit))

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	docs := make([]identity.Document, 0)
	for cursor.Next(ctx) {
		var record IdentityDocumentRecord
		if err := cursor.Decode(&record); err != nil {
			return nil, err
		}
		docs = append(docs, mapIdentityRecord(record))
	}
	return docs, cursor.Err()
}

// Review applies an admin decision and returns the updated document.
func (r *IdentityRepository) Review(ctx context.Context, documentID string, approve bool, reason string, reviewedAt time.Time) (*identity.Document, error) {
	id, err := primitive.ObjectIDFromHex(documentID)
	if err != nil {
		return nil, application.ErrNotFound
	}

	update := bson.M{"$set": bson.M{
		"verified":       approve,
		"verifiedAt":     reviewedAt,
		"rejectedReason": reason,
	}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var record IdentityDocumentRecord
	if err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&record); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, application.ErrNotFound
		}
		return nil, err
	}
	doc := mapIdentityRecord(record)
	return &doc, nil
}

func mapIdentityRecord(record IdentityDocumentRecord) identity.Document {
	return identity.Document{
		ID:             record.ID.Hex(),
		UserID:         record.UserID,
		Type:           identity.DocumentType(record.Type),
		Number:         record.Number,
		HolderName:     record.HolderName,
		DateOfBirth:    record.DateOfBirth,
		OCRConfidence:  record.OCRConfidence,
		Verified:       record.Verified,
		VerifiedAt:     record.VerifiedAt,
		RejectedReason: record.RejectedReason,
		SubmittedAt:    record.SubmittedAt,
	}
}

func toIdentityRecord(doc identity.Document) IdentityDocumentRecord {
	return IdentityDocumentRecord{
		UserID:         doc.UserID,
		Type:           doc.Type.String(),
		Number:         doc.Number,
		HolderName:     doc.HolderName,
		DateOfBirth:    doc.DateOfBirth,
		OCRConfidence:  doc.OCRConfidence,
		Verified:       doc.Verified,
		VerifiedAt:     doc.VerifiedAt,
		RejectedReason: doc.RejectedReason,
		SubmittedAt:    doc.SubmittedAt,
	}
}
