package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/roomee/roomee-services/api/internal/public/application"
	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// RoomRepository implements application.RoomRepository using MongoDB.
type RoomRepository struct {
	collection *mongo.Collection
}

func NewRoomRepository(db *mongo.Database, collectionName string) *RoomRepository {
	return &RoomRepository{collection: db.Collection(collectionName)}
}

// FindActive returns active listings matching the filter. Listings whose
// availability window closed before filter.Now are excluded in the query.
func (r *RoomRepository) FindActive(ctx context.Context, filter application.RoomFilter) ([]domain.Room, error) {
	mongoFilter := bson.M{
		"isActive": true,
		"$or": bson.A{
			bson.M{"availableUntil": bson.M{"$exists": false}},
			bson.M{"availableUntil": nil},
			bson.M{"availableUntil": bson.M{"$gte": filter.Now}},
		},
	}
	if filter.Location != "" {
		mongoFilter["location"] = filter.Location
	}
	if filter.MaxRent > 0 {
		mongoFilter["rent"] = bson.M{"$lte": filter.MaxRent}
	}

	cursor, err := r.collection.Find(ctx, mongoFilter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rooms := make([]domain.Room, 0)
	for cursor.Next(ctx) {
		var doc RoomDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		rooms = append(rooms, mapRoomDocument(doc))
	}
	return rooms, cursor.Err()
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	doc := toRoomDocument(*room)
	doc.ID = primitive.NewObjectID()
	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return err
	}
	room.ID = doc.ID.Hex()
	return nil
}

// SetActive flips the listing flag. The ownerId condition enforces that
// only the owner can touch the listing.
func (r *RoomRepository) SetActive(ctx context.Context, roomID, ownerID string, active bool) error {
	id, err := primitive.ObjectIDFromHex(roomID)
	if err != nil {
		return application.ErrNotFound
	}
	result, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": id, "ownerId": ownerID},
		bson.M{"$set": bson.M{"isActive": active}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return application.ErrNotFound
	}
	return nil
}

func mapRoomDocument(doc RoomDocument) domain.Room {
	var coordinates *domain.Coordinates
	if doc.Coordinates != nil {
		c := domain.Coordinates(*doc.Coordinates)
		coordinates = &c
	}

	return domain.Room{
		ID:              doc.ID.Hex(),
		OwnerID:         doc.OwnerID,
		Title:           doc.Title,
		Description:     doc.Description,
		Location:        doc.Location,
		Coordinates:     coordinates,
		Photos:          append([]string{}, doc.Photos...),
		BedType:         domain.RoomBedType(doc.BedType),
		Furnished:       doc.Furnished,
		PrivateBathroom: doc.PrivateBathroom,
		Rent:            domain.Rent(doc.Rent),
		Utilities:       domain.Utilities(doc.Utilities),
		Amenities:       append([]string{}, doc.Amenities...),
		HouseRules:      append([]string{}, doc.HouseRules...),
		FloorLevel:      doc.FloorLevel,
		SafetyFeatures:  append([]string{}, doc.SafetyFeatures...),
		AvailableFrom:   doc.AvailableFrom,
		AvailableUntil:  doc.AvailableUntil,
		IsActive:        doc.IsActive,
		CreatedAt:       doc.CreatedAt,
	}
}

func toRoomDocument(room domain.Room) RoomDocument {
	var coordinates *CoordinatesDocument
	if room.Coordinates != nil {
		c := CoordinatesDocument(*room.Coordinates)
		coordinates = &c
	}

	return RoomDocument{
		OwnerID:         room.OwnerID,
		Title:           room.Title,
		Description:     room.Description,
		Location:        room.Location,
		Coordinates:     coordinates,
		Photos:          room.Photos,
		BedType:         room.BedType.String(),
		Furnished:       room.Furnished,
		PrivateBathroom: room.PrivateBathroom,
		Rent:            room.Rent.Int(),
		Utilities:       UtilitiesDocument(room.Utilities),
		Amenities:       room.Amenities,
		HouseRules:      room.HouseRules,
		FloorLevel:      room.FloorLevel,
		SafetyFeatures:  room.SafetyFeatures,
		AvailableFrom:   room.AvailableFrom,
		AvailableUntil:  room.AvailableUntil,
		IsActive:        room.IsActive,
		CreatedAt:       room.CreatedAt,
	}
}
