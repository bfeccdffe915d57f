package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	admindomain "github.com/roomee/roomee-services/api/internal/admin/domain"
)

// StatsRepository aggregates dashboard counters across collections.
type StatsRepository struct {
	profiles  *mongo.Collection
	rooms     *mongo.Collection
	matches   *mongo.Collection
	documents *mongo.Collection
}

func NewStatsRepository(db *mongo.Database, profileCol, roomCol, matchCol, documentCol string) *StatsRepository {
	return &StatsRepository{
		profiles:  db.Collection(profileCol),
		rooms:     db.Collection(roomCol),
		matches:   db.Collection(matchCol),
		documents: db.Collection(documentCol),
	}
}

func (r *StatsRepository) Collect(ctx context.Context) (admindomain.DashboardStats, error) {
	now := time.Now().UTC()

	counts := []struct {
		name       string
		collection *mongo.Collection
		filter     bson.M
		target     *int
	}{
		{"total users", r.profiles, bson.M{}, nil},
		{"active matches", r.matches, bson.M{"status": bson.M{"$in": bson.A{"pending", "one-interested"}}}, nil},
		{"successful matches", r.matches, bson.M{"status": "both-interested"}, nil},
		{"available rooms", r.rooms, bson.M{
			"isActive": true,
			"$or": bson.A{
				bson.M{"availableUntil": bson.M{"$exists": false}},
				bson.M{"availableUntil": nil},
				bson.M{"availableUntil": bson.M{"$gte": now}},
			},
		}, nil},
		{"pending verifications", r.documents, bson.M{"verified": false, "rejectedReason": bson.M{"$in": bson.A{nil, ""}}}, nil},
	}

	var stats admindomain.DashboardStats
	counts[0].target = &stats.TotalUsers
	counts[1].target = &stats.ActiveMatches
	counts[2].target = &stats.SuccessfulMatches
	counts[3].target = &stats.AvailableRooms
	counts[4].target = &stats.PendingVerifications

	for _, c := range counts {
		n, err := c.collection.CountDocuments(ctx, c.filter)
		if err != nil {
			return admindomain.DashboardStats{}, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.target = int(n)
	}

	// A member counts as verified once, however many documents they filed.
	verified, err := r.documents.Distinct(ctx, "userId", bson.M{"verified": true})
	if err != nil {
		return admindomain.DashboardStats{}, fmt.Errorf("count verified users: %w", err)
	}
	stats.VerifiedUsers = len(verified)

	return stats, nil
}
