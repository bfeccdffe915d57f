// Command seed populates MongoDB with sample members, identity documents, and
// twin sharing rooms so local environments have a pool the matcher can work
// with out of the box.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	mongodoc "github.com/roomee/roomee-services/api/internal/infrastructure/mongo"
)

type seedOptions struct {
	envFile         string
	profileCount    int
	roomCount       int
	dropCollections bool
	randomSeed      int64
}

type collections struct {
	profiles  string
	rooms     string
	matches   string
	documents string
}

var (
	firstNames = []string{"Aisha", "Priya", "Meera", "Sana", "Divya", "Ananya", "Riya", "Fatima", "Neha", "Tara", "Zoya", "Ishika"}
	lastNames  = []string{"Sharma", "Khan", "Patel", "Iyer", "Das", "Reddy", "Bose", "Nair", "Gupta", "Singh"}
	locations  = []string{"Koramangala", "Indiranagar", "HSR Layout", "Whitefield", "Jayanagar"}
	languages  = [][]string{
		{"English", "Hindi"},
		{"English", "Kannada"},
		{"English", "Tamil", "Hindi"},
		{"English"},
	}
	occupations         = []string{"student", "working", "freelancer"}
	relationshipOptions = []string{"single", "prefer-not-to-say"}
	leaseDurations      = []string{"3-months", "6-months", "1-year", "flexible"}
	floorPreferences    = []string{"ground", "high", "no-preference"}
	amenityPool         = []string{"wifi", "ac", "washing machine", "kitchen", "gym", "parking", "balcony", "power backup"}
	safetyFeaturePool   = []string{"cctv", "security guard", "gated community", "fire alarm"}
	documentTypes       = []string{"aadhar", "passport", "voter_id", "driving_license"}

	surveyAnswers = map[string][]string{
		"sleep_schedule":       {"early_bird", "night_owl", "flexible_schedule", "depends_on_work"},
		"social_frequency":     {"love_friends_over", "occasional_gatherings", "prefer_quiet", "roommate_space"},
		"cleanliness_level":    {"very_organized", "tidy_most_time", "clean_when_needed", "shared_responsibility"},
		"personal_space":       {"need_lots_space", "moderate_space", "love_together_time", "communicate_needs"},
		"lifestyle_priorities": {"study_focused", "health_wellness", "creative_space", "safety_security", "budget_friendly"},
	}
)

func main() {
	opts := parseFlags()

	if opts.envFile != "" {
		if err := godotenv.Load(opts.envFile); err != nil {
			log.Fatalf("failed to load env file %s: %v", opts.envFile, err)
		}
	} else {
		_ = godotenv.Load()
	}

	cfg := collections{
		profiles:  envOrDefault("PROFILE_COLLECTION", "profiles"),
		rooms:     envOrDefault("ROOM_COLLECTION", "rooms"),
		matches:   envOrDefault("MATCH_COLLECTION", "matches"),
		documents: envOrDefault("DOCUMENT_COLLECTION", "identity_documents"),
	}

	mongoURI := envOrDefault("MONGO_URI", "mongodb://localhost:27017")
	dbName := envOrDefault("MONGO_DB", "roomee")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("failed to connect to MongoDB: %v", err)
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	db := client.Database(dbName)

	if opts.dropCollections {
		dropCollections(ctx, db, cfg)
		log.Printf("dropped existing collections")
	}

	if err := ensureIndexes(ctx, db, cfg); err != nil {
		log.Fatalf("failed to create indexes: %v", err)
	}

	rng := rand.New(rand.NewSource(opts.randomSeed))

	profileDocs := generateProfiles(rng, opts.profileCount)
	if err := insertMany(ctx, db.Collection(cfg.profiles), toAnySlice(profileDocs)); err != nil {
		log.Fatalf("failed to insert profiles: %v", err)
	}

	documentDocs := generateIdentityDocuments(rng, profileDocs)
	if err := insertMany(ctx, db.Collection(cfg.documents), toAnySlice(documentDocs)); err != nil {
		log.Fatalf("failed to insert identity documents: %v", err)
	}

	roomDocs := generateRooms(rng, opts.roomCount)
	if err := insertMany(ctx, db.Collection(cfg.rooms), toAnySlice(roomDocs)); err != nil {
		log.Fatalf("failed to insert rooms: %v", err)
	}

	log.Printf("seed complete: profiles=%d identityDocuments=%d rooms=%d",
		len(profileDocs), len(documentDocs), len(roomDocs))
	log.Printf("Mongo: %s / %s", mongoURI, dbName)
}

func parseFlags() seedOptions {
	var opts seedOptions
	flag.StringVar(&opts.envFile, "env-file", "", "optional .env file to load before reading configuration")
	flag.IntVar(&opts.profileCount, "profiles", 20, "number of member profiles to generate")
	flag.IntVar(&opts.roomCount, "rooms", 12, "number of room listings to generate")
	flag.BoolVar(&opts.dropCollections, "drop", true, "drop existing collections before inserting")
	defaultSeed := time.Now().UnixNano()
	flag.Int64Var(&opts.randomSeed, "seed", defaultSeed, "random seed for reproducible runs")
	flag.Parse()

	if opts.profileCount < 2 {
		log.Fatal("profiles must be at least 2 so the matcher has candidates")
	}
	if opts.roomCount < 1 {
		log.Fatal("rooms must be at least 1")
	}
	return opts
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func dropCollections(ctx context.Context, db *mongo.Database, cfg collections) {
	for _, name := range []string{cfg.profiles, cfg.rooms, cfg.matches, cfg.documents} {
		// Drop also errors on a missing collection, so just warn.
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Printf("WARN: failed to drop collection %s: %v", name, err)
		}
	}
}

func ensureIndexes(ctx context.Context, db *mongo.Database, cfg collections) error {
	profileIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}},
			Options: options.Index().SetName("uniq_profile_userId").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "location", Value: 1}},
			Options: options.Index().SetName("idx_profile_location"),
		},
	}
	if _, err := db.Collection(cfg.profiles).Indexes().CreateMany(ctx, profileIndexes); err != nil {
		return err
	}

	roomIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "isActive", Value: 1}, {Key: "location", Value: 1}},
			Options: options.Index().SetName("idx_room_active_location"),
		},
		{
			Keys:    bson.D{{Key: "rent", Value: 1}},
			Options: options.Index().SetName("idx_room_rent"),
		},
	}
	if _, err := db.Collection(cfg.rooms).Indexes().CreateMany(ctx, roomIndexes); err != nil {
		return err
	}

	matchIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user1Id", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_match_user1"),
		},
		{
			Keys:    bson.D{{Key: "user2Id", Value: 1}, {Key: "createdAt", Value: -1}},
			Options: options.Index().SetName("idx_match_user2"),
		},
	}
	if _, err := db.Collection(cfg.matches).Indexes().CreateMany(ctx, matchIndexes); err != nil {
		return err
	}

	documentIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "userId", Value: 1}, {Key: "submittedAt", Value: -1}},
			Options: options.Index().SetName("idx_document_user_submitted"),
		},
		{
			Keys:    bson.D{{Key: "verified", Value: 1}},
			Options: options.Index().SetName("idx_document_verified"),
		},
	}
	if _, err := db.Collection(cfg.documents).Indexes().CreateMany(ctx, documentIndexes); err != nil {
		return err
	}

	return nil
}

func generateProfiles(rng *rand.Rand, count int) []mongodoc.ProfileDocument {
	now := time.Now().UTC()
	docs := make([]mongodoc.ProfileDocument, 0, count)

	for i := 0; i < count; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		location := locations[rng.Intn(len(locations))]
		budgetMin := 6000 + rng.Intn(5)*1000
		budgetMax := budgetMin + 4000 + rng.Intn(4)*1000
		moveIn := now.AddDate(0, 0, rng.Intn(45))

		docs = append(docs, mongodoc.ProfileDocument{
			ID:                 primitive.NewObjectID(),
			UserID:             fmt.Sprintf("seed-user-%03d", i+1),
			FullName:           first + " " + last,
			Age:                20 + rng.Intn(12),
			Pronouns:           "she/her",
			RelationshipStatus: relationshipOptions[rng.Intn(len(relationshipOptions))],
			Occupation:         occupations[rng.Intn(len(occupations))],
			Location:           location,
			PreferredAreas:     pickAreas(rng, location),
			Bio:                fmt.Sprintf("Hi, I'm %s. Looking for a compatible roommate in %s.", first, location),

			BackgroundCheckComplete: true,
			EmergencyContact: mongodoc.EmergencyContactDocument{
				Name:         "Contact " + last,
				Phone:        fmt.Sprintf("+91-98%08d", rng.Intn(100000000)),
				Relationship: "parent",
			},
			SafetyPreferences: mongodoc.SafetyPreferencesDocument{
				ShareLocationWithMatches:   rng.Intn(2) == 0,
				AllowVideoCallVerification: true,
				PreferVerifiedUsersOnly:    true,
			},
			Accessibility: mongodoc.AccessibilityDocument{
				LanguagesSpoken: languages[rng.Intn(len(languages))],
			},
			Privacy: mongodoc.PrivacyDocument{
				OnlyMatchVerifiedUsers: true,
			},

			SurveyResponses: generateSurveyResponses(rng),
			RoomPreferences: mongodoc.RoomPreferencesDocument{
				BedType:       "twin",
				FloorLevel:    floorPreferences[rng.Intn(len(floorPreferences))],
				Furnished:     rng.Intn(2) == 0,
				BudgetMin:     budgetMin,
				BudgetMax:     budgetMax,
				MoveInDate:    moveIn,
				LeaseDuration: leaseDurations[rng.Intn(len(leaseDurations))],
				Amenities:     pickSubset(rng, amenityPool, 2+rng.Intn(3)),
			},

			CommunityScore: 50 + rng.Intn(50),
			CreatedAt:      now.AddDate(0, 0, -rng.Intn(90)),
			UpdatedAt:      now,
		})
	}

	return docs
}

func generateSurveyResponses(rng *rand.Rand) []mongodoc.SurveyResponseDocument {
	responses := make([]mongodoc.SurveyResponseDocument, 0, len(surveyAnswers))
	for _, questionID := range []string{"sleep_schedule", "social_frequency", "cleanliness_level", "personal_space", "lifestyle_priorities"} {
		answers := surveyAnswers[questionID]
		responses = append(responses, mongodoc.SurveyResponseDocument{
			QuestionID: questionID,
			Answer:     answers[rng.Intn(len(answers))],
			Weight:     3 + rng.Intn(3),
		})
	}
	return responses
}

func generateIdentityDocuments(rng *rand.Rand, profiles []mongodoc.ProfileDocument) []mongodoc.IdentityDocumentRecord {
	docs := make([]mongodoc.IdentityDocumentRecord, 0, len(profiles))

	for i, profile := range profiles {
		submittedAt := profile.CreatedAt.Add(time.Duration(rng.Intn(72)) * time.Hour)
		verifiedAt := submittedAt.Add(time.Duration(1+rng.Intn(48)) * time.Hour)

		record := mongodoc.IdentityDocumentRecord{
			ID:            primitive.NewObjectID(),
			UserID:        profile.UserID,
			Type:          documentTypes[rng.Intn(len(documentTypes))],
			Number:        fmt.Sprintf("DOC-%06d", rng.Intn(1000000)),
			HolderName:    profile.FullName,
			OCRConfidence: 0.82 + rng.Float64()*0.17,
			Verified:      true,
			VerifiedAt:    &verifiedAt,
			SubmittedAt:   submittedAt,
		}

		// Leave a few members pending so the admin review queue is not empty.
		if i%7 == 6 {
			record.Verified = false
			record.VerifiedAt = nil
			record.OCRConfidence = 0.5 + rng.Float64()*0.4
		}

		docs = append(docs, record)
	}

	return docs
}

func generateRooms(rng *rand.Rand, count int) []mongodoc.RoomDocument {
	now := time.Now().UTC()
	docs := make([]mongodoc.RoomDocument, 0, count)

	for i := 0; i < count; i++ {
		location := locations[rng.Intn(len(locations))]
		availableFrom := now.AddDate(0, 0, -rng.Intn(30))

		room := mongodoc.RoomDocument{
			ID:              primitive.NewObjectID(),
			OwnerID:         fmt.Sprintf("seed-owner-%03d", i+1),
			Title:           fmt.Sprintf("Twin sharing room in %s", location),
			Description:     "Bright twin sharing room close to public transport and grocery stores.",
			Location:        location,
			Photos:          []string{fmt.Sprintf("https://cdn.roomee.example/rooms/seed-%03d.jpg", i+1)},
			BedType:         "twin",
			Furnished:       rng.Intn(3) > 0,
			PrivateBathroom: rng.Intn(2) == 0,
			Rent:            7000 + rng.Intn(8)*1000,
			Utilities: mongodoc.UtilitiesDocument{
				Included: []string{"water", "maintenance"},
			},
			Amenities:      pickSubset(rng, amenityPool, 3+rng.Intn(4)),
			HouseRules:     []string{"no smoking", "guests until 9 PM"},
			FloorLevel:     rng.Intn(5),
			SafetyFeatures: pickSubset(rng, safetyFeaturePool, 1+rng.Intn(3)),
			AvailableFrom:  availableFrom,
			IsActive:       true,
			CreatedAt:      availableFrom,
		}

		// A couple of short lived listings exercise the availability window.
		if i%5 == 4 {
			until := now.AddDate(0, 2, 0)
			room.AvailableUntil = &until
		}

		docs = append(docs, room)
	}

	return docs
}

func pickAreas(rng *rand.Rand, primary string) []string {
	areas := []string{primary}
	extra := locations[rng.Intn(len(locations))]
	if extra != primary {
		areas = append(areas, extra)
	}
	return areas
}

func pickSubset(rng *rand.Rand, pool []string, n int) []string {
	if n > len(pool) {
		n = len(pool)
	}
	shuffled := append([]string(nil), pool...)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled[:n]
}

func insertMany(ctx context.Context, col *mongo.Collection, docs []any) error {
	if len(docs) == 0 {
		return nil
	}
	_, err := col.InsertMany(ctx, docs)
	return err
}

func toAnySlice[T any](docs []T) []any {
	out := make([]any, len(docs))
	for i, doc := range docs {
		out[i] = doc
	}
	return out
}
