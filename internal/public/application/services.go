package application

import (
	"context"
	"errors"
	"time"

	"github.com/roomee/roomee-services/api/internal/identity"
	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// ErrNotFound is returned by repositories when the requested record does not
// exist. Adapters translate their driver's not-found error into this one so
// services and handlers stay storage-agnostic.
var ErrNotFound = errors.New("record not found")

// ProfileRepository abstracts profile reads and writes.
type ProfileRepository interface {
	FindByUserID(ctx context.Context, userID string) (*domain.UserProfile, error)
	FindCandidates(ctx context.Context, excludeUserID string) ([]domain.UserProfile, error)
	Upsert(ctx context.Context, profile *domain.UserProfile) error
	ReplaceSurveyResponses(ctx context.Context, userID string, responses []domain.SurveyResponse) error
}

// RoomRepository abstracts listing reads and writes.
type RoomRepository interface {
	FindActive(ctx context.Context, filter RoomFilter) ([]domain.Room, error)
	Create(ctx context.Context, room *domain.Room) error
	SetActive(ctx context.Context, roomID, ownerID string, active bool) error
}

// MatchRepository persists engine-produced match results.
type MatchRepository interface {
	Create(ctx context.Context, match *domain.MatchResult) error
	FindByID(ctx context.Context, id string) (*domain.MatchResult, error)
	FindByUser(ctx context.Context, userID string) ([]domain.MatchResult, error)
	UpdateStatus(ctx context.Context, id string, status domain.MatchStatus) error
}

// DocumentRepository stores submitted identity documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *identity.Document) error
	LatestByUser(ctx context.Context, userID string) (*identity.Document, error)
}

// Verifier answers whether a member has cleared identity verification.
type Verifier interface {
	IsVerified(ctx context.Context, userID string) (bool, error)
}

// MatchCache is an optional read-through cache of the latest match per
// requester. Latest returns (nil, nil) on a miss; a failing cache must never
// fail the request, so implementations log and degrade instead of erroring
// on infrastructure hiccups where possible.
type MatchCache interface {
	Latest(ctx context.Context, userID string) (*domain.MatchResult, error)
	StoreLatest(ctx context.Context, userID string, match *domain.MatchResult, ttl time.Duration) error
	Invalidate(ctx context.Context, userID string) error
}

// RoomFilter expresses search criteria for listings.
type RoomFilter struct {
	Location string
	MaxRent  int
	Now      time.Time
}
