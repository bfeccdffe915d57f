package application

import (
	"context"
	"sort"
	"time"

	"github.com/roomee/roomee-services/api/internal/identity"
	"github.com/roomee/roomee-services/api/internal/public/domain"
)

type fakeProfileRepo struct {
	profiles map[string]domain.UserProfile
	err      error
}

func newFakeProfileRepo(profiles ...domain.UserProfile) *fakeProfileRepo {
	repo := &fakeProfileRepo{profiles: make(map[string]domain.UserProfile)}
	for _, p := range profiles {
		repo.profiles[p.UserID] = p
	}
	return repo
}

func (r *fakeProfileRepo) FindByUserID(ctx context.Context, userID string) (*domain.UserProfile, error) {
	if r.err != nil {
		return nil, r.err
	}
	p, ok := r.profiles[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (r *fakeProfileRepo) FindCandidates(ctx context.Context, excludeUserID string) ([]domain.UserProfile, error) {
	if r.err != nil {
		return nil, r.err
	}
	candidates := make([]domain.UserProfile, 0, len(r.profiles))
	for _, p := range r.profiles {
		if p.UserID != excludeUserID {
			candidates = append(candidates, p)
		}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].UserID < candidates[j].UserID })
	return candidates, nil
}

func (r *fakeProfileRepo) Upsert(ctx context.Context, profile *domain.UserProfile) error {
	if r.err != nil {
		return r.err
	}
	r.profiles[profile.UserID] = *profile
	return nil
}

func (r *fakeProfileRepo) ReplaceSurveyResponses(ctx context.Context, userID string, responses []domain.SurveyResponse) error {
	if r.err != nil {
		return r.err
	}
	p, ok := r.profiles[userID]
	if !ok {
		return ErrNotFound
	}
	p.SurveyResponses = append([]domain.SurveyResponse{}, responses...)
	r.profiles[userID] = p
	return nil
}

type fakeRoomRepo struct {
	rooms []domain.Room
	err   error
}

func (r *fakeRoomRepo) FindActive(ctx context.Context, filter RoomFilter) ([]domain.Room, error) {
	if r.err != nil {
		return nil, r.err
	}
	active := make([]domain.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		if !room.AvailableAt(filter.Now) {
			continue
		}
		if filter.Location != "" && room.Location != filter.Location {
			continue
		}
		if filter.MaxRent > 0 && room.Rent.Int() > filter.MaxRent {
			continue
		}
		active = append(active, room)
	}
	return active, nil
}

func (r *fakeRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	if r.err != nil {
		return r.err
	}
	room.ID = "room-" + room.Title
	r.rooms = append(r.rooms, *room)
	return nil
}

func (r *fakeRoomRepo) SetActive(ctx context.Context, roomID, ownerID string, active bool) error {
	if r.err != nil {
		return r.err
	}
	for i := range r.rooms {
		if r.rooms[i].ID == roomID && r.rooms[i].OwnerID == ownerID {
			r.rooms[i].IsActive = active
			return nil
		}
	}
	return ErrNotFound
}

type fakeMatchRepo struct {
	matches map[string]domain.MatchResult
	err     error
}

func newFakeMatchRepo() *fakeMatchRepo {
	return &fakeMatchRepo{matches: make(map[string]domain.MatchResult)}
}

func (r *fakeMatchRepo) Create(ctx context.Context, match *domain.MatchResult) error {
	if r.err != nil {
		return r.err
	}
	r.matches[match.ID] = *match
	return nil
}

func (r *fakeMatchRepo) FindByID(ctx context.Context, id string) (*domain.MatchResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	m, ok := r.matches[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

func (r *fakeMatchRepo) FindByUser(ctx context.Context, userID string) ([]domain.MatchResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	results := make([]domain.MatchResult, 0)
	for _, m := range r.matches {
		if m.Involves(userID) {
			results = append(results, m)
		}
	}
	sort.Slice(results, func(i, j int) bool { return results[i].CreatedAt.After(results[j].CreatedAt) })
	return results, nil
}

func (r *fakeMatchRepo) UpdateStatus(ctx context.Context, id string, status domain.MatchStatus) error {
	if r.err != nil {
		return r.err
	}
	m, ok := r.matches[id]
	if !ok {
		return ErrNotFound
	}
	m.Status = status
	r.matches[id] = m
	return nil
}

type fakeDocumentRepo struct {
	docs map[string][]identity.Document
	err  error
}

func newFakeDocumentRepo() *fakeDocumentRepo {
	return &fakeDocumentRepo{docs: make(map[string][]identity.Document)}
}

func (r *fakeDocumentRepo) Create(ctx context.Context, doc *identity.Document) error {
	if r.err != nil {
		return r.err
	}
	doc.ID = "doc-" + doc.UserID
	r.docs[doc.UserID] = append(r.docs[doc.UserID], *doc)
	return nil
}

func (r *fakeDocumentRepo) LatestByUser(ctx context.Context, userID string) (*identity.Document, error) {
	if r.err != nil {
		return nil, r.err
	}
	docs := r.docs[userID]
	if len(docs) == 0 {
		return nil, ErrNotFound
	}
	latest := docs[len(docs)-1]
	return &latest, nil
}

type fakeVerifier struct {
	verified map[string]bool
	errFor   map[string]error
	err      error
}

func (v *fakeVerifier) IsVerified(ctx context.Context, userID string) (bool, error) {
	if v.err != nil {
		return false, v.err
	}
	if err := v.errFor[userID]; err != nil {
		return false, err
	}
	return v.verified[userID], nil
}

type fakeMatchCache struct {
	entries   map[string]domain.MatchResult
	readErr   error
	writeErr  error
	lastTTL   time.Duration
	storeHits int
}

func newFakeMatchCache() *fakeMatchCache {
	return &fakeMatchCache{entries: make(map[string]domain.MatchResult)}
}

func (c *fakeMatchCache) Latest(ctx context.Context, userID string) (*domain.MatchResult, error) {
	if c.readErr != nil {
		return nil, c.readErr
	}
	m, ok := c.entries[userID]
	if !ok {
		return nil, nil
	}
	return &m, nil
}

func (c *fakeMatchCache) StoreLatest(ctx context.Context, userID string, match *domain.MatchResult, ttl time.Duration) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.entries[userID] = *match
	c.lastTTL = ttl
	c.storeHits++
	return nil
}

func (c *fakeMatchCache) Invalidate(ctx context.Context, userID string) error {
	delete(c.entries, userID)
	return nil
}
