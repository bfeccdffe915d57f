package application

import (
	"context"
	"fmt"
	"time"

	"github.com/roomee/roomee-services/api/internal/public/domain"
)

// CreateRoomCommand carries the fields an owner supplies for a new listing.
type CreateRoomCommand struct {
	Title           string
	Description     string
	Location        string
	Coordinates     *domain.Coordinates
	Photos          []string
	BedType         string
	Furnished       bool
	PrivateBathroom bool
	Rent            int
	Utilities       domain.Utilities
	Amenities       []string
	HouseRules      []string
	FloorLevel      int
	SafetyFeatures  []string
	AvailableFrom   time.Time
	AvailableUntil  *time.Time
}

// RoomService lists and manages room listings.
type RoomService struct {
	rooms RoomRepository
	now   func() time.Time
}

func NewRoomService(rooms RoomRepository) *RoomService {
	return &RoomService{rooms: rooms, now: time.Now}
}

// List returns active listings matching the filter. Listings whose
// availability window has already closed are treated as inactive.
func (s *RoomService) List(ctx context.Context, filter RoomFilter) ([]domain.Room, error) {
	if filter.Now.IsZero() {
		filter.Now = s.now().UTC()
	}
	return s.rooms.FindActive(ctx, filter)
}

// Create validates and stores a new listing for the owner.
func (s *RoomService) Create(ctx context.Context, ownerID string, cmd CreateRoomCommand) (*domain.Room, error) {
	if cmd.Title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if cmd.Location == "" {
		return nil, fmt.Errorf("location is required")
	}
	bedType, err := domain.NewRoomBedType(cmd.BedType)
	if err != nil {
		return nil, err
	}
	rent, err := domain.NewRent(cmd.Rent)
	if err != nil {
		return nil, err
	}
	if cmd.AvailableFrom.IsZero() {
		return nil, fmt.Errorf("availableFrom is required")
	}

	room := &domain.Room{
		OwnerID:         ownerID,
		Title:           cmd.Title,
		Description:     cmd.Description,
		Location:        cmd.Location,
		Coordinates:     cmd.Coordinates,
		Photos:          append([]string{}, cmd.Photos...),
		BedType:         bedType,
		Furnished:       cmd.Furnished,
		PrivateBathroom: cmd.PrivateBathroom,
		Rent:            rent,
		Utilities:       cmd.Utilities,
		Amenities:       append([]string{}, cmd.Amenities...),
		HouseRules:      append([]string{}, cmd.HouseRules...),
		FloorLevel:      cmd.FloorLevel,
		SafetyFeatures:  append([]string{}, cmd.SafetyFeatures...),
		AvailableFrom:   cmd.AvailableFrom,
		AvailableUntil:  cmd.AvailableUntil,
		IsActive:        true,
		CreatedAt:       s.now().UTC(),
	}
	if !room.HasValidAvailability() {
		return nil, fmt.Errorf("availableFrom must not be after availableUntil")
	}

	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// SetActive toggles a listing on or off. Only the owner may do so; the
// repository enforces the ownership constraint.
func (s *RoomService) SetActive(ctx context.Context, roomID, ownerID string, active bool) error {
	return s.rooms.SetActive(ctx, roomID, ownerID, active)
}
