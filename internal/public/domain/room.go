package domain

import "time"

// Room is a twin- or single-bed listing created by its owner.
type Room struct {
	ID              string
	OwnerID         string
	Title           string
	Description     string
	Location        string
	Coordinates     *Coordinates
	Photos          []string
	BedType         RoomBedType
	Furnished       bool
	PrivateBathroom bool
	Rent            Rent
	Utilities       Utilities
	Amenities       []string
	HouseRules      []string
	FloorLevel      int
	SafetyFeatures  []string
	AvailableFrom   time.Time
	AvailableUntil  *time.Time
	IsActive        bool
	CreatedAt       time.Time
}

type Coordinates struct {
	Lat float64
	Lng float64
}

type Utilities struct {
	Included   []string
	Additional []string
}

// HasValidAvailability reports whether the availability window is coherent.
// Listings violating it are skipped by the engine, never fatal.
func (r Room) HasValidAvailability() bool {
	if r.AvailableUntil == nil {
		return true
	}
	return !r.AvailableFrom.After(*r.AvailableUntil)
}

// AvailableAt reports whether the listing can be moved into at the given time.
func (r Room) AvailableAt(t time.Time) bool {
	if !r.IsActive || !r.HasValidAvailability() {
		return false
	}
	if r.AvailableUntil != nil && t.After(*r.AvailableUntil) {
		return false
	}
	return true
}
