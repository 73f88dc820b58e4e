package domain

import (
	"context"
	"time"
)

// Trip represents a trip offering. Trips are created and edited outside this
// service; the enrollment core only ever reads them.
type Trip struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	DateFrom    time.Time  `json:"date_from"`
	DateTo      time.Time  `json:"date_to"`
	MaxPeople   int        `json:"max_people"`
}

// TripWithCountry is a Trip joined with one of its country names. A trip
// associated with several countries yields one entry per country, matching
// the catalog listing query.
type TripWithCountry struct {
	Trip
	Country string `json:"country"`
}

// TripRepository defines read-only storage operations for trips.
type TripRepository interface {
	// List returns all trips joined with their country names.
	List(ctx context.Context) ([]*TripWithCountry, error)
	// GetByID returns the trip, or ErrTripNotFound.
	GetByID(ctx context.Context, tripID int) (*Trip, error)
	// GetCapacity returns the trip's max_people. Returns ErrTripNotFound if
	// the trip does not exist.
	GetCapacity(ctx context.Context, tripID int) (int, error)
	Exists(ctx context.Context, tripID int) (bool, error)
}

// CatalogService exposes the read-only trip catalog.
type CatalogService interface {
	ListTrips(ctx context.Context) ([]*TripWithCountry, error)
	GetTrip(ctx context.Context, tripID int) (*Trip, error)
	GetCapacity(ctx context.Context, tripID int) (int, error)
	Exists(ctx context.Context, tripID int) (bool, error)
}
