package domain

import (
	"context"
	"time"
)

// Enrollment links one client to one trip. The pair (ClientID, TripID) is the
// identity; there is never more than one row per pair.
type Enrollment struct {
	ClientID     int        `json:"client_id"`
	TripID       int        `json:"trip_id"`
	RegisteredAt time.Time  `json:"registered_at"`
	PaymentDate  *time.Time `json:"payment_date,omitempty"`
}

// NewEnrollment creates an Enrollment for the given pair, registered at the
// given time. PaymentDate starts unset.
func NewEnrollment(clientID, tripID int, registeredAt time.Time) *Enrollment {
	return &Enrollment{
		ClientID:     clientID,
		TripID:       tripID,
		RegisteredAt: registeredAt,
	}
}

// ClientTrip bundles a trip with the client's enrollment metadata, as
// returned by the client trip listing.
type ClientTrip struct {
	Trip         Trip       `json:"trip"`
	RegisteredAt time.Time  `json:"registered_at"`
	PaymentDate  *time.Time `json:"payment_date,omitempty"`
}

// EnrollmentRepository defines storage operations for enrollments. The
// enrollment service is the sole caller of the write paths; no other
// component inserts or deletes enrollment rows.
type EnrollmentRepository interface {
	// Register atomically checks the trip's remaining capacity and inserts
	// the enrollment in a single transaction. The capacity read and the
	// insert are serialized per trip, so concurrent calls for the same trip
	// cannot overshoot max_people. Returns ErrTripFull when the trip is at
	// capacity, ErrAlreadyRegistered when the pair already exists,
	// ErrTripNotFound when the trip is gone, and ErrClientNotFound when the
	// client reference is dangling.
	Register(ctx context.Context, enr *Enrollment) error

	// Delete removes the enrollment for the pair. Returns
	// ErrEnrollmentNotFound when no row exists.
	Delete(ctx context.Context, clientID, tripID int) error

	// GetByClientAndTrip returns the enrollment for the pair, or
	// ErrEnrollmentNotFound.
	GetByClientAndTrip(ctx context.Context, clientID, tripID int) (*Enrollment, error)

	// ListByClientID returns the client's trips joined with enrollment
	// metadata, most recent registration first.
	ListByClientID(ctx context.Context, clientID int) ([]*ClientTrip, error)
}

// EnrollmentService enforces the capacity and relationship invariants.
type EnrollmentService interface {
	// Register enrolls the client in the trip. Preconditions are checked in
	// order, each with a distinct failure: client exists (ErrClientNotFound),
	// trip exists (ErrTripNotFound), pair not yet enrolled
	// (ErrAlreadyRegistered), trip below capacity (ErrTripFull).
	Register(ctx context.Context, clientID, tripID int) (*Enrollment, error)

	// Unregister removes the enrollment. Returns ErrEnrollmentNotFound when
	// the pair is not enrolled; a repeat call after success fails the same
	// way rather than silently succeeding.
	Unregister(ctx context.Context, clientID, tripID int) error

	ListTripsForClient(ctx context.Context, clientID int) ([]*ClientTrip, error)
}
