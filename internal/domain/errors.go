package domain

import "errors"

// Sentinel errors returned by services and repositories. Controllers map
// these to HTTP statuses; anything that is not one of these is treated as an
// internal failure.
var (
	// ErrInvalidInput indicates malformed caller input (blank required field,
	// non-positive id). Not retryable.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is the generic zero-rows result for read paths that do not
	// distinguish which entity is missing (e.g. a client with no trips).
	ErrNotFound = errors.New("not found")

	ErrClientNotFound     = errors.New("client not found")
	ErrTripNotFound       = errors.New("trip not found")
	ErrEnrollmentNotFound = errors.New("enrollment not found")

	// ErrAlreadyRegistered is returned when the (client, trip) pair already
	// has an enrollment.
	ErrAlreadyRegistered = errors.New("client already registered for trip")

	// ErrTripFull is returned when a trip has reached max_people.
	ErrTripFull = errors.New("trip is full")

	// ErrStoreUnavailable marks transient store failures (connection loss,
	// transaction timeout). The operation performed no partial write and the
	// caller may retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)
