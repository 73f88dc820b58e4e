package controllers

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"tripbooking/internal/domain"
)

// Function-field mocks for the service interfaces. Tests set only the fields
// the handler under test calls; an unset field panics and fails the test.

type mockCatalogService struct {
	ListTripsFn   func(ctx context.Context) ([]*domain.TripWithCountry, error)
	GetTripFn     func(ctx context.Context, tripID int) (*domain.Trip, error)
	GetCapacityFn func(ctx context.Context, tripID int) (int, error)
	ExistsFn      func(ctx context.Context, tripID int) (bool, error)
}

func (m *mockCatalogService) ListTrips(ctx context.Context) ([]*domain.TripWithCountry, error) {
	return m.ListTripsFn(ctx)
}

func (m *mockCatalogService) GetTrip(ctx context.Context, tripID int) (*domain.Trip, error) {
	return m.GetTripFn(ctx, tripID)
}

func (m *mockCatalogService) GetCapacity(ctx context.Context, tripID int) (int, error) {
	return m.GetCapacityFn(ctx, tripID)
}

func (m *mockCatalogService) Exists(ctx context.Context, tripID int) (bool, error) {
	return m.ExistsFn(ctx, tripID)
}

type mockDirectoryService struct {
	CreateClientFn       func(ctx context.Context, firstName, lastName, email string, telephone, pesel *string) (*domain.Client, error)
	GetClientFn          func(ctx context.Context, clientID int) (*domain.Client, error)
	ExistsFn             func(ctx context.Context, clientID int) (bool, error)
	ListTripsForClientFn func(ctx context.Context, clientID int) ([]*domain.ClientTrip, error)
}

func (m *mockDirectoryService) CreateClient(ctx context.Context, firstName, lastName, email string, telephone, pesel *string) (*domain.Client, error) {
	return m.CreateClientFn(ctx, firstName, lastName, email, telephone, pesel)
}

func (m *mockDirectoryService) GetClient(ctx context.Context, clientID int) (*domain.Client, error) {
	return m.GetClientFn(ctx, clientID)
}

func (m *mockDirectoryService) Exists(ctx context.Context, clientID int) (bool, error) {
	return m.ExistsFn(ctx, clientID)
}

func (m *mockDirectoryService) ListTripsForClient(ctx context.Context, clientID int) ([]*domain.ClientTrip, error) {
	return m.ListTripsForClientFn(ctx, clientID)
}

type mockEnrollmentService struct {
	RegisterFn           func(ctx context.Context, clientID, tripID int) (*domain.Enrollment, error)
	UnregisterFn         func(ctx context.Context, clientID, tripID int) error
	ListTripsForClientFn func(ctx context.Context, clientID int) ([]*domain.ClientTrip, error)
}

func (m *mockEnrollmentService) Register(ctx context.Context, clientID, tripID int) (*domain.Enrollment, error) {
	return m.RegisterFn(ctx, clientID, tripID)
}

func (m *mockEnrollmentService) Unregister(ctx context.Context, clientID, tripID int) error {
	return m.UnregisterFn(ctx, clientID, tripID)
}

func (m *mockEnrollmentService) ListTripsForClient(ctx context.Context, clientID int) ([]*domain.ClientTrip, error) {
	return m.ListTripsForClientFn(ctx, clientID)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestMux registers routes with the same method patterns as the production
// router so r.PathValue resolves in handlers.
func newTestMux(trip *TripController, client *ClientController, enrollment *EnrollmentController) *http.ServeMux {
	mux := http.NewServeMux()
	if trip != nil {
		mux.HandleFunc("GET /trips", trip.ListTrips)
	}
	if client != nil {
		mux.HandleFunc("POST /clients", client.CreateClient)
		mux.HandleFunc("GET /clients/{id}/trips", client.ListClientTrips)
	}
	if enrollment != nil {
		mux.HandleFunc("PUT /clients/{id}/trips/{tripID}", enrollment.Register)
		mux.HandleFunc("DELETE /clients/{id}/trips/{tripID}", enrollment.Unregister)
	}
	return mux
}
