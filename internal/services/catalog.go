package services

import (
	"context"
	"errors"

	"tripbooking/internal/domain"
)

type catalogService struct {
	tripRepo domain.TripRepository
}

// NewCatalogService creates a CatalogService backed by the given trip repository.
func NewCatalogService(tripRepo domain.TripRepository) domain.CatalogService {
	return &catalogService{tripRepo: tripRepo}
}

func (s *catalogService) ListTrips(ctx context.Context) ([]*domain.TripWithCountry, error) {
	trips, err := s.tripRepo.List(ctx)
	if err != nil {
		return nil, storeErr("list trips", err)
	}
	if trips == nil {
		trips = []*domain.TripWithCountry{}
	}
	return trips, nil
}

func (s *catalogService) GetTrip(ctx context.Context, tripID int) (*domain.Trip, error) {
	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return nil, domain.ErrTripNotFound
		}
		return nil, storeErr("get trip", err)
	}
	return trip, nil
}

func (s *catalogService) GetCapacity(ctx context.Context, tripID int) (int, error) {
	maxPeople, err := s.tripRepo.GetCapacity(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrTripNotFound) {
			return 0, domain.ErrTripNotFound
		}
		return 0, storeErr("get trip capacity", err)
	}
	return maxPeople, nil
}

func (s *catalogService) Exists(ctx context.Context, tripID int) (bool, error) {
	ok, err := s.tripRepo.Exists(ctx, tripID)
	if err != nil {
		return false, storeErr("check trip exists", err)
	}
	return ok, nil
}
