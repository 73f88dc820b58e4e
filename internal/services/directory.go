package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tripbooking/internal/domain"
)

type directoryService struct {
	clientRepo     domain.ClientRepository
	enrollmentRepo domain.EnrollmentRepository
}

// NewDirectoryService creates a DirectoryService with the given repositories.
func NewDirectoryService(clientRepo domain.ClientRepository, enrollmentRepo domain.EnrollmentRepository) domain.DirectoryService {
	return &directoryService{
		clientRepo:     clientRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *directoryService) CreateClient(ctx context.Context, firstName, lastName, email string, telephone, pesel *string) (*domain.Client, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)

	var missing []string
	if firstName == "" {
		missing = append(missing, "first_name")
	}
	if lastName == "" {
		missing = append(missing, "last_name")
	}
	if email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s required", domain.ErrInvalidInput, strings.Join(missing, ", "))
	}

	client := domain.NewClient(firstName, lastName, email, telephone, pesel)
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, storeErr("create client", err)
	}
	return client, nil
}

func (s *directoryService) GetClient(ctx context.Context, clientID int) (*domain.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, domain.ErrClientNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, storeErr("get client", err)
	}
	return client, nil
}

func (s *directoryService) Exists(ctx context.Context, clientID int) (bool, error) {
	ok, err := s.clientRepo.Exists(ctx, clientID)
	if err != nil {
		return false, storeErr("check client exists", err)
	}
	return ok, nil
}

// ListTripsForClient returns ErrNotFound when the client has no enrollments.
// An unknown client surfaces the same way; the endpoint does not distinguish
// the two cases.
func (s *directoryService) ListTripsForClient(ctx context.Context, clientID int) ([]*domain.ClientTrip, error) {
	trips, err := s.enrollmentRepo.ListByClientID(ctx, clientID)
	if err != nil {
		return nil, storeErr("list client trips", err)
	}
	if len(trips) == 0 {
		return nil, domain.ErrNotFound
	}
	return trips, nil
}
