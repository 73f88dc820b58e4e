package services

import (
	"context"
	"errors"
	"log"
	"time"

	"tripbooking/internal/domain"
)

type enrollmentService struct {
	catalog        domain.CatalogService
	directory      domain.DirectoryService
	enrollmentRepo domain.EnrollmentRepository
	emailService   domain.EmailService
}

// NewEnrollmentService creates the EnrollmentService. emailService may be nil
// to disable confirmation emails.
func NewEnrollmentService(
	catalog domain.CatalogService,
	directory domain.DirectoryService,
	enrollmentRepo domain.EnrollmentRepository,
	emailService domain.EmailService,
) domain.EnrollmentService {
	return &enrollmentService{
		catalog:        catalog,
		directory:      directory,
		enrollmentRepo: enrollmentRepo,
		emailService:   emailService,
	}
}

// Register checks the preconditions in order, then hands the capacity check
// and the insert to the repository as one atomic transaction. The early
// checks give the caller distinct failures; the repository re-detects every
// race inside the transaction, so a concurrent Register between the checks
// and the insert can never overshoot capacity or duplicate the pair.
func (s *enrollmentService) Register(ctx context.Context, clientID, tripID int) (*domain.Enrollment, error) {
	client, err := s.directory.GetClient(ctx, clientID)
	if err != nil {
		return nil, err
	}

	trip, err := s.catalog.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	if _, err := s.enrollmentRepo.GetByClientAndTrip(ctx, clientID, tripID); err == nil {
		return nil, domain.ErrAlreadyRegistered
	} else if !errors.Is(err, domain.ErrEnrollmentNotFound) {
		return nil, storeErr("get enrollment", err)
	}

	enr := domain.NewEnrollment(clientID, tripID, time.Now())
	if err := s.enrollmentRepo.Register(ctx, enr); err != nil {
		switch {
		case errors.Is(err, domain.ErrTripFull),
			errors.Is(err, domain.ErrAlreadyRegistered),
			errors.Is(err, domain.ErrTripNotFound),
			errors.Is(err, domain.ErrClientNotFound):
			return nil, err
		}
		return nil, storeErr("register enrollment", err)
	}

	s.sendConfirmation(ctx, client, trip)
	return enr, nil
}

func (s *enrollmentService) Unregister(ctx context.Context, clientID, tripID int) error {
	if err := s.enrollmentRepo.Delete(ctx, clientID, tripID); err != nil {
		if errors.Is(err, domain.ErrEnrollmentNotFound) {
			return domain.ErrEnrollmentNotFound
		}
		return storeErr("delete enrollment", err)
	}
	return nil
}

func (s *enrollmentService) ListTripsForClient(ctx context.Context, clientID int) ([]*domain.ClientTrip, error) {
	return s.directory.ListTripsForClient(ctx, clientID)
}

// sendConfirmation is best-effort: the enrollment is already committed, so a
// mail failure is logged, never surfaced.
func (s *enrollmentService) sendConfirmation(ctx context.Context, client *domain.Client, trip *domain.Trip) {
	if s.emailService == nil {
		return
	}
	data := &domain.EnrollmentConfirmationEmailData{
		Email:     client.Email,
		FirstName: client.FirstName,
		TripName:  trip.Name,
		DateFrom:  trip.DateFrom.Format("2006-01-02"),
		DateTo:    trip.DateTo.Format("2006-01-02"),
	}
	if err := s.emailService.SendEnrollmentConfirmation(ctx, data); err != nil {
		log.Printf("[EMAIL] enrollment confirmation to %s failed: %v", client.Email, err)
	}
}
