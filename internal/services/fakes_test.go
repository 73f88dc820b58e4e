package services

import (
	"context"
	"errors"
	"sort"
	"sync"

	"tripbooking/internal/domain"
)

var errDBDown = errors.New("connection refused")

// In-memory fakes backing the service tests. The enrollment fake performs the
// capacity check and the insert under one mutex, mirroring the transactional
// contract of the Postgres repository, so concurrency tests exercise the real
// service logic against a capacity-faithful store.

type fakeTripRepo struct {
	mu        sync.Mutex
	trips     map[int]*domain.Trip
	countries map[int][]string
	err       error
}

func newFakeTripRepo() *fakeTripRepo {
	return &fakeTripRepo{
		trips:     make(map[int]*domain.Trip),
		countries: make(map[int][]string),
	}
}

func (f *fakeTripRepo) add(t *domain.Trip, countries ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trips[t.ID] = t
	f.countries[t.ID] = countries
}

func (f *fakeTripRepo) List(ctx context.Context) ([]*domain.TripWithCountry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var ids []int
	for id := range f.trips {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	var out []*domain.TripWithCountry
	for _, id := range ids {
		for _, country := range f.countries[id] {
			out = append(out, &domain.TripWithCountry{Trip: *f.trips[id], Country: country})
		}
	}
	return out, nil
}

func (f *fakeTripRepo) GetByID(ctx context.Context, tripID int) (*domain.Trip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	t, ok := f.trips[tripID]
	if !ok {
		return nil, domain.ErrTripNotFound
	}
	return t, nil
}

func (f *fakeTripRepo) GetCapacity(ctx context.Context, tripID int) (int, error) {
	t, err := f.GetByID(ctx, tripID)
	if err != nil {
		return 0, err
	}
	return t.MaxPeople, nil
}

func (f *fakeTripRepo) Exists(ctx context.Context, tripID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.trips[tripID]
	return ok, nil
}

type fakeClientRepo struct {
	mu      sync.Mutex
	clients map[int]*domain.Client
	nextID  int
	err     error
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: make(map[int]*domain.Client), nextID: 1}
}

func (f *fakeClientRepo) Create(ctx context.Context, c *domain.Client) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	c.ID = f.nextID
	f.nextID++
	f.clients[c.ID] = c
	return nil
}

func (f *fakeClientRepo) GetByID(ctx context.Context, clientID int) (*domain.Client, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	c, ok := f.clients[clientID]
	if !ok {
		return nil, domain.ErrClientNotFound
	}
	return c, nil
}

func (f *fakeClientRepo) Exists(ctx context.Context, clientID int) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.clients[clientID]
	return ok, nil
}

type pairKey struct {
	clientID int
	tripID   int
}

type fakeEnrollmentRepo struct {
	mu          sync.Mutex
	tripRepo    *fakeTripRepo
	enrollments map[pairKey]*domain.Enrollment
	err         error
}

func newFakeEnrollmentRepo(tripRepo *fakeTripRepo) *fakeEnrollmentRepo {
	return &fakeEnrollmentRepo{
		tripRepo:    tripRepo,
		enrollments: make(map[pairKey]*domain.Enrollment),
	}
}

// Register checks duplicates and capacity and inserts while holding the lock,
// like the Postgres repository does inside its transaction.
func (f *fakeEnrollmentRepo) Register(ctx context.Context, enr *domain.Enrollment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}

	trip, err := f.tripRepo.GetByID(ctx, enr.TripID)
	if err != nil {
		return domain.ErrTripNotFound
	}

	key := pairKey{enr.ClientID, enr.TripID}
	if _, ok := f.enrollments[key]; ok {
		return domain.ErrAlreadyRegistered
	}

	count := 0
	for k := range f.enrollments {
		if k.tripID == enr.TripID {
			count++
		}
	}
	if count >= trip.MaxPeople {
		return domain.ErrTripFull
	}

	f.enrollments[key] = enr
	return nil
}

func (f *fakeEnrollmentRepo) Delete(ctx context.Context, clientID, tripID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	key := pairKey{clientID, tripID}
	if _, ok := f.enrollments[key]; !ok {
		return domain.ErrEnrollmentNotFound
	}
	delete(f.enrollments, key)
	return nil
}

func (f *fakeEnrollmentRepo) GetByClientAndTrip(ctx context.Context, clientID, tripID int) (*domain.Enrollment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	enr, ok := f.enrollments[pairKey{clientID, tripID}]
	if !ok {
		return nil, domain.ErrEnrollmentNotFound
	}
	return enr, nil
}

func (f *fakeEnrollmentRepo) ListByClientID(ctx context.Context, clientID int) ([]*domain.ClientTrip, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.ClientTrip
	for k, enr := range f.enrollments {
		if k.clientID != clientID {
			continue
		}
		trip, ok := f.tripRepo.trips[k.tripID]
		if !ok {
			continue
		}
		out = append(out, &domain.ClientTrip{
			Trip:         *trip,
			RegisteredAt: enr.RegisteredAt,
			PaymentDate:  enr.PaymentDate,
		})
	}
	return out, nil
}

func (f *fakeEnrollmentRepo) countForTrip(tripID int) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	count := 0
	for k := range f.enrollments {
		if k.tripID == tripID {
			count++
		}
	}
	return count
}

type fakeEmailService struct {
	mu   sync.Mutex
	sent []*domain.EnrollmentConfirmationEmailData
	err  error
}

func (f *fakeEmailService) SendEnrollmentConfirmation(ctx context.Context, data *domain.EnrollmentConfirmationEmailData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, data)
	return nil
}
