package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tripbooking/internal/domain"
)

type tripRepository struct {
	DB *sql.DB
}

func NewTripRepository(db *sql.DB) domain.TripRepository {
	return &tripRepository{DB: db}
}

func (r *tripRepository) List(ctx context.Context) ([]*domain.TripWithCountry, error) {
	query := `
		SELECT t.id, t.name, t.description, t.date_from, t.date_to, t.max_people, c.name AS country
		FROM trips t
		JOIN country_trips ct ON t.id = ct.trip_id
		JOIN countries c ON ct.country_id = c.id
		ORDER BY t.date_from, t.id
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.TripWithCountry
	for rows.Next() {
		t := &domain.TripWithCountry{}
		if err := rows.Scan(&t.ID, &t.Name, &t.Description, &t.DateFrom, &t.DateTo, &t.MaxPeople, &t.Country); err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []*domain.TripWithCountry{}
	}
	return trips, nil
}

func (r *tripRepository) GetByID(ctx context.Context, tripID int) (*domain.Trip, error) {
	query := `
		SELECT id, name, description, date_from, date_to, max_people
		FROM trips
		WHERE id = $1
	`
	t := &domain.Trip{}
	err := r.DB.QueryRowContext(ctx, query, tripID).
		Scan(&t.ID, &t.Name, &t.Description, &t.DateFrom, &t.DateTo, &t.MaxPeople)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTripNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *tripRepository) GetCapacity(ctx context.Context, tripID int) (int, error) {
	query := `
		SELECT max_people
		FROM trips
		WHERE id = $1
	`
	var maxPeople int
	err := r.DB.QueryRowContext(ctx, query, tripID).Scan(&maxPeople)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, domain.ErrTripNotFound
		}
		return 0, err
	}
	return maxPeople, nil
}

func (r *tripRepository) Exists(ctx context.Context, tripID int) (bool, error) {
	query := `
		SELECT 1
		FROM trips
		WHERE id = $1
	`
	var one int
	err := r.DB.QueryRowContext(ctx, query, tripID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
