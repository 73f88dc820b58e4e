package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"tripbooking/internal/domain"
)

// Postgres error codes mapped to domain errors inside the enrollment
// transaction.
const (
	pqUniqueViolation     = "23505" // duplicate (client_id, trip_id)
	pqForeignKeyViolation = "23503" // dangling client or trip reference
)

// defaultRegisterTimeout bounds the enrollment transaction when the caller's
// context carries no deadline. On expiry the transaction rolls back wholesale.
const defaultRegisterTimeout = 5 * time.Second

type enrollmentRepository struct {
	DB *sql.DB
}

func NewEnrollmentRepository(db *sql.DB) domain.EnrollmentRepository {
	return &enrollmentRepository{DB: db}
}

// Register performs the capacity check and the insert as one transaction.
// The SELECT ... FOR UPDATE on the trip row serializes concurrent Register
// calls for the same trip; registrations for other trips are unaffected.
// The composite primary key and foreign keys on enrollments back up the
// duplicate and dangling-reference invariants at the store level.
func (r *enrollmentRepository) Register(ctx context.Context, enr *domain.Enrollment) error {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultRegisterTimeout)
		defer cancel()
	}

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var maxPeople int
	lockQuery := `
		SELECT max_people
		FROM trips
		WHERE id = $1
		FOR UPDATE
	`
	if err := tx.QueryRowContext(ctx, lockQuery, enr.TripID).Scan(&maxPeople); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrTripNotFound
		}
		return err
	}

	var count int
	countQuery := `
		SELECT COUNT(*)
		FROM enrollments
		WHERE trip_id = $1
	`
	if err := tx.QueryRowContext(ctx, countQuery, enr.TripID).Scan(&count); err != nil {
		return err
	}
	if count >= maxPeople {
		return domain.ErrTripFull
	}

	insertQuery := `
		INSERT INTO enrollments (client_id, trip_id, registered_at)
		VALUES ($1, $2, $3)
	`
	if _, err := tx.ExecContext(ctx, insertQuery, enr.ClientID, enr.TripID, enr.RegisteredAt); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch string(pqErr.Code) {
			case pqUniqueViolation:
				return domain.ErrAlreadyRegistered
			case pqForeignKeyViolation:
				return domain.ErrClientNotFound
			}
		}
		return err
	}

	return tx.Commit()
}

func (r *enrollmentRepository) Delete(ctx context.Context, clientID, tripID int) error {
	query := `
		DELETE FROM enrollments
		WHERE client_id = $1 AND trip_id = $2
	`
	res, err := r.DB.ExecContext(ctx, query, clientID, tripID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrEnrollmentNotFound
	}
	return nil
}

func (r *enrollmentRepository) GetByClientAndTrip(ctx context.Context, clientID, tripID int) (*domain.Enrollment, error) {
	query := `
		SELECT client_id, trip_id, registered_at, payment_date
		FROM enrollments
		WHERE client_id = $1 AND trip_id = $2
	`
	enr := &domain.Enrollment{}
	err := r.DB.QueryRowContext(ctx, query, clientID, tripID).
		Scan(&enr.ClientID, &enr.TripID, &enr.RegisteredAt, &enr.PaymentDate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return enr, nil
}

func (r *enrollmentRepository) ListByClientID(ctx context.Context, clientID int) ([]*domain.ClientTrip, error) {
	query := `
		SELECT t.id, t.name, t.description, t.date_from, t.date_to, t.max_people, e.registered_at, e.payment_date
		FROM enrollments e
		JOIN trips t ON e.trip_id = t.id
		WHERE e.client_id = $1
		ORDER BY e.registered_at DESC
	`
	rows, err := r.DB.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []*domain.ClientTrip
	for rows.Next() {
		ct := &domain.ClientTrip{}
		err := rows.Scan(&ct.Trip.ID, &ct.Trip.Name, &ct.Trip.Description,
			&ct.Trip.DateFrom, &ct.Trip.DateTo, &ct.Trip.MaxPeople,
			&ct.RegisteredAt, &ct.PaymentDate)
		if err != nil {
			return nil, err
		}
		trips = append(trips, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if trips == nil {
		trips = []*domain.ClientTrip{}
	}
	return trips, nil
}
