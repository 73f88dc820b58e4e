package postgres

import (
	"context"
	"database/sql"
	"errors"

	"tripbooking/internal/domain"
)

type clientRepository struct {
	DB *sql.DB
}

func NewClientRepository(db *sql.DB) domain.ClientRepository {
	return &clientRepository{DB: db}
}

func (r *clientRepository) Create(ctx context.Context, c *domain.Client) error {
	query := `
		INSERT INTO clients (first_name, last_name, email, telephone, pesel)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Email, c.Telephone, c.Pesel).
		Scan(&c.ID)
}

func (r *clientRepository) GetByID(ctx context.Context, clientID int) (*domain.Client, error) {
	query := `
		SELECT id, first_name, last_name, email, telephone, pesel
		FROM clients
		WHERE id = $1
	`
	c := &domain.Client{}
	err := r.DB.QueryRowContext(ctx, query, clientID).
		Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Telephone, &c.Pesel)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *clientRepository) Exists(ctx context.Context, clientID int) (bool, error) {
	query := `
		SELECT 1
		FROM clients
		WHERE id = $1
	`
	var one int
	err := r.DB.QueryRowContext(ctx, query, clientID).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
