package domain

import "context"

// Client is a person who can enroll in trips. The enrollment service never
// mutates clients.
type Client struct {
	ID        int     `json:"id"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Telephone *string `json:"telephone,omitempty"`
	Pesel     *string `json:"pesel,omitempty"`
}

// NewClient returns a Client with the given fields. ID is set by the
// repository on create.
func NewClient(firstName, lastName, email string, telephone, pesel *string) *Client {
	return &Client{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Telephone: telephone,
		Pesel:     pesel,
	}
}

// ClientRepository defines storage operations for clients.
type ClientRepository interface {
	// Create inserts the client and sets its store-assigned ID.
	Create(ctx context.Context, c *Client) error
	// GetByID returns the client, or ErrClientNotFound.
	GetByID(ctx context.Context, clientID int) (*Client, error)
	Exists(ctx context.Context, clientID int) (bool, error)
}

// DirectoryService exposes client creation and the client trip listing.
type DirectoryService interface {
	// CreateClient validates and persists a new client. Returns
	// ErrInvalidInput when firstName, lastName, or email is blank.
	CreateClient(ctx context.Context, firstName, lastName, email string, telephone, pesel *string) (*Client, error)
	GetClient(ctx context.Context, clientID int) (*Client, error)
	Exists(ctx context.Context, clientID int) (bool, error)
	// ListTripsForClient returns the client's trips with enrollment metadata.
	// Returns ErrNotFound when the client has no enrollments; an unknown
	// client and a client with zero trips are not distinguished.
	ListTripsForClient(ctx context.Context, clientID int) ([]*ClientTrip, error)
}
