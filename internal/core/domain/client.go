package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a simple aggregate root with a creation-only lifecycle.
type Client struct {
	recorder
	id        uuid.UUID
	name      string
	email     *string
	phone     *string
	createdAt time.Time
}

func NewClient(id uuid.UUID, name string, email, phone *string) (*Client, error) {
	if name == "" {
		return nil, ErrEmptyClientName
	}

	c := &Client{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: time.Now(),
	}

	c.record(ClientCreated{
		occurrence: newOccurrence(),
		ClientID:   c.id.String(),
		Name:       c.name,
	})

	return c, nil
}

// ReconstituteClient rehydrates a client from storage without recording the
// creation event.
func ReconstituteClient(id uuid.UUID, name string, email, phone *string, createdAt time.Time) *Client {
	return &Client{
		id:        id,
		name:      name,
		email:     email,
		phone:     phone,
		createdAt: createdAt,
	}
}

func (c *Client) ID() uuid.UUID { return c.id }

func (c *Client) Name() string { return c.name }

func (c *Client) Email() *string { return c.email }

func (c *Client) Phone() *string { return c.phone }

func (c *Client) CreatedAt() time.Time { return c.createdAt }
