package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/jortega87/restaurant-booking/internal/core/domain"
)

// BookingRepository persists and rehydrates the booking aggregate as a
// whole unit: the parent row and its product children are stored together.
//
// Store replaces previously persisted children wholesale inside one
// transaction. No concurrency token is kept; concurrent stores on the same
// id race and the last write wins.
type BookingRepository interface {
	Store(ctx context.Context, booking *domain.Booking) error

	// FindByID returns (nil, nil) when no booking exists with the id.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)

	// GetByID is FindByID narrowed to fail with domain.ErrBookingNotFound
	// when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)

	FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Booking, error)
}

type ClientRepository interface {
	Store(ctx context.Context, client *domain.Client) error

	// FindByID returns (nil, nil) when no client exists with the id.
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)

	// GetByID is FindByID narrowed to fail with domain.ErrClientNotFound
	// when absent.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
}
