package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jortega87/restaurant-booking/internal/core/domain"
)

// BookingFilter narrows the booking list projection. Nil fields are
// ignored. ClientName is a case-insensitive substring match on the joined
// client row. DateFrom and DateTo are inclusive "2006-01-02" bounds on the
// slot date.
type BookingFilter struct {
	RestaurantID *uuid.UUID
	ClientID     *uuid.UUID
	ClientName   *string
	Status       *domain.BookingStatus
	DateFrom     *string
	DateTo       *string
	Limit        int
	Offset       int
}

// BookingListItem is a denormalized list row. ClientName comes from the
// Client aggregate's table; a booking without a matching client row gets
// the "Unknown" placeholder. TotalPriceCents is aggregated at the storage
// layer from the product lines and must agree with the aggregate's own
// TotalPrice by construction.
type BookingListItem struct {
	ID              string    `json:"id"`
	ClientID        string    `json:"client_id"`
	ClientName      string    `json:"client_name"`
	RestaurantID    string    `json:"restaurant_id"`
	Date            string    `json:"date"`
	Time            string    `json:"time"`
	PartySize       int       `json:"party_size"`
	Status          string    `json:"status"`
	TotalPriceCents int64     `json:"total_price_cents"`
	CreatedAt       time.Time `json:"created_at"`
}

// BookingReadModel answers list queries across the booking and client
// aggregates. It only ever reads.
type BookingReadModel interface {
	// FindPaginated returns the rows matching the filter, ordered by date
	// then time descending, plus the total match count ignoring Limit and
	// Offset.
	FindPaginated(ctx context.Context, filter BookingFilter) ([]BookingListItem, int, error)
}
