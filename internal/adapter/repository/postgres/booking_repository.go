package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jortega87/restaurant-booking/internal/core/domain"
)

// BookingRepository persists the booking aggregate in the bookings and
// booking_products tables. Store runs in one transaction: the parent row is
// upserted and the product children are replaced wholesale.
type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Store(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryParent := `
	INSERT INTO bookings (id, client_id, restaurant_id, date, time, party_size, status, special_requests,
		confirmed_at, cancelled_at, cancellation_reason, completed_at, no_show_at, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
	ON CONFLICT (id) DO UPDATE SET
		date = EXCLUDED.date,
		time = EXCLUDED.time,
		party_size = EXCLUDED.party_size,
		status = EXCLUDED.status,
		special_requests = EXCLUDED.special_requests,
		confirmed_at = EXCLUDED.confirmed_at,
		cancelled_at = EXCLUDED.cancelled_at,
		cancellation_reason = EXCLUDED.cancellation_reason,
		completed_at = EXCLUDED.completed_at,
		no_show_at = EXCLUDED.no_show_at,
		updated_at = NOW()
	`

	_, err = tx.ExecContext(ctx, queryParent,
		booking.ID(),
		booking.ClientID(),
		booking.RestaurantID(),
		booking.TimeSlot().DateString(),
		booking.TimeSlot().TimeString(),
		booking.PartySize().Value(),
		string(booking.Status()),
		booking.SpecialRequests(),
		booking.ConfirmedAt(),
		booking.CancelledAt(),
		booking.CancellationReason(),
		booking.CompletedAt(),
		booking.NoShowAt(),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert booking: %w", err)
	}

	// Products are replaced wholesale rather than diffed. The surrounding
	// transaction keeps the delete and the reinserts atomic.
	_, err = tx.ExecContext(ctx, `DELETE FROM booking_products WHERE booking_id = $1`, booking.ID())
	if err != nil {
		return fmt.Errorf("failed to clear booking products: %w", err)
	}

	queryProduct := `
	INSERT INTO booking_products (id, booking_id, product_type, quantity, unit_price, total_price, created_at, updated_at)
	VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
	`

	stmt, err := tx.PrepareContext(ctx, queryProduct)
	if err != nil {
		return fmt.Errorf("failed to prepare product statement: %w", err)
	}

	defer stmt.Close()

	for _, product := range booking.Products() {
		_, err := stmt.ExecContext(ctx,
			product.ID(),
			product.BookingID(),
			string(product.Type()),
			product.Quantity(),
			product.UnitPrice().Cents(),
			product.TotalPrice().Cents(),
		)
		if err != nil {
			return fmt.Errorf("failed to insert booking product %s: %w", product.ID(), err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	query := `
	SELECT id, client_id, restaurant_id, date, time, party_size, status, special_requests,
		confirmed_at, cancelled_at, cancellation_reason, completed_at, no_show_at
	FROM bookings
	WHERE id = $1
	`

	row := r.db.QueryRowContext(ctx, query, id)

	booking, err := scanBooking(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	products, err := r.loadProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	booking.Products = products

	return domain.ReconstituteBooking(*booking), nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if booking == nil {
		return nil, fmt.Errorf("booking %s: %w", id, domain.ErrBookingNotFound)
	}
	return booking, nil
}

func (r *BookingRepository) FindByRestaurantID(ctx context.Context, restaurantID uuid.UUID) ([]*domain.Booking, error) {
	query := `
	SELECT id, client_id, restaurant_id, date, time, party_size, status, special_requests,
		confirmed_at, cancelled_at, cancellation_reason, completed_at, no_show_at
	FROM bookings
	WHERE restaurant_id = $1
	ORDER BY date DESC, time DESC
	`

	rows, err := r.db.QueryContext(ctx, query, restaurantID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var bookings []*domain.Booking
	for rows.Next() {
		state, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}

		products, err := r.loadProducts(ctx, state.ID)
		if err != nil {
			return nil, err
		}
		state.Products = products

		bookings = append(bookings, domain.ReconstituteBooking(*state))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingRepository) loadProducts(ctx context.Context, bookingID uuid.UUID) ([]domain.BookingProduct, error) {
	query := `
	SELECT id, booking_id, product_type, quantity, unit_price
	FROM booking_products
	WHERE booking_id = $1
	ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query, bookingID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var products []domain.BookingProduct
	for rows.Next() {
		var (
			id          uuid.UUID
			owningID    uuid.UUID
			productType string
			quantity    int
			unitCents   int64
		)
		if err := rows.Scan(&id, &owningID, &productType, &quantity, &unitCents); err != nil {
			return nil, err
		}

		unitPrice, err := domain.MoneyFromCents(unitCents)
		if err != nil {
			return nil, err
		}

		products = append(products, domain.ReconstituteBookingProduct(id, owningID, domain.ProductType(productType), quantity, unitPrice))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.BookingState, error) {
	var (
		id                 uuid.UUID
		clientID           uuid.UUID
		restaurantID       uuid.UUID
		dateStr            string
		timeStr            string
		partySize          int
		status             string
		specialRequests    sql.NullString
		confirmedAt        sql.NullTime
		cancelledAt        sql.NullTime
		cancellationReason sql.NullString
		completedAt        sql.NullTime
		noShowAt           sql.NullTime
	)

	err := row.Scan(
		&id,
		&clientID,
		&restaurantID,
		&dateStr,
		&timeStr,
		&partySize,
		&status,
		&specialRequests,
		&confirmedAt,
		&cancelledAt,
		&cancellationReason,
		&completedAt,
		&noShowAt,
	)
	if err != nil {
		return nil, err
	}

	slot, err := domain.TimeSlotFromStrings(normalizeDate(dateStr), timeStr)
	if err != nil {
		return nil, err
	}

	size, err := domain.NewPartySize(partySize)
	if err != nil {
		return nil, err
	}

	return &domain.BookingState{
		ID:                 id,
		ClientID:           clientID,
		RestaurantID:       restaurantID,
		TimeSlot:           slot,
		PartySize:          size,
		Status:             domain.BookingStatus(status),
		SpecialRequests:    nullableString(specialRequests),
		ConfirmedAt:        nullableTime(confirmedAt),
		CancelledAt:        nullableTime(cancelledAt),
		CancellationReason: nullableString(cancellationReason),
		CompletedAt:        nullableTime(completedAt),
		NoShowAt:           nullableTime(noShowAt),
	}, nil
}

// normalizeDate trims DATE values that arrive with a time component
// attached (lib/pq renders them as RFC3339).
func normalizeDate(s string) string {
	if len(s) > 10 {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t.Format("2006-01-02")
		}
		return s[:10]
	}
	return s
}

func nullableString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	s := v.String
	return &s
}

func nullableTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
