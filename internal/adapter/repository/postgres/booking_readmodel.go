package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/jortega87/restaurant-booking/internal/core/ports"
)

// unknownClientName is reported when a booking has no matching client row.
const unknownClientName = "Unknown"

// BookingReadModel is the read-side projector for the booking list. It
// joins bookings with clients and a per-booking product aggregate; it never
// writes. The SQL SUM over product line totals must agree with the
// aggregate's own TotalPrice, which snapshots the same per-line totals.
type BookingReadModel struct {
	db *sql.DB
}

func NewBookingReadModel(db *sql.DB) *BookingReadModel {
	return &BookingReadModel{db: db}
}

func (r *BookingReadModel) FindPaginated(ctx context.Context, filter ports.BookingFilter) ([]ports.BookingListItem, int, error) {
	where, args := buildBookingFilter(filter)

	countQuery := `
	SELECT COUNT(b.id)
	FROM bookings b
	LEFT JOIN clients c ON c.id = b.client_id
	` + where

	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	pageQuery := fmt.Sprintf(`
	SELECT b.id, b.client_id, COALESCE(c.name, '%s') AS client_name, b.restaurant_id,
		b.date, b.time, b.party_size, b.status,
		COALESCE(bp.total, 0) AS total_price, b.created_at
	FROM bookings b
	LEFT JOIN clients c ON c.id = b.client_id
	LEFT JOIN (
		SELECT booking_id, SUM(total_price) AS total
		FROM booking_products
		GROUP BY booking_id
	) bp ON bp.booking_id = b.id
	%s
	ORDER BY b.date DESC, b.time DESC
	LIMIT $%d OFFSET $%d`, unknownClientName, where, len(args)+1, len(args)+2)

	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	defer rows.Close()

	items := make([]ports.BookingListItem, 0)
	for rows.Next() {
		var (
			item      ports.BookingListItem
			dateStr   string
			timeStr   string
			createdAt time.Time
		)
		if err := rows.Scan(
			&item.ID,
			&item.ClientID,
			&item.ClientName,
			&item.RestaurantID,
			&dateStr,
			&timeStr,
			&item.PartySize,
			&item.Status,
			&item.TotalPriceCents,
			&createdAt,
		); err != nil {
			return nil, 0, err
		}

		item.Date = normalizeDate(dateStr)
		item.Time = normalizeTime(timeStr)
		item.CreatedAt = createdAt

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// buildBookingFilter renders the WHERE clause shared by the count and page
// queries. ClientName matches case-insensitively as a substring.
func buildBookingFilter(filter ports.BookingFilter) (string, []any) {
	var conditions []string
	var args []any

	add := func(condition string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(condition, len(args)))
	}

	if filter.RestaurantID != nil {
		add("b.restaurant_id = $%d", *filter.RestaurantID)
	}
	if filter.ClientID != nil {
		add("b.client_id = $%d", *filter.ClientID)
	}
	if filter.ClientName != nil {
		add("c.name ILIKE '%%' || $%d || '%%'", *filter.ClientName)
	}
	if filter.Status != nil {
		add("b.status = $%d", string(*filter.Status))
	}
	if filter.DateFrom != nil {
		add("b.date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		add("b.date <= $%d", *filter.DateTo)
	}

	if len(conditions) == 0 {
		return "", nil
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// normalizeTime trims TIME values to HH:MM.
func normalizeTime(s string) string {
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
