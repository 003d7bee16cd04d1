package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jortega87/restaurant-booking/internal/core/bus"
	"github.com/jortega87/restaurant-booking/internal/core/domain"
	"github.com/jortega87/restaurant-booking/internal/core/ports"
)

// Query names, used as registry keys on the query bus.
const (
	GetBookingByIDName          = "booking.get_by_id"
	IndexBookingsName           = "booking.index"
	GetBookingsByRestaurantName = "booking.get_by_restaurant"
	GetClientByIDName           = "client.get_by_id"
)

// DefaultPageSize applies when an index query carries no limit.
const DefaultPageSize = 20

const bookingCacheTTL = 5 * time.Minute

type GetBookingByID struct {
	BookingID uuid.UUID
}

func (GetBookingByID) QueryName() string { return GetBookingByIDName }

type IndexBookings struct {
	RestaurantID *uuid.UUID
	ClientID     *uuid.UUID
	ClientName   *string
	Status       *domain.BookingStatus
	DateFrom     *string
	DateTo       *string
	Limit        int
	Offset       int
}

func (IndexBookings) QueryName() string { return IndexBookingsName }

type GetBookingsByRestaurant struct {
	RestaurantID uuid.UUID
}

func (GetBookingsByRestaurant) QueryName() string { return GetBookingsByRestaurantName }

// GetBookingByIDHandler serves the single-booking view, fronted by a Redis
// cache with a short TTL. The cache is best effort: any cache failure falls
// through to the repository.
type GetBookingByIDHandler struct {
	bookings ports.BookingRepository
	cache    *redis.Client
}

func NewGetBookingByIDHandler(bookings ports.BookingRepository, cache *redis.Client) *GetBookingByIDHandler {
	return &GetBookingByIDHandler{bookings: bookings, cache: cache}
}

func (h *GetBookingByIDHandler) Handle(ctx context.Context, query bus.Query) (any, error) {
	q, ok := query.(GetBookingByID)
	if !ok {
		return nil, fmt.Errorf("%w: %T", bus.ErrUnexpectedRequest, query)
	}

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, bookingCacheKey(q.BookingID)).Result()
		if err == nil {
			var dto BookingDTO
			if err := json.Unmarshal([]byte(cached), &dto); err == nil {
				return dto, nil
			}
		}
	}

	booking, err := h.bookings.GetByID(ctx, q.BookingID)
	if err != nil {
		return nil, err
	}

	dto := newBookingDTO(booking)

	if h.cache != nil {
		if payload, err := json.Marshal(dto); err == nil {
			if err := h.cache.Set(ctx, bookingCacheKey(q.BookingID), payload, bookingCacheTTL).Err(); err != nil {
				log.Printf("failed to cache booking %s: %v", q.BookingID, err)
			}
		}
	}

	return dto, nil
}

// IndexBookingsHandler answers the paginated, filterable list query through
// the read-model projector, bypassing the aggregate.
type IndexBookingsHandler struct {
	readModel ports.BookingReadModel
}

func NewIndexBookingsHandler(readModel ports.BookingReadModel) *IndexBookingsHandler {
	return &IndexBookingsHandler{readModel: readModel}
}

func (h *IndexBookingsHandler) Handle(ctx context.Context, query bus.Query) (any, error) {
	q, ok := query.(IndexBookings)
	if !ok {
		return nil, fmt.Errorf("%w: %T", bus.ErrUnexpectedRequest, query)
	}

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultPageSize
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	items, total, err := h.readModel.FindPaginated(ctx, ports.BookingFilter{
		RestaurantID: q.RestaurantID,
		ClientID:     q.ClientID,
		ClientName:   q.ClientName,
		Status:       q.Status,
		DateFrom:     q.DateFrom,
		DateTo:       q.DateTo,
		Limit:        limit,
		Offset:       offset,
	})
	if err != nil {
		return nil, err
	}

	page := 1
	if limit > 0 {
		page = offset/limit + 1
	}

	return BookingPage{
		Items:      items,
		TotalCount: total,
		PageSize:   limit,
		Page:       page,
	}, nil
}

type GetBookingsByRestaurantHandler struct {
	bookings ports.BookingRepository
}

func NewGetBookingsByRestaurantHandler(bookings ports.BookingRepository) *GetBookingsByRestaurantHandler {
	return &GetBookingsByRestaurantHandler{bookings: bookings}
}

func (h *GetBookingsByRestaurantHandler) Handle(ctx context.Context, query bus.Query) (any, error) {
	q, ok := query.(GetBookingsByRestaurant)
	if !ok {
		return nil, fmt.Errorf("%w: %T", bus.ErrUnexpectedRequest, query)
	}

	bookings, err := h.bookings.FindByRestaurantID(ctx, q.RestaurantID)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, 0, len(bookings))
	for _, b := range bookings {
		dtos = append(dtos, newBookingDTO(b))
	}

	return dtos, nil
}
