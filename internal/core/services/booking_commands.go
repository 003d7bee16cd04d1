package services

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/jortega87/restaurant-booking/internal/core/bus"
	"github.com/jortega87/restaurant-booking/internal/core/domain"
	"github.com/jortega87/restaurant-booking/internal/core/ports"
)

// Command names, used as registry keys on the command bus.
const (
	CreateBookingName     = "booking.create"
	ConfirmBookingName    = "booking.confirm"
	CancelBookingName     = "booking.cancel"
	CompleteBookingName   = "booking.complete"
	MarkBookingNoShowName = "booking.mark_no_show"
	CreateClientName      = "client.create"
)

type CreateBooking struct {
	ID              uuid.UUID
	ClientID        uuid.UUID
	RestaurantID    uuid.UUID
	TimeSlot        domain.TimeSlot
	PartySize       domain.PartySize
	SpecialRequests *string
	Products        []domain.ProductSelection
}

func (CreateBooking) CommandName() string { return CreateBookingName }

type ConfirmBooking struct {
	BookingID uuid.UUID
}

func (ConfirmBooking) CommandName() string { return ConfirmBookingName }

type CancelBooking struct {
	BookingID uuid.UUID
	Reason    *string
}

func (CancelBooking) CommandName() string { return CancelBookingName }

type CompleteBooking struct {
	BookingID uuid.UUID
}

func (CompleteBooking) CommandName() string { return CompleteBookingName }

type MarkBookingNoShow struct {
	BookingID uuid.UUID
}

func (MarkBookingNoShow) CommandName() string { return MarkBookingNoShowName }

func bookingCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("booking:%s", id)
}

// invalidateBookingCache drops the cached detail view after a successful
// store. Cache failures are logged, never surfaced: the store already
// succeeded.
func invalidateBookingCache(ctx context.Context, cache *redis.Client, id uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Del(ctx, bookingCacheKey(id)).Err(); err != nil {
		log.Printf("failed to invalidate cache for booking %s: %v", id, err)
	}
}

type CreateBookingHandler struct {
	bookings ports.BookingRepository
	events   bus.EventBus
	cache    *redis.Client
}

func NewCreateBookingHandler(bookings ports.BookingRepository, events bus.EventBus, cache *redis.Client) *CreateBookingHandler {
	return &CreateBookingHandler{bookings: bookings, events: events, cache: cache}
}

func (h *CreateBookingHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(CreateBooking)
	if !ok {
		return fmt.Errorf("%w: %T", bus.ErrUnexpectedRequest, cmd)
	}

	booking, err := domain.NewBooking(c.ID, c.ClientID, c.RestaurantID, c.TimeSlot, c.PartySize, c.SpecialRequests, c.Products)
	if err != nil {
		return err
	}

	if err := h.bookings.Store(ctx, booking); err != nil {
		return err
	}

	h.events.Publish(ctx, booking.ReleaseEvents())
	invalidateBookingCache(ctx, h.cache, booking.ID())

	return nil
}

type ConfirmBookingHandler struct {
	bookings ports.BookingRepository
	events   bus.EventBus
	cache    *redis.Client
}

func NewConfirmBookingHandler(bookings ports.BookingRepository, events bus.EventBus, cache *redis.Client) *ConfirmBookingHandler {
	return &ConfirmBookingHandler{bookings: bookings, events: events, cache: cache}
}

func (h *ConfirmBookingHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(ConfirmBooking)
	if !ok {
		return fmt.Errorf("%w: %T", bus.ErrUnexpectedRequest, cmd)
	}

	booking, err := h.bookings.GetByID(ctx, c.BookingID)
	if err != nil {
		return err
	}

	if err := booking.Confirm(); err != nil {
		return err
	}

	if err := h.bookings.Store(ctx, booking); err != nil {
		return err
	}

	h.events.Publish(ctx, booking.ReleaseEvents())
	invalidateBookingCache(ctx, h.cache, booking.ID())

	return nil
}

type CancelBookingHandler struct {
	bookings ports.BookingRepository
	events   bus.EventBus
	cache    *redis.Client
}

func NewCancelBookingHandler(bookings ports.BookingRepository, events bus.EventBus, cache *redis.Client) *CancelBookingHandler {
	return &CancelBookingHandler{bookings: bookings, events: events, cache: cache}
}

func (h *CancelBookingHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(CancelBooking)
	if !ok {
		return fmt.Errorf("%w: %T", bus.ErrUnexpectedRequest, cmd)
	}

	booking, err := h.bookings.GetByID(ctx, c.BookingID)
	if err != nil {
		return err
	}

	if err := booking.Cancel(c.Reason); err != nil {
		return err
	}

	if err := h.bookings.Store(ctx, booking); err != nil {
		return err
	}

	h.events.Publish(ctx, booking.ReleaseEvents())
	invalidateBookingCache(ctx, h.cache, booking.ID())

	return nil
}

type CompleteBookingHandler struct {
	bookings ports.BookingRepository
	events   bus.EventBus
	cache    *redis.Client
}

func NewCompleteBookingHandler(bookings ports.BookingRepository, events bus.EventBus, cache *redis.Client) *CompleteBookingHandler {
	return &CompleteBookingHandler{bookings: bookings, events: events, cache: cache}
}

func (h *CompleteBookingHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(CompleteBooking)
	if !ok {
		return fmt.Errorf("%w: %T", bus.ErrUnexpectedRequest, cmd)
	}

	booking, err := h.bookings.GetByID(ctx, c.BookingID)
	if err != nil {
		return err
	}

	if err := booking.Complete(); err != nil {
		return err
	}

	if err := h.bookings.Store(ctx, booking); err != nil {
		return err
	}

	h.events.Publish(ctx, booking.ReleaseEvents())
	invalidateBookingCache(ctx, h.cache, booking.ID())

	return nil
}

type MarkBookingNoShowHandler struct {
	bookings ports.BookingRepository
	events   bus.EventBus
	cache    *redis.Client
}

func NewMarkBookingNoShowHandler(bookings ports.BookingRepository, events bus.EventBus, cache *redis.Client) *MarkBookingNoShowHandler {
	return &MarkBookingNoShowHandler{bookings: bookings, events: events, cache: cache}
}

func (h *MarkBookingNoShowHandler) Handle(ctx context.Context, cmd bus.Command) error {
	c, ok := cmd.(MarkBookingNoShow)
	if !ok {
		return fmt.Errorf("%w: %T", bus.ErrUnexpectedRequest, cmd)
	}

	booking, err := h.bookings.GetByID(ctx, c.BookingID)
	if err != nil {
		return err
	}

	if err := booking.MarkNoShow(); err != nil {
		return err
	}

	if err := h.bookings.Store(ctx, booking); err != nil {
		return err
	}

	h.events.Publish(ctx, booking.ReleaseEvents())
	invalidateBookingCache(ctx, h.cache, booking.ID())

	return nil
}
