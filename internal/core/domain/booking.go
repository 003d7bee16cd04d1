package domain

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
	StatusNoShow    BookingStatus = "no_show"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// Booking is the aggregate root for a restaurant reservation. All mutation
// goes through its methods; the owned product children are never touched
// directly. Lifecycle transitions queue one domain event each, released by
// the caller after a successful store.
type Booking struct {
	recorder
	id                 uuid.UUID
	clientID           uuid.UUID
	restaurantID       uuid.UUID
	timeSlot           TimeSlot
	partySize          PartySize
	status             BookingStatus
	specialRequests    *string
	confirmedAt        *time.Time
	cancelledAt        *time.Time
	cancellationReason *string
	completedAt        *time.Time
	noShowAt           *time.Time
	products           []BookingProduct
}

// ProductSelection is a requested catalog item with a quantity, used when
// creating a booking.
type ProductSelection struct {
	Type     ProductType
	Quantity int
}

// NewBooking creates a pending booking, adds the selected products and
// records a booking.created event.
func NewBooking(id, clientID, restaurantID uuid.UUID, slot TimeSlot, partySize PartySize, specialRequests *string, products []ProductSelection) (*Booking, error) {
	b := &Booking{
		id:              id,
		clientID:        clientID,
		restaurantID:    restaurantID,
		timeSlot:        slot,
		partySize:       partySize,
		status:          StatusPending,
		specialRequests: specialRequests,
	}

	for _, p := range products {
		if err := b.AddProduct(p.Type, p.Quantity); err != nil {
			return nil, err
		}
	}

	b.record(BookingCreated{
		occurrence:   newOccurrence(),
		BookingID:    b.id.String(),
		ClientID:     b.clientID.String(),
		RestaurantID: b.restaurantID.String(),
		Date:         b.timeSlot.DateString(),
		Time:         b.timeSlot.TimeString(),
		PartySize:    b.partySize.Value(),
		Status:       string(b.status),
	})

	return b, nil
}

// BookingState carries everything needed to rehydrate a booking from
// storage.
type BookingState struct {
	ID                 uuid.UUID
	ClientID           uuid.UUID
	RestaurantID       uuid.UUID
	TimeSlot           TimeSlot
	PartySize          PartySize
	Status             BookingStatus
	SpecialRequests    *string
	ConfirmedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
	CompletedAt        *time.Time
	NoShowAt           *time.Time
	Products           []BookingProduct
}

// ReconstituteBooking rehydrates a booking without recording any events.
// Storage adapters only.
func ReconstituteBooking(state BookingState) *Booking {
	return &Booking{
		id:                 state.ID,
		clientID:           state.ClientID,
		restaurantID:       state.RestaurantID,
		timeSlot:           state.TimeSlot,
		partySize:          state.PartySize,
		status:             state.Status,
		specialRequests:    state.SpecialRequests,
		confirmedAt:        state.ConfirmedAt,
		cancelledAt:        state.CancelledAt,
		cancellationReason: state.CancellationReason,
		completedAt:        state.CompletedAt,
		noShowAt:           state.NoShowAt,
		products:           state.Products,
	}
}

// Confirm moves the booking from pending to confirmed.
func (b *Booking) Confirm() error {
	if b.status != StatusPending {
		return &TransitionError{Op: "confirmed", Current: b.status}
	}

	now := time.Now()
	b.status = StatusConfirmed
	b.confirmedAt = &now

	b.record(BookingConfirmed{
		occurrence:  newOccurrence(),
		BookingID:   b.id.String(),
		ConfirmedAt: now.Format(timestampLayout),
	})

	return nil
}

// Cancel is legal from any state except completed and already-cancelled.
// The reason is optional.
func (b *Booking) Cancel(reason *string) error {
	if b.status == StatusCompleted {
		return ErrBookingAlreadyCompleted
	}
	if b.status == StatusCancelled {
		return ErrBookingAlreadyCancelled
	}

	now := time.Now()
	b.status = StatusCancelled
	b.cancelledAt = &now
	b.cancellationReason = reason

	b.record(BookingCancelled{
		occurrence:  newOccurrence(),
		BookingID:   b.id.String(),
		Reason:      reason,
		CancelledAt: now.Format(timestampLayout),
	})

	return nil
}

// Complete marks a confirmed booking as completed.
func (b *Booking) Complete() error {
	if b.status != StatusConfirmed {
		return &TransitionError{Op: "completed", Current: b.status}
	}

	now := time.Now()
	b.status = StatusCompleted
	b.completedAt = &now

	b.record(BookingCompleted{
		occurrence:  newOccurrence(),
		BookingID:   b.id.String(),
		CompletedAt: now.Format(timestampLayout),
	})

	return nil
}

// MarkNoShow flags a confirmed booking whose guests never arrived.
func (b *Booking) MarkNoShow() error {
	if b.status != StatusConfirmed {
		return &TransitionError{Op: "marked as no-show", Current: b.status}
	}

	now := time.Now()
	b.status = StatusNoShow
	b.noShowAt = &now

	b.record(BookingMarkedAsNoShow{
		occurrence: newOccurrence(),
		BookingID:  b.id.String(),
		MarkedAt:   now.Format(timestampLayout),
	})

	return nil
}

// AddProduct appends a catalog item, snapshotting its current unit price.
func (b *Booking) AddProduct(productType ProductType, quantity int) error {
	product, err := newBookingProduct(b.id, productType, quantity)
	if err != nil {
		return err
	}
	b.products = append(b.products, product)
	return nil
}

func (b *Booking) UpdatePartySize(partySize PartySize) {
	b.partySize = partySize
}

func (b *Booking) UpdateTimeSlot(slot TimeSlot) {
	b.timeSlot = slot
}

// TotalPrice sums unit price times quantity over all owned products. Zero
// money when there are none. Catalog prices share a single currency.
func (b *Booking) TotalPrice() Money {
	var sum int64
	for _, p := range b.products {
		sum += p.TotalPrice().cents
	}
	return Money{cents: sum, currency: DefaultCurrency}
}

func (b *Booking) ID() uuid.UUID { return b.id }

func (b *Booking) ClientID() uuid.UUID { return b.clientID }

func (b *Booking) RestaurantID() uuid.UUID { return b.restaurantID }

func (b *Booking) TimeSlot() TimeSlot { return b.timeSlot }

func (b *Booking) PartySize() PartySize { return b.partySize }

func (b *Booking) Status() BookingStatus { return b.status }

func (b *Booking) SpecialRequests() *string { return b.specialRequests }

func (b *Booking) ConfirmedAt() *time.Time { return b.confirmedAt }

func (b *Booking) CancelledAt() *time.Time { return b.cancelledAt }

func (b *Booking) CancellationReason() *string { return b.cancellationReason }

func (b *Booking) CompletedAt() *time.Time { return b.completedAt }

func (b *Booking) NoShowAt() *time.Time { return b.noShowAt }

// Products returns a copy so callers cannot bypass the aggregate.
func (b *Booking) Products() []BookingProduct {
	out := make([]BookingProduct, len(b.products))
	copy(out, b.products)
	return out
}
