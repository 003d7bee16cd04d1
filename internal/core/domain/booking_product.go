package domain

import (
	"fmt"

	"github.com/google/uuid"
)

type ProductType string

const (
	ProductTableReservation ProductType = "table_reservation"
	ProductMenu             ProductType = "menu"
	ProductBottleOfWine     ProductType = "bottle_of_wine"
	ProductEvent            ProductType = "event"
)

func (t ProductType) Valid() bool {
	switch t {
	case ProductTableReservation, ProductMenu, ProductBottleOfWine, ProductEvent:
		return true
	}
	return false
}

// UnitPriceCents is the catalog price per unit, in minor currency units.
func (t ProductType) UnitPriceCents() int64 {
	switch t {
	case ProductTableReservation:
		return 0
	case ProductMenu:
		return 3500
	case ProductBottleOfWine:
		return 4500
	case ProductEvent:
		return 7500
	}
	return 0
}

func (t ProductType) Label() string {
	switch t {
	case ProductTableReservation:
		return "Table Reservation"
	case ProductMenu:
		return "Menu"
	case ProductBottleOfWine:
		return "Bottle of Wine"
	case ProductEvent:
		return "Event"
	}
	return string(t)
}

// BookingProduct is a child entity of the Booking aggregate. It never exists
// independently of the booking that owns it. The unit price is snapshotted
// from the catalog at creation time, so later price changes do not alter
// existing bookings.
type BookingProduct struct {
	id          uuid.UUID
	bookingID   uuid.UUID
	productType ProductType
	quantity    int
	unitPrice   Money
}

func newBookingProduct(bookingID uuid.UUID, productType ProductType, quantity int) (BookingProduct, error) {
	if !productType.Valid() {
		return BookingProduct{}, fmt.Errorf("%w: %q", ErrUnknownProductType, productType)
	}
	if quantity < 1 {
		return BookingProduct{}, fmt.Errorf("%w: got %d", ErrInvalidQuantity, quantity)
	}
	unitPrice, err := MoneyFromCents(productType.UnitPriceCents())
	if err != nil {
		return BookingProduct{}, err
	}
	return BookingProduct{
		id:          uuid.New(),
		bookingID:   bookingID,
		productType: productType,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}, nil
}

// ReconstituteBookingProduct rebuilds a child entity from storage without
// validation or catalog lookups.
func ReconstituteBookingProduct(id, bookingID uuid.UUID, productType ProductType, quantity int, unitPrice Money) BookingProduct {
	return BookingProduct{
		id:          id,
		bookingID:   bookingID,
		productType: productType,
		quantity:    quantity,
		unitPrice:   unitPrice,
	}
}

func (p BookingProduct) ID() uuid.UUID { return p.id }

func (p BookingProduct) BookingID() uuid.UUID { return p.bookingID }

func (p BookingProduct) Type() ProductType { return p.productType }

func (p BookingProduct) Quantity() int { return p.quantity }

func (p BookingProduct) UnitPrice() Money { return p.unitPrice }

// TotalPrice is unit price times quantity. Quantity is validated at
// construction, so the multiplication cannot go negative.
func (p BookingProduct) TotalPrice() Money {
	return Money{cents: p.unitPrice.cents * int64(p.quantity), currency: p.unitPrice.currency}
}
