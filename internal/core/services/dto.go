package services

import (
	"time"

	"github.com/jortega87/restaurant-booking/internal/core/domain"
	"github.com/jortega87/restaurant-booking/internal/core/ports"
)

const dtoTimestampLayout = "2006-01-02 15:04:05"

// BookingProductDTO is the query-side view of one product line.
type BookingProductDTO struct {
	ID              string `json:"id"`
	ProductType     string `json:"product_type"`
	Label           string `json:"label"`
	Quantity        int    `json:"quantity"`
	UnitPriceCents  int64  `json:"unit_price_cents"`
	TotalPriceCents int64  `json:"total_price_cents"`
}

// BookingDTO is the query-side view of a single booking with its products.
type BookingDTO struct {
	ID                 string              `json:"id"`
	ClientID           string              `json:"client_id"`
	RestaurantID       string              `json:"restaurant_id"`
	Date               string              `json:"date"`
	Time               string              `json:"time"`
	PartySize          int                 `json:"party_size"`
	Status             string              `json:"status"`
	SpecialRequests    *string             `json:"special_requests"`
	ConfirmedAt        *string             `json:"confirmed_at"`
	CancelledAt        *string             `json:"cancelled_at"`
	CancellationReason *string             `json:"cancellation_reason"`
	CompletedAt        *string             `json:"completed_at"`
	NoShowAt           *string             `json:"no_show_at"`
	Products           []BookingProductDTO `json:"products"`
	TotalPriceCents    int64               `json:"total_price_cents"`
}

func newBookingDTO(b *domain.Booking) BookingDTO {
	products := make([]BookingProductDTO, 0, len(b.Products()))
	for _, p := range b.Products() {
		products = append(products, BookingProductDTO{
			ID:              p.ID().String(),
			ProductType:     string(p.Type()),
			Label:           p.Type().Label(),
			Quantity:        p.Quantity(),
			UnitPriceCents:  p.UnitPrice().Cents(),
			TotalPriceCents: p.TotalPrice().Cents(),
		})
	}

	return BookingDTO{
		ID:                 b.ID().String(),
		ClientID:           b.ClientID().String(),
		RestaurantID:       b.RestaurantID().String(),
		Date:               b.TimeSlot().DateString(),
		Time:               b.TimeSlot().TimeString(),
		PartySize:          b.PartySize().Value(),
		Status:             string(b.Status()),
		SpecialRequests:    b.SpecialRequests(),
		ConfirmedAt:        formatTimestamp(b.ConfirmedAt()),
		CancelledAt:        formatTimestamp(b.CancelledAt()),
		CancellationReason: b.CancellationReason(),
		CompletedAt:        formatTimestamp(b.CompletedAt()),
		NoShowAt:           formatTimestamp(b.NoShowAt()),
		Products:           products,
		TotalPriceCents:    b.TotalPrice().Cents(),
	}
}

func formatTimestamp(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dtoTimestampLayout)
	return &s
}

// ClientDTO is the query-side view of a client.
type ClientDTO struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	CreatedAt string  `json:"created_at"`
}

func newClientDTO(c *domain.Client) ClientDTO {
	return ClientDTO{
		ID:        c.ID().String(),
		Name:      c.Name(),
		Email:     c.Email(),
		Phone:     c.Phone(),
		CreatedAt: c.CreatedAt().Format(dtoTimestampLayout),
	}
}

// BookingPage is one page of the booking list projection. Page is
// floor(offset/limit)+1 when limit > 0, else 1.
type BookingPage struct {
	Items      []ports.BookingListItem `json:"items"`
	TotalCount int                     `json:"total_count"`
	PageSize   int                     `json:"page_size"`
	Page       int                     `json:"page"`
}
