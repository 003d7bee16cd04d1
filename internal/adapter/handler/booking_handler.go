// Package handler adapts HTTP requests to commands and queries on the
// buses. It owns no business rules: it parses, dispatches and maps error
// kinds to status codes.
package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/jortega87/restaurant-booking/internal/core/bus"
	"github.com/jortega87/restaurant-booking/internal/core/domain"
	"github.com/jortega87/restaurant-booking/internal/core/services"
)

type BookingHandler struct {
	commands *bus.CommandBus
	queries  *bus.QueryBus
}

func NewBookingHandler(commands *bus.CommandBus, queries *bus.QueryBus) *BookingHandler {
	return &BookingHandler{commands: commands, queries: queries}
}

func (h *BookingHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /bookings", h.Create)
	mux.HandleFunc("GET /bookings", h.Index)
	mux.HandleFunc("GET /bookings/{id}", h.GetByID)
	mux.HandleFunc("POST /bookings/{id}/confirm", h.Confirm)
	mux.HandleFunc("POST /bookings/{id}/cancel", h.Cancel)
	mux.HandleFunc("POST /bookings/{id}/complete", h.Complete)
	mux.HandleFunc("POST /bookings/{id}/no-show", h.MarkNoShow)
	mux.HandleFunc("GET /restaurants/{id}/bookings", h.ByRestaurant)
}

type createBookingRequest struct {
	ID              string  `json:"id"`
	ClientID        string  `json:"client_id"`
	RestaurantID    string  `json:"restaurant_id"`
	Date            string  `json:"date"`
	Time            string  `json:"time"`
	PartySize       int     `json:"party_size"`
	SpecialRequests *string `json:"special_requests"`
	Products        []struct {
		Type     string `json:"type"`
		Quantity int    `json:"quantity"`
	} `json:"products"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	id := uuid.New()
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid booking id")
			return
		}
		id = parsed
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid client id")
		return
	}

	restaurantID, err := uuid.Parse(req.RestaurantID)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid restaurant id")
		return
	}

	slot, err := domain.TimeSlotFromStrings(req.Date, req.Time)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	partySize, err := domain.NewPartySize(req.PartySize)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	products := make([]domain.ProductSelection, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, domain.ProductSelection{
			Type:     domain.ProductType(p.Type),
			Quantity: p.Quantity,
		})
	}

	cmd := services.CreateBooking{
		ID:              id,
		ClientID:        clientID,
		RestaurantID:    restaurantID,
		TimeSlot:        slot,
		PartySize:       partySize,
		SpecialRequests: req.SpecialRequests,
		Products:        products,
	}

	if err := h.commands.Dispatch(r.Context(), cmd); err != nil {
		writeDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *BookingHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.commands.Dispatch(r.Context(), services.ConfirmBooking{BookingID: id}); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req struct {
		Reason *string `json:"reason"`
	}
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid json body")
			return
		}
	}

	if err := h.commands.Dispatch(r.Context(), services.CancelBooking{BookingID: id, Reason: req.Reason}); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookingHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.commands.Dispatch(r.Context(), services.CompleteBooking{BookingID: id}); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookingHandler) MarkNoShow(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.commands.Dispatch(r.Context(), services.MarkBookingNoShow{BookingID: id}); err != nil {
		writeDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *BookingHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.queries.Dispatch(r.Context(), services.GetBookingByID{BookingID: id})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *BookingHandler) Index(w http.ResponseWriter, r *http.Request) {
	query, err := parseIndexQuery(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.queries.Dispatch(r.Context(), query)
	if err != nil {
		writeDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *BookingHandler) ByRestaurant(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.queries.Dispatch(r.Context(), services.GetBookingsByRestaurant{RestaurantID: id})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// writeDomainError maps the core's error kinds onto status codes. The bus
// never translates errors, so everything the domain raises arrives here
// intact.
func writeDomainError(w http.ResponseWriter, err error) {
	var transition *domain.TransitionError

	switch {
	case errors.Is(err, domain.ErrBookingNotFound), errors.Is(err, domain.ErrClientNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &transition),
		errors.Is(err, domain.ErrBookingAlreadyCancelled),
		errors.Is(err, domain.ErrBookingAlreadyCompleted):
		respondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrInvalidPartySize),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrUnknownProductType),
		errors.Is(err, domain.ErrEmptyClientName),
		errors.Is(err, domain.ErrNegativeAmount):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal server error")
	}
}
