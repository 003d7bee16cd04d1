package handler_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jortega87/restaurant-booking/internal/adapter/handler"
	"github.com/jortega87/restaurant-booking/internal/core/bus"
	"github.com/jortega87/restaurant-booking/internal/core/domain"
	"github.com/jortega87/restaurant-booking/internal/core/ports"
	"github.com/jortega87/restaurant-booking/internal/core/ports/mocks"
	"github.com/jortega87/restaurant-booking/internal/core/services"
)

type testEnv struct {
	mux       *http.ServeMux
	bookings  *mocks.BookingRepository
	clients   *mocks.ClientRepository
	readModel *mocks.BookingReadModel
	redis     redismock.ClientMock
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		bookings:  mocks.NewBookingRepository(t),
		clients:   mocks.NewClientRepository(t),
		readModel: mocks.NewBookingReadModel(t),
	}

	db, redisMock := redismock.NewClientMock()
	env.redis = redisMock

	commands := bus.NewCommandBus()
	queries := bus.NewQueryBus()
	require.NoError(t, services.RegisterHandlers(commands, queries, services.Dependencies{
		Bookings:  env.bookings,
		Clients:   env.clients,
		ReadModel: env.readModel,
		Events:    bus.NewConsoleEventBus(),
		Cache:     db,
	}))

	env.mux = http.NewServeMux()
	handler.NewBookingHandler(commands, queries).RegisterRoutes(env.mux)
	handler.NewClientHandler(commands, queries).RegisterRoutes(env.mux)

	return env
}

func (e *testEnv) do(method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func pendingBooking(t *testing.T) *domain.Booking {
	t.Helper()
	slot, err := domain.TimeSlotFromStrings("2026-10-01", "19:30")
	require.NoError(t, err)
	size, err := domain.NewPartySize(4)
	require.NoError(t, err)
	booking, err := domain.NewBooking(uuid.New(), uuid.New(), uuid.New(), slot, size, nil, nil)
	require.NoError(t, err)
	booking.ReleaseEvents()
	return booking
}

func TestCreateBookingEndpoint(t *testing.T) {
	env := newTestEnv(t)

	bookingID := uuid.New()
	env.bookings.On("Store", mock.Anything, mock.AnythingOfType("*domain.Booking")).Return(nil)
	env.redis.ExpectDel(fmt.Sprintf("booking:%s", bookingID)).SetVal(1)

	body := fmt.Sprintf(`{
		"id": %q,
		"client_id": %q,
		"restaurant_id": %q,
		"date": "2026-10-01",
		"time": "19:30",
		"party_size": 4,
		"products": [{"type": "menu", "quantity": 2}]
	}`, bookingID, uuid.New(), uuid.New())

	rec := env.do(http.MethodPost, "/bookings", body)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, bookingID.String(), resp["id"])
}

func TestCreateBookingEndpoint_BadRequests(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/bookings", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(http.MethodPost, "/bookings", `{"client_id": "nope"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingEndpoint_InvalidPartySize(t *testing.T) {
	env := newTestEnv(t)

	body := fmt.Sprintf(`{
		"client_id": %q,
		"restaurant_id": %q,
		"date": "2026-10-01",
		"time": "19:30",
		"party_size": 0
	}`, uuid.New(), uuid.New())

	rec := env.do(http.MethodPost, "/bookings", body)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestConfirmBookingEndpoint(t *testing.T) {
	env := newTestEnv(t)
	booking := pendingBooking(t)

	env.bookings.On("GetByID", mock.Anything, booking.ID()).Return(booking, nil)
	env.bookings.On("Store", mock.Anything, booking).Return(nil)
	env.redis.ExpectDel(fmt.Sprintf("booking:%s", booking.ID())).SetVal(1)

	rec := env.do(http.MethodPost, fmt.Sprintf("/bookings/%s/confirm", booking.ID()), "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, domain.StatusConfirmed, booking.Status())
}

func TestConfirmBookingEndpoint_NotFound(t *testing.T) {
	env := newTestEnv(t)
	bookingID := uuid.New()

	env.bookings.On("GetByID", mock.Anything, bookingID).
		Return(nil, fmt.Errorf("booking %s: %w", bookingID, domain.ErrBookingNotFound))

	rec := env.do(http.MethodPost, fmt.Sprintf("/bookings/%s/confirm", bookingID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConfirmBookingEndpoint_Conflict(t *testing.T) {
	env := newTestEnv(t)
	booking := pendingBooking(t)
	require.NoError(t, booking.Confirm())
	booking.ReleaseEvents()

	env.bookings.On("GetByID", mock.Anything, booking.ID()).Return(booking, nil)

	rec := env.do(http.MethodPost, fmt.Sprintf("/bookings/%s/confirm", booking.ID()), "")

	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp["error"], "confirmed")
}

func TestCancelBookingEndpoint_WithReason(t *testing.T) {
	env := newTestEnv(t)
	booking := pendingBooking(t)

	env.bookings.On("GetByID", mock.Anything, booking.ID()).Return(booking, nil)
	env.bookings.On("Store", mock.Anything, booking).Return(nil)
	env.redis.ExpectDel(fmt.Sprintf("booking:%s", booking.ID())).SetVal(1)

	rec := env.do(http.MethodPost, fmt.Sprintf("/bookings/%s/cancel", booking.ID()),
		`{"reason": "guest called"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, domain.StatusCancelled, booking.Status())
	require.NotNil(t, booking.CancellationReason())
	assert.Equal(t, "guest called", *booking.CancellationReason())
}

func TestCancelBookingEndpoint_AlreadyCancelled(t *testing.T) {
	env := newTestEnv(t)
	booking := pendingBooking(t)
	require.NoError(t, booking.Cancel(nil))
	booking.ReleaseEvents()

	env.bookings.On("GetByID", mock.Anything, booking.ID()).Return(booking, nil)

	rec := env.do(http.MethodPost, fmt.Sprintf("/bookings/%s/cancel", booking.ID()), "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestGetBookingEndpoint_InvalidID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodGet, "/bookings/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIndexBookingsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	restaurantID := uuid.New()
	env.readModel.On("FindPaginated", mock.Anything, mock.MatchedBy(func(f ports.BookingFilter) bool {
		return f.RestaurantID != nil && *f.RestaurantID == restaurantID &&
			f.Limit == 10 && f.Offset == 10
	})).Return([]ports.BookingListItem{
		{ID: uuid.New().String(), ClientName: "Ana", Status: "confirmed", TotalPriceCents: 11500},
	}, 11, nil)

	rec := env.do(http.MethodGet,
		fmt.Sprintf("/bookings?restaurant_id=%s&limit=10&offset=10", restaurantID), "")

	require.Equal(t, http.StatusOK, rec.Code)

	var page services.BookingPage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 11, page.TotalCount)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Ana", page.Items[0].ClientName)
}

func TestIndexBookingsEndpoint_InvalidParams(t *testing.T) {
	env := newTestEnv(t)

	for _, target := range []string{
		"/bookings?status=expired",
		"/bookings?restaurant_id=nope",
		"/bookings?date_from=01-10-2026",
		"/bookings?limit=-1",
	} {
		rec := env.do(http.MethodGet, target, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
	}
}

func TestByRestaurantEndpoint(t *testing.T) {
	env := newTestEnv(t)
	restaurantID := uuid.New()
	booking := pendingBooking(t)

	env.bookings.On("FindByRestaurantID", mock.Anything, restaurantID).
		Return([]*domain.Booking{booking}, nil)

	rec := env.do(http.MethodGet, fmt.Sprintf("/restaurants/%s/bookings", restaurantID), "")

	require.Equal(t, http.StatusOK, rec.Code)

	var dtos []services.BookingDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dtos))
	require.Len(t, dtos, 1)
	assert.Equal(t, booking.ID().String(), dtos[0].ID)
}

func TestCreateClientEndpoint(t *testing.T) {
	env := newTestEnv(t)

	env.clients.On("Store", mock.Anything, mock.AnythingOfType("*domain.Client")).Return(nil)

	rec := env.do(http.MethodPost, "/clients", `{"name": "Ana", "email": "ana@example.com"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := uuid.Parse(resp["id"])
	assert.NoError(t, err)
}

func TestCreateClientEndpoint_EmptyName(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(http.MethodPost, "/clients", `{"name": ""}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGetClientEndpoint_NotFound(t *testing.T) {
	env := newTestEnv(t)
	clientID := uuid.New()

	env.clients.On("GetByID", mock.Anything, clientID).
		Return(nil, fmt.Errorf("client %s: %w", clientID, domain.ErrClientNotFound))

	rec := env.do(http.MethodGet, fmt.Sprintf("/clients/%s", clientID), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
