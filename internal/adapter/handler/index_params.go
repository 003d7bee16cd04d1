package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/jortega87/restaurant-booking/internal/core/domain"
	"github.com/jortega87/restaurant-booking/internal/core/services"
)

// parseIndexQuery reads the list filters from query parameters. Absent
// parameters stay nil; limit and offset default downstream.
func parseIndexQuery(r *http.Request) (services.IndexBookings, error) {
	params := r.URL.Query()
	var query services.IndexBookings

	if v := params.Get("restaurant_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return query, fmt.Errorf("invalid restaurant_id %q", v)
		}
		query.RestaurantID = &id
	}

	if v := params.Get("client_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return query, fmt.Errorf("invalid client_id %q", v)
		}
		query.ClientID = &id
	}

	if v := params.Get("client_name"); v != "" {
		query.ClientName = &v
	}

	if v := params.Get("status"); v != "" {
		status := domain.BookingStatus(v)
		if !status.Valid() {
			return query, fmt.Errorf("invalid status %q", v)
		}
		query.Status = &status
	}

	if v := params.Get("date_from"); v != "" {
		if _, err := time.Parse(domain.DateLayout, v); err != nil {
			return query, fmt.Errorf("invalid date_from %q", v)
		}
		query.DateFrom = &v
	}

	if v := params.Get("date_to"); v != "" {
		if _, err := time.Parse(domain.DateLayout, v); err != nil {
			return query, fmt.Errorf("invalid date_to %q", v)
		}
		query.DateTo = &v
	}

	if v := params.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil || limit < 0 {
			return query, fmt.Errorf("invalid limit %q", v)
		}
		query.Limit = limit
	}

	if v := params.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil || offset < 0 {
			return query, fmt.Errorf("invalid offset %q", v)
		}
		query.Offset = offset
	}

	return query, nil
}
