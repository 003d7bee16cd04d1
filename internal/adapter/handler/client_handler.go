package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jortega87/restaurant-booking/internal/core/bus"
	"github.com/jortega87/restaurant-booking/internal/core/services"
)

type ClientHandler struct {
	commands *bus.CommandBus
	queries  *bus.QueryBus
}

func NewClientHandler(commands *bus.CommandBus, queries *bus.QueryBus) *ClientHandler {
	return &ClientHandler{commands: commands, queries: queries}
}

func (h *ClientHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /clients", h.Create)
	mux.HandleFunc("GET /clients/{id}", h.GetByID)
}

type createClientRequest struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json body")
		return
	}

	id := uuid.New()
	if req.ID != "" {
		parsed, err := uuid.Parse(req.ID)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid client id")
			return
		}
		id = parsed
	}

	cmd := services.CreateClient{
		ID:    id,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}

	if err := h.commands.Dispatch(r.Context(), cmd); err != nil {
		writeDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (h *ClientHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	result, err := h.queries.Dispatch(r.Context(), services.GetClientByID{ClientID: id})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}
