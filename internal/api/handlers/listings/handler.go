package listings

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	listingsService "github.com/m04kA/SMC-TravelBooking/internal/service/listings"
	"github.com/m04kA/SMC-TravelBooking/internal/service/listings/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные"
	msgAccessDenied       = "недостаточно прав"
	msgHotelNotFound      = "отель не найден"
	msgRoomNotFound       = "номер не найден"
)

// Handler HTTP обработчики каталога: отели, номера и рейсы
type Handler struct {
	service ListingService
	logger  Logger
}

func NewHandler(service ListingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateHotel POST /api/v1/hotels
func (h *Handler) CreateHotel(w http.ResponseWriter, r *http.Request) {
	const route = "POST /hotels"

	userID, ok := h.userID(w, r, route)
	if !ok {
		return
	}

	var req models.CreateHotelRequest
	if !h.decode(w, r, route, &req) {
		return
	}
	req.UserID = userID

	hotel, err := h.service.CreateHotel(r.Context(), &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Hotel created: hotel_id=%s, owner_id=%s", route, hotel.ID, hotel.OwnerID)
	handlers.RespondJSON(w, http.StatusCreated, hotel)
}

// GetHotel GET /api/v1/hotels/{hotelId}
func (h *Handler) GetHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.service.GetHotel(r.Context(), mux.Vars(r)["hotelId"])
	if err != nil {
		h.respondError(w, "GET /hotels/{id}", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, hotel)
}

// ListHotels GET /api/v1/hotels
// Query params: status, ownerId (optional)
func (h *Handler) ListHotels(w http.ResponseWriter, r *http.Request) {
	req := &models.ListHotelsRequest{
		Status:  optionalQuery(r, "status"),
		OwnerID: optionalQuery(r, "ownerId"),
	}

	hotels, err := h.service.ListHotels(r.Context(), req)
	if err != nil {
		h.respondError(w, "GET /hotels", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, hotels)
}

// SetHotelStatus PATCH /api/v1/hotels/{hotelId}/status
func (h *Handler) SetHotelStatus(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, "PATCH /hotels/{id}/status", mux.Vars(r)["hotelId"], h.service.SetHotelStatus)
}

// CreateRoom POST /api/v1/hotels/{hotelId}/rooms
func (h *Handler) CreateRoom(w http.ResponseWriter, r *http.Request) {
	const route = "POST /hotels/{id}/rooms"

	userID, ok := h.userID(w, r, route)
	if !ok {
		return
	}

	var req models.CreateRoomRequest
	if !h.decode(w, r, route, &req) {
		return
	}
	req.UserID = userID
	req.HotelID = mux.Vars(r)["hotelId"]

	room, err := h.service.CreateRoom(r.Context(), &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Room created: room_id=%s, hotel_id=%s", route, room.ID, room.HotelID)
	handlers.RespondJSON(w, http.StatusCreated, room)
}

// ListRooms GET /api/v1/hotels/{hotelId}/rooms
// Query params: status (optional)
func (h *Handler) ListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.service.ListRooms(r.Context(), mux.Vars(r)["hotelId"], optionalQuery(r, "status"))
	if err != nil {
		h.respondError(w, "GET /hotels/{id}/rooms", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, rooms)
}

// SetRoomStatus PATCH /api/v1/rooms/{roomId}/status
func (h *Handler) SetRoomStatus(w http.ResponseWriter, r *http.Request) {
	h.setStatus(w, r, "PATCH /rooms/{id}/status", mux.Vars(r)["roomId"], h.service.SetRoomStatus)
}

// CreateBus POST /api/v1/buses
func (h *Handler) CreateBus(w http.ResponseWriter, r *http.Request) {
	const route = "POST /buses"

	userID, ok := h.userID(w, r, route)
	if !ok {
		return
	}

	var req models.CreateBusRequest
	if !h.decode(w, r, route, &req) {
		return
	}
	req.UserID = userID

	bus, err := h.service.CreateBus(r.Context(), &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Bus created: bus_id=%s, seats=%d", route, bus.ID, bus.SeatsTotal)
	handlers.RespondJSON(w, http.StatusCreated, bus)
}

// ListBuses GET /api/v1/buses
func (h *Handler) ListBuses(w http.ResponseWriter, r *http.Request) {
	buses, err := h.service.ListBuses(r.Context())
	if err != nil {
		h.respondError(w, "GET /buses", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, buses)
}

// CreateFlight POST /api/v1/flights
func (h *Handler) CreateFlight(w http.ResponseWriter, r *http.Request) {
	const route = "POST /flights"

	userID, ok := h.userID(w, r, route)
	if !ok {
		return
	}

	var req models.CreateFlightRequest
	if !h.decode(w, r, route, &req) {
		return
	}
	req.UserID = userID

	flight, err := h.service.CreateFlight(r.Context(), &req)
	if err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Flight created: flight_id=%s, number=%s", route, flight.ID, flight.Name)
	handlers.RespondJSON(w, http.StatusCreated, flight)
}

// ListFlights GET /api/v1/flights
func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	flights, err := h.service.ListFlights(r.Context())
	if err != nil {
		h.respondError(w, "GET /flights", err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, flights)
}

func (h *Handler) setStatus(
	w http.ResponseWriter,
	r *http.Request,
	route, id string,
	set func(context.Context, *models.SetStatusRequest) error,
) {
	userID, ok := h.userID(w, r, route)
	if !ok {
		return
	}

	var req models.SetStatusRequest
	if !h.decode(w, r, route, &req) {
		return
	}
	req.UserID = userID
	req.ID = id

	if err := set(r.Context(), &req); err != nil {
		h.respondError(w, route, err)
		return
	}

	h.logger.Info("%s - Status changed: id=%s, status=%s, user_id=%s", route, id, req.Status, userID)
	handlers.RespondJSON(w, http.StatusOK, map[string]string{"id": id, "status": req.Status})
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request, route string) (string, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return "", false
	}
	return userID, true
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string, v interface{}) bool {
	if err := handlers.DecodeJSON(r, v); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return false
	}
	return true
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, listingsService.ErrHotelNotFound):
		h.logger.Warn("%s - Hotel not found: %v", route, err)
		handlers.RespondNotFound(w, msgHotelNotFound)

	case errors.Is(err, listingsService.ErrRoomNotFound):
		h.logger.Warn("%s - Room not found: %v", route, err)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, listingsService.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: %v", route, err)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, listingsService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondInternalError(w)
	}
}

func optionalQuery(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}
