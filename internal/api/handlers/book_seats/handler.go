package book_seats

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	bookSeats "github.com/m04kA/SMC-TravelBooking/internal/usecase/book_seats"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректный выбор мест"
	msgUnknownSeat        = "выбранного места нет на рейсе"
	msgSeatSold           = "одно из выбранных мест уже продано"
	msgTripDeparted       = "рейс уже отправился"
	msgBusNotFound        = "автобусный рейс не найден"
	msgFlightNotFound     = "авиарейс не найден"
	msgUserNotFound       = "пользователь не найден"
)

type Handler struct {
	useCase BookSeatsUseCase
	logger  Logger
}

func NewHandler(useCase BookSeatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleBus POST /api/v1/buses/{busId}/bookings
func (h *Handler) HandleBus(w http.ResponseWriter, r *http.Request) {
	const route = "POST /buses/{id}/bookings"
	busID := mux.Vars(r)["busId"]

	userID, req, ok := h.decode(w, r, route)
	if !ok {
		return
	}

	result, err := h.useCase.ExecuteBus(r.Context(), req.ToBusRequest(userID, busID))
	if err != nil {
		h.respondError(w, route, userID, busID, err)
		return
	}

	h.logger.Info("%s - Seats booked: booking_id=%s, user_id=%s, bus_id=%s, seats=%v",
		route, result.ID, userID, busID, result.SeatIDs)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

// HandleFlight POST /api/v1/flights/{flightId}/bookings
func (h *Handler) HandleFlight(w http.ResponseWriter, r *http.Request) {
	const route = "POST /flights/{id}/bookings"
	flightID := mux.Vars(r)["flightId"]

	userID, req, ok := h.decode(w, r, route)
	if !ok {
		return
	}

	result, err := h.useCase.ExecuteFlight(r.Context(), req.ToFlightRequest(userID, flightID))
	if err != nil {
		h.respondError(w, route, userID, flightID, err)
		return
	}

	h.logger.Info("%s - Seats booked: booking_id=%s, user_id=%s, flight_id=%s, seats=%v",
		route, result.ID, userID, flightID, result.SeatIDs)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, route string) (string, *BookSeatsRequest, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return "", nil, false
	}

	var req BookSeatsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return "", nil, false
	}

	return userID, &req, true
}

func (h *Handler) respondError(w http.ResponseWriter, route, userID, tripID string, err error) {
	switch {
	case errors.Is(err, bookSeats.ErrSeatSold):
		h.logger.Warn("%s - Seat already sold: user_id=%s, trip_id=%s", route, userID, tripID)
		handlers.RespondConflict(w, msgSeatSold)

	case errors.Is(err, bookSeats.ErrTripDeparted):
		h.logger.Warn("%s - Trip departed: trip_id=%s", route, tripID)
		handlers.RespondUnprocessable(w, msgTripDeparted)

	case errors.Is(err, bookSeats.ErrUnknownSeat):
		h.logger.Warn("%s - Unknown seat: %v", route, err)
		handlers.RespondBadRequest(w, msgUnknownSeat)

	case errors.Is(err, bookSeats.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, bookSeats.ErrBusNotFound):
		h.logger.Warn("%s - Bus not found: bus_id=%s", route, tripID)
		handlers.RespondNotFound(w, msgBusNotFound)

	case errors.Is(err, bookSeats.ErrFlightNotFound):
		h.logger.Warn("%s - Flight not found: flight_id=%s", route, tripID)
		handlers.RespondNotFound(w, msgFlightNotFound)

	case errors.Is(err, bookSeats.ErrUserNotFound):
		h.logger.Warn("%s - User not found: user_id=%s", route, userID)
		handlers.RespondNotFound(w, msgUserNotFound)

	default:
		h.logger.Error("%s - Failed to book seats: user_id=%s, trip_id=%s, error=%v", route, userID, tripID, err)
		handlers.RespondInternalError(w)
	}
}
