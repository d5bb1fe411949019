package seat_map

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	seatMap "github.com/m04kA/SMC-TravelBooking/internal/usecase/seat_map"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные параметры запроса"
	msgBusNotFound        = "автобусный рейс не найден"
	msgFlightNotFound     = "авиарейс не найден"
)

type Handler struct {
	useCase SeatMapUseCase
	logger  Logger
}

func NewHandler(useCase SeatMapUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// BusSeats GET /api/v1/buses/{busId}/seats
func (h *Handler) BusSeats(w http.ResponseWriter, r *http.Request) {
	busID := mux.Vars(r)["busId"]

	result, err := h.useCase.BusSeats(r.Context(), busID)
	if err != nil {
		h.respondError(w, "GET /buses/{id}/seats", busID, err)
		return
	}

	h.logger.Info("GET /buses/{id}/seats - bus_id=%s, available=%d", busID, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromSeatMap(result))
}

// FlightSeats GET /api/v1/flights/{flightId}/seats
// Query params: tier (optional, basic по умолчанию)
func (h *Handler) FlightSeats(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["flightId"]
	tier := domain.FareTier(r.URL.Query().Get("tier"))

	result, err := h.useCase.FlightSeats(r.Context(), flightID, tier)
	if err != nil {
		h.respondError(w, "GET /flights/{id}/seats", flightID, err)
		return
	}

	h.logger.Info("GET /flights/{id}/seats - flight_id=%s, tier=%s, available=%d", flightID, tier, result.Available)
	handlers.RespondJSON(w, http.StatusOK, FromSeatMap(result))
}

// QuoteBus POST /api/v1/buses/{busId}/quote
func (h *Handler) QuoteBus(w http.ResponseWriter, r *http.Request) {
	busID := mux.Vars(r)["busId"]

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /buses/{id}/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.QuoteBus(r.Context(), req.ToUseCaseRequest(busID))
	if err != nil {
		h.respondError(w, "POST /buses/{id}/quote", busID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromQuote(result))
}

// QuoteFlight POST /api/v1/flights/{flightId}/quote
func (h *Handler) QuoteFlight(w http.ResponseWriter, r *http.Request) {
	flightID := mux.Vars(r)["flightId"]

	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /flights/{id}/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.QuoteFlight(r.Context(), req.ToUseCaseRequest(flightID))
	if err != nil {
		h.respondError(w, "POST /flights/{id}/quote", flightID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromQuote(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route, tripID string, err error) {
	switch {
	case errors.Is(err, seatMap.ErrBusNotFound):
		h.logger.Warn("%s - Bus not found: bus_id=%s", route, tripID)
		handlers.RespondNotFound(w, msgBusNotFound)

	case errors.Is(err, seatMap.ErrFlightNotFound):
		h.logger.Warn("%s - Flight not found: flight_id=%s", route, tripID)
		handlers.RespondNotFound(w, msgFlightNotFound)

	case errors.Is(err, seatMap.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Failed: trip_id=%s, error=%v", route, tripID, err)
		handlers.RespondInternalError(w)
	}
}
