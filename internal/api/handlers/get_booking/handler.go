package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TravelBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings"
)

const route = "GET /bookings/{id}"

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgNotFound         = "бронирование не найдено"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
)

// serviceErrors соответствие ошибок сервиса HTTP ответам, проверяется по порядку
var serviceErrors = []struct {
	target  error
	status  int
	message string
}{
	{bookings.ErrBookingNotFound, http.StatusNotFound, msgNotFound},
	{bookings.ErrAccessDenied, http.StatusForbidden, msgForbidden},
	{bookings.ErrInvalidInput, http.StatusBadRequest, msgInvalidBookingID},
}

// lookup идентификатор запрошенного бронирования и автор запроса
type lookup struct {
	bookingID string
	userID    string
}

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
// Права доступа проверяет сервис: гость, владелец отеля или администратор.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseLookup(w, r)
	if !ok {
		return
	}

	booking, err := h.service.GetByID(r.Context(), req.bookingID, req.userID)
	if err != nil {
		h.respondError(w, req, err)
		return
	}

	h.logger.Info("%s - Booking %s (%s) returned to user_id=%s", route, booking.ID, booking.Kind, req.userID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

// parseLookup читает bookingId из пути и пользователя из контекста
// При ошибке ответ уже записан.
func (h *Handler) parseLookup(w http.ResponseWriter, r *http.Request) (lookup, bool) {
	req := lookup{bookingID: mux.Vars(r)["bookingId"]}
	if req.bookingID == "" {
		h.logger.Warn("%s - Empty booking ID", route)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return req, false
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID for booking_id=%s", route, req.bookingID)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return req, false
	}
	req.userID = userID
	return req, true
}

func (h *Handler) respondError(w http.ResponseWriter, req lookup, err error) {
	for _, m := range serviceErrors {
		if errors.Is(err, m.target) {
			h.logger.Warn("%s - Rejected booking_id=%s for user_id=%s: %v", route, req.bookingID, req.userID, err)
			handlers.RespondError(w, m.status, m.message)
			return
		}
	}

	h.logger.Error("%s - Failed to get booking_id=%s: %v", route, req.bookingID, err)
	handlers.RespondInternalError(w)
}
