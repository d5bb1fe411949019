package book_seats

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/domain"
	bookSeats "github.com/m04kA/SMC-TravelBooking/internal/usecase/book_seats"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) ExecuteBus(ctx context.Context, req *bookSeats.BusRequest) (*bookSeats.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*bookSeats.Response)
	return resp, args.Error(1)
}

func (m *mockUseCase) ExecuteFlight(ctx context.Context, req *bookSeats.FlightRequest) (*bookSeats.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*bookSeats.Response)
	return resp, args.Error(1)
}

func newRouter(uc BookSeatsUseCase) *mux.Router {
	h := NewHandler(uc, logger.NewDiscard())
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/buses/{busId}/bookings", h.HandleBus).Methods(http.MethodPost)
	r.HandleFunc("/api/v1/flights/{flightId}/bookings", h.HandleFlight).Methods(http.MethodPost)
	return r
}

func do(r http.Handler, target, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandleBus_Created(t *testing.T) {
	deck := 2
	uc := &mockUseCase{}
	uc.On("ExecuteBus", mock.Anything, &bookSeats.BusRequest{UserID: "u1", BusID: "b1", SeatIDs: []string{"2-1A"}}).
		Return(&bookSeats.Response{
			ID:          "bk1",
			UserID:      "u1",
			Kind:        string(domain.KindBus),
			TripID:      "b1",
			SeatIDs:     []string{"2-1A"},
			Deck:        &deck,
			DepartureAt: time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC),
			TotalPrice:  30,
			Status:      "confirmed",
			TripName:    "Rede Expressos",
			Route:       "Porto - Lisbon",
			UserName:    "Ann",
			CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		}, nil)

	rec := do(newRouter(uc), "/api/v1/buses/b1/bookings", "u1", `{"seatIds":["2-1A"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp SeatBookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "bk1", resp.ID)
	assert.Equal(t, 2, *resp.Deck)
	assert.Nil(t, resp.FareTier)
	assert.Equal(t, "2025-02-01T08:00:00Z", resp.DepartureAt)
	assert.Equal(t, "Porto - Lisbon", resp.Route)
}

func TestHandleFlight_PassesTier(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("ExecuteFlight", mock.Anything, &bookSeats.FlightRequest{
		UserID: "u1", FlightID: "f1", SeatIDs: []string{"12B"}, Tier: domain.FareBusiness,
	}).Return(&bookSeats.Response{ID: "bk2", Kind: string(domain.KindFlight), SeatIDs: []string{"12B"}}, nil)

	rec := do(newRouter(uc), "/api/v1/flights/f1/bookings", "u1", `{"seatIds":["12B"],"tier":"business"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandle_Unauthorized(t *testing.T) {
	rec := do(newRouter(&mockUseCase{}), "/api/v1/buses/b1/bookings", "", `{"seatIds":["1-1A"]}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"seat sold", bookSeats.ErrSeatSold, http.StatusConflict},
		{"departed", bookSeats.ErrTripDeparted, http.StatusUnprocessableEntity},
		{"unknown seat", bookSeats.ErrUnknownSeat, http.StatusBadRequest},
		{"invalid input", bookSeats.ErrInvalidInput, http.StatusBadRequest},
		{"flight not found", bookSeats.ErrFlightNotFound, http.StatusNotFound},
		{"user not found", bookSeats.ErrUserNotFound, http.StatusNotFound},
		{"internal", fmt.Errorf("%w: boom", bookSeats.ErrInternal), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("ExecuteFlight", mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := do(newRouter(uc), "/api/v1/flights/f1/bookings", "u1", `{"seatIds":["1A"]}`)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestHandle_BadBody(t *testing.T) {
	rec := do(newRouter(&mockUseCase{}), "/api/v1/buses/b1/bookings", "u1", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
