package cancel_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TravelBooking/internal/api/middleware"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings"
	"github.com/m04kA/SMC-TravelBooking/internal/service/bookings/models"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) Cancel(ctx context.Context, bookingID string, req *models.CancelBookingRequest) error {
	return m.Called(ctx, bookingID, req).Error(0)
}

func serve(svc BookingService, userID string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/bookings/{bookingId}/cancel", NewHandler(svc, logger.NewDiscard()).Handle).
		Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/b1/cancel", nil)
	req.Header.Set(middleware.UserIDHeader, userID)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &mockService{}
	svc.On("Cancel", mock.Anything, "b1", &models.CancelBookingRequest{UserID: "u1"}).Return(nil).Once()

	rec := serve(svc, "u1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"b1","status":"cancelled"}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := map[error]int{
		bookings.ErrBookingNotFound:  http.StatusNotFound,
		bookings.ErrAccessDenied:     http.StatusForbidden,
		bookings.ErrAlreadyCancelled: http.StatusConflict,
		bookings.ErrPastCheckIn:      http.StatusUnprocessableEntity,
		bookings.ErrInvalidInput:     http.StatusBadRequest,
		errors.New("boom"):           http.StatusInternalServerError,
	}

	for err, status := range cases {
		t.Run(err.Error(), func(t *testing.T) {
			svc := &mockService{}
			svc.On("Cancel", mock.Anything, "b1", mock.Anything).Return(err)
			assert.Equal(t, status, serve(svc, "u1").Code)
		})
	}
}
