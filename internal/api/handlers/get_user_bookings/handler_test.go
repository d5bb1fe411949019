package get_user_bookings

import (
	"context"
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

func (m *mockService) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.BookingListResponse)
	return resp, args.Error(1)
}

func serve(svc BookingService, authUser, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/api/v1/users/{userId}/bookings", NewHandler(svc, logger.NewDiscard()).Handle).Methods(http.MethodGet)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set(middleware.UserIDHeader, authUser)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	svc := &mockService{}
	svc.On("GetUserBookings", mock.Anything, mock.MatchedBy(func(req *models.GetUserBookingsRequest) bool {
		return req.UserID == "u1" && req.Status != nil && *req.Status == "confirmed"
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{{ID: "b1"}}}, nil)

	rec := serve(svc, "u1", "/api/v1/users/u1/bookings?status=confirmed")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"b1"`)
}

func TestHandle_EmptyList(t *testing.T) {
	svc := &mockService{}
	svc.On("GetUserBookings", mock.Anything, mock.Anything).
		Return(&models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil)

	rec := serve(svc, "u1", "/api/v1/users/u1/bookings")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	svc := &mockService{}
	assert.Equal(t, http.StatusForbidden, serve(svc, "u2", "/api/v1/users/u1/bookings").Code)

	invalid := &mockService{}
	invalid.On("GetUserBookings", mock.Anything, mock.Anything).Return(nil, bookings.ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, serve(invalid, "u1", "/api/v1/users/u1/bookings?status=x").Code)

	broken := &mockService{}
	broken.On("GetUserBookings", mock.Anything, mock.Anything).Return(nil, bookings.ErrInternal)
	assert.Equal(t, http.StatusInternalServerError, serve(broken, "u1", "/api/v1/users/u1/bookings").Code)
}
