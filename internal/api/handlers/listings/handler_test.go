package listings

import (
	"context"
	"encoding/json"
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
	listingsService "github.com/m04kA/SMC-TravelBooking/internal/service/listings"
	"github.com/m04kA/SMC-TravelBooking/internal/service/listings/models"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) CreateHotel(ctx context.Context, req *models.CreateHotelRequest) (*models.HotelResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.HotelResponse)
	return resp, args.Error(1)
}

func (m *mockService) GetHotel(ctx context.Context, id string) (*models.HotelResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.HotelResponse)
	return resp, args.Error(1)
}

func (m *mockService) ListHotels(ctx context.Context, req *models.ListHotelsRequest) ([]models.HotelResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).([]models.HotelResponse)
	return resp, args.Error(1)
}

func (m *mockService) SetHotelStatus(ctx context.Context, req *models.SetStatusRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockService) CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.RoomResponse)
	return resp, args.Error(1)
}

func (m *mockService) ListRooms(ctx context.Context, hotelID string, rawStatus *string) ([]models.RoomResponse, error) {
	args := m.Called(ctx, hotelID, rawStatus)
	resp, _ := args.Get(0).([]models.RoomResponse)
	return resp, args.Error(1)
}

func (m *mockService) SetRoomStatus(ctx context.Context, req *models.SetStatusRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockService) CreateBus(ctx context.Context, req *models.CreateBusRequest) (*models.TripResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.TripResponse)
	return resp, args.Error(1)
}

func (m *mockService) ListBuses(ctx context.Context) ([]models.TripResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]models.TripResponse)
	return resp, args.Error(1)
}

func (m *mockService) CreateFlight(ctx context.Context, req *models.CreateFlightRequest) (*models.TripResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.TripResponse)
	return resp, args.Error(1)
}

func (m *mockService) ListFlights(ctx context.Context) ([]models.TripResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).([]models.TripResponse)
	return resp, args.Error(1)
}

func newRouter(svc ListingService) *mux.Router {
	h := NewHandler(svc, logger.NewDiscard())
	r := mux.NewRouter()

	public := r.PathPrefix("/api/v1").Subrouter()
	public.HandleFunc("/hotels", h.ListHotels).Methods(http.MethodGet)
	public.HandleFunc("/hotels/{hotelId}", h.GetHotel).Methods(http.MethodGet)
	public.HandleFunc("/hotels/{hotelId}/rooms", h.ListRooms).Methods(http.MethodGet)
	public.HandleFunc("/flights", h.ListFlights).Methods(http.MethodGet)

	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/hotels", h.CreateHotel).Methods(http.MethodPost)
	protected.HandleFunc("/hotels/{hotelId}/status", h.SetHotelStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/hotels/{hotelId}/rooms", h.CreateRoom).Methods(http.MethodPost)
	protected.HandleFunc("/rooms/{roomId}/status", h.SetRoomStatus).Methods(http.MethodPatch)
	protected.HandleFunc("/buses", h.CreateBus).Methods(http.MethodPost)
	return r
}

func do(r http.Handler, method, target, userID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.UserIDHeader, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateHotel(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateHotel", mock.Anything, &models.CreateHotelRequest{
		UserID: "owner", Name: "Inn", Location: "Porto", Images: []string{"a.jpg"},
	}).Return(&models.HotelResponse{ID: "h1", OwnerID: "owner", Name: "Inn", Status: "pending"}, nil)

	rec := do(newRouter(svc), http.MethodPost, "/api/v1/hotels", "owner",
		`{"name":"Inn","location":"Porto","images":["a.jpg"]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.HotelResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "h1", resp.ID)
	assert.Equal(t, "pending", resp.Status)
}

func TestCreateHotel_AccessDenied(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateHotel", mock.Anything, mock.Anything).Return(nil, listingsService.ErrAccessDenied)

	rec := do(newRouter(svc), http.MethodPost, "/api/v1/hotels", "guest", `{"name":"Inn","location":"Porto"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCreateHotel_Unauthorized(t *testing.T) {
	rec := do(newRouter(&mockService{}), http.MethodPost, "/api/v1/hotels", "", `{"name":"Inn"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListHotels_PassesFilters(t *testing.T) {
	status := "pending"
	owner := "o1"
	svc := &mockService{}
	svc.On("ListHotels", mock.Anything, &models.ListHotelsRequest{Status: &status, OwnerID: &owner}).
		Return([]models.HotelResponse{{ID: "h1"}}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/api/v1/hotels?status=pending&ownerId=o1", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"h1","ownerId":"","name":"","location":"","images":null,"status":""}]`, rec.Body.String())
}

func TestListHotels_NoFilters(t *testing.T) {
	svc := &mockService{}
	svc.On("ListHotels", mock.Anything, &models.ListHotelsRequest{}).Return([]models.HotelResponse{}, nil)

	rec := do(newRouter(svc), http.MethodGet, "/api/v1/hotels", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestGetHotel_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("GetHotel", mock.Anything, "nope").Return(nil, listingsService.ErrHotelNotFound)

	rec := do(newRouter(svc), http.MethodGet, "/api/v1/hotels/nope", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListRooms_InvalidStatus(t *testing.T) {
	status := "weird"
	svc := &mockService{}
	svc.On("ListRooms", mock.Anything, "h1", &status).Return(nil, listingsService.ErrInvalidInput)

	rec := do(newRouter(svc), http.MethodGet, "/api/v1/hotels/h1/rooms?status=weird", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetHotelStatus(t *testing.T) {
	svc := &mockService{}
	svc.On("SetHotelStatus", mock.Anything, &models.SetStatusRequest{UserID: "admin", ID: "h1", Status: "approved"}).
		Return(nil)

	rec := do(newRouter(svc), http.MethodPatch, "/api/v1/hotels/h1/status", "admin", `{"status":"approved"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"h1","status":"approved"}`, rec.Body.String())
}

func TestSetRoomStatus_NotFound(t *testing.T) {
	svc := &mockService{}
	svc.On("SetRoomStatus", mock.Anything, mock.Anything).Return(listingsService.ErrRoomNotFound)

	rec := do(newRouter(svc), http.MethodPatch, "/api/v1/rooms/r9/status", "admin", `{"status":"rejected"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateRoom_SetsHotelFromPath(t *testing.T) {
	svc := &mockService{}
	svc.On("CreateRoom", mock.Anything, mock.MatchedBy(func(req *models.CreateRoomRequest) bool {
		return req.HotelID == "h1" && req.UserID == "owner" && req.Price == 120
	})).Return(&models.RoomResponse{ID: "r1", HotelID: "h1"}, nil)

	rec := do(newRouter(svc), http.MethodPost, "/api/v1/hotels/h1/rooms", "owner",
		`{"title":"Double","price":120,"capacity":2}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestCreateBus(t *testing.T) {
	departure := time.Date(2025, 5, 1, 7, 0, 0, 0, time.UTC)
	svc := &mockService{}
	svc.On("CreateBus", mock.Anything, mock.MatchedBy(func(req *models.CreateBusRequest) bool {
		return req.DepartureAt.Equal(departure) && req.Decks == 2
	})).Return(&models.TripResponse{ID: "b1", SeatsTotal: 16}, nil)

	rec := do(newRouter(svc), http.MethodPost, "/api/v1/buses", "admin",
		`{"name":"Night","from":"Porto","to":"Lisbon","departureAt":"2025-05-01T07:00:00Z","fare":20,"decks":2,"rows":2,"columns":4}`)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestListFlights_Internal(t *testing.T) {
	svc := &mockService{}
	svc.On("ListFlights", mock.Anything).Return(nil, listingsService.ErrInternal)

	rec := do(newRouter(svc), http.MethodGet, "/api/v1/flights", "", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
