package check_availability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	checkAvailability "github.com/m04kA/SMC-TravelBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-TravelBooking/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*checkAvailability.Response)
	return resp, args.Error(1)
}

func serve(uc CheckAvailabilityUseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/rooms/{roomId}/availability", NewHandler(uc, logger.NewDiscard()).Handle).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandle(t *testing.T) {
	from := time.Date(2025, 1, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 1, 13, 0, 0, 0, 0, time.UTC)

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *checkAvailability.Request) bool {
		return req.RoomID == "r1" && req.From.Equal(from) && req.To.Equal(to)
	})).
		Return(&checkAvailability.Response{RoomID: "r1", From: from, To: to, Available: false}, nil)

	rec := serve(uc, "/api/v1/rooms/r1/availability?from=2025-01-11&to=2025-01-13")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"roomId":"r1","from":"2025-01-11","to":"2025-01-13","available":false}`, rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	uc := &mockUseCase{}
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/api/v1/rooms/r1/availability?from=2025-01-11").Code)
	assert.Equal(t, http.StatusBadRequest, serve(uc, "/api/v1/rooms/r1/availability?from=11-01-2025&to=2025-01-13").Code)

	notFound := &mockUseCase{}
	notFound.On("Execute", mock.Anything, mock.Anything).Return(nil, checkAvailability.ErrRoomNotFound)
	assert.Equal(t, http.StatusNotFound, serve(notFound, "/api/v1/rooms/r9/availability?from=2025-01-11&to=2025-01-13").Code)

	invalid := &mockUseCase{}
	invalid.On("Execute", mock.Anything, mock.Anything).Return(nil, checkAvailability.ErrInvalidInput)
	assert.Equal(t, http.StatusBadRequest, serve(invalid, "/api/v1/rooms/r1/availability?from=2025-01-13&to=2025-01-11").Code)
}
