package listings

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/service/listings/models"
)

type ListingService interface {
	CreateHotel(ctx context.Context, req *models.CreateHotelRequest) (*models.HotelResponse, error)
	GetHotel(ctx context.Context, id string) (*models.HotelResponse, error)
	ListHotels(ctx context.Context, req *models.ListHotelsRequest) ([]models.HotelResponse, error)
	SetHotelStatus(ctx context.Context, req *models.SetStatusRequest) error
	CreateRoom(ctx context.Context, req *models.CreateRoomRequest) (*models.RoomResponse, error)
	ListRooms(ctx context.Context, hotelID string, rawStatus *string) ([]models.RoomResponse, error)
	SetRoomStatus(ctx context.Context, req *models.SetStatusRequest) error
	CreateBus(ctx context.Context, req *models.CreateBusRequest) (*models.TripResponse, error)
	ListBuses(ctx context.Context) ([]models.TripResponse, error)
	CreateFlight(ctx context.Context, req *models.CreateFlightRequest) (*models.TripResponse, error)
	ListFlights(ctx context.Context) ([]models.TripResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
