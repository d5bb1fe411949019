package listings

import (
	"context"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// ListingRepository интерфейс репозитория отелей и номеров
type ListingRepository interface {
	CreateHotel(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	GetHotel(ctx context.Context, id string) (*domain.Hotel, error)
	ListHotels(ctx context.Context, status *domain.ListingStatus, ownerID *string) ([]*domain.Hotel, error)
	UpdateHotelStatus(ctx context.Context, id string, status domain.ListingStatus) error
	CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
	GetRoom(ctx context.Context, id string) (*domain.Room, error)
	ListRooms(ctx context.Context, hotelID string, status *domain.ListingStatus) ([]*domain.Room, error)
	UpdateRoomStatus(ctx context.Context, id string, status domain.ListingStatus) error
}

// TransportRepository интерфейс репозитория рейсов
type TransportRepository interface {
	CreateBus(ctx context.Context, bus *domain.Bus) (*domain.Bus, error)
	ListBuses(ctx context.Context) ([]*domain.Bus, error)
	CreateFlight(ctx context.Context, flight *domain.Flight) (*domain.Flight, error)
	ListFlights(ctx context.Context) ([]*domain.Flight, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
