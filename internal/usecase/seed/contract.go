package seed

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// ListingRepository интерфейс репозитория отелей и номеров
type ListingRepository interface {
	CountHotels(ctx context.Context) (int, error)
	CreateHotel(ctx context.Context, hotel *domain.Hotel) (*domain.Hotel, error)
	CreateRoom(ctx context.Context, room *domain.Room) (*domain.Room, error)
}

// TransportRepository интерфейс репозитория рейсов
type TransportRepository interface {
	CreateBus(ctx context.Context, bus *domain.Bus) (*domain.Bus, error)
	CreateFlight(ctx context.Context, flight *domain.Flight) (*domain.Flight, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	Save(ctx context.Context, user *domain.User) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время в UTC
func (p *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
