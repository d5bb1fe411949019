package book_seats

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TravelBooking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransportRepository интерфейс репозитория рейсов
type TransportRepository interface {
	GetBus(ctx context.Context, id string) (*domain.Bus, error)
	UpdateBusSeats(ctx context.Context, id string, seats []domain.Seat) error
	GetFlight(ctx context.Context, id string) (*domain.Flight, error)
	UpdateSoldSeats(ctx context.Context, id string, soldSeats []string) error
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// EventPublisher публикует события бронирований
type EventPublisher interface {
	Publish(ctx context.Context, routingKey string, payload interface{}) error
}

// Metrics счётчики бронирований
type Metrics interface {
	BookingCreated(kind string)
	BookingConflict(kind string)
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
